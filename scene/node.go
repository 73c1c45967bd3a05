// Package scene implements the engine's scene graph: hierarchical
// nodes with mixed movable policies, destruction observers, and
// aggregate classification (spec 4.E), generalized from g3n-engine's
// core.Node (parent/children hierarchy, event-dispatcher-style
// observer list) onto a RigidTransform pose instead of g3n's
// position/quaternion/scale render transform, since this engine's
// scene graph exists to carry physics poses and renderable
// classification rather than to drive a transform hierarchy by itself.
package scene

import "github.com/gre-42/mlib/math32"

// MovablePolicy classifies how a node's pose is produced each tick.
type MovablePolicy int

const (
	// NoneMovable nodes never move on their own (e.g. static level geometry).
	NoneMovable MovablePolicy = iota
	// AbsoluteMovable nodes write their own absolute world pose (e.g. a rigid body).
	AbsoluteMovable
	// RelativeMovable nodes write a pose relative to their parent's pose.
	RelativeMovable
)

// AbsolutePoseSource supplies a world-space pose directly, the
// AbsoluteMovable policy's data source (typically a
// physics.RigidBodyPulses or RigidBodyIntegrator).
type AbsolutePoseSource interface {
	Pose() math32.RigidTransform
}

// RelativePoseSource supplies a pose given the parent's current world
// pose, the RelativeMovable policy's data source.
type RelativePoseSource interface {
	Apply(parent *math32.RigidTransform) *math32.RigidTransform
}

// AdvanceTimeObserver rides along with a node, receiving a callback
// once per physics sub-step (matched structurally against
// physics/advance.AdvanceTime and physics/engine.AdvanceTimeObserver).
type AdvanceTimeObserver interface {
	AdvanceTime(dt float32)
}

// DestructionObserver is notified, in reverse-insertion order, when
// the node it is attached to is destroyed (matched structurally
// against physics.DestructionObserver).
type DestructionObserver interface {
	NotifyDestroyed()
}

// AggregateMode classifies how a node's renderables are batched.
type AggregateMode int

const (
	// AggregateOff renders a node's renderables individually every frame.
	AggregateOff AggregateMode = iota
	// AggregateOnce folds a node's renderables into a large aggregate once, at load time.
	AggregateOnce
	// AggregateSortedContinuously folds a node's renderables into a small aggregate rebuilt periodically.
	AggregateSortedContinuously
)

// Renderable is one drawable component attached to a node.
type Renderable interface {
	RequiresRenderPass() bool
	RequiresBlendingPass() bool
	AggregateMode() AggregateMode
}

// Node is one entry in the scene hierarchy: a parent pointer (never an
// owner), a named map of owned children, a pose policy, and the
// renderables/observers attached to it.
type Node struct {
	name     string
	parent   *Node
	children map[string]*Node

	movable  MovablePolicy
	absolute AbsolutePoseSource
	relative RelativePoseSource
	pose     math32.RigidTransform

	renderables  map[string]Renderable
	advanceTimes []AdvanceTimeObserver
	observers    []DestructionObserver

	aggregate AggregateMode
	hasLight  bool
	destroyed bool
}

// SetLight marks whether this node carries a light, included in the
// render pass's light list (spec 4.E's "optional light").
func (n *Node) SetLight(hasLight bool) { n.hasLight = hasLight }

// HasLight reports whether SetLight(true) was called on this node.
func (n *Node) HasLight() bool { return n.hasLight }

// NewNode creates a detached node named name with an identity pose.
func NewNode(name string) *Node {

	return &Node{
		name:        name,
		children:    make(map[string]*Node),
		renderables: make(map[string]Renderable),
		pose:        *math32.NewRigidTransform(),
		aggregate:   AggregateOff,
	}
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Parent returns the node's parent, or nil if it is a root.
func (n *Node) Parent() *Node { return n.parent }

// Pose returns the node's last-computed world pose.
func (n *Node) Pose() math32.RigidTransform { return n.pose }

// SetMovable installs the node's movable policy and pose source.
// Passing NoneMovable clears both sources.
func (n *Node) SetMovable(policy MovablePolicy, absolute AbsolutePoseSource, relative RelativePoseSource) {
	if policy == NoneMovable {
		absolute, relative = nil, nil
	}
	n.movable = policy
	n.absolute = absolute
	n.relative = relative
}

// SetAggregateMode sets the node's aggregate classification (spec 4.E).
func (n *Node) SetAggregateMode(mode AggregateMode) { n.aggregate = mode }

// AggregateMode returns the node's aggregate classification.
func (n *Node) AggregateMode() AggregateMode { return n.aggregate }

// AddRenderable attaches a named renderable component to the node.
func (n *Node) AddRenderable(name string, r Renderable) { n.renderables[name] = r }

// Renderables returns the node's attached renderable components.
func (n *Node) Renderables() map[string]Renderable { return n.renderables }

// AddAdvanceTimeObserver registers obs to be ticked once per sub-step.
func (n *Node) AddAdvanceTimeObserver(obs AdvanceTimeObserver) {
	n.advanceTimes = append(n.advanceTimes, obs)
}

// AdvanceTimeObservers returns the node's registered observers.
func (n *Node) AdvanceTimeObservers() []AdvanceTimeObserver { return n.advanceTimes }

// AddDestructionObserver registers obs to be notified on destruction.
func (n *Node) AddDestructionObserver(obs DestructionObserver) {
	n.observers = append(n.observers, obs)
}

// Add attaches child as a named child of n. It returns false, leaving
// the tree unchanged, if child already has a parent -- adding a child
// with an existing parent is a programming error the caller must fix
// by removing it from its current parent first.
func (n *Node) Add(child *Node) bool {

	if child.parent != nil {
		return false
	}
	n.children[child.name] = child
	child.parent = n
	return true
}

// Remove detaches the named child, returning it (with parent cleared)
// if present.
func (n *Node) Remove(name string) *Node {

	child, ok := n.children[name]
	if !ok {
		return nil
	}
	delete(n.children, name)
	child.parent = nil
	return child
}

// Children returns the node's owned children.
func (n *Node) Children() map[string]*Node { return n.children }

// UpdatePose recomputes this node's world pose from its movable
// policy -- AbsoluteMovable pulls the pose directly from its source,
// RelativeMovable composes the parent's pose with its source, and
// NoneMovable leaves the pose untouched -- then recurses into
// children so a relative child sees its parent's freshly updated pose.
func (n *Node) UpdatePose() {

	switch n.movable {
	case AbsoluteMovable:
		if n.absolute != nil {
			n.pose = n.absolute.Pose()
		}
	case RelativeMovable:
		if n.relative != nil {
			parentPose := *math32.NewRigidTransform()
			if n.parent != nil {
				parentPose = n.parent.pose
			}
			n.pose = *n.relative.Apply(&parentPose)
		}
	}
	for _, c := range n.children {
		c.UpdatePose()
	}
}

// Destroy recursively destroys n and its children bottom-up, notifying
// each node's destruction observers in reverse-insertion order (spec
// 4.E). After its children are destroyed it detaches n from its
// parent, before notifying n's own observers.
func (n *Node) Destroy() {

	for _, c := range n.children {
		c.Destroy()
	}
	n.children = make(map[string]*Node)

	if n.parent != nil {
		delete(n.parent.children, n.name)
		n.parent = nil
	}

	n.destroyed = true
	for i := len(n.observers) - 1; i >= 0; i-- {
		n.observers[i].NotifyDestroyed()
	}
	n.observers = nil
}

// Destroyed reports whether Destroy has run on this node.
func (n *Node) Destroyed() bool { return n.destroyed }
