package scene

import (
	"sync"

	"github.com/google/uuid"

	"github.com/gre-42/mlib/errs"
)

// RootBucket selects which of the scene's six root categories a root
// node belongs to, the product of rendering-dynamics (moving/static)
// times aggregate-mode (off/once/sorted-continuously) that spec 4.E's
// add_root_node chooses between.
type RootBucket int

const (
	MovingRoots RootBucket = iota
	StaticRoots
	AggregateOnceRoots
	AggregateContinuousRoots
	InstancesOnceRoots
	InstancesContinuousRoots
	numRootBuckets
)

// Handle is a stale-safe reference to a registered root node: a
// generation counter plus the bucket/name it was registered under.
// Looking a name up after it has been deleted and re-added returns a
// new generation, so a Handle captured before the deletion compares
// unequal to the current registration (spec 9's "name resolves to a
// handle (generation+index)").
type Handle struct {
	ID         uuid.UUID
	Name       string
	Bucket     RootBucket
	Generation int
}

type registryEntry struct {
	node       *Node
	bucket     RootBucket
	generation int
	id         uuid.UUID
}

// Scene owns the six root buckets and the name registry over them,
// guarded by a single reader/writer mutex matching spec 5's "scene
// graph has one shared_mutex (multi-reader/single-writer)".
type Scene struct {
	mu       sync.RWMutex
	roots    [numRootBuckets]map[string]*Node
	registry map[string]*registryEntry
	toDelete []string
	lastGen  int
}

// NewScene creates an empty scene.
func NewScene() *Scene {

	s := &Scene{registry: make(map[string]*registryEntry)}
	for i := range s.roots {
		s.roots[i] = make(map[string]*Node)
	}
	return s
}

// AddRootNode places node into bucket under name, failing with a
// ConfigError if the name is already registered (spec 4.E: "the scene
// registry records the name; duplicate names fail").
func (s *Scene) AddRootNode(name string, node *Node, bucket RootBucket) (Handle, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.registry[name]; exists {
		return Handle{}, &errs.ConfigError{Field: "AddRootNode", Msg: "duplicate root node name: " + name}
	}

	s.lastGen++
	generation := s.lastGen
	id := uuid.New()
	s.roots[bucket][name] = node
	s.registry[name] = &registryEntry{node: node, bucket: bucket, generation: generation, id: id}
	return Handle{ID: id, Name: name, Bucket: bucket, Generation: generation}, nil
}

// Lookup resolves name to its current node and handle in O(1), failing
// with a ConfigError if the name is unknown or has been scheduled for
// deletion (spec 4.E/7: "node scheduled-for-deletion lookup from a
// non-deleter thread").
func (s *Scene) Lookup(name string) (*Node, Handle, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.registry[name]
	if !ok {
		return nil, Handle{}, &errs.ConfigError{Field: "Lookup", Msg: "no such root node: " + name}
	}
	for _, pending := range s.toDelete {
		if pending == name {
			return nil, Handle{}, &errs.ConfigError{Field: "Lookup", Msg: "root node scheduled for deletion: " + name}
		}
	}
	return e.node, Handle{ID: e.id, Name: name, Bucket: e.bucket, Generation: e.generation}, nil
}

// ScheduleDelete marks name for removal at the next DrainDeletions
// call rather than removing it immediately, so render/physics threads
// mid-traversal never observe a root vanish under them.
func (s *Scene) ScheduleDelete(name string) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registry[name]; !ok {
		return &errs.ConfigError{Field: "ScheduleDelete", Msg: "no such root node: " + name}
	}
	s.toDelete = append(s.toDelete, name)
	return nil
}

// DrainDeletions performs every pending scheduled deletion, destroying
// each node (recursively, bottom-up, notifying destruction observers)
// and removing it from its bucket and the registry. Re-adding a name
// later reuses the slot with a bumped generation.
func (s *Scene) DrainDeletions() {

	s.mu.Lock()
	pending := s.toDelete
	s.toDelete = nil
	s.mu.Unlock()

	for _, name := range pending {
		s.mu.Lock()
		e, ok := s.registry[name]
		if !ok {
			s.mu.Unlock()
			continue
		}
		delete(s.roots[e.bucket], name)
		delete(s.registry, name)
		s.mu.Unlock()

		e.node.Destroy()
	}
}

// Move recomputes every root's (and its descendants') world pose for
// this tick, under an exclusive lock so no reader observes a
// half-updated hierarchy (spec 4.H step 2: "under the scene lock,
// scene.move(dt)"). dt is accepted for symmetry with the physics
// loop's other per-tick calls; pose sources read their own state.
func (s *Scene) Move(dt float32) {

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, bucket := range s.roots {
		for _, n := range bucket {
			n.UpdatePose()
		}
	}
}

// Roots returns the root nodes currently registered in bucket.
func (s *Scene) Roots(bucket RootBucket) map[string]*Node {

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roots[bucket]
}

// RenderOutput is the result of one traversal pass: the lights visible
// this frame, the blended (order-independent, sorted-by-view-z-later)
// renderables, and the direct non-blended draw list. Aggregate/
// instance root buckets never contribute to Direct -- they are
// consumed by the aggregate package instead (spec 4.E/4.G).
type RenderOutput struct {
	Lights  []*Node
	Blended []*Node
	Direct  []*Node
}

// Traverse walks every node reachable from the scene's moving and
// static root buckets (the aggregate/instance buckets are fed to
// aggregate workers elsewhere), producing the three concurrent
// outputs spec 4.E's render pass describes.
func (s *Scene) Traverse() RenderOutput {

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out RenderOutput
	for _, bucket := range []RootBucket{MovingRoots, StaticRoots} {
		for _, n := range s.roots[bucket] {
			traverseNode(n, &out)
		}
	}
	return out
}

func traverseNode(n *Node, out *RenderOutput) {

	blended := false
	for _, r := range n.renderables {
		if r.AggregateMode() != AggregateOff {
			continue
		}
		if r.RequiresBlendingPass() {
			blended = true
		}
		if r.RequiresRenderPass() {
			out.Direct = append(out.Direct, n)
		}
	}
	if n.hasLight {
		out.Lights = append(out.Lights, n)
	}
	if blended {
		out.Blended = append(out.Blended, n)
	}
	for _, c := range n.children {
		traverseNode(c, out)
	}
}
