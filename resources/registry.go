// Package resources implements the named resource registry (spec
// 4.J): add_resource/instantiate_renderable over a name->renderable-set
// map, a BVH skeletal-pose resource, and a geographic-mapping
// resource. Generalized from g3n-engine's loader packages (which
// decode a file into one concrete object) onto a registry a scene
// builder queries by name at instantiation time, matching
// original_source's Add_Resource/Instantiate_Renderable split of
// decode-once from place-many.
package resources

import (
	"regexp"

	"github.com/gre-42/mlib/errs"
	"github.com/gre-42/mlib/scene"
)

// Resource is one named, reusable set of renderables a scene node can
// be instantiated from.
type Resource struct {
	Renderables map[string]scene.Renderable
}

// Filter restricts which of a resource's renderables instantiate_renderable
// copies onto a node: a renderable's name must match Regex (if set)
// and the total copied count must fall within [MinNum, MaxNum].
type Filter struct {
	Regex  *regexp.Regexp
	MinNum int
	MaxNum int // 0 means unbounded
}

func (f Filter) matches(name string) bool {
	if f.Regex == nil {
		return true
	}
	return f.Regex.MatchString(name)
}

// Registry is the name->Resource map spec 4.J's add_resource/
// instantiate_renderable operate over.
type Registry struct {
	resources map[string]*Resource
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{resources: make(map[string]*Resource)}
}

// AddResource registers resource under name, failing with a
// ConfigError if the name is already taken (spec 4.J: "name must be
// unique").
func (r *Registry) AddResource(name string, resource *Resource) error {

	if _, exists := r.resources[name]; exists {
		return &errs.ConfigError{Field: "AddResource", Msg: "duplicate resource name: " + name}
	}
	r.resources[name] = resource
	return nil
}

// InstantiateRenderable clones the named resource's renderables,
// subject to filter, into node's renderable map. Returns a ConfigError
// if the name is unknown or the filtered count falls outside
// [filter.MinNum, filter.MaxNum].
func (r *Registry) InstantiateRenderable(name string, node *scene.Node, filter Filter) error {

	res, ok := r.resources[name]
	if !ok {
		return &errs.ConfigError{Field: "InstantiateRenderable", Msg: "no such resource: " + name}
	}

	count := 0
	for rname, renderable := range res.Renderables {
		if !filter.matches(rname) {
			continue
		}
		node.AddRenderable(rname, renderable)
		count++
	}

	if count < filter.MinNum {
		return &errs.ConfigError{Field: "InstantiateRenderable", Msg: "too few renderables matched filter for resource: " + name}
	}
	if filter.MaxNum > 0 && count > filter.MaxNum {
		return &errs.ConfigError{Field: "InstantiateRenderable", Msg: "too many renderables matched filter for resource: " + name}
	}
	return nil
}
