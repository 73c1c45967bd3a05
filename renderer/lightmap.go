package renderer

import (
	"strconv"
	"sync"

	"github.com/gre-42/mlib/math32"
)

// FramebufferAllocator is supplied by the windowing/GL layer so this
// package can describe the lightmap pass without depending on the
// concrete GL framebuffer calls itself -- the gls package ships with a
// generated OpenGL constants file missing from this tree, so anything
// touching raw texture formats here would be guesswork. Callers
// running against a real GL context implement this against gs.GenTexture/
// gs.BindTexture/their own framebuffer extension.
type FramebufferAllocator interface {
	NewColorTexture(width, height int32) uint32
	NewDepthTexture(width, height int32) uint32
	NewFramebuffer(colorTex, depthTex uint32) uint32
}

// LightmapPass is one light's off-screen shadow-gathering target (spec
// 4.F): a frame buffer plus color (and optionally depth) texture sized
// by config. The render loop clears it to white before drawing so
// unoccluded geometry reads back bright.
type LightmapPass struct {
	Width, Height int32

	Framebuffer uint32
	ColorTex    uint32
	DepthTex    uint32
}

// NewLightmapPass allocates a lightmap off-screen target of the given
// size through alloc, allocating a depth texture too when withDepth is set.
func NewLightmapPass(alloc FramebufferAllocator, width, height int32, withDepth bool) *LightmapPass {

	lp := &LightmapPass{Width: width, Height: height}
	lp.ColorTex = alloc.NewColorTexture(width, height)
	if withDepth {
		lp.DepthTex = alloc.NewDepthTexture(width, height)
	}
	lp.Framebuffer = alloc.NewFramebuffer(lp.ColorTex, lp.DepthTex)
	return lp
}

// RenderingResources is the keyed texture map lightmap output is
// published into, matching spec 4.F's "lightmap_color<i> /
// lightmap_depth<i>" naming and spec 5's "rendering-resources texture
// map uses a mutex for inserts".
type RenderingResources struct {
	mu       sync.Mutex
	textures map[string]uint32
	vp       map[string]math32.Matrix4
}

// NewRenderingResources creates an empty resource map.
func NewRenderingResources() *RenderingResources {
	return &RenderingResources{textures: make(map[string]uint32), vp: make(map[string]math32.Matrix4)}
}

// Publish installs a texture handle and its view-projection matrix
// under key (e.g. "lightmap_color0").
func (r *RenderingResources) Publish(key string, tex uint32, vp math32.Matrix4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.textures[key] = tex
	r.vp[key] = vp
}

// Texture returns the texture handle published under key, if any.
func (r *RenderingResources) Texture(key string) (uint32, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.textures[key]
	return t, ok
}

// ViewProjection returns the view-projection matrix published under
// key, if any -- consumed by fragment shaders doing the lightmap
// lookup.
func (r *RenderingResources) ViewProjection(key string) (math32.Matrix4, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vp, ok := r.vp[key]
	return vp, ok
}

// Publish writes this pass's color (and, if allocated, depth) texture
// into resources under the given light index's keys.
func (lp *LightmapPass) Publish(resources *RenderingResources, lightIndex int, vp math32.Matrix4) {

	resources.Publish(lightmapKey("lightmap_color", lightIndex), lp.ColorTex, vp)
	if lp.DepthTex != 0 {
		resources.Publish(lightmapKey("lightmap_depth", lightIndex), lp.DepthTex, vp)
	}
}

func lightmapKey(prefix string, index int) string {
	return prefix + strconv.Itoa(index)
}
