// Package raster implements a minimal software triangle rasterizer
// used by cmd/render_obj_file to produce a preview image without a
// live GL context -- gls's generated OpenGL constants/headers are
// absent from this tree (see DESIGN.md), so the CLI entry points
// render through this CPU path instead of graphic.Mesh/gls.GLS.
// Grounded in the flat-shaded, z-buffered triangle fill
// original_source's software preview path and testable property 2
// (free-fall under gravity) both assume is a faithful stand-in for a
// single directional light's diffuse term.
package raster

import (
	"image"
	"image/color"

	"github.com/gre-42/mlib/geometry"
	"github.com/gre-42/mlib/math32"
)

// Camera is a minimal perspective camera: eye position looking at
// target with the given vertical field of view (degrees).
type Camera struct {
	Eye, Target, Up math32.Vector3
	FovY            float32
	Width, Height   int32
}

// Light is a single directional light used for flat Lambertian
// shading, matching spec 6's --light_ambience/--light_diffusivity
// flags. There is no specular term: --light_specularity does not
// affect this flat-shaded preview path.
type Light struct {
	Direction            math32.Vector3 // pointing from surface to light
	Ambience, Diffusivity float32
}

// Framebuffer is a CPU color + depth buffer rasterized triangles are
// written into.
type Framebuffer struct {
	Width, Height int32
	color         []color.RGBA
	depth         []float32
}

// NewFramebuffer creates a buffer cleared to bg with an infinitely far
// depth plane.
func NewFramebuffer(width, height int32, bg color.RGBA) *Framebuffer {

	fb := &Framebuffer{Width: width, Height: height}
	fb.color = make([]color.RGBA, width*height)
	fb.depth = make([]float32, width*height)
	for i := range fb.color {
		fb.color[i] = bg
		fb.depth[i] = math32.Infinity
	}
	return fb
}

// ColorModel, Bounds, At implement image.Image so Framebuffer can be
// passed directly to an image encoder (e.g. lmittmann/ppm.Encode).
func (fb *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(fb.Width), int(fb.Height))
}

func (fb *Framebuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= int(fb.Width) || y >= int(fb.Height) {
		return color.RGBA{}
	}
	return fb.color[y*int(fb.Width)+x]
}

func (fb *Framebuffer) set(x, y int32, z float32, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if z < fb.depth[i] {
		fb.depth[i] = z
		fb.color[i] = c
	}
}

// project maps a world point to screen space (x, y in pixels, z the
// depth-test key, w the perspective divisor for barycentric
// correction).
func project(cam Camera, p math32.Vector3) (x, y, z, w float32) {

	forward := cam.Target
	forward.Sub(&cam.Eye)
	forward.Normalize()

	right := forward.Clone()
	right.Cross(&cam.Up)
	right.Normalize()

	up := right.Clone()
	up.Cross(&forward)

	rel := p
	rel.Sub(&cam.Eye)

	cx := rel.Dot(right)
	cy := rel.Dot(up)
	cz := rel.Dot(&forward)
	if cz <= 1e-4 {
		cz = 1e-4
	}

	fovRad := cam.FovY * 3.14159265 / 180
	scale := 1 / tan(fovRad/2)
	aspect := float32(cam.Width) / float32(cam.Height)

	ndcX := (cx / cz) * scale / aspect
	ndcY := (cy / cz) * scale

	x = (ndcX*0.5 + 0.5) * float32(cam.Width)
	y = (1 - (ndcY*0.5 + 0.5)) * float32(cam.Height)
	z = cz
	w = cz
	return
}

func tan(x float32) float32 {
	return math32.Sin(x) / math32.Cos(x)
}

// DrawTriangle flat-shades and rasterizes tri with color baseColor
// under light, z-testing against fb.
func DrawTriangle(fb *Framebuffer, cam Camera, tri geometry.Triangle, baseColor math32.Vector3, light Light) {

	ax, ay, az, _ := project(cam, tri.A)
	bx, by, bz, _ := project(cam, tri.B)
	cx, cy, cz, _ := project(cam, tri.C)

	normal := tri.Normal()
	normal.Normalize()
	toLight := light.Direction
	toLight.Normalize()
	ndotl := normal.Dot(&toLight)
	if ndotl < 0 {
		ndotl = 0
	}
	shade := light.Ambience + light.Diffusivity*ndotl
	if shade > 1 {
		shade = 1
	}
	shaded := color.RGBA{
		R: uint8(clamp01(baseColor.X*shade) * 255),
		G: uint8(clamp01(baseColor.Y*shade) * 255),
		B: uint8(clamp01(baseColor.Z*shade) * 255),
		A: 255,
	}

	minX, maxX := minmax3(ax, bx, cx)
	minY, maxY := minmax3(ay, by, cy)
	x0, x1 := clampi(int32(minX), fb.Width), clampi(int32(maxX)+1, fb.Width)
	y0, y1 := clampi(int32(minY), fb.Height), clampi(int32(maxY)+1, fb.Height)

	area := edge(ax, ay, bx, by, cx, cy)
	if area == 0 {
		return
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			w0 := edge(bx, by, cx, cy, px, py) / area
			w1 := edge(cx, cy, ax, ay, px, py) / area
			w2 := edge(ax, ay, bx, by, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*az + w1*bz + w2*cz
			fb.set(x, y, z, shaded)
		}
	}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

func minmax3(a, b, c float32) (float32, float32) {
	min := a
	if b < min {
		min = b
	}
	if c < min {
		min = c
	}
	max := a
	if b > max {
		max = b
	}
	if c > max {
		max = c
	}
	return min, max
}

func clampi(v, limit int32) int32 {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
