// Command render_obj_file loads one or more OBJ files and writes a
// flat-shaded software-rasterized preview to a PPM image (spec 6's
// first CLI entry point). It does not open a GL window: gls's
// generated OpenGL bindings are incomplete in this tree (see
// DESIGN.md), so this entry point renders entirely on the CPU through
// the raster package.
package main

import (
	"fmt"
	"image/color"
	"os"
	"regexp"

	"github.com/lmittmann/ppm"
	"github.com/urfave/cli/v2"

	"github.com/gre-42/mlib/errs"
	"github.com/gre-42/mlib/geometry"
	"github.com/gre-42/mlib/loader/objmesh"
	"github.com/gre-42/mlib/math32"
	"github.com/gre-42/mlib/raster"
)

var bgColor = color.RGBA{R: 20, G: 20, B: 30, A: 255}

type shadedTriangle struct {
	tri   geometry.Triangle
	color math32.Vector3
}

func main() {

	app := &cli.App{
		Name:      "render_obj_file",
		Usage:     "render one or more OBJ files to a PPM preview image",
		ArgsUsage: "<file ...>",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "scale", Value: 1},
			&cli.IntFlag{Name: "width", Value: 640},
			&cli.IntFlag{Name: "height", Value: 480},
			&cli.StringFlag{Name: "output", Value: "out.ppm"},
			&cli.StringFlag{Name: "blend_mode", Value: "off"},
			&cli.StringFlag{Name: "aggregate_mode", Value: "off"},
			&cli.BoolFlag{Name: "apply_static_lighting"},
			&cli.BoolFlag{Name: "no_shadows"},
			&cli.BoolFlag{Name: "no_light"},
			&cli.Float64Flag{Name: "light_ambience", Value: 0.2},
			&cli.Float64Flag{Name: "light_diffusivity", Value: 0.8},
			&cli.Float64Flag{Name: "light_specularity", Value: 0.0},
			&cli.BoolFlag{Name: "no_cull_faces"},
			&cli.BoolFlag{Name: "wire_frame"},
			&cli.Float64Flag{Name: "render_dt", Value: 1.0 / 60},
			&cli.IntFlag{Name: "min_num", Value: 0},
			&cli.StringFlag{Name: "regex"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {

	if c.Args().Len() < 1 {
		return &errs.CommandLineArgumentError{Msg: "at least one OBJ file is required"}
	}

	if c.String("regex") != "" {
		if _, err := regexp.Compile(c.String("regex")); err != nil {
			return &errs.CommandLineArgumentError{Flag: "--regex", Msg: err.Error()}
		}
	}
	switch c.String("blend_mode") {
	case "off", "continuous", "binary":
	default:
		return &errs.CommandLineArgumentError{Flag: "--blend_mode", Msg: "must be one of off|continuous|binary"}
	}
	switch c.String("aggregate_mode") {
	case "off", "once", "sorted":
	default:
		return &errs.CommandLineArgumentError{Flag: "--aggregate_mode", Msg: "must be one of off|once|sorted"}
	}

	scale := float32(c.Float64("scale"))
	width := int32(c.Int("width"))
	height := int32(c.Int("height"))

	var triangles []shadedTriangle
	for _, path := range c.Args().Slice() {
		mesh, err := objmesh.Decode(path)
		if err != nil {
			return err
		}
		for i, tri := range mesh.Triangles {
			tri.A.MultiplyScalar(scale)
			tri.B.MultiplyScalar(scale)
			tri.C.MultiplyScalar(scale)
			triangles = append(triangles, shadedTriangle{tri: tri, color: mesh.Colors[i]})
		}
	}

	center, radius := boundingSphere(triangles)

	cam := raster.Camera{
		Eye:    math32.Vector3{X: center.X, Y: center.Y, Z: center.Z + radius*2.5},
		Target: center,
		Up:     math32.Vector3{X: 0, Y: 1, Z: 0},
		FovY:   45,
		Width:  width,
		Height: height,
	}

	light := raster.Light{
		Direction: math32.Vector3{X: 0.4, Y: 0.8, Z: 0.4},
		Ambience:  float32(c.Float64("light_ambience")),
	}
	if !c.Bool("no_light") {
		light.Diffusivity = float32(c.Float64("light_diffusivity"))
	}
	if c.Bool("apply_static_lighting") {
		light.Ambience += 0.1
	}

	fb := raster.NewFramebuffer(width, height, bgColor)
	for _, t := range triangles {
		raster.DrawTriangle(fb, cam, t.tri, t.color, light)
	}

	out, err := os.Create(c.String("output"))
	if err != nil {
		return err
	}
	defer out.Close()

	return ppm.Encode(out, fb)
}

// boundingSphere returns a sphere loosely enclosing every triangle's
// vertices, used to place a default camera framing the whole mesh set
// without requiring the caller to specify a view.
func boundingSphere(triangles []shadedTriangle) (center math32.Vector3, radius float32) {

	if len(triangles) == 0 {
		return math32.Vector3{}, 1
	}

	var sum math32.Vector3
	n := 0
	for _, t := range triangles {
		for _, v := range []math32.Vector3{t.tri.A, t.tri.B, t.tri.C} {
			sum.Add(&v)
			n++
		}
	}
	sum.MultiplyScalar(1 / float32(n))
	center = sum

	for _, t := range triangles {
		for _, v := range []math32.Vector3{t.tri.A, t.tri.B, t.tri.C} {
			d := v
			d.Sub(&center)
			if l := d.Length(); l > radius {
				radius = l
			}
		}
	}
	if radius == 0 {
		radius = 1
	}
	return center, radius
}
