// Command render_scene_file runs a fixed-step physics simulation over
// a declarative .scn scene file (spec 6's second CLI entry point),
// driving physics/engine.Engine and scene.Scene through loop.Loop
// headlessly -- no GL window, since gls's generated OpenGL bindings
// are incomplete in this tree (see DESIGN.md).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gre-42/mlib/errs"
	"github.com/gre-42/mlib/geometry"
	"github.com/gre-42/mlib/loader/objmesh"
	"github.com/gre-42/mlib/loop"
	"github.com/gre-42/mlib/math32"
	"github.com/gre-42/mlib/physics"
	"github.com/gre-42/mlib/physics/collision"
	"github.com/gre-42/mlib/physics/engine"
	"github.com/gre-42/mlib/scene"
)

func main() {

	app := &cli.App{
		Name:      "render_scene_file",
		Usage:     "run a fixed-step physics simulation over a .scn scene description",
		ArgsUsage: "<scene.scn>",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "physics_dt", Value: 1.0 / 60},
			&cli.Float64Flag{Name: "render_dt", Value: 1.0 / 60},
			&cli.IntFlag{Name: "oversampling", Value: 20},
			&cli.StringFlag{Name: "physics_type", Value: "version1"},
			&cli.StringFlag{Name: "resolve_collision_type", Value: "penalty"},
			&cli.Float64Flag{Name: "bvh_max_size", Value: 200},
			&cli.Float64Flag{Name: "static_radius", Value: 200},
			&cli.BoolFlag{Name: "no_bvh"},
			&cli.BoolFlag{Name: "single_threaded"},
			&cli.BoolFlag{Name: "no_physics"},
			&cli.Float64Flag{Name: "ticks", Value: 120, Usage: "number of physics ticks to run before exiting"},
			&cli.BoolFlag{Name: "print_residuals"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {

	if c.Args().Len() != 1 {
		return &errs.CommandLineArgumentError{Msg: "exactly one scene file is required"}
	}

	// The source leaves the --no_physics + --single_threaded
	// interaction undefined; this implementation rejects it outright
	// (spec 8's open question decision).
	if c.Bool("no_physics") && c.Bool("single_threaded") {
		return &errs.ConfigError{Field: "--no_physics/--single_threaded", Msg: "combination is not supported"}
	}

	var physicsType physics.PhysicsType
	switch c.String("physics_type") {
	case "version1":
		physicsType = physics.PhysicsVersion1
	case "tracking_springs", "builtin":
		return &errs.ConfigError{Field: "--physics_type", Msg: "scheme " + c.String("physics_type") + " is not implemented; only version1 is available"}
	default:
		return &errs.CommandLineArgumentError{Flag: "--physics_type", Msg: "must be one of version1|tracking_springs|builtin"}
	}

	var resolveType physics.ResolveCollisionType
	switch c.String("resolve_collision_type") {
	case "penalty":
		resolveType = physics.Penalty
	case "sequential_pulses":
		resolveType = physics.SequentialPulses
	default:
		return &errs.CommandLineArgumentError{Flag: "--resolve_collision_type", Msg: "must be one of penalty|sequential_pulses"}
	}

	sf, err := loadSceneFile(c.Args().First())
	if err != nil {
		return err
	}

	cfg := physics.DefaultPhysicsEngineConfig()
	cfg.Dt = float32(c.Float64("physics_dt"))
	cfg.Oversampling = c.Int("oversampling")
	cfg.PhysicsType = physicsType
	cfg.ResolveCollisionType = resolveType
	cfg.StaticRadius = float32(c.Float64("static_radius"))
	cfg.Bvh = !c.Bool("no_bvh")
	cfg.PrintResidualTime = c.Bool("print_residuals")

	staticRadius := float32(c.Float64("bvh_max_size"))
	if staticRadius <= 0 {
		staticRadius = cfg.StaticRadius
	}
	bvh := collision.NewBVH(staticRadius)

	for _, s := range sf.Static {
		mesh, err := loadTriangles(s.Obj)
		if err != nil {
			return err
		}
		for _, tri := range mesh.Triangles {
			bvh.AddStaticTriangle(tri)
		}
	}

	eng := engine.NewEngine(cfg, bvh)
	if len(sf.Gravity) == 3 {
		eng.Gravity = vec3(sf.Gravity)
	}

	sc := scene.NewScene()

	for i, b := range sf.Bodies {
		mesh, err := loadTriangles(b.Obj)
		if err != nil {
			return err
		}

		meshTriangles := make([]collision.MeshTriangle, len(mesh.Triangles))
		for j, tri := range mesh.Triangles {
			meshTriangles[j] = collision.MeshTriangle{Tri: tri, TireIndex: -1}
		}
		movable := &collision.MovableMesh{BodyID: i, Triangles: meshTriangles}
		movable.RefreshSphere()

		mass := b.Mass
		if mass <= 0 {
			mass = 1
		}
		var inertia math32.Matrix3
		boxInertia(mesh, mass, &inertia)

		position := vec3(b.Position)
		velocity := vec3(b.Velocity)
		var identity math32.Matrix3
		identity.Identity()

		rbp := physics.NewRigidBodyPulses(mass, inertia, math32.Vector3{}, velocity, math32.Vector3{}, position, identity, true)
		rbi := physics.NewRigidBodyIntegrator(rbp)

		tires := map[int]*physics.Tire{}
		for k, te := range b.Tires {
			tire, err := physics.NewTire(te.Engine, te.BreakForce, te.Radius, vec3(te.Position))
			if err != nil {
				return err
			}
			tires[k] = tire
			if k < len(meshTriangles) {
				meshTriangles[k].TireIndex = k
			}
		}

		eng.AddBody(&engine.Body{RBI: rbi, Mesh: movable, Tires: tires})

		node := scene.NewNode(fmt.Sprintf("body_%d", i))
		node.SetMovable(scene.AbsoluteMovable, rbp, nil)
		if _, err := sc.AddRootNode(node.Name(), node, scene.MovingRoots); err != nil {
			return err
		}
	}

	if c.Bool("no_physics") {
		fmt.Println("scene loaded, physics disabled, exiting")
		return nil
	}

	loopCfg := loop.Config{
		Dt:              time.Duration(c.Float64("physics_dt") * float64(time.Second)),
		Oversampling:    c.Int("oversampling"),
		MaxResidualTime: time.Duration(cfg.MaxResidualTime * float32(time.Second)),
		PrintResiduals:  c.Bool("print_residuals"),
	}
	l := loop.New(loopCfg, eng, sc, nil)

	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()

	ticks := int(c.Float64("ticks"))
	for i := 0; i < ticks; i++ {
		time.Sleep(loopCfg.Dt)
	}
	l.Stop()
	<-done

	for i, b := range eng.Bodies {
		p := b.RBI.RBP.Position()
		fmt.Printf("body_%d final position: (%.4f, %.4f, %.4f)\n", i, p.X, p.Y, p.Z)
	}
	return nil
}

// boxInertia approximates a uniform solid box's inertia tensor from
// mesh's bounding box dimensions, diagonal in the box's local axes --
// adequate for the flat-sided OBJ meshes these scene files describe,
// matching original_source's own box-inertia default for untagged
// dynamic bodies.
func boxInertia(mesh *objmesh.Mesh, mass float32, out *math32.Matrix3) {

	box := geometry.EmptyBoundingBox()
	for _, tri := range mesh.Triangles {
		box.ExtendPoint(tri.A)
		box.ExtendPoint(tri.B)
		box.ExtendPoint(tri.C)
	}
	size := box.Max
	size.Sub(&box.Min)

	w, h, d := size.X, size.Y, size.Z
	ixx := mass / 12 * (h*h + d*d)
	iyy := mass / 12 * (w*w + d*d)
	izz := mass / 12 * (w*w + h*h)

	out.Identity()
	out[0] = ixx
	out[4] = iyy
	out[8] = izz
}
