package main

import (
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/gre-42/mlib/errs"
	"github.com/gre-42/mlib/loader/objmesh"
	"github.com/gre-42/mlib/math32"
)

// sceneFile is the on-disk description a .scn file unmarshals into: a
// gravity vector, a list of immovable mesh files, and a list of
// dynamic bodies each backed by a mesh file and an initial pose/mass.
// Grounded in gui/builder.go's yaml.v2-based declarative loading
// (spec 6's "scene.scn" argument to render_scene_file).
type sceneFile struct {
	Gravity []float32     `yaml:"gravity"`
	Static  []staticEntry `yaml:"static"`
	Bodies  []bodyEntry   `yaml:"bodies"`
}

type staticEntry struct {
	Obj string `yaml:"obj"`
}

type bodyEntry struct {
	Obj      string    `yaml:"obj"`
	Mass     float32   `yaml:"mass"`
	Position []float32 `yaml:"position"`
	Velocity []float32 `yaml:"velocity"`
	Tires    []tireEntry `yaml:"tires"`
}

type tireEntry struct {
	Engine     string    `yaml:"engine"`
	BreakForce float32   `yaml:"break_force"`
	Radius     float32   `yaml:"radius"`
	Position   []float32 `yaml:"position"`
}

func loadSceneFile(path string) (*sceneFile, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeSceneFile(f, path)
}

func decodeSceneFile(r io.Reader, source string) (*sceneFile, error) {

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var sf sceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, &errs.ParseError{Source: source, Msg: err.Error()}
	}
	if len(sf.Bodies) == 0 && len(sf.Static) == 0 {
		return nil, &errs.ConfigError{Field: "scene", Msg: "scene file declares no static geometry and no bodies"}
	}
	return &sf, nil
}

func vec3(v []float32) math32.Vector3 {
	if len(v) != 3 {
		return math32.Vector3{}
	}
	return math32.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func loadTriangles(path string) (*objmesh.Mesh, error) {
	return objmesh.Decode(path)
}
