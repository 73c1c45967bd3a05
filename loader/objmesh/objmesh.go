// Package objmesh decodes OBJ+MTL into plain triangles and per-face
// colors, generalized from loader/obj's Decoder (same line-oriented
// v/vn/vt/f/usemtl/mtllib grammar and relative-index handling) onto a
// GL-free shape the software-rasterizing CLI entry points can consume
// without constructing a graphic.Mesh/material.Material (spec 6's
// "File formats consumed: OBJ + MTL").
package objmesh

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gre-42/mlib/errs"
	"github.com/gre-42/mlib/geometry"
	"github.com/gre-42/mlib/math32"
)

// Mesh is a flattened, triangulated OBJ: one geometry.Triangle and one
// flat diffuse color per face (the 4th+ vertex of an n-gon face is
// fan-triangulated around vertex 0, matching loader/obj's "faces with
// 3 or 4 vertices").
type Mesh struct {
	Triangles []geometry.Triangle
	Colors    []math32.Vector3 // parallel to Triangles
}

type material struct {
	diffuse math32.Vector3
}

// Decode parses an OBJ file at objPath and, if it references an
// mtllib, the sibling MTL file, returning the triangulated mesh.
func Decode(objPath string) (*Mesh, error) {

	f, err := os.Open(objPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dir := filepath.Dir(objPath)
	return decode(f, objPath, dir)
}

func decode(r io.Reader, source, dir string) (*Mesh, error) {

	var vertices []math32.Vector3
	materials := map[string]*material{}
	current := &material{diffuse: math32.Vector3{X: 1, Y: 1, Z: 1}}

	mesh := &Mesh{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		tag := fields[0]
		rest := fields[1:]

		switch tag {
		case "v":
			if len(rest) < 3 {
				return nil, &errs.ParseError{Source: source, Line: lineNo, Msg: "vertex line needs 3 coordinates"}
			}
			v, err := parseVec3(rest)
			if err != nil {
				return nil, &errs.ParseError{Source: source, Line: lineNo, Msg: err.Error()}
			}
			vertices = append(vertices, v)

		case "mtllib":
			if len(rest) < 1 {
				continue
			}
			mats, err := decodeMTL(filepath.Join(dir, rest[0]))
			if err != nil {
				return nil, err
			}
			materials = mats

		case "usemtl":
			if len(rest) < 1 {
				continue
			}
			if m, ok := materials[rest[0]]; ok {
				current = m
			}

		case "f":
			if len(rest) < 3 {
				return nil, &errs.ParseError{Source: source, Line: lineNo, Msg: "face line needs at least 3 vertices"}
			}
			idx := make([]int, len(rest))
			for i, fv := range rest {
				vi, err := faceVertexIndex(fv, len(vertices))
				if err != nil {
					return nil, &errs.ParseError{Source: source, Line: lineNo, Msg: err.Error()}
				}
				idx[i] = vi
			}
			// fan-triangulate
			for i := 1; i+1 < len(idx); i++ {
				tri := geometry.Triangle{A: vertices[idx[0]], B: vertices[idx[i]], C: vertices[idx[i+1]]}
				mesh.Triangles = append(mesh.Triangles, tri)
				mesh.Colors = append(mesh.Colors, current.diffuse)
			}

		default:
			// v-normal, v-texcoord, object/group/smoothing: ignored per
			// spec 6 ("object/group/smoothing ignored").
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return mesh, nil
}

func decodeMTL(path string) (map[string]*material, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	materials := map[string]*material{}
	var current *material

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		tag := fields[0]
		rest := fields[1:]

		switch tag {
		case "newmtl":
			if len(rest) < 1 {
				return nil, &errs.ParseError{Source: path, Line: lineNo, Msg: "newmtl with no name"}
			}
			current = &material{diffuse: math32.Vector3{X: 1, Y: 1, Z: 1}}
			materials[rest[0]] = current
		case "Kd":
			if current == nil {
				return nil, &errs.ParseError{Source: path, Line: lineNo, Msg: "Kd before newmtl"}
			}
			v, err := parseVec3(rest)
			if err != nil {
				return nil, &errs.ParseError{Source: path, Line: lineNo, Msg: err.Error()}
			}
			current.diffuse = v
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return materials, nil
}

func parseVec3(fields []string) (math32.Vector3, error) {
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return math32.Vector3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return math32.Vector3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return math32.Vector3{}, err
	}
	return math32.Vector3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

func faceVertexIndex(field string, numVertices int) (int, error) {

	parts := strings.Split(field, "/")
	val, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	if val > 0 {
		return val - 1, nil
	}
	if val < 0 {
		return numVertices + val, nil
	}
	return 0, &errs.ParseError{Msg: "face vertex index must not be 0"}
}

// Encode writes mesh back out as a material-free OBJ file: every
// triangle's 3 vertices are emitted as "v" lines, followed by one
// "f" line per triangle indexing them positionally. Colors are not
// written.
func Encode(w io.Writer, mesh *Mesh) error {

	bw := bufio.NewWriter(w)
	for _, tri := range mesh.Triangles {
		for _, v := range []math32.Vector3{tri.A, tri.B, tri.C} {
			if _, err := bw.WriteString("v " + formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z) + "\n"); err != nil {
				return err
			}
		}
	}
	for i := range mesh.Triangles {
		base := i*3 + 1
		if _, err := bw.WriteString("f " + strconv.Itoa(base) + " " + strconv.Itoa(base+1) + " " + strconv.Itoa(base+2) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
