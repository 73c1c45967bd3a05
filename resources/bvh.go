package resources

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gre-42/mlib/errs"
	"github.com/gre-42/mlib/math32"
)

// bvhJoint is one node of the parsed HIERARCHY tree: its static offset
// from its parent and the ordered list of channels its MOTION block
// columns carry, matching original_source's ColumnDescription/offsets
// split (Load_Bvh.hpp).
type bvhJoint struct {
	name     string
	offset   math32.Vector3
	channels []string // e.g. "Xposition", "Yrotation", ...
}

// BVHResource holds a parsed BVH skeletal animation: per-joint static
// offsets and, per frame, each joint's local pose -- queried by name
// at a given frame (spec 4.J: "BVH loader resources provide skeletal
// poses by name at a query time").
type BVHResource struct {
	FrameTime float32
	joints    []bvhJoint
	byName    map[string]int
	frames    [][]float64 // frames[f][column] raw channel values
}

// LoadBVH parses a BVH file's HIERARCHY and MOTION blocks from r.
func LoadBVH(r io.Reader) (*BVHResource, error) {

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			t := strings.TrimSpace(sc.Text())
			if t == "" {
				continue
			}
			return t, true
		}
		return "", false
	}

	tok, ok := next()
	if !ok || tok != "HIERARCHY" {
		return nil, &errs.ParseError{Source: "bvh", Line: line, Msg: "expected HIERARCHY"}
	}

	bvh := &BVHResource{byName: make(map[string]int)}
	if err := parseBVHNode(next, bvh, "", &line); err != nil {
		return nil, err
	}

	tok, ok = next()
	if !ok || tok != "MOTION" {
		return nil, &errs.ParseError{Source: "bvh", Line: line, Msg: "expected MOTION"}
	}

	tok, ok = next()
	if !ok || !strings.HasPrefix(tok, "Frames:") {
		return nil, &errs.ParseError{Source: "bvh", Line: line, Msg: "expected Frames:"}
	}
	nFrames, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(tok, "Frames:")))
	if err != nil {
		return nil, &errs.ParseError{Source: "bvh", Line: line, Msg: "malformed Frames count: " + err.Error()}
	}

	tok, ok = next()
	if !ok || !strings.HasPrefix(tok, "Frame Time:") {
		return nil, &errs.ParseError{Source: "bvh", Line: line, Msg: "expected Frame Time:"}
	}
	ft, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(tok, "Frame Time:")), 32)
	if err != nil {
		return nil, &errs.ParseError{Source: "bvh", Line: line, Msg: "malformed Frame Time: " + err.Error()}
	}
	bvh.FrameTime = float32(ft)

	for i := 0; i < nFrames; i++ {
		tok, ok = next()
		if !ok {
			return nil, &errs.ParseError{Source: "bvh", Line: line, Msg: "truncated motion data"}
		}
		fields := strings.Fields(tok)
		values := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &errs.ParseError{Source: "bvh", Line: line, Msg: "malformed channel value: " + err.Error()}
			}
			values[j] = v
		}
		bvh.frames = append(bvh.frames, values)
	}

	return bvh, nil
}

// parseBVHNode consumes one top-level ROOT joint (BVH files have
// exactly one root) and recursively parses its nested JOINT children,
// flattening the whole hierarchy into bvh.joints in declaration order.
func parseBVHNode(next func() (string, bool), bvh *BVHResource, _ string, line *int) error {

	tok, ok := next()
	if !ok {
		return &errs.ParseError{Source: "bvh", Line: *line, Msg: "empty hierarchy"}
	}
	fields := strings.Fields(tok)
	if len(fields) < 2 || fields[0] != "ROOT" {
		return &errs.ParseError{Source: "bvh", Line: *line, Msg: "expected ROOT joint"}
	}
	return parseBVHJoint(next, fields[1], bvh, line)
}

// parseBVHJoint parses one ROOT/JOINT's body (OFFSET, CHANNELS, and
// any nested JOINT/End Site blocks), registering it and every joint
// nested inside it into bvh.joints before returning.
func parseBVHJoint(next func() (string, bool), name string, bvh *BVHResource, line *int) error {

	if brace, ok := next(); !ok || brace != "{" {
		return &errs.ParseError{Source: "bvh", Line: *line, Msg: "expected { after joint name"}
	}

	joint := bvhJoint{name: name}
	selfIndex := len(bvh.joints)
	bvh.byName[name] = selfIndex
	bvh.joints = append(bvh.joints, joint)

	for {
		tok, ok := next()
		if !ok {
			return &errs.ParseError{Source: "bvh", Line: *line, Msg: "unterminated joint body"}
		}
		fields := strings.Fields(tok)
		switch fields[0] {
		case "OFFSET":
			if len(fields) != 4 {
				return &errs.ParseError{Source: "bvh", Line: *line, Msg: "malformed OFFSET"}
			}
			x, err1 := strconv.ParseFloat(fields[1], 32)
			y, err2 := strconv.ParseFloat(fields[2], 32)
			z, err3 := strconv.ParseFloat(fields[3], 32)
			if err1 != nil || err2 != nil || err3 != nil {
				return &errs.ParseError{Source: "bvh", Line: *line, Msg: "malformed OFFSET values"}
			}
			bvh.joints[selfIndex].offset = math32.Vector3{X: float32(x), Y: float32(y), Z: float32(z)}
		case "CHANNELS":
			if len(fields) < 2 {
				return &errs.ParseError{Source: "bvh", Line: *line, Msg: "malformed CHANNELS"}
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || len(fields) != n+2 {
				return &errs.ParseError{Source: "bvh", Line: *line, Msg: "CHANNELS count mismatch"}
			}
			bvh.joints[selfIndex].channels = append(bvh.joints[selfIndex].channels, fields[2:]...)
		case "JOINT":
			if len(fields) < 2 {
				return &errs.ParseError{Source: "bvh", Line: *line, Msg: "missing joint name"}
			}
			if err := parseBVHJoint(next, fields[1], bvh, line); err != nil {
				return err
			}
		case "End":
			if brace, ok := next(); !ok || brace != "{" {
				return &errs.ParseError{Source: "bvh", Line: *line, Msg: "expected { after End Site"}
			}
			depth := 1
			for depth > 0 {
				t, ok := next()
				if !ok {
					return &errs.ParseError{Source: "bvh", Line: *line, Msg: "unterminated End Site"}
				}
				if t == "{" {
					depth++
				} else if t == "}" {
					depth--
				}
			}
		case "}":
			return nil
		default:
			return &errs.ParseError{Source: "bvh", Line: *line, Msg: fmt.Sprintf("unexpected token %q in joint body", fields[0])}
		}
	}
}

// Pose returns joint's local rigid transform at frame, built from the
// joint's static offset plus the frame's position/rotation channel
// values (degrees, always applied in X, Y, Z Tait-Bryan order; the
// order in which the file declared the rotation channels is not
// used). ok is false if joint or frame is out of range.
func (b *BVHResource) Pose(joint string, frame int) (math32.RigidTransform, bool) {

	idx, ok := b.byName[joint]
	if !ok || frame < 0 || frame >= len(b.frames) {
		return math32.RigidTransform{}, false
	}
	j := b.joints[idx]
	values := b.frames[frame]

	translation := j.offset
	var euler math32.Vector3
	order := math32.OrderXYZ
	col := columnOffset(b, idx)
	for _, ch := range j.channels {
		if col >= len(values) {
			break
		}
		v := float32(values[col])
		switch ch {
		case "Xposition":
			translation.X = v
		case "Yposition":
			translation.Y = v
		case "Zposition":
			translation.Z = v
		case "Xrotation":
			euler.X = v * (3.14159265 / 180)
		case "Yrotation":
			euler.Y = v * (3.14159265 / 180)
		case "Zrotation":
			euler.Z = v * (3.14159265 / 180)
		}
		col++
	}

	rot := math32.EulerToMatrix(&euler, order)
	t, err := math32.NewRigidTransformFrom(&rot, &translation)
	if err != nil {
		return math32.RigidTransform{}, false
	}
	return *t, true
}

func columnOffset(b *BVHResource, jointIdx int) int {
	col := 0
	for i := 0; i < jointIdx; i++ {
		col += len(b.joints[i].channels)
	}
	return col
}

// FrameCount returns the number of parsed motion frames.
func (b *BVHResource) FrameCount() int {
	return len(b.frames)
}

// JointNames returns every joint name the hierarchy declared, in
// declaration order.
func (b *BVHResource) JointNames() []string {
	names := make([]string, len(b.joints))
	for i, j := range b.joints {
		names[i] = j.name
	}
	return names
}
