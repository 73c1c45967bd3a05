package renderer

import "github.com/gre-42/mlib/gls"

// RenderProgramIdentifier is the full feature-set key spec 4.F's
// shader-program cache is keyed by: everything a generated shader's
// text depends on, so two draw calls needing the identical program
// hit the same compiled *gls.Program instead of recompiling. A plain
// comparable struct (no slices) so it can be used directly as a map
// key, unlike Shaman's own linear scan over ShaderSpecs.Compare.
type RenderProgramIdentifier struct {
	OccluderType         int
	LightCount           int
	BlendMode            int
	NumColorTextures     int
	NumNormalTextures    int
	HasLightmapColor     bool
	HasLightmapDepth     bool
	HasDirtmap           bool
	HasInstances         bool
	HasLookAt            bool
	ReorientNormals      bool
	CalculateLightmap    bool
	AmbientBin           int
	DiffuseBin           int
	SpecularBin          int
	Orthographic         bool
	DirtmapOffset        int
	DirtmapDiscreteness  int
}

// ProgramCache maps a RenderProgramIdentifier to its compiled program,
// generating and compiling through sm on a miss (spec 4.F: "On miss,
// the shader text is generated from the key and compiled").
type ProgramCache struct {
	sm       *Shaman
	programs map[RenderProgramIdentifier]*gls.Program
}

// NewProgramCache creates a cache backed by sm, which must already
// have had AddDefaultShaders (or equivalent AddChunk/AddShader/
// AddProgram calls) run so GenProgram can resolve identifier.OccluderType
// program names.
func NewProgramCache(sm *Shaman) *ProgramCache {
	return &ProgramCache{sm: sm, programs: make(map[RenderProgramIdentifier]*gls.Program)}
}

// occluderProgramNames maps an identifier's occluder type to the underlying
// Shaman program name; callers registering custom occluder types
// should keep this table in sync with their Shaman.AddProgram calls.
var occluderProgramNames = map[int]string{
	0: "standard",
	1: "phong",
	2: "basic",
}

// Get returns the compiled program for identifier, compiling it via
// Shaman on first use and caching it for subsequent calls.
func (c *ProgramCache) Get(identifier RenderProgramIdentifier) (*gls.Program, error) {

	if prog, ok := c.programs[identifier]; ok {
		return prog, nil
	}

	specs := identifierToSpecs(identifier)
	prog, err := c.sm.GenProgram(&specs)
	if err != nil {
		return nil, err
	}
	c.programs[identifier] = prog
	return prog, nil
}

// Len returns the number of distinct programs compiled so far.
func (c *ProgramCache) Len() int {
	return len(c.programs)
}

func identifierToSpecs(id RenderProgramIdentifier) ShaderSpecs {

	name, ok := occluderProgramNames[id.OccluderType]
	if !ok {
		name = "standard"
	}
	return ShaderSpecs{
		Name:             name,
		MatTexturesMax:   id.NumColorTextures,
		DirLightsMax:     id.LightCount,
		AmbientLightsMax: id.AmbientBin,
		PointLightsMax:   id.DiffuseBin,
		SpotLightsMax:    id.SpecularBin,
	}
}
