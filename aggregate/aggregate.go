// Package aggregate implements the large/small aggregate and instance
// batching pools spec 4.G describes: long-lived pools rebuilt either
// once (or on camera drift) or on a periodic tick, merging scene
// contributions by material key into a single renderable swapped in
// atomically for the render thread to consume.
package aggregate

import (
	"sync"
	"time"

	"github.com/gre-42/mlib/math32"
)

// ColoredVertexArray is the flattened per-vertex data an aggregate
// instance renders: positions paired with vertex colors, the minimal
// shape spec 3's "Aggregate Queue Item: (sort_key, ColoredVertexArray)"
// needs without depending on the renderer package's GL buffer layout.
type ColoredVertexArray struct {
	Positions []math32.Vector3
	Colors    []math32.Vector3
}

// Append concatenates other's vertices onto c.
func (c *ColoredVertexArray) Append(other ColoredVertexArray) {
	c.Positions = append(c.Positions, other.Positions...)
	c.Colors = append(c.Colors, other.Colors...)
}

// Contributor is one scene renderable's contribution to an aggregate
// pool: its material key (the merge key) and its vertex data.
type Contributor interface {
	MaterialKey() string
	SortKey() float32
	VertexArray() ColoredVertexArray
}

// Instance is a RenderableColoredVertexArrayInstance: one merged
// aggregate batch for a single material key, with aggregate mode
// forced OFF on the merged result (spec 4.G).
type Instance struct {
	MaterialKey string
	Vertices    ColoredVertexArray
}

// Pool is one long-lived aggregate/instance pool (large or small),
// holding the currently published instance set behind a mutex so the
// render thread can query it without blocking a concurrent rebuild,
// per spec 5's "swaps the prepared instance atomically under a mutex".
type Pool struct {
	mu        sync.RWMutex
	current   map[string]*Instance
	inFlight  bool
	everBuilt bool
	sortByZ   bool
}

// NewPool creates an empty pool. sortByZ enables the small
// continuous pool's "sorts by view-z for the continuous pool"
// behavior; the large pool passes false.
func NewPool(sortByZ bool) *Pool {
	return &Pool{current: make(map[string]*Instance), sortByZ: sortByZ}
}

// Current returns the pool's currently published instances.
func (p *Pool) Current() map[string]*Instance {

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Initialized reports whether the pool has ever been rebuilt.
func (p *Pool) Initialized() bool {

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.everBuilt
}

// rebuild merges contributions by material key into a fresh instance
// set, sorting each material's vertex-position-derived sort key (the
// contributor's SortKey) when sortByZ is set, and swaps it in.
func (p *Pool) rebuild(contributions []Contributor) {

	byKey := make(map[string][]Contributor)
	for _, c := range contributions {
		byKey[c.MaterialKey()] = append(byKey[c.MaterialKey()], c)
	}

	if p.sortByZ {
		for key := range byKey {
			list := byKey[key]
			sortContributorsByZ(list)
			byKey[key] = list
		}
	}

	merged := make(map[string]*Instance, len(byKey))
	for key, list := range byKey {
		inst := &Instance{MaterialKey: key}
		for _, c := range list {
			inst.Vertices.Append(c.VertexArray())
		}
		merged[key] = inst
	}

	p.mu.Lock()
	p.current = merged
	p.everBuilt = true
	p.mu.Unlock()
}

func sortContributorsByZ(list []Contributor) {
	// insertion sort: aggregate batches are small enough per material
	// that this avoids pulling in sort.Slice's reflection overhead.
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j].SortKey() > list[j-1].SortKey(); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
}

// RebuildIfIdle runs rebuild synchronously if no rebuild is currently
// in flight, and reports whether it ran. Callers that want a
// background rebuild should invoke this from their own goroutine; the
// flag prevents two concurrent rebuilds from racing on the same pool.
func (p *Pool) RebuildIfIdle(contributions []Contributor) bool {

	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return false
	}
	p.inFlight = true
	p.mu.Unlock()

	p.rebuild(contributions)

	p.mu.Lock()
	p.inFlight = false
	p.mu.Unlock()
	return true
}

// QueryOrBlockingRebuild returns the pool's current instances; if the
// pool has never been built and the caller is a foreground render
// pass, it performs a blocking rebuild first instead of returning an
// empty set (spec 4.G: "if uninitialized and the caller is a
// foreground pass, it performs a blocking rebuild").
func (p *Pool) QueryOrBlockingRebuild(foreground bool, contributions func() []Contributor) map[string]*Instance {

	if foreground && !p.Initialized() {
		p.rebuild(contributions())
	}
	return p.Current()
}

// LargeAggregate rebuilds once per scene load or when the camera
// offset drifts beyond driftThreshold from the position it was last
// built at, running in a background goroutine if idle (spec 4.G).
type LargeAggregate struct {
	Pool          *Pool
	lastBuiltAt   math32.Vector3
	built         bool
	driftThreshold float32
}

// NewLargeAggregate creates a large aggregate pool with the given
// camera-drift rebuild threshold.
func NewLargeAggregate(driftThreshold float32) *LargeAggregate {
	return &LargeAggregate{Pool: NewPool(false), driftThreshold: driftThreshold}
}

// MaybeRebuild rebuilds in the background if this is the first call or
// cameraPos has drifted past the threshold since the last rebuild.
func (l *LargeAggregate) MaybeRebuild(cameraPos math32.Vector3, contributions func() []Contributor) {

	drifted := true
	if l.built {
		d := cameraPos
		d.Sub(&l.lastBuiltAt)
		drifted = d.Length() > l.driftThreshold
	}
	if !drifted {
		return
	}
	l.built = true
	l.lastBuiltAt = cameraPos
	go l.Pool.RebuildIfIdle(contributions())
}

// SmallAggregate rebuilds on a periodic tick in a background worker
// (spec 4.G's "small sorted aggregate ... rebuilt on a periodic tick").
type SmallAggregate struct {
	Pool     *Pool
	Interval time.Duration

	stop chan struct{}
}

// NewSmallAggregate creates a small, view-z-sorted continuous
// aggregate pool rebuilt every interval.
func NewSmallAggregate(interval time.Duration) *SmallAggregate {
	return &SmallAggregate{Pool: NewPool(true), Interval: interval, stop: make(chan struct{})}
}

// Start launches the periodic background rebuild loop; contributions
// is called fresh on every tick to pick up scene changes.
func (s *SmallAggregate) Start(contributions func() []Contributor) {

	ticker := time.NewTicker(s.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.Pool.RebuildIfIdle(contributions())
			}
		}
	}()
}

// Shutdown stops the periodic rebuild loop.
func (s *SmallAggregate) Shutdown() {
	close(s.stop)
}
