package geometry

// BodyMeshPair identifies an ordered (body, mesh) combination used as
// a key into the SAT separating-axis cache: two convex hulls being
// tested against one another, each identified by its owning body and
// the specific mesh within that body (a body may carry more than one
// collision mesh).
type BodyMeshPair struct {
	Body0, Mesh0 uint32
	Body1, Mesh1 uint32
}

// satEntry is the last known separating axis found for a pair, stored
// as an index into the candidate axes (the entry does not record
// whether that axis was a face or an edge-edge axis), so the next
// query within the same physics step tries the previous winner first
// before falling back to a full scan of all candidate axes.
type satEntry struct {
	axisIndex int
	found     bool
}

// SATTracker memoizes the last separating axis found for each ordered
// hull pair, cleared once per physics step so a stale axis from two
// steps ago is never reused. Pairs whose bounding spheres no longer
// overlap are dropped lazily the next time Clear runs.
type SATTracker struct {
	entries map[BodyMeshPair]satEntry
}

// NewSATTracker creates an empty tracker.
func NewSATTracker() *SATTracker {
	return &SATTracker{entries: make(map[BodyMeshPair]satEntry)}
}

// LastAxis returns the previously successful separating axis index
// for pair, if any.
func (t *SATTracker) LastAxis(pair BodyMeshPair) (int, bool) {

	e, ok := t.entries[pair]
	if !ok || !e.found {
		return 0, false
	}
	return e.axisIndex, true
}

// Remember stores the separating axis index that disproved overlap
// for pair, to be tried first on the next frame.
func (t *SATTracker) Remember(pair BodyMeshPair, axisIndex int) {

	t.entries[pair] = satEntry{axisIndex: axisIndex, found: true}
}

// Forget discards any memoized axis for pair, e.g. after the pair's
// bounding spheres stop overlapping.
func (t *SATTracker) Forget(pair BodyMeshPair) {
	delete(t.entries, pair)
}

// Clear drops every memoized axis, called once between physics steps
// so pairs are never matched against a two-steps-stale axis.
func (t *SATTracker) Clear() {
	t.entries = make(map[BodyMeshPair]satEntry)
}
