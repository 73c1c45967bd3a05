// Package loop implements the fixed-step physics loop (spec 4.H):
// a dedicated thread oversampling the physics engine's collide/
// resolve/move cycle, pacing itself to a target dt with a set-fps
// helper generalized from util.FrameRater, and reporting residual
// pacing time through github.com/montanaflynn/stats so a long-running
// session can surface p50/p95 jitter instead of a single instantaneous
// number.
package loop

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/gre-42/mlib/physics"
	"github.com/gre-42/mlib/physics/engine"
	"github.com/gre-42/mlib/scene"
)

// Pacer paces a loop to a target duration per tick and reports how
// much time was left over (or overrun) after the tick's work
// completed -- the "set-fps helper that reports residual time" spec
// 4.H calls out. Ported from util.FrameRater's Start/Wait timer
// pattern, adding Pause/Resume so Focuses can freeze physics without
// stopping the goroutine (spec 4.I: "pushing MENU over SCENE freezes
// physics via pause-resume on the set-fps helper").
type Pacer struct {
	target time.Duration
	timer  *time.Timer

	mu        sync.Mutex
	paused    bool
	resumeGap time.Duration

	start time.Time
}

// NewPacer creates a pacer targeting one tick every dt.
func NewPacer(dt time.Duration) *Pacer {

	p := &Pacer{target: dt, timer: time.NewTimer(0)}
	<-p.timer.C
	return p
}

// Start marks the beginning of one tick's work.
func (p *Pacer) Start() {
	p.start = time.Now()
}

// Wait sleeps off the remainder of the tick's target duration and
// returns the residual: positive when the tick finished early
// (time spent sleeping), negative when the tick overran its budget.
// While paused, Wait blocks until Resume without advancing the clock
// used for residual accounting, so a paused interval contributes
// exactly zero elapsed game time (spec 8's countdown-focus property).
func (p *Pacer) Wait() time.Duration {

	waitStart := time.Now()
	wasPaused := false
	p.mu.Lock()
	for p.paused {
		wasPaused = true
		p.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		p.mu.Lock()
	}
	p.mu.Unlock()
	if wasPaused {
		p.start = p.start.Add(time.Since(waitStart))
	}

	elapsed := time.Since(p.start)
	residual := p.target - elapsed
	if residual > 0 {
		p.timer.Reset(residual)
		<-p.timer.C
	}
	return residual
}

// Pause freezes Wait until Resume is called.
func (p *Pacer) Pause() {
	p.mu.Lock()
	p.paused = true
	p.mu.Unlock()
}

// Resume un-freezes a paused pacer.
func (p *Pacer) Resume() {
	p.mu.Lock()
	p.paused = false
	p.mu.Unlock()
}

// ResidualTracker accumulates per-tick residual samples and reports
// percentile summaries via montanaflynn/stats on demand, rather than
// just the last sample, so pacing jitter across a long run is visible.
type ResidualTracker struct {
	mu      sync.Mutex
	samples []float64
	cap     int
}

// NewResidualTracker creates a tracker retaining at most capacity
// samples (oldest dropped first), capped so a long session doesn't
// grow this unbounded.
func NewResidualTracker(capacity int) *ResidualTracker {
	return &ResidualTracker{cap: capacity}
}

// Add records one tick's residual duration in milliseconds.
func (r *ResidualTracker) Add(residual time.Duration) {

	r.mu.Lock()
	defer r.mu.Unlock()

	r.samples = append(r.samples, float64(residual.Microseconds())/1000.0)
	if len(r.samples) > r.cap {
		r.samples = r.samples[len(r.samples)-r.cap:]
	}
}

// Percentiles returns the p50/p95/p99 residual in milliseconds over
// the retained window. ok is false until at least one sample exists.
func (r *ResidualTracker) Percentiles() (p50, p95, p99 float64, ok bool) {

	r.mu.Lock()
	data := append([]float64(nil), r.samples...)
	r.mu.Unlock()

	if len(data) == 0 {
		return 0, 0, 0, false
	}
	p50, _ = stats.Percentile(data, 50)
	p95, _ = stats.Percentile(data, 95)
	p99, _ = stats.Percentile(data, 99)
	return p50, p95, p99, true
}

// Config governs one loop run: the physics dt, oversampling count,
// the residual-time print threshold, and whether printing is enabled
// at all (spec 4.H step 4).
type Config struct {
	Dt              time.Duration
	Oversampling    int
	MaxResidualTime time.Duration
	PrintResiduals  bool
}

// BeaconCollector gathers the scene's collision beacon nodes on the
// final sub-step of an iteration -- the physics loop only needs the
// beacon set once per tick, not once per sub-step (spec 4.H step 1a).
type BeaconCollector func() []*scene.Node

// Loop drives one Engine/Scene pair through the fixed-step cycle spec
// 4.H describes until Stop is called.
type Loop struct {
	cfg     Config
	engine  *engine.Engine
	scene   *scene.Scene
	beacons BeaconCollector
	pacer   *Pacer
	resid   *ResidualTracker

	exit int32
	done chan struct{}
}

// New creates a loop over engine stepping scene, using collectBeacons
// to gather beacon nodes on the final sub-step of each iteration.
func New(cfg Config, eng *engine.Engine, sc *scene.Scene, collectBeacons BeaconCollector) *Loop {

	if cfg.Oversampling < 1 {
		cfg.Oversampling = 1
	}
	return &Loop{
		cfg:     cfg,
		engine:  eng,
		scene:   sc,
		beacons: collectBeacons,
		pacer:   NewPacer(cfg.Dt),
		resid:   NewResidualTracker(600),
		done:    make(chan struct{}),
	}
}

// Pacer exposes the loop's pacer so a Focuses stack can pause/resume
// physics (spec 4.I).
func (l *Loop) Pacer() *Pacer { return l.pacer }

// Residuals exposes the loop's residual-time tracker.
func (l *Loop) Residuals() *ResidualTracker { return l.resid }

// Run executes the loop synchronously until Stop is called; callers wanting a background loop should invoke this in their
// own goroutine. It returns once the last in-flight sub-step completes
// and any scheduled deletions have drained.
func (l *Loop) Run() {

	defer close(l.done)
	subDt := float32(l.cfg.Dt.Seconds()) / float32(l.cfg.Oversampling)

	for atomic.LoadInt32(&l.exit) == 0 {

		l.pacer.Start()

		var beacons []*scene.Node
		for i := 0; i < l.cfg.Oversampling; i++ {
			final := i == l.cfg.Oversampling-1
			if final && l.beacons != nil {
				beacons = l.beacons()
			}

			contacts := l.engine.Collide()
			if l.engine.Config.ResolveCollisionType == physics.SequentialPulses {
				l.engine.SolveContacts(contacts, subDt)
			}
			l.engine.MoveRigidBodies(subDt)
		}

		l.scene.Move(float32(l.cfg.Dt.Seconds()))
		_ = beacons // replace beacon* nodes from the collected list: caller-specific, wired by the scene owner

		l.engine.MoveAdvanceTimes(subDt)
		l.scene.DrainDeletions()

		residual := l.pacer.Wait()
		l.resid.Add(residual)
		if l.cfg.PrintResiduals && residual < -l.cfg.MaxResidualTime {
			fmt.Printf("physics loop overran budget by %s\n", -residual)
		}
	}
}

// Stop requests the loop exit after its current sub-step finishes,
// and blocks until Run has returned (spec 4.H: "cancellable by an
// atomic flag; shutdown waits for the last sub-step, then drains
// deletion queues").
func (l *Loop) Stop() {
	atomic.StoreInt32(&l.exit, 1)
	<-l.done
}
