package app

import (
	"context"
	"time"

	"life3d/internal/config"
	"life3d/internal/core"
	"life3d/internal/ui"
	pcore "life3d/pkg/core"
	"life3d/pkg/sims/life"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Simulation owns the field and decides when it advances. It is driven from
// a single loop; nothing in it is safe for concurrent use.
type Simulation struct {
	field   *life.Field
	pattern string
	opts    life.PatternOptions
	seed    int64
	workers int

	policy  AdvancePolicy
	timer   *core.FixedStep
	running bool

	lastStep time.Duration
	log      logrus.FieldLogger
}

// NewSimulation builds and seeds the field described by cfg.
func NewSimulation(cfg config.Config, log logrus.FieldLogger) (*Simulation, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Simulation{
		field:   life.New(cfg.Width, cfg.Height, life.Dead),
		pattern: cfg.Pattern,
		opts:    cfg.PatternOptions(),
		seed:    cfg.Seed,
		workers: cfg.Workers,
		policy:  PolicyFor(cfg.RapidAdvance),
		timer:   core.NewFixedStep(cfg.RunTPS),
		log:     log,
	}
	if err := s.Reseed(cfg.Seed); err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] failed to seed field")
	}
	s.log.WithFields(logrus.Fields{
		"width":   s.field.Width(),
		"height":  s.field.Height(),
		"pattern": s.pattern,
		"workers": s.workers,
		"policy":  s.policy.String(),
	}).Info("simulation ready")
	return s, nil
}

// Field returns the simulated field.
func (s *Simulation) Field() *life.Field { return s.field }

// Policy returns the advance key policy.
func (s *Simulation) Policy() AdvancePolicy { return s.policy }

// Running reports whether auto-run is on.
func (s *Simulation) Running() bool { return s.running }

// SetRunning switches auto-run on or off.
func (s *Simulation) SetRunning(on bool) {
	if s.running == on {
		return
	}
	s.running = on
	s.log.WithField("running", on).Debug("auto-run toggled")
}

// ToggleRunning flips auto-run.
func (s *Simulation) ToggleRunning() { s.SetRunning(!s.running) }

// LastStep is the wall time the most recent generation took.
func (s *Simulation) LastStep() time.Duration { return s.lastStep }

// Advance computes one generation, in parallel when workers > 1.
func (s *Simulation) Advance(ctx context.Context) error {
	start := time.Now()
	if s.workers > 1 {
		if err := s.field.AdvanceParallel(ctx, s.workers); err != nil {
			return errors.Wrap(err, "[Advance] parallel step aborted")
		}
	} else {
		s.field.Advance()
	}
	s.lastStep = time.Since(start)
	s.log.WithFields(logrus.Fields{
		"generation": s.field.Generation(),
		"population": s.field.Population(),
	}).Trace("advanced")
	return nil
}

// Tick is called once per frame with the advance key state. At most one
// generation is computed per call; auto-run is paced at run_tps, which the
// frame rate caps.
func (s *Simulation) Tick(ctx context.Context, held, justPressed bool) (bool, error) {
	due := s.policy.ShouldAdvance(held, justPressed)
	if s.running && s.timer.ShouldStep() {
		due = true
	}
	if !due {
		return false, nil
	}
	return true, s.Advance(ctx)
}

// Reseed clears the field and reapplies the configured pattern with seed.
func (s *Simulation) Reseed(seed int64) error {
	s.seed = seed
	if err := life.Seed(s.field, s.pattern, pcore.NewRNG(seed), s.opts); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"pattern":    s.pattern,
		"seed":       seed,
		"population": s.field.Population(),
	}).Debug("field seeded")
	return nil
}

// Clear kills every cell and stops auto-run.
func (s *Simulation) Clear() {
	s.field.Reset(life.Dead)
	s.SetRunning(false)
}

// Status summarises the simulation for display.
func (s *Simulation) Status() core.ParameterGroup {
	g := ui.FieldStatus(s.field, s.running)
	g.Params = append(g.Params,
		core.StringParam("policy", "Trigger", s.policy.String()),
		core.StringParam("step_time", "Step time", s.lastStep.Round(time.Microsecond).String()),
	)
	return g
}
