package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"life3d/internal/app"
	"life3d/internal/config"
	"life3d/internal/core"
	"life3d/internal/view"
	"life3d/pkg/sims/life"

	"github.com/integrii/flaggy"
	"github.com/sirupsen/logrus"
)

type envOptions struct {
	configPath  string
	interactive bool
	generations int
	interval    time.Duration
	frames      bool
	noColor     bool
}

func main() {
	log := logrus.New()
	eo, cfg := initOptions(log)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	cfg.ConfigureLogger(log)
	if eo.interactive {
		// the gui owns the terminal
		log.SetOutput(io.Discard)
	}

	sim, err := app.NewSimulation(cfg, log)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if eo.interactive {
		ui, err := view.NewConsoleUI(sim, eo.interval, cfg.Seed, log)
		if err != nil {
			log.Fatal(err)
		}
		if err := ui.Run(ctx); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := run(ctx, sim, eo, view.NewConsolePrinter(os.Stdout, !eo.noColor), log); err != nil {
		log.Fatal(err)
	}
}

// run advances the field eo.generations times, paced by eo.interval.
func run(ctx context.Context, sim *app.Simulation, eo envOptions, out *view.ConsolePrinter, log logrus.FieldLogger) error {
	var timer *core.FixedStep
	if eo.interval > 0 {
		timer = core.NewFixedInterval(eo.interval)
	}
	if eo.frames {
		if err := out.PrintFrame(sim.Field()); err != nil {
			return err
		}
	}

	start := time.Now()
	for i := 0; i < eo.generations; i++ {
		if timer != nil {
			for !timer.ShouldStep() {
				select {
				case <-ctx.Done():
					log.WithField("generation", sim.Field().Generation()).Info("interrupted")
					return nil
				case <-time.After(timer.Remaining()):
				}
			}
		}
		if ctx.Err() != nil {
			log.WithField("generation", sim.Field().Generation()).Info("interrupted")
			return nil
		}
		if err := sim.Advance(ctx); err != nil {
			return err
		}
		if eo.frames {
			if err := out.PrintFrame(sim.Field()); err != nil {
				return err
			}
		}
		if g := sim.Field().Generation(); g%10 == 0 {
			log.WithFields(logrus.Fields{
				"generation": g,
				"population": sim.Field().Population(),
			}).Info("iterations done")
		}
	}

	log.WithField("total_time", time.Since(start).Round(time.Millisecond)).Info("finished")
	return out.PrintStatus(sim.Status())
}

func initOptions(log *logrus.Logger) (envOptions, config.Config) {
	eo := envOptions{generations: 100}

	cfg := config.DefaultConfig()
	if path := config.PathFromArgs(os.Args[1:]); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	flaggy.SetName("lifecli")
	flaggy.SetDescription("Three-state Game of Life in the terminal. Settings after -- are key=value overrides, e.g. -- w=80 pattern=glider")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.configPath, "", "config", "JSON config file applied before the other flags")
	flaggy.Int(&cfg.Width, "x", "width", "Width of the field")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the field")
	flaggy.String(&cfg.Pattern, "p", "pattern", "Seed pattern")
	flaggy.Int(&cfg.OriginX, "", "origin-x", "Pattern x offset")
	flaggy.Int(&cfg.OriginY, "", "origin-y", "Pattern y offset")
	flaggy.Bool(&cfg.Center, "", "center", "Centre the pattern in the field")
	flaggy.Int64(&cfg.Seed, "", "seed", "Seed for the random pattern")
	flaggy.Float64(&cfg.Density, "", "density", "Alive probability for the random pattern")
	flaggy.Int(&cfg.Workers, "w", "workers", "Parallel row workers")
	flaggy.String(&cfg.LogLevel, "l", "log-level", "Log level")
	flaggy.Int(&eo.generations, "g", "generations", "Number of generations to run")
	flaggy.Duration(&eo.interval, "i", "interval", "Interval between the steps, for example 150ms (0 runs unpaced)")
	flaggy.Bool(&eo.frames, "f", "frames", "Print every frame")
	flaggy.Bool(&eo.noColor, "", "no-color", "Disable coloured output")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Parse()

	cfg, err := cfg.WithOverrides(flaggy.TrailingArguments)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if _, ok := life.LookupPattern(cfg.Pattern); !ok {
		flaggy.ShowHelpAndExit("unknown pattern " + cfg.Pattern)
	}
	return eo, cfg
}
