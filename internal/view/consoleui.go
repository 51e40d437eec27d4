package view

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"life3d/internal/app"

	"github.com/jroimartin/gocui"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
}

// ConsoleUI is an interactive terminal viewer. Every field access happens
// on the gocui main loop, either in a key handler or through Gui.Update.
type ConsoleUI struct {
	sim      *app.Simulation
	g        *gocui.Gui
	k        []keyBinding
	printer  *ConsolePrinter
	interval time.Duration
	seed     int64

	ctx context.Context
	log logrus.FieldLogger
}

// NewConsoleUI creates the gui and binds keys. interval paces auto-run.
func NewConsoleUI(sim *app.Simulation, interval time.Duration, seed int64, log logrus.FieldLogger) (*ConsoleUI, error) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	t := &ConsoleUI{
		sim:      sim,
		printer:  NewConsolePrinter(nil, true),
		interval: interval,
		seed:     seed,
		ctx:      context.Background(),
		log:      log,
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to open terminal")
	}
	t.g = g
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'n', "N", "Next step", t.cmdNext},
		{'r', "R", "Run/Stop", t.cmdRun},
		{'c', "C", "Clear", t.cmdClear},
		{'s', "S", "Reseed", t.cmdReseed},
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.k {
		h := kb.handler
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, errors.Wrapf(err, "[NewConsoleUI] failed to bind %s", kb.name)
		}
	}
	return t, nil
}

// Run blocks in the gui main loop until ^C or ctx is cancelled.
func (t *ConsoleUI) Run(ctx context.Context) error {
	defer t.g.Close()
	t.ctx = ctx

	done := make(chan struct{})
	defer close(done)
	go t.pump(ctx, done)

	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Run] gui main loop failed")
	}
	return nil
}

// pump posts auto-run steps onto the main loop.
func (t *ConsoleUI) pump(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case <-ticker.C:
			t.g.Update(func(g *gocui.Gui) error {
				if !t.sim.Running() {
					return nil
				}
				if err := t.sim.Advance(ctx); err != nil {
					t.log.WithError(err).Warn("advance failed")
					return nil
				}
				t.refresh(g)
				return nil
			})
		}
	}
}

func (t *ConsoleUI) refresh(g *gocui.Gui) {
	if v, err := g.View("field"); err == nil {
		v.Clear()
		maxW, maxH := v.Size()
		_, _ = fmt.Fprint(v, t.printer.Frame(t.sim.Field(), maxW, maxH))
	}
	if v, err := g.View("status"); err == nil {
		v.Clear()
		for _, p := range t.sim.Status().Params {
			_, _ = fmt.Fprintln(v, t.printer.Prop(p.Label, "%s", p.Value))
		}
	}
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView("field", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
	}
	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.helpLine())
	}
	t.refresh(g)
	return nil
}

func (t *ConsoleUI) helpLine() string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	names := make([]string, 0, len(t.k))
	for _, k := range t.k {
		names = append(names, t.printer.au.Green(k.name).String()+": "+k.descr)
	}
	b.WriteString(strings.Join(names, ", "))
	return b.String()
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNext(_ *gocui.View) error {
	if err := t.sim.Advance(t.ctx); err != nil {
		t.log.WithError(err).Warn("advance failed")
	}
	t.refresh(t.g)
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.sim.ToggleRunning()
	t.refresh(t.g)
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.sim.Clear()
	t.refresh(t.g)
	return nil
}

func (t *ConsoleUI) cmdReseed(_ *gocui.View) error {
	t.seed++
	if err := t.sim.Reseed(t.seed); err != nil {
		return err
	}
	t.refresh(t.g)
	return nil
}
