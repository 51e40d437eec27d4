// Package view renders the field in a terminal, either as printed frames or
// as an interactive gocui screen.
package view

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"life3d/internal/core"
	"life3d/pkg/sims/life"

	"github.com/logrusorgru/aurora"
)

// ConsolePrinter writes frames of the field to a writer.
type ConsolePrinter struct {
	w  io.Writer
	au aurora.Aurora

	liveFiller string
	deadFiller string
}

// NewConsolePrinter returns a printer writing to w. With colors off the
// output is plain text.
func NewConsolePrinter(w io.Writer, colors bool) *ConsolePrinter {
	au := aurora.NewAurora(colors)
	return &ConsolePrinter{
		w:          w,
		au:         au,
		liveFiller: au.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
}

// Frame renders at most maxW x maxH cells, one row per line. Non-positive
// limits mean the whole field. When cropped in either direction, the last
// rendered line is replaced by a notice.
func (p *ConsolePrinter) Frame(f *life.Field, maxW, maxH int) string {
	w, h := f.Width(), f.Height()
	if maxW <= 0 {
		maxW = w
	}
	if maxH <= 0 {
		maxH = h
	}
	crop := w > maxW || h > maxH
	rows := min(h, maxH)

	var b bytes.Buffer
	for y := 0; y < rows; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == rows-1 {
			b.WriteString(p.au.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for x := 0; x < w && x < maxW; x++ {
			if f.Get(x, y) == life.Alive {
				b.WriteString(p.liveFiller)
			} else {
				b.WriteString(p.deadFiller)
			}
		}
	}
	return b.String()
}

// PrintFrame writes the whole field followed by a blank line.
func (p *ConsolePrinter) PrintFrame(f *life.Field) error {
	_, err := fmt.Fprintf(p.w, "%s\n\n", p.Frame(f, 0, 0))
	return err
}

// PrintStatus writes the group as sorted "Label: value" lines.
func (p *ConsolePrinter) PrintStatus(g core.ParameterGroup) error {
	if _, err := fmt.Fprintf(p.w, "%s:\n", g.Name); err != nil {
		return err
	}
	params := append([]core.Parameter(nil), g.Params...)
	sort.Slice(params, func(i, j int) bool { return params[i].Label < params[j].Label })
	for _, param := range params {
		if _, err := fmt.Fprintln(p.w, p.Prop(param.Label, "%s", param.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Prop formats a coloured property line.
func (p *ConsolePrinter) Prop(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf("  "+p.au.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}
