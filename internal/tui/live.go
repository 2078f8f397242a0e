package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/vacuumsim/internal/dynamo"
)

// LiveRenderer redraws a compact status block on w as a run progresses.
// It implements sim.Observer and skips frames closer together than the
// frame interval.
type LiveRenderer struct {
	w        io.Writer
	interval time.Duration
	pal      palette

	started time.Time
	last    time.Time
	history []float64
	lines   int
}

func NewLiveRenderer(w io.Writer, fps int, theme string) *LiveRenderer {
	if fps <= 0 {
		fps = 30
	}
	return &LiveRenderer{
		w:        w,
		interval: time.Second / time.Duration(fps),
		pal:      newPalette(GetTheme(theme)),
		history:  make([]float64, 0, historyCapacity),
	}
}

func (r *LiveRenderer) Start() {
	r.started = time.Now()
	fmt.Fprint(r.w, "\033[?25l")
}

func (r *LiveRenderer) Stop() {
	fmt.Fprint(r.w, "\033[?25h\n")
}

func (r *LiveRenderer) OnStep(s *dynamo.State) {
	r.history = push(r.history, float64(s.Population()))
	now := time.Now()
	if !r.last.IsZero() && now.Sub(r.last) < r.interval {
		return
	}
	r.last = now
	r.render(s, now.Sub(r.started))
}

// Flush draws the final state regardless of the frame interval.
func (r *LiveRenderer) Flush(s *dynamo.State) {
	r.render(s, time.Since(r.started))
}

func (r *LiveRenderer) render(s *dynamo.State, elapsed time.Duration) {
	var b strings.Builder
	if r.lines > 0 {
		fmt.Fprintf(&b, "\033[%dA", r.lines)
	}
	rows := []string{
		r.pal.primary.Render("VACUUMSIM") + "  " + r.pal.dim.Render(s.Mode().String()),
		r.pal.label.Render("tick") + r.pal.text.Render(fmt.Sprintf("%d", s.Ticks())),
		r.pal.label.Render("sim time") + r.pal.text.Render(fmt.Sprintf("%.6g s", s.SimulatedTime())),
		r.pal.label.Render("population") + r.pal.text.Render(fmt.Sprintf("%d (%d species)", s.Population(), s.ActiveSpecies())),
		r.pal.label.Render("temperature") + r.pal.text.Render(fmt.Sprintf("%.4g K", s.Temperature())),
		r.pal.label.Render("appearance") + r.pal.text.Render(fmt.Sprintf("%.4g s", dynamo.MeanAppearanceTime(s, elapsed))),
		r.pal.label.Render("trend") + r.pal.accent.Render(sparkline(r.history, 60)),
	}
	for _, row := range rows {
		b.WriteString("\033[2K" + row + "\n")
	}
	r.lines = len(rows)
	fmt.Fprint(r.w, b.String())
}
