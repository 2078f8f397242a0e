package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-runewidth"

	"github.com/san-kum/vacuumsim/internal/dynamo"
)

const (
	nameWidth  = 12
	kindWidth  = 8
	countWidth = 14
)

func (m model) View() string {
	var b strings.Builder

	title := m.pal.primary.Render("VACUUMSIM")
	status := m.pal.good.Render("running")
	if m.paused {
		status = m.pal.warn.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n  %s  %s  %s\n\n", title, m.pal.dim.Render(m.st.Mode().String()), status))

	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.speciesTable())
	b.WriteString("\n")
	b.WriteString(m.chart())

	if m.err != nil {
		b.WriteString("\n  " + m.pal.warn.Render("error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n  " + m.pal.dimmer.Render("m mode  r reset  +/- speed  ↑/↓ volume  ←/→ delay  space pause  q quit") + "\n")
	return b.String()
}

func (m model) header() string {
	s := m.st
	elapsed := m.now.Sub(m.started)
	rows := [][2]string{
		{"elapsed", elapsed.Truncate(time.Millisecond).String()},
		{"sim time", fmt.Sprintf("%.6g s", s.SimulatedTime())},
		{"multiplier", fmt.Sprintf("x%d", m.mult)},
		{"dt", fmt.Sprintf("%.3g s", m.dtBase*float64(m.mult))},
		{"population", fmt.Sprintf("%d", s.Population())},
		{"created", fmt.Sprintf("%d", s.TotalCreated())},
		{"decayed", fmt.Sprintf("%d natural  %d interaction", s.TotalDecayedNatural(), s.TotalDecayedInteraction())},
		{"appearance", fmt.Sprintf("%.4g s", dynamo.MeanAppearanceTime(s, elapsed))},
		{"volume", fmt.Sprintf("%.4g m³", s.Volume())},
		{"temperature", fmt.Sprintf("%.4g K", s.Temperature())},
		{"entropy", fmt.Sprintf("%.4g J/K", s.Entropy())},
		{"radiation", fmt.Sprintf("%.4g J/m³", dynamo.RadiationDensity(s))},
		{"gravity", fmt.Sprintf("%.4g J", m.gravity)},
		{"dark energy", fmt.Sprintf("%.4g J", dynamo.DarkEnergy(s.Volume()))},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString("  " + m.pal.label.Render(r[0]) + m.pal.text.Render(r[1]) + "\n")
	}
	return b.String()
}

// speciesTable lists every registered species with its current count.
// Stable species are dimmed.
func (m model) speciesTable() string {
	var b strings.Builder
	head := cell("species", nameWidth) + cell("kind", kindWidth) + cell("count", countWidth)
	b.WriteString("  " + m.pal.dim.Render(head) + "\n")
	b.WriteString("  " + m.pal.dimmer.Render(strings.Repeat("─", nameWidth+kindWidth+countWidth)) + "\n")

	reg := m.eng.Registry()
	for i := 0; i < reg.Len(); i++ {
		sp := reg.At(i)
		n := m.st.Count(sp.Name)
		row := cell(sp.Name, nameWidth) + cell(sp.Kind.String(), kindWidth) + cell(fmt.Sprintf("%d", n), countWidth)
		switch {
		case n > 0 && !sp.Stable():
			row = m.pal.accent.Render(row)
		case n > 0:
			row = m.pal.text.Render(row)
		default:
			row = m.pal.dimmer.Render(row)
		}
		b.WriteString("  " + row + "\n")
	}
	return b.String()
}

func cell(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w-1, "…"), w)
}

func (m model) chart() string {
	if len(m.popHistory) < 2 {
		return "  " + m.pal.dimmer.Render("collecting samples...") + "\n"
	}
	w := m.width - 12
	if w > historyCapacity {
		w = historyCapacity
	}
	if w < 20 {
		w = 20
	}
	graph := asciigraph.Plot(m.popHistory,
		asciigraph.Height(8),
		asciigraph.Width(w),
		asciigraph.Caption("population"),
	)
	var b strings.Builder
	for _, line := range strings.Split(graph, "\n") {
		b.WriteString("  " + m.pal.primary.UnsetBold().Render(line) + "\n")
	}
	b.WriteString("\n  " + m.pal.label.Render("temperature") + m.pal.warn.Render(sparkline(m.tempHistory, 40)) + "\n")
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	bars := []rune("▁▂▃▄▅▆▇█")
	span := hi - lo
	var b strings.Builder
	for _, v := range data {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(bars)-1))
		}
		b.WriteRune(bars[idx])
	}
	return b.String()
}
