package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/vacuumsim/internal/dynamo"
)

const (
	historyCapacity = 120
	delayStep       = 10 * time.Millisecond
	minDelay        = 10 * time.Millisecond
)

// Options configures the interactive shell.
type Options struct {
	Engine     *dynamo.Engine
	Initial    *dynamo.State
	DtBase     float64
	Multiplier int64
	TickDelay  time.Duration
	// GravitySeed seeds the source used to sample the gravitational
	// potential for display, separate from the engine's.
	GravitySeed int64
	Theme       string
}

type tickMsg time.Time

type model struct {
	eng     *dynamo.Engine
	initial *dynamo.State
	st      *dynamo.State

	dtBase float64
	mult   int64
	delay  time.Duration
	paused bool

	started time.Time
	now     time.Time

	gravSrc dynamo.Source
	gravity float64

	popHistory  []float64
	tempHistory []float64

	err    error
	pal    palette
	width  int
	height int
}

func New(opts Options) *model {
	delay := opts.TickDelay
	if delay < minDelay {
		delay = minDelay
	}
	dt := opts.DtBase
	if dt <= 0 {
		dt = opts.Engine.Config().DtBase
	}
	st := opts.Initial
	if st == nil {
		st = opts.Engine.Reset(dynamo.ModeDefault)
	}
	now := time.Now()
	return &model{
		eng:         opts.Engine,
		initial:     st,
		st:          st,
		dtBase:      dt,
		mult:        opts.Engine.ClampMultiplier(opts.Multiplier),
		delay:       delay,
		started:     now,
		now:         now,
		gravSrc:     dynamo.NewRand(opts.GravitySeed),
		popHistory:  make([]float64, 0, historyCapacity),
		tempHistory: make([]float64, 0, historyCapacity),
		pal:         newPalette(GetTheme(opts.Theme)),
		width:       100,
		height:      40,
	}
}

func (m model) Init() tea.Cmd { return tick(m.delay) }

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		if !m.paused && m.err == nil {
			m.step()
		}
		return m, tick(m.delay)
	}
	return m, nil
}

// step applies exactly one engine tick and refreshes the sampled display
// values.
func (m *model) step() {
	next, err := m.eng.Step(m.st, m.dtBase, m.mult)
	if err != nil {
		m.err = err
		return
	}
	m.st = next
	m.gravity = dynamo.GravitationalPotential(next, m.eng.Registry(), m.gravSrc)
	m.popHistory = push(m.popHistory, float64(next.Population()))
	m.tempHistory = push(m.tempHistory, next.Temperature())
}

func push(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "m":
		m.reset(m.eng.ToggleMode(m.st))
	case "r":
		m.reset(m.eng.Reset(m.st.Mode()))
	case "+", "=":
		m.mult = m.eng.ClampMultiplier(m.mult * 10)
	case "-", "_":
		m.mult = m.eng.ClampMultiplier(m.mult / 10)
	case "up":
		m.st = m.eng.ResizeVolume(m.st, 1)
	case "down":
		m.st = m.eng.ResizeVolume(m.st, -1)
	case "left":
		m.delay += delayStep
	case "right":
		if m.delay-delayStep >= minDelay {
			m.delay -= delayStep
		}
	case " ", "p":
		m.paused = !m.paused
	}
	return m, nil
}

func (m *model) reset(s *dynamo.State) {
	m.st = s
	m.err = nil
	m.gravity = 0
	m.started = m.now
	m.popHistory = m.popHistory[:0]
	m.tempHistory = m.tempHistory[:0]
}

// Run starts the shell on the alternate screen and blocks until quit.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
