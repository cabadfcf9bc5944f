package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/shiftzeros/internal/algo"
	"github.com/san-kum/shiftzeros/internal/autoplay"
	"github.com/san-kum/shiftzeros/internal/codeview"
)

// Options configures a Model.
type Options struct {
	Automated bool
	Theme     string
	CodeStyle string
	// Period overrides autoplay.DefaultPeriod. Zero keeps the default.
	Period    time.Duration
	Tokenizer codeview.Tokenizer
	Logger    *zap.Logger
}

type tickMsg struct {
	ticker *autoplay.Ticker
}

// waitForTick blocks on one tick of t. A stopped ticker yields no message.
func waitForTick(t *autoplay.Ticker) tea.Cmd {
	if t == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-t.C(); !ok {
			return nil
		}
		return tickMsg{ticker: t}
	}
}

// Model is the Bubble Tea model of the widget.
type Model struct {
	ctx     context.Context
	machine *algo.Machine
	code    *codeview.Renderer
	keys    keyMap
	help    help.Model
	theme   Theme
	styles  styles
	log     *zap.Logger

	automated bool
	ticker    *autoplay.Ticker
	period    time.Duration

	width int
}

// New returns a model over machine. When opts.Automated is set the ticker
// starts immediately and Close must be called to release it.
func New(ctx context.Context, machine *algo.Machine, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Period <= 0 {
		opts.Period = autoplay.DefaultPeriod
	}
	if opts.Tokenizer == nil {
		opts.Tokenizer = codeview.ChromaTokenizer{}
	}
	if opts.CodeStyle == "" {
		opts.CodeStyle = codeview.DefaultStyle
	}

	m := Model{
		ctx:     ctx,
		machine: machine,
		code:    codeview.NewRenderer(opts.Tokenizer, opts.CodeStyle),
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     opts.Logger,
		period:  opts.Period,
		width:   80,
	}
	m.applyTheme(GetTheme(opts.Theme))
	if opts.Automated {
		m.startTicker()
	}
	m.syncKeys()
	return m
}

func (m Model) Init() tea.Cmd {
	return waitForTick(m.ticker)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.automated || msg.ticker != m.ticker {
			return m, nil
		}
		m.advance()
		return m, waitForTick(m.ticker)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.stopTicker()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.automated {
				m.stopTicker()
				m.log.Info("automation off")
			} else {
				m.startTicker()
				m.log.Info("automation on", zap.Duration("period", m.period))
			}
			m.syncKeys()
			return m, waitForTick(m.ticker)

		case key.Matches(msg, m.keys.Step):
			if !m.automated && !m.machine.Done() {
				m.advance()
			}

		case key.Matches(msg, m.keys.Reset):
			if !m.automated {
				m.machine.Reset()
				m.syncKeys()
			}

		case key.Matches(msg, m.keys.Theme):
			m.applyTheme(NextTheme(m.theme.Name))

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// Close releases the ticker if automation is running.
func (m Model) Close() {
	m.ticker.Stop()
}

// Automated reports whether the ticker drives the machine.
func (m Model) Automated() bool { return m.automated }

func (m *Model) advance() {
	if _, err := m.machine.Advance(); err != nil && !errors.Is(err, algo.ErrUnhandledEvent) {
		m.log.Warn("advance failed", zap.Error(err))
	}
	m.syncKeys()
}

func (m *Model) startTicker() {
	m.ticker.Stop()
	m.ticker = autoplay.Start(m.ctx, m.period)
	m.automated = true
}

func (m *Model) stopTicker() {
	m.ticker.Stop()
	m.ticker = nil
	m.automated = false
}

func (m *Model) applyTheme(th Theme) {
	m.theme = th
	m.styles = newStyles(th)
	m.code.Emphasis = th.Emphasis
	m.code.Gutter = th.Muted
	m.help.Styles.ShortKey = m.styles.keyHint
	m.help.Styles.FullKey = m.styles.keyHint
	m.help.Styles.ShortDesc = m.styles.keyLabel
	m.help.Styles.FullDesc = m.styles.keyLabel
}

// syncKeys enables the manual controls only where they apply. Step is
// hidden once the run is done.
func (m *Model) syncKeys() {
	m.keys.Step.SetEnabled(!m.automated && !m.machine.Done())
	m.keys.Reset.SetEnabled(!m.automated)
}

// Run shows the widget until the user quits or ctx is canceled.
func Run(ctx context.Context, machine *algo.Machine, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, machine, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
	}
	m.Close()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
