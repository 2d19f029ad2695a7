package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clonkbot/wallet-radar-70db61/internal/sim"
	"github.com/clonkbot/wallet-radar-70db61/tui/panels"
	"github.com/clonkbot/wallet-radar-70db61/tui/styles"
)

// FocusPanel identifies which panel currently has keyboard focus.
type FocusPanel int

const (
	FocusWallets FocusPanel = iota
	FocusTrades
	FocusChart
	FocusMetrics
)

const (
	clockInterval  = time.Second
	priceInterval  = time.Second
	jitterInterval = 2 * time.Second
	highlightTime  = time.Second

	blockBase = 284729834
)

type clockTickMsg time.Time

// priceTickMsg and jitterTickMsg carry a generation counter so ticks armed
// before a token switch are discarded instead of double-driving the loops.
type priceTickMsg struct{ gen int }

type jitterTickMsg struct{ gen int }

type highlightClearMsg struct{ id string }

type tradeMsg sim.TradeEvent

// Model is the root TUI model. It owns the four panels, the focus state,
// and the render-side timers; all simulation state lives in the service.
type Model struct {
	svc *sim.Service

	wallets *panels.WalletsPanel
	trades  *panels.TradesPanel
	chart   *panels.ChartPanel
	metrics *panels.MetricsPanel

	focus     FocusPanel
	now       time.Time
	priceGen  int
	jitterGen int
	width     int
	height    int
	ready     bool
}

// NewModel creates the root model wired to a running simulation service.
func NewModel(svc *sim.Service) *Model {
	m := &Model{
		svc:     svc,
		wallets: panels.NewWalletsPanel(svc.Wallets()),
		trades:  panels.NewTradesPanel(),
		chart:   panels.NewChartPanel(),
		metrics: panels.NewMetricsPanel(),
		focus:   FocusWallets,
		now:     time.Now(),
	}

	if addr := svc.SelectedToken(); addr != "" {
		if tok, ok := svc.Token(addr); ok {
			m.chart.SetToken(tok, svc.History(addr))
			m.metrics.SetToken(tok)
		}
	}

	m.wallets.SetFocus(true)
	return m
}

// Init starts the render-side timers and the trade event listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.listenTrades(),
		m.clockTick(),
		m.priceTick(m.priceGen),
		m.jitterTick(m.jitterGen),
	)
}

func (m *Model) listenTrades() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.svc.Events()
		if !ok {
			return nil
		}
		return tradeMsg(ev)
	}
}

func (m *Model) clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (m *Model) priceTick(gen int) tea.Cmd {
	return tea.Tick(priceInterval, func(time.Time) tea.Msg {
		return priceTickMsg{gen: gen}
	})
}

func (m *Model) jitterTick(gen int) tea.Cmd {
	return tea.Tick(jitterInterval, func(time.Time) tea.Msg {
		return jitterTickMsg{gen: gen}
	})
}

// Update handles messages for the root model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case clockTickMsg:
		m.now = time.Time(msg)
		m.wallets.SetNow(m.now)
		return m, m.clockTick()

	case priceTickMsg:
		if msg.gen != m.priceGen {
			return m, nil
		}
		if h := m.svc.TickPrice(); h != nil {
			m.chart.SetHistory(h)
		}
		return m, m.priceTick(m.priceGen)

	case jitterTickMsg:
		if msg.gen != m.jitterGen {
			return m, nil
		}
		m.metrics.Jitter()
		return m, m.jitterTick(m.jitterGen)

	case tradeMsg:
		m.trades.SetTrades(m.svc.Trades())
		m.wallets.SetWallets(m.svc.Wallets())
		m.trades.Highlight(msg.Trade.ID)
		id := msg.Trade.ID
		clear := tea.Tick(highlightTime, func(time.Time) tea.Msg {
			return highlightClearMsg{id: id}
		})
		return m, tea.Batch(clear, m.listenTrades())

	case highlightClearMsg:
		m.trades.ClearHighlight(msg.id)
		return m, nil

	case panels.TokenSelectedMsg:
		return m, m.selectToken(msg.Token.Address)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
		return m, tea.Quit

	case key.Matches(msg, key.NewBinding(key.WithKeys("tab"))):
		m.setFocus((m.focus + 1) % 4)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("shift+tab"))):
		m.setFocus((m.focus + 3) % 4)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("f1"))):
		m.setFocus(FocusWallets)
		return m, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("f2"))):
		m.setFocus(FocusTrades)
		return m, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("f3"))):
		m.setFocus(FocusChart)
		return m, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("f4"))):
		m.setFocus(FocusMetrics)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys(" "))):
		m.svc.ToggleLive()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusWallets:
		m.wallets, cmd = m.wallets.Update(msg)
		if addr := m.wallets.SelectedAddress(); addr != "" {
			m.svc.SelectWallet(addr)
		}
	case FocusTrades:
		m.trades, cmd = m.trades.Update(msg)
	case FocusChart:
		m.chart, cmd = m.chart.Update(msg)
	case FocusMetrics:
		m.metrics, cmd = m.metrics.Update(msg)
	}
	return m, cmd
}

// selectToken repoints the chart and metrics at a catalog token and bumps
// the tick generations so stale timers die off.
func (m *Model) selectToken(address string) tea.Cmd {
	if err := m.svc.SelectToken(address); err != nil {
		return nil
	}
	tok, ok := m.svc.Token(address)
	if !ok {
		return nil
	}
	m.chart.SetToken(tok, m.svc.History(address))
	m.metrics.SetToken(tok)

	m.priceGen++
	m.jitterGen++
	return tea.Batch(m.priceTick(m.priceGen), m.jitterTick(m.jitterGen))
}

func (m *Model) setFocus(focus FocusPanel) {
	m.focus = focus
	m.wallets.SetFocus(focus == FocusWallets)
	m.trades.SetFocus(focus == FocusTrades)
	m.chart.SetFocus(focus == FocusChart)
	m.metrics.SetFocus(focus == FocusMetrics)
}

func (m *Model) layout() {
	headerHeight := 1
	statusHeight := 1
	bodyHeight := m.height - headerHeight - statusHeight

	topHeight := bodyHeight * 3 / 5
	bottomHeight := bodyHeight - topHeight

	walletsWidth := m.width * 2 / 5
	metricsWidth := m.width / 4
	chartWidth := m.width - walletsWidth - metricsWidth

	m.wallets.SetSize(walletsWidth, topHeight)
	m.chart.SetSize(chartWidth, topHeight)
	m.metrics.SetSize(metricsWidth, topHeight)
	m.trades.SetSize(m.width, bottomHeight)
}

// View renders the full dashboard.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.wallets.View(),
		m.chart.View(),
		m.metrics.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		top,
		m.trades.View(),
		m.renderStatusBar(),
	)
}

// blockNumber derives a fake chain height from the wall clock so it climbs
// steadily between renders.
func blockNumber(now time.Time) int64 {
	return blockBase + (now.UnixMilli()/400)%1000
}

func (m *Model) renderHeader() string {
	logo := styles.LogoStyle.Render("WALLET") + styles.LogoAccentStyle.Render("RADAR")

	status := styles.PausedStyle.Render("◼ PAUSED")
	if m.svc.Live() {
		status = styles.LiveStyle.Render("● LIVE")
	}

	left := fmt.Sprintf("%s  %s %s  %s %s  %s %s",
		logo,
		styles.LabelStyle.Render("NETWORK"),
		styles.ValueStyle.Render("SOLANA"),
		styles.LabelStyle.Render("BLOCK"),
		styles.ValueStyle.Render(fmt.Sprintf("%d", blockNumber(m.now))),
		styles.LabelStyle.Render("GAS"),
		styles.ValueStyle.Render("0.000005 SOL"),
	)

	right := fmt.Sprintf("%s  %s",
		styles.TimeStyle.Render(m.now.UTC().Format("15:04:05 UTC")),
		status,
	)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderStatusBar() string {
	help := "tab: cycle panels  f1-f4: jump  ↑/↓: navigate  enter: select token  space: pause/resume  q: quit"
	return styles.StatusBarStyle.Width(m.width).Render(help)
}
