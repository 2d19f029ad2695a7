package panels

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clonkbot/wallet-radar-70db61/internal/token"
	"github.com/clonkbot/wallet-radar-70db61/tui/styles"
)

var pulseRunes = []rune("▁▂▃▄▅▆▇█")

// MetricsPanel displays the selected token's market stats. A secondary
// "animated" value set jitters every couple of seconds on top of the
// token's static fields; it is cosmetic noise and never written back to
// the Token.
type MetricsPanel struct {
	tok      token.Token
	hasToken bool

	// jittered display values, reset to the static fields on token switch
	holders   int
	marketCap float64
	volume    float64
	liquidity float64

	pulse []int
	rng   *rand.Rand

	focused bool
	width   int
	height  int
}

// NewMetricsPanel creates a new token metrics panel.
func NewMetricsPanel() *MetricsPanel {
	return &MetricsPanel{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init initializes the panel.
func (p *MetricsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *MetricsPanel) Update(msg tea.Msg) (*MetricsPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *MetricsPanel) View() string {
	var content strings.Builder

	if !p.hasToken {
		content.WriteString(styles.MutedStyle.Render("Select a token"))
	} else {
		p.renderContent(&content)
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("TOKEN METRICS", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *MetricsPanel) renderContent(content *strings.Builder) {
	changeStyle := styles.PnLUpStyle
	sign := "+"
	if p.tok.PriceChange24h < 0 {
		changeStyle = styles.PnLDownStyle
		sign = ""
	}

	content.WriteString(fmt.Sprintf("%s %s  %s\n",
		styles.RowStyle.Bold(true).Render(p.tok.Symbol),
		styles.SecondaryStyle.Render(p.tok.Name),
		changeStyle.Render(fmt.Sprintf("%s%.1f%%", sign, p.tok.PriceChange24h)),
	))

	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("PRICE"),
		styles.ValueStyle.Bold(true).Render("$"+formatPrice(p.tok.Price)),
	))
	content.WriteString(fmt.Sprintf("%s %s\n\n",
		styles.LabelStyle.Render("CONTRACT"),
		styles.SecondaryStyle.Render(p.tok.Address),
	))

	rows := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"MARKET CAP", formatCompact(p.marketCap, "$"), styles.ValueStyle},
		{"HOLDERS", formatCompact(float64(p.holders), ""), lipgloss.NewStyle().Foreground(styles.AccentColor)},
		{"24H VOLUME", formatCompact(p.volume, "$"), styles.PnLUpStyle},
		{"LIQUIDITY", formatCompact(p.liquidity, "$"), styles.WarnStyle},
	}
	for _, row := range rows {
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render(fmt.Sprintf("%-11s", row.label)),
			row.style.Render(row.value),
		))
	}

	content.WriteString("\n")
	content.WriteString(styles.LabelStyle.Render("ACTIVITY"))
	content.WriteString(" ")
	content.WriteString(p.renderPulse())
	content.WriteString("\n")
	content.WriteString(styles.WarnStyle.Render("⚠ DYOR / Not Financial Advice"))
}

func (p *MetricsPanel) renderPulse() string {
	var out strings.Builder
	for i, level := range p.pulse {
		style := styles.PnLUpStyle
		switch {
		case i < 7:
			style = styles.PnLDownStyle
		case i < 14:
			style = styles.WarnStyle
		}
		out.WriteString(style.Render(string(pulseRunes[level])))
	}
	return out.String()
}

// SetFocus sets the focus state of the panel.
func (p *MetricsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *MetricsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetToken sets the displayed token and resets the jittered values to its
// static fields.
func (p *MetricsPanel) SetToken(tok token.Token) {
	p.tok = tok
	p.hasToken = true
	p.holders = tok.Holders
	p.marketCap = tok.MarketCap
	p.volume = tok.Volume24h
	p.liquidity = tok.Liquidity
	p.refreshPulse()
}

// Jitter advances the animated display values by one tick: holders wobble
// around the static count, cap and liquidity drift by up to ±0.05%, and
// volume accretes. The underlying Token is never touched.
func (p *MetricsPanel) Jitter() {
	if !p.hasToken {
		return
	}
	p.holders = p.tok.Holders + int(math.Floor((p.rng.Float64()-0.3)*10))
	p.marketCap += (p.rng.Float64() - 0.5) * p.tok.MarketCap * 0.001
	p.volume += p.rng.Float64() * p.tok.Volume24h * 0.0001
	p.liquidity += (p.rng.Float64() - 0.5) * p.tok.Liquidity * 0.001
	p.refreshPulse()
}

func (p *MetricsPanel) refreshPulse() {
	p.pulse = make([]int, 20)
	for i := range p.pulse {
		p.pulse[i] = 1 + p.rng.Intn(len(pulseRunes)-1)
	}
}

// Token returns the displayed token and whether one is set.
func (p *MetricsPanel) Token() (token.Token, bool) {
	return p.tok, p.hasToken
}
