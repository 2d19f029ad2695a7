package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clonkbot/wallet-radar-70db61/internal/token"
	"github.com/clonkbot/wallet-radar-70db61/tui/styles"
)

// ChartPanel renders the selected token's evolving price history as a
// terminal line chart. Without a selection it shows an empty placeholder.
// The visible series is rebuilt from the current history on every render;
// there is no incremental state to get out of sync.
type ChartPanel struct {
	tok      token.Token
	hasToken bool
	history  []float64

	focused bool
	width   int
	height  int
}

// NewChartPanel creates a new price chart panel.
func NewChartPanel() *ChartPanel {
	return &ChartPanel{}
}

// Init initializes the panel.
func (p *ChartPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ChartPanel) Update(msg tea.Msg) (*ChartPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *ChartPanel) View() string {
	var content strings.Builder

	titleText := "PRICE ACTION"
	if p.hasToken {
		titleText = "PRICE ACTION / " + p.tok.Symbol
	}

	if !p.hasToken {
		content.WriteString(styles.MutedStyle.Render("Select a token to view chart"))
	} else if len(p.history) == 0 {
		content.WriteString(styles.MutedStyle.Render("No price data yet..."))
	} else {
		content.WriteString(p.renderHeader())
		content.WriteString("\n")
		content.WriteString(p.renderChart())
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle(titleText, p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *ChartPanel) renderHeader() string {
	current := p.tok.Price
	if len(p.history) > 0 {
		current = p.history[len(p.history)-1]
	}

	change := changePercent(p.history)
	changeStyle := styles.PnLUpStyle
	sign := "+"
	if change < 0 {
		changeStyle = styles.PnLDownStyle
		sign = ""
	}

	return fmt.Sprintf("%s %s  %s",
		styles.LabelStyle.Render("CURRENT"),
		styles.RowStyle.Bold(true).Render("$"+formatPrice(current)),
		changeStyle.Render(fmt.Sprintf("%s%.2f%%", sign, change)),
	)
}

func (p *ChartPanel) renderChart() string {
	cols := p.width - 14 // room for borders and the price axis
	rows := p.height - 7
	if cols < 10 {
		cols = 10
	}
	if rows < 4 {
		rows = 4
	}

	series := resample(p.history, cols)

	// Pad the visible range slightly so the line never touches the frame.
	minPrice, maxPrice := series[0], series[0]
	for _, v := range series {
		if v < minPrice {
			minPrice = v
		}
		if v > maxPrice {
			maxPrice = v
		}
	}
	minPrice *= 0.995
	maxPrice *= 1.005
	if maxPrice == minPrice {
		maxPrice = minPrice + 1
	}

	lineStyle := styles.ChartUpStyle
	if series[len(series)-1] < series[0] {
		lineStyle = styles.ChartDownStyle
	}

	toRow := func(price float64) int {
		ratio := (maxPrice - price) / (maxPrice - minPrice)
		r := int(ratio * float64(rows-1))
		if r < 0 {
			r = 0
		}
		if r >= rows {
			r = rows - 1
		}
		return r
	}

	var out strings.Builder
	for row := 0; row < rows; row++ {
		axisPrice := maxPrice - float64(row)/float64(rows-1)*(maxPrice-minPrice)
		out.WriteString(styles.ChartAxisStyle.Render(fmt.Sprintf("%10s │", formatPrice(axisPrice))))

		prev := toRow(series[0])
		for col := 0; col < len(series); col++ {
			cur := toRow(series[col])
			lo, hi := cur, prev
			if lo > hi {
				lo, hi = hi, lo
			}
			if row >= lo && row <= hi {
				out.WriteString(lineStyle.Render("█"))
			} else {
				out.WriteString(" ")
			}
			prev = cur
		}
		out.WriteString("\n")
	}

	out.WriteString(styles.ChartAxisStyle.Render("───────────┴" + strings.Repeat("─", len(series))))
	return out.String()
}

// resample maps a series onto exactly cols points by nearest-index lookup.
func resample(series []float64, cols int) []float64 {
	if cols <= 0 || len(series) == 0 {
		return nil
	}
	if len(series) == 1 {
		out := make([]float64, cols)
		for i := range out {
			out[i] = series[0]
		}
		return out
	}
	out := make([]float64, cols)
	if cols == 1 {
		out[0] = series[len(series)-1]
		return out
	}
	for i := range out {
		out[i] = series[i*(len(series)-1)/(cols-1)]
	}
	return out
}

// SetFocus sets the focus state of the panel.
func (p *ChartPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *ChartPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetToken sets the charted token and its current history.
func (p *ChartPanel) SetToken(tok token.Token, history []float64) {
	p.tok = tok
	p.hasToken = true
	p.history = history
}

// SetHistory replaces the visible price series.
func (p *ChartPanel) SetHistory(history []float64) {
	p.history = history
}

// Token returns the charted token and whether one is set.
func (p *ChartPanel) Token() (token.Token, bool) {
	return p.tok, p.hasToken
}
