package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clonkbot/wallet-radar-70db61/internal/token"
	"github.com/clonkbot/wallet-radar-70db61/internal/trade"
	"github.com/clonkbot/wallet-radar-70db61/tui/styles"
)

// TokenSelectedMsg is sent when the user picks a trade's token for the
// chart and metrics views.
type TokenSelectedMsg struct {
	Token token.Token
}

// TradesPanel displays the live trade feed, newest first. The most
// recently inserted trade is highlighted for a second.
type TradesPanel struct {
	trades        []trade.Trade
	highlightedID string
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
}

// NewTradesPanel creates a new trade feed panel.
func NewTradesPanel() *TradesPanel {
	return &TradesPanel{}
}

// Init initializes the panel.
func (p *TradesPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *TradesPanel) Update(msg tea.Msg) (*TradesPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
				if p.selectedIndex < p.scrollOffset {
					p.scrollOffset = p.selectedIndex
				}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.trades)-1 {
				p.selectedIndex++
				visible := p.visibleRows()
				if p.selectedIndex >= p.scrollOffset+visible {
					p.scrollOffset = p.selectedIndex - visible + 1
				}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if p.selectedIndex >= 0 && p.selectedIndex < len(p.trades) {
				tok := p.trades[p.selectedIndex].Token
				return p, func() tea.Msg {
					return TokenSelectedMsg{Token: tok}
				}
			}
		}
	}
	return p, nil
}

func (p *TradesPanel) visibleRows() int {
	rows := p.height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the panel.
func (p *TradesPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-9s %-13s %-5s %-16s %10s %10s %10s",
		"TIME", "WALLET", "TYPE", "TOKEN", "AMOUNT", "VALUE", "PnL")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	if len(p.trades) == 0 {
		content.WriteString(styles.MutedStyle.Render("Waiting for trades..."))
	} else {
		visible := p.visibleRows()
		start := p.scrollOffset
		end := start + visible
		if end > len(p.trades) {
			end = len(p.trades)
		}

		for i := start; i < end; i++ {
			content.WriteString(p.renderRow(i))
			if i < end-1 {
				content.WriteString("\n")
			}
		}

		if len(p.trades) > visible {
			content.WriteString("\n")
			content.WriteString(styles.MutedStyle.Render(
				fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.trades))))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("LIVE TRADES", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *TradesPanel) renderRow(i int) string {
	tr := p.trades[i]

	sideStyle := styles.BuyStyle
	if tr.Side == trade.SideSell {
		sideStyle = styles.SellStyle
	}

	pnl := "—"
	pnlStyle := styles.MutedStyle
	if tr.HasPnL {
		pnl = formatPnL(tr.PnL)
		pnlStyle = styles.PnLUpStyle
		if tr.PnL < 0 {
			pnlStyle = styles.PnLDownStyle
		}
	}

	walletShort := tr.WalletAddress
	if len(walletShort) > 8 {
		walletShort = walletShort[:8] + "..."
	}

	line := fmt.Sprintf("%s %s %s %s %s %s %s",
		styles.TimeStyle.Render(tr.Timestamp.Format("15:04:05")),
		styles.SecondaryStyle.Render(fmt.Sprintf("%-13s", walletShort)),
		sideStyle.Render(fmt.Sprintf("%-5s", tr.Side)),
		styles.RowStyle.Render(fmt.Sprintf("%-16s", tr.Token.Symbol+" "+tr.Token.Name)),
		styles.RowStyle.Render(fmt.Sprintf("%10s", formatAmount(tr.Amount))),
		styles.ValueStyle.Render(fmt.Sprintf("%10s", formatUSD(tr.Value))),
		pnlStyle.Render(fmt.Sprintf("%10s", pnl)),
	)

	switch {
	case tr.ID == p.highlightedID:
		return styles.HighlightedRowStyle.Render(line)
	case i == p.selectedIndex && p.focused:
		return styles.SelectedRowStyle.Render(line)
	default:
		return line
	}
}

// SetFocus sets the focus state of the panel.
func (p *TradesPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *TradesPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetTrades replaces the feed data (newest first), keeping the cursor in
// bounds.
func (p *TradesPanel) SetTrades(trades []trade.Trade) {
	p.trades = trades
	if p.selectedIndex >= len(trades) {
		p.selectedIndex = len(trades) - 1
		if p.selectedIndex < 0 {
			p.selectedIndex = 0
		}
	}
}

// Highlight flags a trade id as just-inserted.
func (p *TradesPanel) Highlight(id string) {
	p.highlightedID = id
}

// ClearHighlight unflags a trade if it is still the highlighted one.
func (p *TradesPanel) ClearHighlight(id string) {
	if p.highlightedID == id {
		p.highlightedID = ""
	}
}
