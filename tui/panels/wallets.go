package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clonkbot/wallet-radar-70db61/internal/wallet"
	"github.com/clonkbot/wallet-radar-70db61/tui/styles"
)

// WalletsPanel displays the tracked wallet set in insertion order, one card
// per wallet, with exactly one selected.
type WalletsPanel struct {
	wallets       []wallet.Wallet
	selectedIndex int
	now           time.Time
	focused       bool
	width         int
	height        int
}

// NewWalletsPanel creates a new wallets panel.
func NewWalletsPanel(wallets []wallet.Wallet) *WalletsPanel {
	return &WalletsPanel{
		wallets: wallets,
		now:     time.Now(),
	}
}

// Init initializes the panel.
func (p *WalletsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel. Moving the cursor moves the
// selection; the root model syncs it to the session.
func (p *WalletsPanel) Update(msg tea.Msg) (*WalletsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.wallets)-1 {
				p.selectedIndex++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *WalletsPanel) View() string {
	var content strings.Builder

	for i, w := range p.wallets {
		content.WriteString(p.renderCard(w, i == p.selectedIndex))
		if i < len(p.wallets)-1 {
			content.WriteString("\n")
		}
	}
	if len(p.wallets) == 0 {
		content.WriteString(styles.MutedStyle.Render("No wallets tracked"))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle(fmt.Sprintf("TRACKED WALLETS [%d]", len(p.wallets)), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *WalletsPanel) renderCard(w wallet.Wallet, selected bool) string {
	marker := "  "
	if selected {
		marker = styles.LiveStyle.Render("▌ ")
	}

	badge := styles.MutedStyle.Render("PAUSED")
	if w.IsTracking {
		badge = styles.LiveStyle.Render("TRACKING")
	}

	head := fmt.Sprintf("%s%s %s  %s",
		marker,
		styles.RowStyle.Bold(true).Render(w.Label),
		styles.SecondaryStyle.Render(w.Address),
		badge,
	)

	pnlStyle := styles.PnLUpStyle
	if w.TotalPnL < 0 {
		pnlStyle = styles.PnLDownStyle
	}
	winStyle := styles.PnLUpStyle
	if w.WinRate < 50 {
		winStyle = styles.PnLDownStyle
	}

	stats := fmt.Sprintf("  %s %s  %s %s  %s %s",
		styles.LabelStyle.Render("PnL"),
		pnlStyle.Render(formatPnL(w.TotalPnL)),
		styles.LabelStyle.Render("WIN"),
		winStyle.Render(fmt.Sprintf("%.1f%%", w.WinRate)),
		styles.LabelStyle.Render("TRADES"),
		styles.ValueStyle.Render(fmt.Sprintf("%d", w.TradeCount)),
	)

	foot := fmt.Sprintf("  %s %s",
		styles.MutedStyle.Render("last active "+timeAgo(w.LastActive, p.now)),
		p.renderActivity(w.TradeCount),
	)

	card := head + "\n" + stats + "\n" + foot
	if selected {
		return styles.SelectedRowStyle.Render(card)
	}
	return card
}

// renderActivity draws the 10-dot activity bar, one dot lit per 50 trades.
func (p *WalletsPanel) renderActivity(tradeCount int) string {
	lit := tradeCount / 50
	if lit > 10 {
		lit = 10
	}
	var bar strings.Builder
	for i := 0; i < 10; i++ {
		style := styles.MutedStyle
		if i < lit {
			switch {
			case i < 3:
				style = styles.PnLDownStyle
			case i < 7:
				style = styles.WarnStyle
			default:
				style = styles.PnLUpStyle
			}
		}
		bar.WriteString(style.Render("▪"))
	}
	return bar.String()
}

// SetFocus sets the focus state of the panel.
func (p *WalletsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *WalletsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetWallets replaces the wallet data, keeping the cursor in bounds.
func (p *WalletsPanel) SetWallets(wallets []wallet.Wallet) {
	p.wallets = wallets
	if p.selectedIndex >= len(wallets) {
		p.selectedIndex = len(wallets) - 1
		if p.selectedIndex < 0 {
			p.selectedIndex = 0
		}
	}
}

// SetNow updates the reference time used for "last active" rendering.
func (p *WalletsPanel) SetNow(now time.Time) {
	p.now = now
}

// SelectedAddress returns the address of the selected wallet ("" when the
// set is empty).
func (p *WalletsPanel) SelectedAddress() string {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.wallets) {
		return p.wallets[p.selectedIndex].Address
	}
	return ""
}
