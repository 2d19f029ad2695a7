package styles

import "github.com/charmbracelet/lipgloss"

// Color palette (neon-on-dark, matching the dashboard theme)
var (
	// Primary colors
	UpColor     = lipgloss.Color("#00ff88") // Green
	DownColor   = lipgloss.Color("#ff3366") // Red
	CyanColor   = lipgloss.Color("#00d4ff")
	AccentColor = lipgloss.Color("#ff00aa") // Magenta
	WarnColor   = lipgloss.Color("#ffcc00") // Amber

	// Background / border colors
	BackgroundColor  = lipgloss.Color("#0a0a0f")
	BorderColor      = lipgloss.Color("#1a1a2e")
	FocusBorderColor = lipgloss.Color("#00ff88")

	// Text colors
	TextColor          = lipgloss.Color("#e0e0e0")
	TextSecondaryColor = lipgloss.Color("#6a6a8a")
	TextMutedColor     = lipgloss.Color("#3a3a5a")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(CyanColor).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextMutedColor)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#1a1a2e"))

	// Newest trade-feed row, for the second after insertion.
	HighlightedRowStyle = lipgloss.NewStyle().
				Foreground(UpColor).
				Background(lipgloss.Color("#0f2418"))
)

// Text styles
var (
	BuyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(UpColor)

	SellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DownColor)

	PnLUpStyle = lipgloss.NewStyle().
			Foreground(UpColor)

	PnLDownStyle = lipgloss.NewStyle().
			Foreground(DownColor)

	ValueStyle = lipgloss.NewStyle().
			Foreground(CyanColor)

	TimeStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	SecondaryStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	WarnStyle = lipgloss.NewStyle().
			Foreground(WarnColor)
)

// Header / status bar styles
var (
	LogoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	LogoAccentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(UpColor)

	LiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(UpColor)

	PausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DownColor)

	StatusBarStyle = lipgloss.NewStyle().
			Background(BorderColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(CyanColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// Chart styles
var (
	ChartUpStyle = lipgloss.NewStyle().
			Foreground(UpColor)

	ChartDownStyle = lipgloss.NewStyle().
			Foreground(DownColor)

	ChartAxisStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// RenderTitle renders a panel title bar.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}
