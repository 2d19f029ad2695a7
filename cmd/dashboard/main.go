package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clonkbot/wallet-radar-70db61/internal/sim"
	"github.com/clonkbot/wallet-radar-70db61/tui"
)

func main() {
	cfg := sim.DefaultConfig()
	svc := sim.NewService(cfg)
	defer svc.Close()

	p := tea.NewProgram(tui.NewModel(svc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
