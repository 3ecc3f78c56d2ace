package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"scrollguard/internal/config"
	"scrollguard/internal/infra/logx"
	"scrollguard/internal/ui"
)

func main() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Println("config:", err)
		os.Exit(1)
	}

	// Enable debug logging when DEBUG environment variable is set
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		logx.SetOutput(f)
		logx.SetMinLevel(logx.ParseLevel(cfg.LogLevel))
		fmt.Println("Debug logging enabled. Run 'tail -f debug.log' to view logs.")
	}

	if _, err := tea.NewProgram(
		ui.InitialModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
