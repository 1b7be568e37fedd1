package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sahilkr24/jobtrackr/internal/client"
	"github.com/sahilkr24/jobtrackr/internal/config"
	"github.com/sahilkr24/jobtrackr/internal/tui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}
	cfg := config.Load()

	apiClient := client.New(cfg)

	p := tea.NewProgram(tui.New(apiClient), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("Tracker failed:", err)
	}
}
