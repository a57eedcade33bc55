package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/CineSim/internal/recommend"
)

// Common message types shared across UI models
type recommendCompleteMsg struct {
	response *recommend.Response
}

type recommendErrorMsg struct {
	err error
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var spinnerChars = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// CreateRecommendCommand creates a tea command that fetches recommendations
func CreateRecommendCommand(engine *recommend.Engine, title string, count int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		response, err := engine.Recommend(ctx, title, count)
		if err != nil {
			return recommendErrorMsg{err: err}
		}

		return recommendCompleteMsg{
			response: response,
		}
	}
}
