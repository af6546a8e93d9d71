package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/planner/internal/config"
	"github.com/simonbystrom/planner/internal/task"
)

type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Selected     lipgloss.Style
	Notification lipgloss.Style
	Success      lipgloss.Style
	Help         lipgloss.Style
	Border       lipgloss.Style
	Separator    lipgloss.Style
	WizardTitle  lipgloss.Style
	WizardActive lipgloss.Style
	WizardDim    lipgloss.Style
	Error        lipgloss.Style
	Logo         lipgloss.Style

	Priority map[task.Priority]lipgloss.Style
	Status   map[task.Status]lipgloss.Style
}

func NewStyles(c config.Colors) Styles {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return Styles{
		Title:        fg(c.Title).Bold(true).Padding(0, 1),
		Header:       fg(c.Header).Bold(true),
		Selected:     lipgloss.NewStyle().Background(lipgloss.Color(c.SelectedBG)).Foreground(lipgloss.Color(c.SelectedFG)),
		Notification: fg(c.Notification).Italic(true),
		Success:      fg(c.Success).Bold(true),
		Help:         fg(c.Help),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(1, 2),
		Separator:    fg(c.Separator),
		WizardTitle:  fg(c.WizardTitle).Bold(true).MarginBottom(1),
		WizardActive: fg(c.WizardActive),
		WizardDim:    fg(c.WizardDim),
		Error:        fg(c.Error).Bold(true),
		Logo:         fg(c.Logo).Bold(true),
		Priority: map[task.Priority]lipgloss.Style{
			task.PriorityLow:    fg(c.Low),
			task.PriorityMedium: fg(c.Medium),
			task.PriorityHigh:   fg(c.High).Bold(true),
		},
		Status: map[task.Status]lipgloss.Style{
			task.StatusNotStarted: fg(c.NotStarted),
			task.StatusInProgress: fg(c.InProgress),
			task.StatusCompleted:  fg(c.Completed),
			task.StatusBlocked:    fg(c.Blocked).Bold(true),
		},
	}
}

func (s Styles) priority(p task.Priority) lipgloss.Style {
	if st, ok := s.Priority[p]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

func (s Styles) status(st task.Status) lipgloss.Style {
	if v, ok := s.Status[st]; ok {
		return v
	}
	return lipgloss.NewStyle()
}
