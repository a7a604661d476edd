package output

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"}
	pathColor    = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
	successColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	warningColor = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
)

// styles are bound to one lipgloss renderer so colour detection follows the writer
type styles struct {
	title   lipgloss.Style
	task    lipgloss.Style
	muted   lipgloss.Style
	path    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	item    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Foreground(headingColor).Bold(true),
		task:    r.NewStyle().Foreground(headingColor).Bold(true),
		muted:   r.NewStyle().Foreground(mutedColor),
		path:    r.NewStyle().Foreground(pathColor),
		success: r.NewStyle().Foreground(successColor).Bold(true),
		warning: r.NewStyle().Foreground(warningColor),
		item:    r.NewStyle().PaddingLeft(2),
	}
}
