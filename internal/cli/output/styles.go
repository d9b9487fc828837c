package output

import "github.com/charmbracelet/lipgloss"

// Palette used by text mode.
var (
	ColorAccent  = lipgloss.Color("#F74C00") // rust orange
	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#6C7A89")
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	DemoName lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Code     lipgloss.Style
	Box      lipgloss.Style
}

// NewStyles builds styles bound to r, so colour output follows r's profile.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:  r.NewStyle().Bold(true).Foreground(ColorAccent).MarginBottom(1),
		Header2:  r.NewStyle().Bold(true).Foreground(ColorAccent),
		DemoName: r.NewStyle().Foreground(ColorAccent),
		Muted:    r.NewStyle().Foreground(ColorMuted),
		Bold:     r.NewStyle().Bold(true),
		Success:  r.NewStyle().Foreground(ColorSuccess),
		Warning:  r.NewStyle().Foreground(ColorWarning),
		Error:    r.NewStyle().Foreground(ColorError),
		Code:     r.NewStyle().PaddingLeft(2),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1),
	}
}

// StatusStyle returns the style used for a run or demo status.
func (s *Styles) StatusStyle(status string) lipgloss.Style {
	switch status {
	case "success", "completed":
		return s.Success
	case "skipped", "cancelled", "pending":
		return s.Warning
	case "failed":
		return s.Error
	default:
		return s.Muted
	}
}

// StatusIcon returns a one-character marker for a status.
func StatusIcon(status string) string {
	switch status {
	case "success", "completed":
		return "✓"
	case "skipped", "cancelled":
		return "○"
	case "failed":
		return "✗"
	default:
		return "•"
	}
}
