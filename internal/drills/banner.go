package drills

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// crab is drawn under every speech bubble.
var crab = []string{
	`        \`,
	`         \`,
	`            _~^~^~_`,
	`        \) /  o o  \ (/`,
	`          '_   -   _'`,
	`          / '-----' \`,
}

var bubbleStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Say renders message inside a speech bubble wrapped at width terminal cells.
// A width below 1 uses the message's own display width.
func Say(message string, width int) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	if width < 1 {
		width = lipgloss.Width(message)
	}

	// Width covers content plus horizontal padding, not the border.
	bubble := bubbleStyle.Width(width + 2).Render(message)

	var b strings.Builder
	b.WriteString(bubble)
	b.WriteByte('\n')
	b.WriteString(strings.Join(crab, "\n"))
	return b.String(), nil
}
