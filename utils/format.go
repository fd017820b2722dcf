package utils

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// MessageType selects the style applied by DecorateText.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

var styles = map[MessageType]lipgloss.Style{
	DefaultMessage: lipgloss.NewStyle(),
	SuccessMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ErrorMessage:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	StatusMessage:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
}

// DecorateText renders s in the colour associated with the message type.
// Unknown message types are returned unchanged.
func DecorateText(s string, msgType MessageType) string {
	style, ok := styles[msgType]
	if !ok {
		return s
	}
	return style.Render(s)
}

// FormatTime formats a duration as a short human readable value, e.g. "1h 2m 3.45s".
func FormatTime(d time.Duration) string {
	secs := d.Seconds() - float64(int64(d.Minutes()))*60
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), secs)
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh %dm %.2fs", int64(d.Hours()), int64(d.Minutes())%60, secs)
	}
	return fmt.Sprintf("%dd %dh %dm %.2fs",
		int64(d.Hours())/24, int64(d.Hours())%24, int64(d.Minutes())%60, secs)
}
