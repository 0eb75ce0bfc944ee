package cli

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles for command output.
type Styles struct {
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Progress lipgloss.Style

	// Envs table styling
	Header  lipgloss.Style
	EnvName lipgloss.Style
}

// DefaultStyles returns the default output styles.
func DefaultStyles() Styles {
	return Styles{
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Progress: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		EnvName: lipgloss.NewStyle().Bold(true),
	}
}

// Icons used in status lines.
const (
	IconSuccess  = "🟢"
	IconFailure  = "🔴"
	IconBuilding = "⏳"
	IconLaunch   = "🚀"
	IconDone     = "🏁"
	IconInstall  = "💾"
	IconUpdate   = "🎁"
	IconDeleted  = "💣"
)
