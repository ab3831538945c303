// Package style provides the palette, icons and text styles shared by the
// logger and the terminal renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Sky    = lipgloss.Color("#0EA5E9")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// DoctypeColor returns the color used for documents of the given doctype.
func DoctypeColor(doctype string) lipgloss.Color {
	switch doctype {
	case "CRE":
		return Iris
	case "Standard":
		return Green
	case "Tool":
		return Sky
	default:
		return Yellow
	}
}
