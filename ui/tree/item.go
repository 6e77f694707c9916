package tree

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
)

// RenderItem formats a node. Styling is only applied on a terminal.
func RenderItem(node *Node, isTTY bool) string {
	bullet := "•"
	if node.Muted {
		bullet = "◦"
	}
	label := node.Label
	detail := node.Detail
	if isTTY {
		if node.Muted {
			label = detailStyle.Render(label)
		} else if len(node.Children) > 0 {
			label = labelStyle.Render(label)
		}
		if detail != "" {
			detail = detailStyle.Render(detail)
		}
	}
	if detail == "" {
		return bullet + " " + label
	}
	return bullet + " " + label + "  " + detail
}
