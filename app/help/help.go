package help

import (
	_ "embed"
	"strings"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

//go:embed help.md
var helpContent string

type HelpProps struct {
	ScrollOffset   int
	ViewportHeight int
}

// Help renders the key binding reference, scrolled to ScrollOffset.
func Help(props HelpProps) *dom.Node {
	renderableLines := helpLines()

	totalLines := len(renderableLines)
	startLine := props.ScrollOffset
	if startLine < 0 {
		startLine = 0
	}
	endLine := startLine + props.ViewportHeight
	if endLine > totalLines {
		endLine = totalLines
	}
	if startLine >= totalLines {
		startLine = totalLines - 1
		if startLine < 0 {
			startLine = 0
		}
	}

	var nodes []*dom.Node
	if startLine > 0 {
		nodes = append(nodes, dom.Text("↑ (more content above)", styles.Style{
			Color: colors.GREY_TEXT,
		}))
		nodes = append(nodes, dom.Br())
	}

	visibleLines := renderableLines[startLine:endLine]
	for _, line := range visibleLines {
		if line == "" {
			nodes = append(nodes, dom.Br())
			continue
		}

		if strings.HasPrefix(line, "# ") {
			text := strings.TrimPrefix(line, "# ")
			nodes = append(nodes, dom.Text(text, styles.Style{
				Bold:  true,
				Color: colors.GREEN_SUCCESS,
			}))
			nodes = append(nodes, dom.Br())
			continue
		}

		if strings.HasPrefix(line, "## ") {
			text := strings.TrimPrefix(line, "## ")
			nodes = append(nodes, dom.Text(text, styles.Style{
				Bold:  true,
				Color: "cyan",
			}))
			nodes = append(nodes, dom.Br())
			continue
		}

		// "- keys - description"
		if strings.HasPrefix(line, "- ") {
			text := strings.TrimPrefix(line, "- ")
			parts := strings.SplitN(text, " - ", 2)
			if len(parts) == 2 {
				nodes = append(nodes, dom.Text("  ", styles.Style{}))
				nodes = append(nodes, dom.Text(parts[0], styles.Style{
					Bold:  true,
					Color: "yellow",
				}))
				nodes = append(nodes, dom.Text(" - "+parts[1], styles.Style{
					Color: colors.GREY_TEXT,
				}))
			} else {
				nodes = append(nodes, dom.Text("  • "+text, styles.Style{
					Color: colors.GREY_TEXT,
				}))
			}
			nodes = append(nodes, dom.Br())
			continue
		}

		nodes = append(nodes, dom.Text(line, styles.Style{}))
		nodes = append(nodes, dom.Br())
	}

	if endLine < totalLines {
		nodes = append(nodes, dom.Text("↓ (more content below)", styles.Style{
			Color: colors.GREY_TEXT,
		}))
	}

	return dom.Div(dom.DivProps{}, nodes...)
}

func GetTotalLines() int {
	return len(helpLines())
}

func helpLines() []string {
	lines := strings.Split(strings.TrimRight(helpContent, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
