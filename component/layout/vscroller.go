package layout

import (
	"fmt"

	domLayout "github.com/xhd2015/go-dom-tui/charm/layout"
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

const indicatorHeight = 1

// Window renders children[BeginIndex:EndIndex] of a computed slice.
func Window(children []*dom.Node, result SliceVerticalResult) *dom.Node {
	var nodes []*dom.Node
	if result.ShowTopIndicator {
		nodes = append(nodes, dom.Text(fmt.Sprintf("↑ (%d items above)", result.ItemsAbove), styles.Style{
			Color: colors.GREY_TEXT,
		}))
	}
	nodes = append(nodes, children[result.BeginIndex:result.EndIndex]...)
	if result.ShowBottomIndicator {
		nodes = append(nodes, dom.Text(fmt.Sprintf("↓ (%d items below)", result.ItemsBelow), styles.Style{
			Color: colors.GREY_TEXT,
		}))
	}
	return dom.Div(dom.DivProps{}, nodes...)
}

type SliceVerticalResult struct {
	BeginIndex          int
	EndIndex            int // exclusive
	ShowTopIndicator    bool
	ShowBottomIndicator bool
	ItemsAbove          int
	ItemsBelow          int
}

// SliceVertical picks the nodes that fit in height lines starting at
// beginIndex, reserving a line for each indicator that is shown. The window
// scrolls by the minimal amount needed to keep selectedIndex visible.
func SliceVertical(nodes []*dom.Node, beginIndex int, selectedIndex int, height int) SliceVerticalResult {
	n := len(nodes)
	if n == 0 {
		return SliceVerticalResult{}
	}
	beginIndex = clamp(beginIndex, 0, n-1)
	selectedIndex = clamp(selectedIndex, 0, n-1)
	if selectedIndex < beginIndex {
		beginIndex = selectedIndex
	}

	heights := make([]int, n)
	for i, node := range nodes {
		heights[i] = domLayout.GetNodeRenderedHeight(node)
	}

	endIndex := fitFrom(heights, beginIndex, height)
	for selectedIndex >= endIndex && beginIndex < selectedIndex {
		beginIndex++
		endIndex = fitFrom(heights, beginIndex, height)
	}

	return SliceVerticalResult{
		BeginIndex:          beginIndex,
		EndIndex:            endIndex,
		ShowTopIndicator:    beginIndex > 0,
		ShowBottomIndicator: endIndex < n,
		ItemsAbove:          beginIndex,
		ItemsBelow:          n - endIndex,
	}
}

// fitFrom returns the end index of the nodes that fit starting at begin.
// At least one node is always included.
func fitFrom(heights []int, begin int, height int) int {
	available := height
	if begin > 0 {
		available -= indicatorHeight
	}
	// assume a bottom indicator first, then reclaim its line if all fit
	end := fill(heights, begin, available-indicatorHeight)
	if end == len(heights) || fill(heights, begin, available) == len(heights) {
		end = fill(heights, begin, available)
	}
	if end == begin {
		end = begin + 1
	}
	return end
}

func fill(heights []int, begin int, limit int) int {
	if limit < 1 {
		limit = 1
	}
	used := 0
	end := begin
	for i := begin; i < len(heights); i++ {
		if used+heights[i] > limit {
			break
		}
		used += heights[i]
		end = i + 1
	}
	return end
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
