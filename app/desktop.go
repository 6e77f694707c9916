package app

import (
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/walletui/models/states"
)

// DesktopStack renders every panel in tab bar order, focusing the active tab.
func DesktopStack(state *State) *dom.Node {
	nodes := []*dom.Node{
		dom.H1(dom.DivProps{}, dom.Text("Settings", styles.Style{
			Bold:        true,
			BorderColor: "orange",
		})),
	}
	for i, tab := range states.SettingsTabs {
		if i > 0 {
			nodes = append(nodes, dom.Br())
		}
		nodes = append(nodes, state.Panel(tab).Render(tab == state.Tab))
	}
	return dom.Div(dom.DivProps{}, nodes...)
}
