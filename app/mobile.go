package app

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/walletui/models/states"
)

func MobileTabs(state *State) *dom.Node {
	return dom.Div(dom.DivProps{},
		TabBar(state.Tab),
		dom.Br(),
		state.ActivePanel().Render(true),
	)
}

func TabBar(active states.SettingsTab) *dom.Node {
	var tabs []*dom.Node
	for i, tab := range states.SettingsTabs {
		if i > 0 {
			tabs = append(tabs, dom.Text(" | ", styles.Style{Color: colors.GREY_TEXT}))
		}
		if tab == active {
			tabs = append(tabs, dom.Text("["+tab.Title()+"]", styles.Style{
				Bold:  true,
				Color: colors.PURPLE_PRIMARY,
			}))
			continue
		}
		tabs = append(tabs, dom.Text(" "+tab.Title()+" ", styles.Style{Color: colors.GREY_TEXT}))
	}
	return dom.HDiv(dom.DivProps{}, tabs...)
}
