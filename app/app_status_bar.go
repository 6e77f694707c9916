package app

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/walletui/models/states"
)

type StatusBar struct {
	Storage string
	Message string
	Error   string
}

// AppStatusBar renders storage, the last message or error, and the layout.
func AppStatusBar(state *State) *dom.Node {
	var nodes []*dom.Node

	nodes = append(nodes, dom.Text("•", styles.Style{
		Bold:  true,
		Color: colors.GREEN_SUCCESS,
	}))
	if state.StatusBar.Storage != "" {
		nodes = append(nodes, dom.Text(state.StatusBar.Storage, styles.Style{
			Bold:  true,
			Color: colors.GREY_TEXT,
		}))
	}
	if state.StatusBar.Error != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Error, styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}))
	} else if state.StatusBar.Message != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Message, styles.Style{
			Color: colors.GREEN_SUCCESS,
		}))
	}

	// layout on the right
	nodes = append(nodes, dom.Spacer(dom.WithMaxSize(40)))
	layout := state.DeviceClass().String()
	if state.Layout != states.Layout_Auto {
		layout += " (forced)"
	}
	nodes = append(nodes, dom.Text(layout, styles.Style{
		Bold:  true,
		Color: colors.GREY_TEXT,
	}))

	return dom.HDiv(dom.DivProps{}, nodes...)
}
