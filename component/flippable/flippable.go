package flippable

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

// State is the front/back state of a panel. The zero value shows the front.
type State struct {
	Flipped bool
}

func (s *State) Toggle() {
	s.Flipped = !s.Flipped
}

// RenderFunc renders the front view when flipped is false and the back
// view otherwise. Calling toggleFlipped switches views on the next render.
type RenderFunc func(flipped bool, toggleFlipped func()) *dom.Node

type PanelProps struct {
	Title   string
	Focused bool
	State   *State
	Render  RenderFunc
}

func Panel(props PanelProps) *dom.Node {
	titleColor := colors.GREY_TEXT
	if props.Focused {
		titleColor = colors.PURPLE_PRIMARY
	}
	var title *dom.Node
	if props.Title != "" {
		title = dom.Text(props.Title, styles.Style{
			Bold:  true,
			Color: titleColor,
		})
	}
	return dom.Div(dom.DivProps{},
		title,
		Render(props.State, props.Render),
	)
}

// Render calls render with the current state.
func Render(state *State, render RenderFunc) *dom.Node {
	return render(state.Flipped, state.Toggle)
}

// Dispatch hands a key to the view that is showing, with the same toggle
// callback Render gives it. The back view dismisses itself through it.
func Dispatch(state *State, handle func(flipped bool, toggleFlipped func()) bool) bool {
	return handle(state.Flipped, state.Toggle)
}
