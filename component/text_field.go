package component

import (
	"strings"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/walletui/component/text"
	"github.com/xhd2015/walletui/models"
)

type TextFieldProps struct {
	Label       string
	Placeholder string
	State       *models.InputState
	Focused     bool
	Masked      bool
	Width       int
}

// TextField renders a labelled single-line input. Editing is done by the
// owner through EditInput.
func TextField(props TextFieldProps) *dom.Node {
	width := props.Width
	if width == 0 {
		width = 40
	}
	value := props.State.Value
	if props.Masked {
		value = strings.Repeat("*", len([]rune(value)))
	}
	value = text.SanitizeLine(value)

	labelColor := colors.GREY_TEXT
	if props.Focused {
		labelColor = colors.PURPLE_PRIMARY
	}

	var content string
	var style styles.Style
	switch {
	case props.Focused:
		runes := []rune(value)
		pos := props.State.CursorPosition
		if pos > len(runes) {
			pos = len(runes)
		}
		if pos < 0 {
			pos = 0
		}
		content = string(runes[:pos]) + "|" + string(runes[pos:])
		style = styles.Style{Bold: true}
	case value == "":
		content = props.Placeholder
		style = styles.Style{Italic: true, Color: colors.GREY_TEXT}
	default:
		content = value
	}
	if len([]rune(content)) > width {
		content = string([]rune(content)[:width-1]) + "…"
	}

	return dom.HDiv(dom.DivProps{},
		dom.Text(props.Label+": ", styles.Style{
			Bold:  props.Focused,
			Color: labelColor,
		}),
		dom.Text(content, style),
	)
}

// EditInput applies an editing key to the input and reports whether it was
// consumed.
func EditInput(state *models.InputState, key string) bool {
	switch key {
	case "backspace":
		state.Backspace()
	case "left":
		state.MoveCursor(-1)
	case "right":
		state.MoveCursor(1)
	case "home", "ctrl+a":
		state.CursorPosition = 0
	case "end", "ctrl+e":
		state.MoveCursor(len([]rune(state.Value)))
	case "ctrl+u":
		state.Reset()
	default:
		if !IsPrintable(key) {
			return false
		}
		state.Insert(key)
	}
	return true
}
