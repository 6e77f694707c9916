package component

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/walletui/models"
)

// Field is a form field. A field with Options is a choice cycled with
// left/right, otherwise it is free text.
type Field struct {
	Label       string
	Placeholder string
	Masked      bool
	Input       models.InputState

	Options  []string
	Selected int
}

func (f *Field) Value() string {
	if len(f.Options) > 0 {
		if f.Selected < 0 || f.Selected >= len(f.Options) {
			return ""
		}
		return f.Options[f.Selected]
	}
	return f.Input.Value
}

// Select chooses the option equal to value, if present.
func (f *Field) Select(value string) {
	for i, opt := range f.Options {
		if opt == value {
			f.Selected = i
			return
		}
	}
}

func (f *Field) cycle(delta int) {
	n := len(f.Options)
	if n == 0 {
		return
	}
	f.Selected = ((f.Selected+delta)%n + n) % n
}

type Form struct {
	Fields []*Field
	Focus  int
	Error  string
	Hint   string
}

func (f *Form) Field(i int) *Field {
	if i < 0 || i >= len(f.Fields) {
		return nil
	}
	return f.Fields[i]
}

func (f *Form) Value(i int) string {
	field := f.Field(i)
	if field == nil {
		return ""
	}
	return field.Value()
}

func (f *Form) move(delta int) {
	n := len(f.Fields)
	if n == 0 {
		return
	}
	f.Focus = ((f.Focus+delta)%n + n) % n
}

// HandleKey handles field navigation and editing. enter and esc are left
// to the owner.
func (f *Form) HandleKey(key string) bool {
	switch key {
	case "tab", "down":
		f.move(1)
		return true
	case "shift+tab", "up":
		f.move(-1)
		return true
	}
	field := f.Field(f.Focus)
	if field == nil {
		return false
	}
	if len(field.Options) > 0 {
		switch key {
		case "left":
			field.cycle(-1)
			return true
		case "right", " ":
			field.cycle(1)
			return true
		}
		return false
	}
	if EditInput(&field.Input, key) {
		f.Error = ""
		return true
	}
	return false
}

func (f *Form) Render() *dom.Node {
	var nodes []*dom.Node
	for i, field := range f.Fields {
		focused := i == f.Focus
		if len(field.Options) > 0 {
			nodes = append(nodes, renderChoice(field, focused))
			continue
		}
		nodes = append(nodes, TextField(TextFieldProps{
			Label:       field.Label,
			Placeholder: field.Placeholder,
			State:       &field.Input,
			Focused:     focused,
			Masked:      field.Masked,
		}))
	}
	if f.Hint != "" {
		nodes = append(nodes, dom.Text(f.Hint, styles.Style{
			Italic: true,
			Color:  colors.GREY_TEXT,
		}))
	}
	if f.Error != "" {
		nodes = append(nodes, dom.Text(f.Error, styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}))
	}
	return dom.Div(dom.DivProps{}, nodes...)
}

func renderChoice(field *Field, focused bool) *dom.Node {
	labelColor := colors.GREY_TEXT
	if focused {
		labelColor = colors.PURPLE_PRIMARY
	}
	value := field.Value()
	if focused {
		value = "< " + value + " >"
	}
	return dom.HDiv(dom.DivProps{},
		dom.Text(field.Label+": ", styles.Style{
			Bold:  focused,
			Color: labelColor,
		}),
		dom.Text(value, styles.Style{Bold: focused}),
	)
}
