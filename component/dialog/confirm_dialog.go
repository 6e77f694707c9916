package dialog

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

// ConfirmDialogProps contains the properties for the confirmation dialog
type ConfirmDialogProps struct {
	SelectedButton int
	PromptText     string // e.g., "Delete account?"
	DeleteText     string // e.g., "[Delete]" or "[OK]"
	CancelText     string // e.g., "[Cancel]"
}

// ConfirmDialog creates a confirmation dialog with action and cancel buttons
func ConfirmDialog(props ConfirmDialogProps) *dom.Node {
	promptText := props.PromptText
	if promptText == "" {
		promptText = "Are you sure?"
	}

	deleteText := props.DeleteText
	if deleteText == "" {
		deleteText = "[OK]"
	}

	cancelText := props.CancelText
	if cancelText == "" {
		cancelText = "[Cancel]"
	}

	return dom.HDiv(dom.DivProps{},
		dom.Text(promptText+" ", styles.Style{
			Bold: true,
		}),
		dom.Text(deleteText, styles.Style{
			Color: colors.RED_ERROR,
			Bold:  props.SelectedButton == 0,
		}),
		dom.Text(" "),
		dom.Text(cancelText, styles.Style{
			Color: "blue",
			Bold:  props.SelectedButton == 1,
		}),
	)
}

// Confirm holds a pending confirmation. Button 0 confirms, button 1 cancels.
type Confirm struct {
	Active         bool
	SelectedButton int
	Prompt         string
	ActionText     string

	onConfirm func()
}

func (c *Confirm) Open(prompt string, actionText string, onConfirm func()) {
	c.Active = true
	c.SelectedButton = 1
	c.Prompt = prompt
	c.ActionText = actionText
	c.onConfirm = onConfirm
}

func (c *Confirm) Close() {
	c.Active = false
	c.onConfirm = nil
}

// HandleKey reports whether the key was consumed by the dialog.
func (c *Confirm) HandleKey(key string) bool {
	if !c.Active {
		return false
	}
	switch key {
	case "left", "h":
		c.SelectedButton = 0
	case "right", "l":
		c.SelectedButton = 1
	case "esc", "n":
		c.Close()
	case "y":
		c.confirm()
	case "enter":
		if c.SelectedButton == 0 {
			c.confirm()
		} else {
			c.Close()
		}
	}
	return true
}

func (c *Confirm) confirm() {
	fn := c.onConfirm
	c.Close()
	if fn != nil {
		fn()
	}
}

func (c *Confirm) Render() *dom.Node {
	if !c.Active {
		return nil
	}
	return ConfirmDialog(ConfirmDialogProps{
		SelectedButton: c.SelectedButton,
		PromptText:     c.Prompt,
		DeleteText:     "[" + c.ActionText + "]",
	})
}
