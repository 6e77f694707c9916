package addressbook

import (
	"fmt"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/walletui/component"
	"github.com/xhd2015/walletui/component/dialog"
	"github.com/xhd2015/walletui/component/flippable"
	"github.com/xhd2015/walletui/component/layout"
	"github.com/xhd2015/walletui/component/text"
	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/models"
)

type Store interface {
	AddressBook() []*models.AddressBookEntry
	CreateAddressBooks(entry models.AddressBookEntry) (*models.AddressBookEntry, error)
	UpdateAddressBooks(uuid string, update models.AddressBookEntryOptional) error
	DeleteAddressBooks(uuid string) error
}

type NetworkLister interface {
	Networks() []*models.Network
}

const (
	fieldLabel = iota
	fieldAddress
	fieldNetwork
	fieldNotes
)

type InlineField int

const (
	InlineField_Label InlineField = iota
	InlineField_Notes
)

// InlineEdit is an in-place edit of one entry in the list view.
type InlineEdit struct {
	UUID  string
	Field InlineField
	Input models.InputState
	Error string
}

type Orchestrator struct {
	Store    Store
	Networks NetworkLister

	Flip    flippable.State
	Cursor  int
	Inline  *InlineEdit
	Confirm dialog.Confirm
	AddForm component.Form

	// ViewportHeight limits the list to that many lines when > 0.
	ViewportHeight int
	scrollBegin    int

	OnNotify func(message string, err error)
}

func New(store Store, networks NetworkLister) *Orchestrator {
	return &Orchestrator{
		Store:    store,
		Networks: networks,
	}
}

func (o *Orchestrator) Adding() bool {
	return o.Flip.Flipped
}

// StartAdding opens the add view with an empty form.
func (o *Orchestrator) StartAdding() {
	var networkIDs []string
	for _, network := range o.Networks.Networks() {
		networkIDs = append(networkIDs, network.ID)
	}
	network := &component.Field{Label: "Network", Options: networkIDs}
	network.Select(models.DefaultNetwork)

	o.AddForm = component.Form{
		Fields: []*component.Field{
			{Label: "Label", Placeholder: "e.g. Alice"},
			{Label: "Address", Placeholder: "0x..."},
			network,
			{Label: "Notes", Placeholder: "(optional)"},
		},
	}
	o.Flip.Toggle()
}

// closeAddView leaves the add view through the toggle it was handed.
func (o *Orchestrator) closeAddView(dismiss func()) {
	o.AddForm.Error = ""
	dismiss()
}

// Create stores the add form as a new entry, then calls dismiss. On
// failure the form stays open with the error shown.
func (o *Orchestrator) Create(dismiss func()) error {
	entry, err := o.Store.CreateAddressBooks(models.AddressBookEntry{
		Label:   o.AddForm.Value(fieldLabel),
		Address: o.AddForm.Value(fieldAddress),
		Network: o.AddForm.Value(fieldNetwork),
		Notes:   o.AddForm.Value(fieldNotes),
	})
	if err != nil {
		o.AddForm.Error = err.Error()
		o.notify("", err)
		return err
	}
	o.Cursor = len(o.Store.AddressBook()) - 1
	o.notify(fmt.Sprintf("saved %s as %s", data.ShortAddress(entry.Address), entry.Label), nil)
	o.closeAddView(dismiss)
	return nil
}

func (o *Orchestrator) selected() *models.AddressBookEntry {
	entries := o.Store.AddressBook()
	if len(entries) == 0 {
		return nil
	}
	return entries[o.cursorIndex(len(entries))]
}

// cursorIndex is the cursor clamped to n rows. Deleting the last entry
// leaves the cursor past the end until the next move.
func (o *Orchestrator) cursorIndex(n int) int {
	i := o.Cursor
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (o *Orchestrator) startInline(field InlineField) {
	entry := o.selected()
	if entry == nil {
		return
	}
	inline := &InlineEdit{UUID: entry.UUID, Field: field}
	if field == InlineField_Label {
		inline.Input.Set(entry.Label)
	} else {
		inline.Input.Set(entry.Notes)
	}
	o.Inline = inline
}

func (o *Orchestrator) commitInline() error {
	inline := o.Inline
	value := inline.Input.Value
	var update models.AddressBookEntryOptional
	if inline.Field == InlineField_Label {
		update.Label = &value
	} else {
		update.Notes = &value
	}
	if err := o.Store.UpdateAddressBooks(inline.UUID, update); err != nil {
		inline.Error = err.Error()
		o.notify("", err)
		return err
	}
	o.Inline = nil
	return nil
}

func (o *Orchestrator) confirmDelete() {
	entry := o.selected()
	if entry == nil {
		return
	}
	uuid := entry.UUID
	label := entry.Label
	o.Confirm.Open(fmt.Sprintf("Delete %s?", label), "Delete", func() {
		if err := o.Store.DeleteAddressBooks(uuid); err != nil {
			o.notify("", err)
			return
		}
		o.notify("deleted "+label, nil)
	})
}

func (o *Orchestrator) notify(message string, err error) {
	if o.OnNotify != nil {
		o.OnNotify(message, err)
	}
}

func (o *Orchestrator) Capturing() bool {
	return o.Flip.Flipped || o.Inline != nil || o.Confirm.Active
}

func (o *Orchestrator) Confirming() bool {
	return o.Confirm.Active
}

func (o *Orchestrator) HandleKey(key string) bool {
	if o.Confirm.HandleKey(key) {
		return true
	}
	return flippable.Dispatch(&o.Flip, func(flipped bool, toggleFlipped func()) bool {
		if flipped {
			return o.handleAddKey(key, toggleFlipped)
		}
		return o.handleListKey(key)
	})
}

func (o *Orchestrator) handleAddKey(key string, dismiss func()) bool {
	switch key {
	case "esc":
		o.closeAddView(dismiss)
		return true
	case "enter":
		o.Create(dismiss)
		return true
	}
	return o.AddForm.HandleKey(key)
}

func (o *Orchestrator) handleListKey(key string) bool {
	if o.Inline != nil {
		switch key {
		case "esc":
			o.Inline = nil
			return true
		case "enter":
			o.commitInline()
			return true
		}
		return component.EditInput(&o.Inline.Input, key)
	}

	o.Cursor = o.cursorIndex(len(o.Store.AddressBook()))
	switch key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Store.AddressBook())-1 {
			o.Cursor++
		}
	case "a":
		o.StartAdding()
	case "enter", "e":
		o.startInline(InlineField_Label)
	case "n":
		o.startInline(InlineField_Notes)
	case "d":
		o.confirmDelete()
	default:
		return false
	}
	return true
}

func (o *Orchestrator) HelpLine() string {
	switch {
	case o.Confirm.Active:
		return "←/→ choose  enter confirm  esc cancel"
	case o.Flip.Flipped:
		return "tab next field  ←/→ network  enter save  esc cancel"
	case o.Inline != nil:
		return "enter save  esc cancel"
	}
	return "↑/↓ move  a add  e relabel  n notes  d delete"
}

func (o *Orchestrator) Render(focused bool) *dom.Node {
	return flippable.Panel(flippable.PanelProps{
		Title:   "Address Book",
		Focused: focused,
		State:   &o.Flip,
		Render: func(flipped bool, toggleFlipped func()) *dom.Node {
			if flipped {
				return dom.Div(dom.DivProps{},
					dom.Text("Add to address book", styles.Style{Bold: true}),
					o.AddForm.Render(),
				)
			}
			return o.renderList(focused)
		},
	})
}

func (o *Orchestrator) renderList(focused bool) *dom.Node {
	entries := o.Store.AddressBook()
	if len(entries) == 0 {
		return dom.Text("Address book is empty. Press a to add an address.", styles.Style{
			Italic: true,
			Color:  colors.GREY_TEXT,
		})
	}
	cursor := o.cursorIndex(len(entries))

	rows := make([]*dom.Node, 0, len(entries))
	for i, entry := range entries {
		if o.Inline != nil && o.Inline.UUID == entry.UUID {
			rows = append(rows, o.renderInline())
			continue
		}
		rows = append(rows, renderEntry(entry, focused && i == cursor))
	}

	list := dom.Div(dom.DivProps{}, rows...)
	if o.ViewportHeight > 0 {
		result := layout.SliceVertical(rows, o.scrollBegin, cursor, o.ViewportHeight)
		o.scrollBegin = result.BeginIndex
		list = layout.Window(rows, result)
	}
	return dom.Div(dom.DivProps{}, list, o.Confirm.Render())
}

func (o *Orchestrator) renderInline() *dom.Node {
	label := "Label"
	if o.Inline.Field == InlineField_Notes {
		label = "Notes"
	}
	field := component.TextField(component.TextFieldProps{
		Label:   "  " + label,
		State:   &o.Inline.Input,
		Focused: true,
	})
	if o.Inline.Error == "" {
		return field
	}
	return dom.Div(dom.DivProps{},
		field,
		dom.Text("    "+o.Inline.Error, styles.Style{
			Color: colors.RED_ERROR,
		}),
	)
}

func renderEntry(entry *models.AddressBookEntry, selected bool) *dom.Node {
	prefix := "    "
	style := styles.Style{}
	if selected {
		prefix = "  > "
		style = styles.Style{Bold: true, Color: colors.PURPLE_PRIMARY}
	}
	line := fmt.Sprintf("%s%s  %s  [%s]", prefix, text.SanitizeLine(entry.Label), data.ShortAddress(entry.Address), entry.Network)
	if entry.Notes == "" {
		return dom.Text(line, style)
	}
	return dom.Div(dom.DivProps{},
		dom.Text(line, style),
		dom.Text("      "+text.SanitizeLine(entry.Notes), styles.Style{
			Italic: true,
			Color:  colors.GREY_TEXT,
		}),
	)
}
