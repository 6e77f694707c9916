package nodes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/walletui/component"
	"github.com/xhd2015/walletui/component/dialog"
	"github.com/xhd2015/walletui/component/flippable"
	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/models"
)

// NetworkStore is the network catalogue with its custom nodes.
type NetworkStore interface {
	GetNetworkByName(name string) *models.Network
	GetNetworkByID(id string) *models.Network
	AddNodeToNetwork(node models.CustomNodeConfig) error
	IsNodeNameAvailable(networkID string, name string) bool
	UpdateNode(networkID string, name string, node models.CustomNodeConfig) error
	DeleteNode(networkID string, name string) error
	SimilarNodeName(networkID string, name string, exclude string) string
}

type AddressBook interface {
	AddressBook() []*models.AddressBookEntry
}

// Selection is the network and node the editor operates on. EditNode is
// nil when adding a node.
type Selection struct {
	NetworkID string
	EditNode  *models.CustomNodeConfig
}

type EditorMode int

const (
	EditorMode_Create EditorMode = iota
	EditorMode_Edit
)

const (
	fieldName = iota
	fieldURL
	fieldUsername
	fieldPassword
)

// RowKey identifies a list row by network and node name, so the cursor
// stays on its node when rows of other networks come or go. An empty Node
// is the network's "add node" row.
type RowKey struct {
	Network string
	Node    string
}

type Orchestrator struct {
	Networks    NetworkStore
	AddressBook AddressBook

	Flip      flippable.State
	Selection Selection

	Cursor  RowKey
	Form    component.Form
	Confirm dialog.Confirm

	OnNotify func(message string, err error)
}

func New(networks NetworkStore, addressBook AddressBook) *Orchestrator {
	return &Orchestrator{
		Networks:    networks,
		AddressBook: addressBook,
		Selection: Selection{
			NetworkID: models.DefaultNetwork,
		},
	}
}

func (o *Orchestrator) Editing() bool {
	return o.Flip.Flipped
}

// ListNetworks lists the networks referenced by the address book.
func (o *Orchestrator) ListNetworks() []*models.Network {
	return data.DistinctNetworks(o.AddressBook.AddressBook(), o.Networks.GetNetworkByName)
}

// SelectForEdit records the selection and flips to the editor. A nil node
// opens the editor in create mode.
func (o *Orchestrator) SelectForEdit(networkID string, node *models.CustomNodeConfig) {
	o.Selection = Selection{
		NetworkID: networkID,
		EditNode:  node,
	}
	o.resetForm()
	o.Flip.Toggle()
}

// EditorMode is derived from the selection on every call. An unknown
// network or a node that no longer exists yields create mode.
func (o *Orchestrator) EditorMode() EditorMode {
	if o.Selection.EditNode == nil {
		return EditorMode_Create
	}
	network := o.Networks.GetNetworkByID(o.Selection.NetworkID)
	if network == nil {
		return EditorMode_Create
	}
	node := network.NodeByName(o.Selection.EditNode.Name)
	if node == nil || !node.IsCustom {
		return EditorMode_Create
	}
	return EditorMode_Edit
}

func (o *Orchestrator) resetForm() {
	o.Confirm.Close()
	o.Form = component.Form{
		Fields: []*component.Field{
			{Label: "Name", Placeholder: "my-node"},
			{Label: "URL", Placeholder: "https://"},
			{Label: "Username", Placeholder: "(optional)"},
			{Label: "Password", Placeholder: "(optional)", Masked: true},
		},
	}
	if o.EditorMode() == EditorMode_Edit {
		node := o.Selection.EditNode
		o.Form.Fields[fieldName].Input.Set(node.Name)
		o.Form.Fields[fieldURL].Input.Set(node.URL)
		if node.Auth != nil {
			o.Form.Fields[fieldUsername].Input.Set(node.Auth.Username)
			o.Form.Fields[fieldPassword].Input.Set(node.Auth.Password)
		}
	}
	o.refreshHint()
}

// refreshHint warns about a name that is taken or close to an existing one.
func (o *Orchestrator) refreshHint() {
	o.Form.Hint = ""
	if o.nameTaken() {
		o.Form.Hint = "name already in use on " + o.Selection.NetworkID
		return
	}
	exclude := ""
	if o.EditorMode() == EditorMode_Edit {
		exclude = o.Selection.EditNode.Name
	}
	name := strings.TrimSpace(o.Form.Value(fieldName))
	if similar := o.Networks.SimilarNodeName(o.Selection.NetworkID, name, exclude); similar != "" {
		o.Form.Hint = "similar to existing node " + similar
	}
}

func (o *Orchestrator) formNode() models.CustomNodeConfig {
	node := models.CustomNodeConfig{
		Name:     strings.TrimSpace(o.Form.Value(fieldName)),
		URL:      strings.TrimSpace(o.Form.Value(fieldURL)),
		Network:  o.Selection.NetworkID,
		IsCustom: true,
	}
	username := o.Form.Value(fieldUsername)
	password := o.Form.Value(fieldPassword)
	if username != "" || password != "" {
		node.Auth = &models.NodeAuth{
			Username: username,
			Password: password,
		}
	}
	return node
}

// nameTaken reports whether the name in the form collides with another
// node of the selected network.
func (o *Orchestrator) nameTaken() bool {
	name := strings.TrimSpace(o.Form.Value(fieldName))
	if name == "" || o.Networks.GetNetworkByID(o.Selection.NetworkID) == nil {
		return false
	}
	if o.EditorMode() == EditorMode_Edit && name == o.Selection.EditNode.Name {
		return false
	}
	return !o.Networks.IsNodeNameAvailable(o.Selection.NetworkID, name)
}

// Save adds or updates the node, then calls dismiss. On failure the
// editor stays open with the error shown.
func (o *Orchestrator) Save(dismiss func()) error {
	if o.nameTaken() {
		err := fmt.Errorf("node %q: %w", o.Form.Value(fieldName), data.ErrNameTaken)
		o.fail(err)
		return err
	}
	node := o.formNode()
	var err error
	if o.EditorMode() == EditorMode_Edit {
		err = o.Networks.UpdateNode(o.Selection.NetworkID, o.Selection.EditNode.Name, node)
	} else {
		err = o.Networks.AddNodeToNetwork(node)
	}
	if err != nil {
		o.fail(err)
		return err
	}
	o.Form.Error = ""
	o.Cursor = RowKey{Network: o.Selection.NetworkID, Node: node.Name}
	o.notify(fmt.Sprintf("saved node %s", node.Name), nil)
	dismiss()
	return nil
}

// Delete removes the selected node, then calls dismiss. Only valid in
// edit mode.
func (o *Orchestrator) Delete(dismiss func()) error {
	if o.EditorMode() != EditorMode_Edit {
		err := fmt.Errorf("node: %w", data.ErrNotFound)
		o.fail(err)
		return err
	}
	name := o.Selection.EditNode.Name
	if err := o.Networks.DeleteNode(o.Selection.NetworkID, name); err != nil {
		o.fail(err)
		return err
	}
	o.Form.Error = ""
	o.notify(fmt.Sprintf("deleted node %s", name), nil)
	dismiss()
	return nil
}

// Cancel dismisses the editor. The selection is kept.
func (o *Orchestrator) Cancel(dismiss func()) {
	o.Confirm.Close()
	o.Form.Error = ""
	dismiss()
}

func (o *Orchestrator) fail(err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, data.ErrNameTaken):
		msg = "name already in use on " + o.Selection.NetworkID
	case errors.Is(err, data.ErrNotFound) && o.Networks.GetNetworkByID(o.Selection.NetworkID) == nil:
		msg = "unknown network " + o.Selection.NetworkID
	}
	o.Form.Error = msg
	o.notify("", err)
}

func (o *Orchestrator) notify(message string, err error) {
	if o.OnNotify != nil {
		o.OnNotify(message, err)
	}
}

func (o *Orchestrator) Capturing() bool {
	return o.Flip.Flipped || o.Confirm.Active
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
			return o.handleEditorKey(key, toggleFlipped)
		}
		return o.handleListKey(key)
	})
}

func (o *Orchestrator) handleEditorKey(key string, dismiss func()) bool {
	switch key {
	case "esc":
		o.Cancel(dismiss)
		return true
	case "enter":
		o.Save(dismiss)
		return true
	case "ctrl+d":
		if o.EditorMode() == EditorMode_Edit {
			name := o.Selection.EditNode.Name
			o.Confirm.Open(fmt.Sprintf("Delete node %s?", name), "Delete", func() {
				o.Delete(dismiss)
			})
		}
		return true
	}
	if !o.Form.HandleKey(key) {
		return false
	}
	o.refreshHint()
	return true
}

// row is a selectable line of the list view. A nil node is the
// "add node" line of its network.
type row struct {
	network *models.Network
	node    *models.CustomNodeConfig
}

func (r row) key() RowKey {
	key := RowKey{Network: r.network.ID}
	if r.node != nil {
		key.Node = r.node.Name
	}
	return key
}

func (o *Orchestrator) rows() []row {
	var rows []row
	for _, network := range o.ListNetworks() {
		for _, node := range network.CustomNodes() {
			rows = append(rows, row{network: network, node: node})
		}
		rows = append(rows, row{network: network})
	}
	return rows
}

func (o *Orchestrator) handleListKey(key string) bool {
	rows := o.rows()
	if len(rows) == 0 {
		return false
	}
	i := o.cursorIndex(rows)
	switch key {
	case "up", "k":
		if i > 0 {
			i--
		}
	case "down", "j":
		if i < len(rows)-1 {
			i++
		}
	case "enter", "e":
		o.Cursor = rows[i].key()
		o.SelectForEdit(rows[i].network.ID, rows[i].node)
		return true
	case "a":
		o.Cursor = rows[i].key()
		o.SelectForEdit(rows[i].network.ID, nil)
		return true
	default:
		return false
	}
	o.Cursor = rows[i].key()
	return true
}

// cursorIndex finds the cursor row. A vanished node falls back to its
// network's add row, anything else to the first row.
func (o *Orchestrator) cursorIndex(rows []row) int {
	fallback := 0
	for i, r := range rows {
		key := r.key()
		if key == o.Cursor {
			return i
		}
		if key.Node == "" && key.Network == o.Cursor.Network {
			fallback = i
		}
	}
	return fallback
}

func (o *Orchestrator) HelpLine() string {
	if o.Confirm.Active {
		return "←/→ choose  enter confirm  esc cancel"
	}
	if o.Flip.Flipped {
		if o.EditorMode() == EditorMode_Edit {
			return "tab next field  enter save  ctrl+d delete  esc back"
		}
		return "tab next field  enter add  esc back"
	}
	return "↑/↓ move  enter edit  a add node"
}

func (o *Orchestrator) Render(focused bool) *dom.Node {
	return flippable.Panel(flippable.PanelProps{
		Title:   "Network & Nodes",
		Focused: focused,
		State:   &o.Flip,
		Render: func(flipped bool, toggleFlipped func()) *dom.Node {
			if flipped {
				return o.renderEditor(focused)
			}
			return o.renderList(focused)
		},
	})
}

func (o *Orchestrator) renderList(focused bool) *dom.Node {
	networks := o.ListNetworks()
	if len(networks) == 0 {
		return dom.Text("No networks yet. Add an address book entry to manage its nodes.", styles.Style{
			Italic: true,
			Color:  colors.GREY_TEXT,
		})
	}
	cursor := o.cursorIndex(o.rows())

	var nodes []*dom.Node
	idx := 0
	for _, network := range networks {
		nodes = append(nodes, dom.Text(fmt.Sprintf("%s (chain %d)", network.Name, network.ChainID), styles.Style{
			Bold: true,
		}))
		for _, node := range network.Nodes {
			if !node.IsCustom {
				nodes = append(nodes, dom.Text("    "+node.Name+"  "+node.URL, styles.Style{
					Color: colors.GREY_TEXT,
				}))
				continue
			}
			nodes = append(nodes, renderRow(node.Name+"  "+node.URL, focused && idx == cursor))
			idx++
		}
		nodes = append(nodes, renderRow("+ Add node", focused && idx == cursor))
		idx++
	}
	return dom.Div(dom.DivProps{}, nodes...)
}

func renderRow(text string, selected bool) *dom.Node {
	if selected {
		return dom.Text("  > "+text, styles.Style{
			Bold:  true,
			Color: colors.PURPLE_PRIMARY,
		})
	}
	return dom.Text("    " + text)
}

func (o *Orchestrator) renderEditor(focused bool) *dom.Node {
	title := "Add node to " + o.Selection.NetworkID
	if o.EditorMode() == EditorMode_Edit {
		title = "Edit node " + o.Selection.EditNode.Name + " on " + o.Selection.NetworkID
	}

	return dom.Div(dom.DivProps{},
		dom.Text(title, styles.Style{Bold: true}),
		o.Form.Render(),
		o.Confirm.Render(),
	)
}
