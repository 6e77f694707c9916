package accounts

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/walletui/component/dialog"
	"github.com/xhd2015/walletui/component/text"
	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/models"
)

type Store interface {
	Accounts() []*models.Account
	DeleteAccount(uuid string) error
	SetAccountPrivate(uuid string, private bool) error
}

type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

type Props struct {
	Deletable bool
	Copyable  bool
	// PrivacyCheckboxEnabled shows the private tag toggle.
	PrivacyCheckboxEnabled bool
}

type Orchestrator struct {
	Store     Store
	Clipboard Clipboard
	Props     Props

	Cursor  int
	Confirm dialog.Confirm

	OnNotify func(message string, err error)
}

func New(store Store, props Props) *Orchestrator {
	return &Orchestrator{
		Store:     store,
		Clipboard: SystemClipboard{},
		Props:     props,
	}
}

func (o *Orchestrator) selected() *models.Account {
	accounts := o.Store.Accounts()
	if len(accounts) == 0 {
		return nil
	}
	return accounts[o.cursorIndex(len(accounts))]
}

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

func (o *Orchestrator) Copy() error {
	account := o.selected()
	if account == nil || !o.Props.Copyable {
		return nil
	}
	if err := o.Clipboard.WriteAll(account.Address); err != nil {
		o.notify("", fmt.Errorf("copy address: %w", err))
		return err
	}
	o.notify("copied "+account.Address, nil)
	return nil
}

func (o *Orchestrator) TogglePrivate() error {
	account := o.selected()
	if account == nil || !o.Props.PrivacyCheckboxEnabled {
		return nil
	}
	if err := o.Store.SetAccountPrivate(account.UUID, !account.Private); err != nil {
		o.notify("", err)
		return err
	}
	return nil
}

func (o *Orchestrator) confirmDelete() {
	account := o.selected()
	if account == nil || !o.Props.Deletable {
		return
	}
	uuid := account.UUID
	name := accountName(account)
	o.Confirm.Open(fmt.Sprintf("Delete account %s?", name), "Delete", func() {
		if err := o.Store.DeleteAccount(uuid); err != nil {
			o.notify("", err)
			return
		}
		o.notify("deleted account "+name, nil)
	})
}

func (o *Orchestrator) notify(message string, err error) {
	if o.OnNotify != nil {
		o.OnNotify(message, err)
	}
}

func (o *Orchestrator) Capturing() bool {
	return o.Confirm.Active
}

func (o *Orchestrator) Confirming() bool {
	return o.Confirm.Active
}

func (o *Orchestrator) HandleKey(key string) bool {
	if o.Confirm.HandleKey(key) {
		return true
	}
	o.Cursor = o.cursorIndex(len(o.Store.Accounts()))
	switch key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Store.Accounts())-1 {
			o.Cursor++
		}
	case "c", "y":
		if !o.Props.Copyable {
			return false
		}
		o.Copy()
	case "p", " ":
		if !o.Props.PrivacyCheckboxEnabled {
			return false
		}
		o.TogglePrivate()
	case "d":
		if !o.Props.Deletable {
			return false
		}
		o.confirmDelete()
	default:
		return false
	}
	return true
}

func (o *Orchestrator) HelpLine() string {
	if o.Confirm.Active {
		return "←/→ choose  enter confirm  esc cancel"
	}
	line := "↑/↓ move"
	if o.Props.Copyable {
		line += "  c copy address"
	}
	if o.Props.PrivacyCheckboxEnabled {
		line += "  p private"
	}
	if o.Props.Deletable {
		line += "  d delete"
	}
	return line
}

func (o *Orchestrator) Render(focused bool) *dom.Node {
	titleStyle := styles.Style{Bold: true}
	if focused {
		titleStyle.Color = colors.PURPLE_PRIMARY
	}
	return dom.Div(dom.DivProps{},
		dom.Text("Accounts", titleStyle),
		o.renderList(focused),
		o.Confirm.Render(),
	)
}

func (o *Orchestrator) renderList(focused bool) *dom.Node {
	accounts := o.Store.Accounts()
	if len(accounts) == 0 {
		return dom.Text("No accounts yet.", styles.Style{
			Italic: true,
			Color:  colors.GREY_TEXT,
		})
	}
	cursor := o.cursorIndex(len(accounts))

	var rows []*dom.Node
	for i, account := range accounts {
		prefix := "    "
		style := styles.Style{}
		if focused && i == cursor {
			prefix = "  > "
			style = styles.Style{Bold: true, Color: colors.PURPLE_PRIMARY}
		}
		line := prefix
		if o.Props.PrivacyCheckboxEnabled {
			if account.Private {
				line += "[x] "
			} else {
				line += "[ ] "
			}
		}
		line += fmt.Sprintf("%s  %s  [%s]", accountName(account), data.ShortAddress(account.Address), account.Network)
		if account.WalletType != "" {
			line += "  " + account.WalletType
		}
		rows = append(rows, dom.Text(line, style))
	}
	return dom.Div(dom.DivProps{}, rows...)
}

func accountName(account *models.Account) string {
	if account.Label == "" {
		return data.ShortAddress(account.Address)
	}
	return text.SanitizeLine(account.Label)
}
