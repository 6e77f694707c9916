package general

import (
	"fmt"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/walletui/component/dialog"
	"github.com/xhd2015/walletui/models"
)

type Store interface {
	Settings() models.GlobalSettings
	UpdateSettings(update models.GlobalSettingsOptional) error
}

type DangerZone interface {
	ResetAppData() error
}

type Row int

const (
	Row_FiatCurrency Row = iota
	Row_InactivityTimer
	Row_ResetAppData

	rowCount
)

type Orchestrator struct {
	Store      Store
	DangerZone DangerZone

	Cursor  Row
	Confirm dialog.Confirm

	OnNotify func(message string, err error)
	// OnReset runs after app data has been wiped and reloaded.
	OnReset func()
}

func New(store Store, dangerZone DangerZone) *Orchestrator {
	return &Orchestrator{
		Store:      store,
		DangerZone: dangerZone,
	}
}

// CycleFiatCurrency moves the fiat currency by delta, wrapping around.
func (o *Orchestrator) CycleFiatCurrency(delta int) error {
	current := o.Store.Settings().FiatCurrency
	next := cycle(models.FiatCurrencies, indexOf(models.FiatCurrencies, current), delta)
	return o.update(models.GlobalSettingsOptional{FiatCurrency: &next})
}

func (o *Orchestrator) CycleInactivityTimer(delta int) error {
	current := o.Store.Settings().InactivityTimer
	next := cycle(models.InactivityTimers, indexOf(models.InactivityTimers, current), delta)
	return o.update(models.GlobalSettingsOptional{InactivityTimer: &next})
}

func (o *Orchestrator) update(update models.GlobalSettingsOptional) error {
	if err := o.Store.UpdateSettings(update); err != nil {
		o.notify("", err)
		return err
	}
	return nil
}

func (o *Orchestrator) confirmReset() {
	o.Confirm.Open("Erase all accounts, addresses, nodes and settings?", "Reset", func() {
		if err := o.DangerZone.ResetAppData(); err != nil {
			o.notify("", fmt.Errorf("reset app data: %w", err))
			return
		}
		o.Cursor = Row_FiatCurrency
		if o.OnReset != nil {
			o.OnReset()
		}
		o.notify("app data reset", nil)
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
	switch key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < rowCount-1 {
			o.Cursor++
		}
	case "left", "h":
		o.change(-1)
	case "right", "l", "enter", " ":
		if o.Cursor == Row_ResetAppData {
			if key == "enter" {
				o.confirmReset()
				return true
			}
			return false
		}
		o.change(1)
	default:
		return false
	}
	return true
}

func (o *Orchestrator) change(delta int) {
	switch o.Cursor {
	case Row_FiatCurrency:
		o.CycleFiatCurrency(delta)
	case Row_InactivityTimer:
		o.CycleInactivityTimer(delta)
	}
}

func (o *Orchestrator) HelpLine() string {
	if o.Confirm.Active {
		return "←/→ choose  enter confirm  esc cancel"
	}
	if o.Cursor == Row_ResetAppData {
		return "↑/↓ move  enter reset app data"
	}
	return "↑/↓ move  ←/→ change"
}

func (o *Orchestrator) Render(focused bool) *dom.Node {
	settings := o.Store.Settings()
	titleStyle := styles.Style{Bold: true}
	if focused {
		titleStyle.Color = colors.PURPLE_PRIMARY
	}
	return dom.Div(dom.DivProps{},
		dom.Text("General", titleStyle),
		o.renderRow(focused, Row_FiatCurrency, "Fiat currency", settings.FiatCurrency),
		o.renderRow(focused, Row_InactivityTimer, "Auto-lock after", fmt.Sprintf("%d min", settings.InactivityTimer)),
		dom.Br(),
		dom.Text("Danger Zone", styles.Style{Bold: true, Color: colors.RED_ERROR}),
		o.renderRow(focused, Row_ResetAppData, "Reset app data", ""),
		o.Confirm.Render(),
	)
}

func (o *Orchestrator) renderRow(focused bool, row Row, label string, value string) *dom.Node {
	prefix := "    "
	style := styles.Style{}
	if focused && o.Cursor == row {
		prefix = "  > "
		style = styles.Style{Bold: true, Color: colors.PURPLE_PRIMARY}
	}
	if value == "" {
		return dom.Text(prefix+label, style)
	}
	return dom.Text(fmt.Sprintf("%s%-16s < %s >", prefix, label, value), style)
}

func indexOf[T comparable](list []T, v T) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}

// cycle returns the element delta steps from index i. An unknown
// current value (i < 0) starts from the first element.
func cycle[T any](list []T, i int, delta int) T {
	if i < 0 {
		return list[0]
	}
	n := len(list)
	return list[((i+delta)%n+n)%n]
}
