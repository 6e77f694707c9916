package app

import (
	"time"

	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/walletui/app/accounts"
	"github.com/xhd2015/walletui/app/addressbook"
	"github.com/xhd2015/walletui/app/general"
	"github.com/xhd2015/walletui/app/help"
	"github.com/xhd2015/walletui/app/nodes"
	"github.com/xhd2015/walletui/component"
	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/models"
	"github.com/xhd2015/walletui/models/states"
)

const (
	CtrlCExitDelayMs = 1000
)

// Panel is one settings section. Capturing panels (an open editor or
// confirmation) receive every key before global shortcuts apply, except
// the tab shortcuts, which only a confirmation blocks.
type Panel interface {
	HandleKey(key string) bool
	Capturing() bool
	Confirming() bool
	HelpLine() string
	Render(focused bool) *dom.Node
}

type Options struct {
	Storage          string
	Layout           states.Layout
	MobileBreakpoint int
	StartTab         states.SettingsTab
	Features         models.Features
}

type State struct {
	Manager *data.Manager

	Layout           states.Layout
	MobileBreakpoint int
	// Width is the last known terminal width.
	Width int

	// Tab is the active tab on mobile and the focused panel on desktop.
	Tab states.SettingsTab

	Accounts    *accounts.Orchestrator
	AddressBook *addressbook.Orchestrator
	Nodes       *nodes.Orchestrator
	General     *general.Orchestrator

	StatusBar StatusBar

	ShowHelp   bool
	HelpScroll int

	Quit    func()
	Refresh func()

	LastCtrlC time.Time

	features models.Features
}

func NewState(manager *data.Manager, opts Options) *State {
	state := &State{
		Manager:          manager,
		Layout:           opts.Layout,
		MobileBreakpoint: opts.MobileBreakpoint,
		Tab:              opts.StartTab,
		StatusBar: StatusBar{
			Storage: opts.Storage,
		},
		features: opts.Features,
	}
	state.initPanels()
	state.General = general.New(manager.Settings, manager)
	state.General.OnNotify = state.Notify
	state.General.OnReset = state.initPanels
	return state
}

// initPanels creates the data panels. Called again after app data reset
// so no panel keeps a selection into wiped data.
func (state *State) initPanels() {
	m := state.Manager
	state.Accounts = accounts.New(m.Accounts, accounts.Props{
		Deletable:              true,
		Copyable:               true,
		PrivacyCheckboxEnabled: state.features.PrivateTags,
	})
	state.Accounts.OnNotify = state.Notify

	state.AddressBook = addressbook.New(m.AddressBook, m.Networks)
	state.AddressBook.OnNotify = state.Notify

	state.Nodes = nodes.New(m.Networks, m.AddressBook)
	state.Nodes.OnNotify = state.Notify
}

func (state *State) SetTab(tab states.SettingsTab) {
	state.Tab = tab
}

func (state *State) DeviceClass() states.DeviceClass {
	return state.Layout.DeviceClass(state.Width, state.MobileBreakpoint)
}

// CycleLayout switches auto -> mobile -> desktop -> auto.
func (state *State) CycleLayout() {
	state.Layout = (state.Layout + 1) % 3
	state.Notify("layout: "+state.Layout.String(), nil)
}

func (state *State) Panel(tab states.SettingsTab) Panel {
	switch tab {
	case states.SettingsTab_Accounts:
		return state.Accounts
	case states.SettingsTab_Addresses:
		return state.AddressBook
	case states.SettingsTab_Nodes:
		return state.Nodes
	case states.SettingsTab_General:
		return state.General
	}
	panic("unknown settings tab: " + tab.String())
}

func (state *State) ActivePanel() Panel {
	return state.Panel(state.Tab)
}

// Notify shows a message or an error in the status bar.
func (state *State) Notify(message string, err error) {
	if err != nil {
		state.StatusBar.Error = err.Error()
		state.StatusBar.Message = ""
		return
	}
	state.StatusBar.Error = ""
	state.StatusBar.Message = message
}

func (state *State) HandleKey(key string) {
	if key == "ctrl+c" {
		if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
			state.quit()
			return
		}
		state.LastCtrlC = time.Now()
		if state.Refresh != nil {
			go func() {
				time.Sleep(time.Millisecond * CtrlCExitDelayMs)
				state.Refresh()
			}()
		}
		return
	}

	if state.ShowHelp {
		switch key {
		case "esc", "q", "?":
			state.ShowHelp = false
		case "up", "k":
			if state.HelpScroll > 0 {
				state.HelpScroll--
			}
		case "down", "j":
			if state.HelpScroll < help.GetTotalLines()-1 {
				state.HelpScroll++
			}
		}
		return
	}

	panel := state.ActivePanel()
	if !panel.Confirming() {
		if tab, ok := tabShortcut(key, state.Tab); ok {
			state.SetTab(tab)
			return
		}
	}
	if panel.Capturing() {
		panel.HandleKey(key)
		return
	}

	switch key {
	case "q":
		state.quit()
		return
	case "?":
		state.ShowHelp = true
		state.HelpScroll = 0
		return
	case "tab":
		state.SetTab(state.Tab.Next(1))
		return
	case "shift+tab":
		state.SetTab(state.Tab.Next(-1))
		return
	case "L":
		state.CycleLayout()
		return
	case "1", "2", "3", "4":
		state.SetTab(states.SettingsTabs[key[0]-'1'])
		return
	}
	panel.HandleKey(key)
}

// tabShortcut maps keys that switch tabs even while a panel edits:
// f1-f4 jump, ctrl+left/ctrl+right cycle.
func tabShortcut(key string, current states.SettingsTab) (states.SettingsTab, bool) {
	switch key {
	case "f1", "f2", "f3", "f4":
		return states.SettingsTabs[key[1]-'1'], true
	case "ctrl+right":
		return current.Next(1), true
	case "ctrl+left":
		return current.Next(-1), true
	}
	return current, false
}

func (state *State) quit() {
	if state.Quit != nil {
		state.Quit()
	}
}

func App(state *State, window *dom.Window) *dom.Node {
	height := 0
	if window != nil {
		if window.Width > 0 {
			state.Width = window.Width
		}
		height = window.Height
	}

	var body *dom.Node
	if state.ShowHelp {
		viewport := height - FIXED_FRAME_HEIGHT
		if viewport <= 0 {
			viewport = help.GetTotalLines()
		}
		body = help.Help(help.HelpProps{
			ScrollOffset:   state.HelpScroll,
			ViewportHeight: viewport,
		})
	} else {
		deviceClass := state.DeviceClass()
		state.AddressBook.ViewportHeight = 0
		if deviceClass == states.DeviceClass_Mobile && height > 0 {
			state.AddressBook.ViewportHeight = max(height-FIXED_FRAME_HEIGHT-MOBILE_CHROME_HEIGHT, 3)
		}
		body = SelectLayout(state, deviceClass)
	}

	return dom.Div(dom.DivProps{
		Focusable: true,
		Focused:   true,
		OnKeyDown: func(event *dom.DOMEvent) {
			key := component.KeyOf(event)
			if key == "" {
				return
			}
			state.HandleKey(key)
		},
	},
		body,
		AppStatusBar(state),
		func() *dom.Node {
			if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
				return dom.Text("press Ctrl-C again to exit", styles.Style{
					Bold:  true,
					Color: "1",
				})
			}
			if state.ShowHelp {
				return dom.Text("↑/↓ scroll  esc close help")
			}
			return dom.Text(state.ActivePanel().HelpLine() + "  f1-f4 tabs  ? help  q quit")
		}(),
	)
}
