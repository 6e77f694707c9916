package app

import (
	"strings"
	"testing"

	"github.com/xhd2015/go-dom-tui/charm/renderer"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/data/storage/memory"
	"github.com/xhd2015/walletui/models"
	"github.com/xhd2015/walletui/models/states"
)

func newTestState(t *testing.T, layout states.Layout) *State {
	t.Helper()
	m := data.NewManager(memory.New().Services())
	if err := m.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for i, network := range []string{"Sepolia", "Ethereum"} {
		_, err := m.AddressBook.CreateAddressBooks(models.AddressBookEntry{
			Label:   "friend " + network,
			Address: "0x" + strings.Repeat("0", 39) + string(rune('1'+i)),
			Network: network,
		})
		if err != nil {
			t.Fatalf("CreateAddressBooks: %v", err)
		}
	}
	return NewState(m, Options{
		Storage: "memory",
		Layout:  layout,
	})
}

func render(state *State, width int) string {
	return renderer.NewInteractiveCharmRenderer().Render(App(state, &dom.Window{Width: width, Height: 200}))
}

func TestSelectLayoutByWidth(t *testing.T) {
	state := newTestState(t, states.Layout_Auto)

	out := render(state, 60)
	if strings.Contains(out, "Settings") && strings.Contains(out, "General") && strings.Contains(out, "Danger Zone") {
		t.Fatalf("narrow terminal should render only the active tab, got:\n%s", out)
	}
	if !strings.Contains(out, "[Accounts]") {
		t.Errorf("expected highlighted accounts tab, got:\n%s", out)
	}

	out = render(state, 120)
	for _, want := range []string{"Settings", "Accounts", "Address Book", "Network & Nodes", "General"} {
		if !strings.Contains(out, want) {
			t.Errorf("desktop should render %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[Accounts]") {
		t.Errorf("desktop should not render the tab bar")
	}
}

func TestDesktopPanelOrder(t *testing.T) {
	state := newTestState(t, states.Layout_Desktop)
	out := render(state, 200)
	last := -1
	for _, title := range []string{"Accounts", "Address Book", "Network & Nodes", "General"} {
		idx := strings.Index(out, title)
		if idx <= last {
			t.Fatalf("expected %q after previous panel, got:\n%s", title, out)
		}
		last = idx
	}
}

func TestSetTabRendersOnlyThatPanel(t *testing.T) {
	state := newTestState(t, states.Layout_Mobile)

	state.SetTab(states.SettingsTab_General)
	out := render(state, 60)
	if !strings.Contains(out, "Danger Zone") || strings.Contains(out, "friend Sepolia") {
		t.Errorf("expected only general panel, got:\n%s", out)
	}

	state.SetTab(states.SettingsTab_Addresses)
	out = render(state, 60)
	if !strings.Contains(out, "friend Sepolia") || strings.Contains(out, "Danger Zone") {
		t.Errorf("expected only address book panel, got:\n%s", out)
	}
}

func TestPanelStateSurvivesTabSwitch(t *testing.T) {
	state := newTestState(t, states.Layout_Mobile)

	state.HandleKey("3")
	if state.Tab != states.SettingsTab_Nodes {
		t.Fatalf("expected nodes tab, got %s", state.Tab)
	}
	// rows: Ethereum add, Sepolia add
	state.HandleKey("down")
	state.HandleKey("enter")
	if !state.Nodes.Editing() || state.Nodes.Selection.NetworkID != "Sepolia" {
		t.Fatalf("expected node editor on Sepolia")
	}
	typeKeys(state, "my1")
	if state.Tab != states.SettingsTab_Nodes {
		t.Fatalf("digits typed into the editor should not switch tabs")
	}

	state.HandleKey("f2")
	if state.Tab != states.SettingsTab_Addresses {
		t.Fatalf("f2 should switch tabs while editing, got %s", state.Tab)
	}
	state.HandleKey("a")
	if !state.AddressBook.Adding() {
		t.Fatalf("expected address book add view")
	}

	state.HandleKey("ctrl+right")
	if state.Tab != states.SettingsTab_Nodes {
		t.Fatalf("ctrl+right should move to the next tab, got %s", state.Tab)
	}
	if !state.Nodes.Editing() || state.Nodes.Selection.NetworkID != "Sepolia" {
		t.Errorf("node editor state lost after tab switch")
	}
	if got := state.Nodes.Form.Value(0); got != "my1" {
		t.Errorf("expected typed name to survive, got %q", got)
	}
	out := render(state, 60)
	if !strings.Contains(out, "Add node to Sepolia") {
		t.Errorf("expected node editor, got:\n%s", out)
	}

	state.HandleKey("f2")
	if !state.AddressBook.Adding() {
		t.Errorf("address book flip state lost after tab switch")
	}
}

func TestTabShortcutBlockedByConfirm(t *testing.T) {
	state := newTestState(t, states.Layout_Mobile)
	state.HandleKey("2")
	state.HandleKey("d")
	if !state.AddressBook.Confirm.Active {
		t.Fatalf("expected delete confirmation")
	}
	state.HandleKey("f1")
	if state.Tab != states.SettingsTab_Addresses {
		t.Fatalf("confirm dialog should hold the tab, got %s", state.Tab)
	}
	state.HandleKey("esc")
	state.HandleKey("f1")
	if state.Tab != states.SettingsTab_Accounts {
		t.Errorf("expected accounts tab after closing the dialog, got %s", state.Tab)
	}
}

func typeKeys(state *State, text string) {
	for _, r := range text {
		state.HandleKey(string(r))
	}
}

func TestLayoutSwitchKeepsState(t *testing.T) {
	state := newTestState(t, states.Layout_Auto)
	render(state, 60)

	state.HandleKey("2")
	state.HandleKey("d")
	if !state.AddressBook.Confirm.Active {
		t.Fatalf("expected delete confirmation")
	}

	out := render(state, 160)
	if !strings.Contains(out, "Network & Nodes") || !strings.Contains(out, "Delete friend Sepolia?") {
		t.Errorf("expected desktop with pending confirmation, got:\n%s", out)
	}
	if state.Tab != states.SettingsTab_Addresses {
		t.Errorf("tab lost on layout switch")
	}

	state.HandleKey("esc")
	out = render(state, 60)
	if len(state.Manager.AddressBook.AddressBook()) != 2 || !strings.Contains(out, "friend Ethereum") {
		t.Errorf("store data lost on layout switch, got:\n%s", out)
	}
}

func TestCycleLayout(t *testing.T) {
	state := newTestState(t, states.Layout_Auto)
	state.Width = 200
	state.HandleKey("L")
	if state.DeviceClass() != states.DeviceClass_Mobile {
		t.Errorf("expected forced mobile")
	}
	state.HandleKey("L")
	state.HandleKey("L")
	if state.Layout != states.Layout_Auto || state.DeviceClass() != states.DeviceClass_Desktop {
		t.Errorf("expected auto desktop, got %s", state.Layout)
	}
}

func TestGlobalKeys(t *testing.T) {
	state := newTestState(t, states.Layout_Mobile)
	var quit bool
	state.Quit = func() { quit = true }

	state.HandleKey("tab")
	state.HandleKey("tab")
	if state.Tab != states.SettingsTab_Nodes {
		t.Errorf("expected nodes tab, got %s", state.Tab)
	}
	state.HandleKey("shift+tab")
	if state.Tab != states.SettingsTab_Addresses {
		t.Errorf("expected addresses tab, got %s", state.Tab)
	}

	state.HandleKey("?")
	if !state.ShowHelp {
		t.Fatalf("expected help")
	}
	out := render(state, 60)
	if !strings.Contains(out, "Network & Nodes") || !strings.Contains(out, "ctrl+d") {
		t.Errorf("expected help content, got:\n%s", out)
	}
	state.HandleKey("q")
	if state.ShowHelp || quit {
		t.Fatalf("q in help should close help only")
	}

	// typing into a capturing panel does not trigger shortcuts
	state.HandleKey("a")
	state.HandleKey("q")
	if quit {
		t.Fatalf("q while adding should be typed")
	}
	if got := state.AddressBook.AddForm.Value(0); got != "q" {
		t.Errorf("expected q typed into label, got %q", got)
	}
	state.HandleKey("esc")
	state.HandleKey("q")
	if !quit {
		t.Errorf("expected quit")
	}
}

func TestErrorsReachStatusBar(t *testing.T) {
	state := newTestState(t, states.Layout_Mobile)
	state.SetTab(states.SettingsTab_Addresses)
	state.HandleKey("a")
	state.HandleKey("x")
	state.HandleKey("tab")
	state.HandleKey("z")
	state.HandleKey("enter")
	if !strings.Contains(state.StatusBar.Error, "invalid address") {
		t.Errorf("expected invalid address in status bar, got %q", state.StatusBar.Error)
	}
	state.Notify("ok", nil)
	if state.StatusBar.Error != "" || state.StatusBar.Message != "ok" {
		t.Errorf("expected message to replace error")
	}
}

func TestResetRecreatesPanels(t *testing.T) {
	state := newTestState(t, states.Layout_Mobile)
	state.Nodes.SelectForEdit("Ethereum", nil)
	before := state.Nodes

	state.SetTab(states.SettingsTab_General)
	state.General.Cursor = 2
	state.HandleKey("enter")
	state.HandleKey("y")

	if state.Nodes == before || state.Nodes.Editing() {
		t.Errorf("expected fresh nodes panel after reset")
	}
	if len(state.Manager.AddressBook.AddressBook()) != 0 {
		t.Errorf("expected empty address book")
	}
	if state.StatusBar.Message != "app data reset" {
		t.Errorf("unexpected status %q", state.StatusBar.Message)
	}
}
