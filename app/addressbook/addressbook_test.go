package addressbook

import (
	"fmt"
	"strings"
	"testing"

	"github.com/xhd2015/go-dom-tui/charm/renderer"
	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/data/storage/memory"
	"github.com/xhd2015/walletui/models"
)

const addr = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"

func newTestOrchestrator(t *testing.T) (*Orchestrator, *data.Manager) {
	t.Helper()
	m := data.NewManager(memory.New().Services())
	if err := m.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return New(m.AddressBook, m.Networks), m
}

func typeText(o *Orchestrator, s string) {
	for _, r := range s {
		o.HandleKey(string(r))
	}
}

func TestAddFlow(t *testing.T) {
	o, m := newTestOrchestrator(t)

	o.HandleKey("a")
	if !o.Adding() {
		t.Fatalf("expected add view")
	}
	typeText(o, "Alice")
	o.HandleKey("tab")
	typeText(o, addr)
	o.HandleKey("tab")
	o.HandleKey("right") // Ethereum -> next network id
	o.HandleKey("enter")

	if o.Adding() {
		t.Fatalf("expected list view after create, error: %q", o.AddForm.Error)
	}
	entries := m.AddressBook.AddressBook()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Address != "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed" {
		t.Errorf("expected checksummed address, got %s", entries[0].Address)
	}
	if entries[0].Network != "Goerli" {
		t.Errorf("expected network after Ethereum in id order, got %s", entries[0].Network)
	}
}

func TestAddInvalidAddressStaysOpen(t *testing.T) {
	o, m := newTestOrchestrator(t)
	o.StartAdding()
	typeText(o, "Bob")
	o.HandleKey("tab")
	typeText(o, "0xnothex")
	o.HandleKey("enter")

	if !o.Adding() {
		t.Fatalf("invalid address should keep the add view open")
	}
	if !strings.Contains(o.AddForm.Error, "invalid address") {
		t.Errorf("unexpected error %q", o.AddForm.Error)
	}
	if len(m.AddressBook.AddressBook()) != 0 {
		t.Errorf("nothing should be stored")
	}
}

func TestCancelAdd(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	o.StartAdding()
	o.HandleKey("esc")
	if o.Adding() {
		t.Errorf("esc should dismiss the add view")
	}
}

func TestRelabelAndDelete(t *testing.T) {
	o, m := newTestOrchestrator(t)
	if _, err := m.AddressBook.CreateAddressBooks(models.AddressBookEntry{Label: "Old", Address: addr}); err != nil {
		t.Fatalf("CreateAddressBooks: %v", err)
	}

	o.HandleKey("e")
	if !o.Capturing() {
		t.Fatalf("inline edit should capture keys")
	}
	o.HandleKey("ctrl+u")
	typeText(o, "New")
	o.HandleKey("enter")
	if o.Inline != nil {
		t.Fatalf("expected inline edit to close, error: %q", o.Inline.Error)
	}
	if got := m.AddressBook.AddressBook()[0].Label; got != "New" {
		t.Errorf("expected relabel to New, got %q", got)
	}

	o.HandleKey("d")
	if !o.Confirm.Active {
		t.Fatalf("expected delete confirmation")
	}
	o.HandleKey("left")
	o.HandleKey("enter")
	if len(m.AddressBook.AddressBook()) != 0 {
		t.Errorf("expected entry to be deleted")
	}
}

func TestRenderList(t *testing.T) {
	o, m := newTestOrchestrator(t)
	out := renderer.NewInteractiveCharmRenderer().Render(o.Render(true))
	if !strings.Contains(out, "Address book is empty") {
		t.Errorf("expected empty message, got:\n%s", out)
	}

	if _, err := m.AddressBook.CreateAddressBooks(models.AddressBookEntry{Label: "Carol", Address: addr, Network: "Polygon"}); err != nil {
		t.Fatalf("CreateAddressBooks: %v", err)
	}
	out = renderer.NewInteractiveCharmRenderer().Render(o.Render(true))
	if !strings.Contains(out, "Carol") || !strings.Contains(out, "[Polygon]") {
		t.Errorf("expected entry in list, got:\n%s", out)
	}
}

func TestListScrollsWithViewport(t *testing.T) {
	o, m := newTestOrchestrator(t)
	for i := 0; i < 8; i++ {
		_, err := m.AddressBook.CreateAddressBooks(models.AddressBookEntry{
			Label:   fmt.Sprintf("friend-%d", i),
			Address: "0x" + strings.Repeat("0", 39) + fmt.Sprint(i+1),
		})
		if err != nil {
			t.Fatalf("CreateAddressBooks: %v", err)
		}
	}
	o.ViewportHeight = 4
	for i := 0; i < 6; i++ {
		o.HandleKey("down")
	}
	out := renderer.NewInteractiveCharmRenderer().Render(o.Render(true))
	if !strings.Contains(out, "friend-6") {
		t.Errorf("selected entry should be visible, got:\n%s", out)
	}
	if strings.Contains(out, "friend-0") || !strings.Contains(out, "items above") {
		t.Errorf("expected list to scroll, got:\n%s", out)
	}
}

func TestCreateDismissesThroughCallback(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	o.StartAdding()
	dismissed := 0
	if err := o.Create(func() { dismissed++ }); err == nil {
		t.Fatalf("expected empty form to fail")
	}
	if dismissed != 0 {
		t.Fatalf("failed create should not dismiss")
	}

	typeText(o, "Alice")
	o.HandleKey("tab")
	typeText(o, addr)
	if err := o.Create(func() { dismissed++ }); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dismissed != 1 {
		t.Errorf("expected one dismiss call, got %d", dismissed)
	}
	if !o.Adding() {
		t.Errorf("expected flip state to be left to the callback")
	}
}

func TestRenderLeavesCursorAlone(t *testing.T) {
	o, m := newTestOrchestrator(t)
	if _, err := m.AddressBook.CreateAddressBooks(models.AddressBookEntry{Label: "Carol", Address: addr}); err != nil {
		t.Fatalf("CreateAddressBooks: %v", err)
	}
	o.Cursor = 5
	out := renderer.NewInteractiveCharmRenderer().Render(o.Render(true))
	if o.Cursor != 5 {
		t.Errorf("rendering changed the cursor to %d", o.Cursor)
	}
	if !strings.Contains(out, "> Carol") {
		t.Errorf("expected the last entry to be highlighted, got:\n%s", out)
	}
}
