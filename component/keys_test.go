package component

import (
	"testing"

	"github.com/xhd2015/go-dom-tui/dom"
)

func keyEvent(keyType dom.KeyType, runes string, alt bool) *dom.DOMEvent {
	return &dom.DOMEvent{
		Type: dom.EventTypeKeydown,
		KeydownEvent: &dom.KeydownEvent{
			KeyType: keyType,
			Runes:   []rune(runes),
			Alt:     alt,
		},
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		event *dom.DOMEvent
		want  string
	}{
		{keyEvent(dom.KeyTypeEnter, "", false), "enter"},
		{keyEvent(dom.KeyTypeTab, "", false), "tab"},
		{keyEvent(dom.KeyTypeBackspace, "", false), "backspace"},
		{keyEvent(dom.KeyTypeCtrlW, "", false), "ctrl+w"},
		{keyEvent(dom.KeyTypeSpace, " ", false), " "},
		{keyEvent("", "q", false), "q"},
		{keyEvent("", "1", true), "alt+1"},
		{keyEvent("", "", false), ""},
		{&dom.DOMEvent{Type: dom.EventTypeResize}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := KeyOf(tt.event); got != tt.want {
			t.Errorf("KeyOf = %q, want %q", got, tt.want)
		}
	}
}
