package component

import "github.com/xhd2015/go-dom-tui/dom"

// KeyOf normalizes a key event to a single name such as "enter", "up",
// "ctrl+c", "tab", "backspace", or the typed text for printable keys.
// Alt-modified text is prefixed with "alt+".
func KeyOf(event *dom.DOMEvent) string {
	if event == nil || event.KeydownEvent == nil {
		return ""
	}
	keyEvent := event.KeydownEvent
	switch keyEvent.KeyType {
	case "":
	case dom.KeyTypeSpace:
		return " "
	default:
		// named key types are already spelled "enter", "ctrl+w" and so on
		return string(keyEvent.KeyType)
	}
	if len(keyEvent.Runes) == 0 {
		return ""
	}
	key := string(keyEvent.Runes)
	if keyEvent.Alt {
		return "alt+" + key
	}
	return key
}

// IsPrintable reports whether key is typed text rather than a named key.
func IsPrintable(key string) bool {
	runes := []rune(key)
	if len(runes) != 1 {
		return false
	}
	return runes[0] >= 0x20 && runes[0] != 0x7f
}
