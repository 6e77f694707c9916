package states

import (
	"fmt"
	"strings"
)

type SettingsTab int

const (
	SettingsTab_Accounts SettingsTab = iota
	SettingsTab_Addresses
	SettingsTab_Nodes
	SettingsTab_General
)

// SettingsTabs is the tab bar order.
var SettingsTabs = []SettingsTab{
	SettingsTab_Accounts,
	SettingsTab_Addresses,
	SettingsTab_Nodes,
	SettingsTab_General,
}

func (t SettingsTab) String() string {
	switch t {
	case SettingsTab_Accounts:
		return "accounts"
	case SettingsTab_Addresses:
		return "addresses"
	case SettingsTab_Nodes:
		return "nodes"
	case SettingsTab_General:
		return "general"
	default:
		panic(fmt.Errorf("unknown settings tab: %d", int(t)))
	}
}

func (t SettingsTab) Title() string {
	switch t {
	case SettingsTab_Accounts:
		return "Accounts"
	case SettingsTab_Addresses:
		return "Address Book"
	case SettingsTab_Nodes:
		return "Network & Nodes"
	case SettingsTab_General:
		return "General"
	default:
		panic(fmt.Errorf("unknown settings tab: %d", int(t)))
	}
}

// Next returns the tab after t in tab bar order, wrapping around.
func (t SettingsTab) Next(delta int) SettingsTab {
	n := len(SettingsTabs)
	idx := ((int(t)+delta)%n + n) % n
	return SettingsTabs[idx]
}

func ParseSettingsTab(s string) (SettingsTab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "accounts":
		return SettingsTab_Accounts, nil
	case "addresses", "address-book":
		return SettingsTab_Addresses, nil
	case "nodes", "networks":
		return SettingsTab_Nodes, nil
	case "general":
		return SettingsTab_General, nil
	}
	return 0, fmt.Errorf("unknown tab %q, available: accounts, addresses, nodes, general", s)
}
