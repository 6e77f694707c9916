package models

import (
	"time"
)

// DefaultNetwork is the network selected when the settings screen opens.
const DefaultNetwork = "Ethereum"

type Account struct {
	UUID       string    `json:"uuid"`
	Label      string    `json:"label"`
	Address    string    `json:"address"`
	Network    string    `json:"network"`
	WalletType string    `json:"wallet_type"`
	Private    bool      `json:"private"`
	CreateTime time.Time `json:"create_time"`
}

type AccountOptional struct {
	Label   *string `json:"label"`
	Private *bool   `json:"private"`
}

func (c *Account) Update(optional *AccountOptional) {
	if optional == nil {
		return
	}
	if optional.Label != nil {
		c.Label = *optional.Label
	}
	if optional.Private != nil {
		c.Private = *optional.Private
	}
}

type AddressBookEntry struct {
	UUID       string    `json:"uuid"`
	Label      string    `json:"label"`
	Address    string    `json:"address"`
	Notes      string    `json:"notes"`
	Network    string    `json:"network"`
	CreateTime time.Time `json:"create_time"`
}

type AddressBookEntryOptional struct {
	Label *string `json:"label"`
	Notes *string `json:"notes"`
}

func (c *AddressBookEntry) Update(optional *AddressBookEntryOptional) {
	if optional == nil {
		return
	}
	if optional.Label != nil {
		c.Label = *optional.Label
	}
	if optional.Notes != nil {
		c.Notes = *optional.Notes
	}
}

type NodeAuth struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CustomNodeConfig is a node endpoint of a network. Names are unique
// within one network.
type CustomNodeConfig struct {
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	Auth     *NodeAuth `json:"auth,omitempty"`
	Network  string    `json:"network"`
	IsCustom bool      `json:"is_custom"`
}

func (c *CustomNodeConfig) Clone() *CustomNodeConfig {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Auth != nil {
		auth := *c.Auth
		clone.Auth = &auth
	}
	return &clone
}

type Network struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	ChainID int64               `json:"chain_id"`
	Symbol  string              `json:"symbol"`
	Nodes   []*CustomNodeConfig `json:"nodes"`
}

func (c *Network) NodeByName(name string) *CustomNodeConfig {
	if c == nil {
		return nil
	}
	for _, node := range c.Nodes {
		if node.Name == name {
			return node
		}
	}
	return nil
}

func (c *Network) CustomNodes() []*CustomNodeConfig {
	var nodes []*CustomNodeConfig
	for _, node := range c.Nodes {
		if node.IsCustom {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

type GlobalSettings struct {
	FiatCurrency    string `json:"fiat_currency"`
	InactivityTimer int    `json:"inactivity_timer"` // minutes
}

type GlobalSettingsOptional struct {
	FiatCurrency    *string `json:"fiat_currency"`
	InactivityTimer *int    `json:"inactivity_timer"`
}

func (c *GlobalSettings) Update(optional *GlobalSettingsOptional) {
	if optional == nil {
		return
	}
	if optional.FiatCurrency != nil {
		c.FiatCurrency = *optional.FiatCurrency
	}
	if optional.InactivityTimer != nil {
		c.InactivityTimer = *optional.InactivityTimer
	}
}

var FiatCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CNY"}

// InactivityTimers lists the selectable auto-lock delays in minutes.
var InactivityTimers = []int{1, 3, 5, 10, 30}

func DefaultSettings() GlobalSettings {
	return GlobalSettings{
		FiatCurrency:    "USD",
		InactivityTimer: 3,
	}
}

type Features struct {
	PrivateTags bool `json:"private_tags" mapstructure:"private_tags"`
}

type Config struct {
	StorageType      string   `json:"storage_type" mapstructure:"storage_type"`
	ServerAddr       string   `json:"server_addr" mapstructure:"server_addr"`
	ServerToken      string   `json:"server_token" mapstructure:"server_token"`
	RunningPID       int      `json:"running_pid" mapstructure:"running_pid"`
	Layout           string   `json:"layout" mapstructure:"layout"`
	MobileBreakpoint int      `json:"mobile_breakpoint" mapstructure:"mobile_breakpoint"`
	StartTab         string   `json:"start_tab" mapstructure:"start_tab"`
	Features         Features `json:"features" mapstructure:"features"`
}
