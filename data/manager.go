package data

import (
	"context"
	"fmt"

	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/log"
)

// Manager holds the cached views of all stores shared by the settings
// panels.
type Manager struct {
	Accounts    *AccountsManager
	AddressBook *AddressBookManager
	Networks    *NetworkManager
	Settings    *SettingsManager

	resetService storage.ResetService
}

func NewManager(services storage.Services) *Manager {
	return &Manager{
		Accounts:     NewAccountsManager(services.Accounts),
		AddressBook:  NewAddressBookManager(services.AddressBook),
		Networks:     NewNetworkManager(services.Nodes),
		Settings:     NewSettingsManager(services.Settings),
		resetService: services.Reset,
	}
}

func (m *Manager) Init() error {
	ctx := context.Background()
	if err := m.Accounts.Init(ctx); err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	if err := m.AddressBook.Init(ctx); err != nil {
		return fmt.Errorf("failed to load address book: %w", err)
	}
	if err := m.Networks.Init(ctx); err != nil {
		return fmt.Errorf("failed to load nodes: %w", err)
	}
	if err := m.Settings.Init(ctx); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	return nil
}

// ResetAppData wipes all persisted data and reloads the cached views.
func (m *Manager) ResetAppData() error {
	ctx := context.Background()
	if err := m.resetService.Reset(ctx); err != nil {
		log.Errorf(ctx, "reset app data: %v", err)
		return err
	}
	log.Infof(ctx, "app data reset")
	return m.Init()
}
