package storage

import (
	"context"
	"errors"

	"github.com/xhd2015/walletui/models"
)

var ErrNotFound = errors.New("not found")

type AccountService interface {
	List(ctx context.Context) ([]models.Account, error)
	Add(ctx context.Context, account models.Account) error
	Update(ctx context.Context, uuid string, update models.AccountOptional) error
	Delete(ctx context.Context, uuid string) error
}

type AddressBookService interface {
	List(ctx context.Context) ([]models.AddressBookEntry, error)
	Add(ctx context.Context, entry models.AddressBookEntry) error
	Update(ctx context.Context, uuid string, update models.AddressBookEntryOptional) error
	Delete(ctx context.Context, uuid string) error
}

// NodeService persists custom nodes. Nodes are keyed by (network, name).
type NodeService interface {
	List(ctx context.Context) ([]models.CustomNodeConfig, error)
	Add(ctx context.Context, node models.CustomNodeConfig) error
	Update(ctx context.Context, network string, name string, node models.CustomNodeConfig) error
	Delete(ctx context.Context, network string, name string) error
}

type SettingsService interface {
	// Get returns nil when no settings were saved yet.
	Get(ctx context.Context) (*models.GlobalSettings, error)
	Save(ctx context.Context, settings models.GlobalSettings) error
}

// ResetService wipes all persisted app data.
type ResetService interface {
	Reset(ctx context.Context) error
}

type Services struct {
	Accounts    AccountService
	AddressBook AddressBookService
	Nodes       NodeService
	Settings    SettingsService
	Reset       ResetService
}
