package data

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/log"
	"github.com/xhd2015/walletui/models"
)

type AccountsManager struct {
	service  storage.AccountService
	accounts []*models.Account
}

func NewAccountsManager(service storage.AccountService) *AccountsManager {
	return &AccountsManager{service: service}
}

func (m *AccountsManager) Init(ctx context.Context) error {
	accounts, err := m.service.List(ctx)
	if err != nil {
		return err
	}
	m.accounts = make([]*models.Account, 0, len(accounts))
	for i := range accounts {
		m.accounts = append(m.accounts, &accounts[i])
	}
	return nil
}

func (m *AccountsManager) Accounts() []*models.Account {
	return m.accounts
}

func (m *AccountsManager) Get(uuid string) *models.Account {
	for _, account := range m.accounts {
		if account.UUID == uuid {
			return account
		}
	}
	return nil
}

// AddAccount validates the address, assigns an id and persists the account.
func (m *AccountsManager) AddAccount(account models.Account) (*models.Account, error) {
	ctx := context.Background()
	address, err := NormalizeAddress(account.Address)
	if err != nil {
		return nil, err
	}
	account.Address = address
	account.Label = strings.TrimSpace(account.Label)
	if account.Network == "" {
		account.Network = models.DefaultNetwork
	}
	if account.UUID == "" {
		account.UUID = uuid.NewString()
	}
	if account.CreateTime.IsZero() {
		account.CreateTime = time.Now()
	}
	if err := m.service.Add(ctx, account); err != nil {
		log.Errorf(ctx, "add account %s: %v", account.Address, err)
		return nil, err
	}
	m.accounts = append(m.accounts, &account)
	return &account, nil
}

func (m *AccountsManager) DeleteAccount(uuid string) error {
	ctx := context.Background()
	if err := m.service.Delete(ctx, uuid); err != nil {
		log.Errorf(ctx, "delete account %s: %v", uuid, err)
		return err
	}
	for i, account := range m.accounts {
		if account.UUID == uuid {
			m.accounts = append(m.accounts[:i], m.accounts[i+1:]...)
			break
		}
	}
	return nil
}

func (m *AccountsManager) SetAccountPrivate(uuid string, private bool) error {
	ctx := context.Background()
	account := m.Get(uuid)
	if account == nil {
		return fmt.Errorf("account %s: %w", uuid, ErrNotFound)
	}
	update := models.AccountOptional{Private: &private}
	if err := m.service.Update(ctx, uuid, update); err != nil {
		log.Errorf(ctx, "set account %s private=%v: %v", uuid, private, err)
		return err
	}
	account.Update(&update)
	return nil
}
