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

type AddressBookManager struct {
	service storage.AddressBookService
	entries []*models.AddressBookEntry
}

func NewAddressBookManager(service storage.AddressBookService) *AddressBookManager {
	return &AddressBookManager{service: service}
}

func (m *AddressBookManager) Init(ctx context.Context) error {
	entries, err := m.service.List(ctx)
	if err != nil {
		return err
	}
	m.entries = make([]*models.AddressBookEntry, 0, len(entries))
	for i := range entries {
		m.entries = append(m.entries, &entries[i])
	}
	return nil
}

func (m *AddressBookManager) AddressBook() []*models.AddressBookEntry {
	return m.entries
}

func (m *AddressBookManager) Get(uuid string) *models.AddressBookEntry {
	for _, entry := range m.entries {
		if entry.UUID == uuid {
			return entry
		}
	}
	return nil
}

// FindByAddress returns the entry with the given address on network.
func (m *AddressBookManager) FindByAddress(network string, address string) *models.AddressBookEntry {
	for _, entry := range m.entries {
		if entry.Network == network && strings.EqualFold(entry.Address, address) {
			return entry
		}
	}
	return nil
}

func (m *AddressBookManager) CreateAddressBooks(entry models.AddressBookEntry) (*models.AddressBookEntry, error) {
	ctx := context.Background()
	address, err := NormalizeAddress(entry.Address)
	if err != nil {
		return nil, err
	}
	entry.Address = address
	entry.Label = strings.TrimSpace(entry.Label)
	if entry.Label == "" {
		return nil, ErrEmptyName
	}
	if entry.Network == "" {
		entry.Network = models.DefaultNetwork
	}
	if existing := m.FindByAddress(entry.Network, entry.Address); existing != nil {
		return nil, fmt.Errorf("%s is already saved as %q: %w", ShortAddress(entry.Address), existing.Label, ErrNameTaken)
	}
	if entry.UUID == "" {
		entry.UUID = uuid.NewString()
	}
	if entry.CreateTime.IsZero() {
		entry.CreateTime = time.Now()
	}
	if err := m.service.Add(ctx, entry); err != nil {
		log.Errorf(ctx, "add address book entry %s: %v", entry.Address, err)
		return nil, err
	}
	m.entries = append(m.entries, &entry)
	return &entry, nil
}

func (m *AddressBookManager) UpdateAddressBooks(uuid string, update models.AddressBookEntryOptional) error {
	ctx := context.Background()
	entry := m.Get(uuid)
	if entry == nil {
		return fmt.Errorf("address book entry %s: %w", uuid, ErrNotFound)
	}
	if update.Label != nil {
		label := strings.TrimSpace(*update.Label)
		if label == "" {
			return ErrEmptyName
		}
		update.Label = &label
	}
	if err := m.service.Update(ctx, uuid, update); err != nil {
		log.Errorf(ctx, "update address book entry %s: %v", uuid, err)
		return err
	}
	entry.Update(&update)
	return nil
}

func (m *AddressBookManager) DeleteAddressBooks(uuid string) error {
	ctx := context.Background()
	if err := m.service.Delete(ctx, uuid); err != nil {
		log.Errorf(ctx, "delete address book entry %s: %v", uuid, err)
		return err
	}
	for i, entry := range m.entries {
		if entry.UUID == uuid {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	return nil
}
