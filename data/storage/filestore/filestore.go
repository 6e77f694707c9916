package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/models"
)

type FileStore struct {
	filePath string
	mu       sync.RWMutex
	data     *FileData
}

type AccountFileStore struct {
	*FileStore
}

type AddressBookFileStore struct {
	*FileStore
}

type NodeFileStore struct {
	*FileStore
}

type SettingsFileStore struct {
	*FileStore
}

type FileData struct {
	Accounts    []models.Account          `json:"accounts"`
	AddressBook []models.AddressBookEntry `json:"address_book"`
	Nodes       []models.CustomNodeConfig `json:"nodes"`
	Settings    *models.GlobalSettings    `json:"settings,omitempty"`
}

func newFileData() *FileData {
	return &FileData{
		Accounts:    []models.Account{},
		AddressBook: []models.AddressBookEntry{},
		Nodes:       []models.CustomNodeConfig{},
	}
}

func New(filePath string) (*FileStore, error) {
	fs := &FileStore{
		filePath: filePath,
		data:     newFileData(),
	}

	if err := fs.load(); err != nil {
		// missing file is created on first save
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load file: %w", err)
		}
	}

	return fs, nil
}

func (fs *FileStore) Services() storage.Services {
	return storage.Services{
		Accounts:    &AccountFileStore{FileStore: fs},
		AddressBook: &AddressBookFileStore{FileStore: fs},
		Nodes:       &NodeFileStore{FileStore: fs},
		Settings:    &SettingsFileStore{FileStore: fs},
		Reset:       fs,
	}
}

func (fs *FileStore) load() error {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, fs.data)
}

func (fs *FileStore) save() error {
	data, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fs.filePath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fs.filePath, data, 0600)
}

func (fs *FileStore) Reset(ctx context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.data = newFileData()
	return fs.save()
}

// Account service methods
func (s *AccountFileStore) List(ctx context.Context) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.Account, len(s.data.Accounts))
	copy(accounts, s.data.Accounts)
	return accounts, nil
}

func (s *AccountFileStore) Add(ctx context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if account.CreateTime.IsZero() {
		account.CreateTime = time.Now()
	}
	s.data.Accounts = append(s.data.Accounts, account)
	return s.save()
}

func (s *AccountFileStore) Update(ctx context.Context, uuid string, update models.AccountOptional) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Accounts {
		if s.data.Accounts[i].UUID == uuid {
			s.data.Accounts[i].Update(&update)
			return s.save()
		}
	}
	return fmt.Errorf("account %s: %w", uuid, storage.ErrNotFound)
}

func (s *AccountFileStore) Delete(ctx context.Context, uuid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, account := range s.data.Accounts {
		if account.UUID == uuid {
			s.data.Accounts = append(s.data.Accounts[:i], s.data.Accounts[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("account %s: %w", uuid, storage.ErrNotFound)
}

// AddressBook service methods
func (s *AddressBookFileStore) List(ctx context.Context) ([]models.AddressBookEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.AddressBookEntry, len(s.data.AddressBook))
	copy(entries, s.data.AddressBook)
	return entries, nil
}

func (s *AddressBookFileStore) Add(ctx context.Context, entry models.AddressBookEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.CreateTime.IsZero() {
		entry.CreateTime = time.Now()
	}
	s.data.AddressBook = append(s.data.AddressBook, entry)
	return s.save()
}

func (s *AddressBookFileStore) Update(ctx context.Context, uuid string, update models.AddressBookEntryOptional) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.AddressBook {
		if s.data.AddressBook[i].UUID == uuid {
			s.data.AddressBook[i].Update(&update)
			return s.save()
		}
	}
	return fmt.Errorf("address book entry %s: %w", uuid, storage.ErrNotFound)
}

func (s *AddressBookFileStore) Delete(ctx context.Context, uuid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.data.AddressBook {
		if entry.UUID == uuid {
			s.data.AddressBook = append(s.data.AddressBook[:i], s.data.AddressBook[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("address book entry %s: %w", uuid, storage.ErrNotFound)
}

// Node service methods
func (s *NodeFileStore) List(ctx context.Context) ([]models.CustomNodeConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]models.CustomNodeConfig, 0, len(s.data.Nodes))
	for _, node := range s.data.Nodes {
		nodes = append(nodes, *node.Clone())
	}
	return nodes, nil
}

func (s *NodeFileStore) Add(ctx context.Context, node models.CustomNodeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	node.IsCustom = true
	s.data.Nodes = append(s.data.Nodes, *node.Clone())
	return s.save()
}

func (s *NodeFileStore) Update(ctx context.Context, network string, name string, node models.CustomNodeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.data.Nodes {
		if existing.Network == network && existing.Name == name {
			node.Network = network
			node.IsCustom = true
			s.data.Nodes[i] = *node.Clone()
			return s.save()
		}
	}
	return fmt.Errorf("node %s/%s: %w", network, name, storage.ErrNotFound)
}

func (s *NodeFileStore) Delete(ctx context.Context, network string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.data.Nodes {
		if existing.Network == network && existing.Name == name {
			s.data.Nodes = append(s.data.Nodes[:i], s.data.Nodes[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("node %s/%s: %w", network, name, storage.ErrNotFound)
}

// Settings service methods
func (s *SettingsFileStore) Get(ctx context.Context) (*models.GlobalSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data.Settings == nil {
		return nil, nil
	}
	settings := *s.data.Settings
	return &settings, nil
}

func (s *SettingsFileStore) Save(ctx context.Context, settings models.GlobalSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Settings = &settings
	return s.save()
}
