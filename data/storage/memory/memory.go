package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/models"
)

// MemoryStore keeps everything in process memory. Used by --demo and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	accounts    map[string]models.Account
	addressBook map[string]models.AddressBookEntry
	nodes       map[nodeKey]models.CustomNodeConfig
	settings    *models.GlobalSettings
	seq         int64
	order       map[string]int64
}

type nodeKey struct {
	network string
	name    string
}

type AccountMemoryStore struct {
	*MemoryStore
}

type AddressBookMemoryStore struct {
	*MemoryStore
}

type NodeMemoryStore struct {
	*MemoryStore
}

type SettingsMemoryStore struct {
	*MemoryStore
}

func New() *MemoryStore {
	ms := &MemoryStore{}
	ms.clear()
	return ms
}

func (ms *MemoryStore) clear() {
	ms.accounts = make(map[string]models.Account)
	ms.addressBook = make(map[string]models.AddressBookEntry)
	ms.nodes = make(map[nodeKey]models.CustomNodeConfig)
	ms.settings = nil
	ms.order = make(map[string]int64)
}

func (ms *MemoryStore) Services() storage.Services {
	return storage.Services{
		Accounts:    &AccountMemoryStore{MemoryStore: ms},
		AddressBook: &AddressBookMemoryStore{MemoryStore: ms},
		Nodes:       &NodeMemoryStore{MemoryStore: ms},
		Settings:    &SettingsMemoryStore{MemoryStore: ms},
		Reset:       ms,
	}
}

func (ms *MemoryStore) Reset(ctx context.Context) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.clear()
	return nil
}

// track records insertion order so List is stable.
func (ms *MemoryStore) track(key string) {
	ms.seq++
	ms.order[key] = ms.seq
}

func (ms *MemoryStore) sortByOrder(prefix string, keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		return ms.order[prefix+keys[i]] < ms.order[prefix+keys[j]]
	})
}

// Account service methods
func (s *AccountMemoryStore) List(ctx context.Context) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.accounts))
	for k := range s.accounts {
		keys = append(keys, k)
	}
	s.sortByOrder("account:", keys)

	accounts := make([]models.Account, 0, len(keys))
	for _, k := range keys {
		accounts = append(accounts, s.accounts[k])
	}
	return accounts, nil
}

func (s *AccountMemoryStore) Add(ctx context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.UUID]; ok {
		return fmt.Errorf("account %s already exists", account.UUID)
	}
	if account.CreateTime.IsZero() {
		account.CreateTime = time.Now()
	}
	s.accounts[account.UUID] = account
	s.track("account:" + account.UUID)
	return nil
}

func (s *AccountMemoryStore) Update(ctx context.Context, uuid string, update models.AccountOptional) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[uuid]
	if !ok {
		return fmt.Errorf("account %s: %w", uuid, storage.ErrNotFound)
	}
	account.Update(&update)
	s.accounts[uuid] = account
	return nil
}

func (s *AccountMemoryStore) Delete(ctx context.Context, uuid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[uuid]; !ok {
		return fmt.Errorf("account %s: %w", uuid, storage.ErrNotFound)
	}
	delete(s.accounts, uuid)
	delete(s.order, "account:"+uuid)
	return nil
}

// AddressBook service methods
func (s *AddressBookMemoryStore) List(ctx context.Context) ([]models.AddressBookEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.addressBook))
	for k := range s.addressBook {
		keys = append(keys, k)
	}
	s.sortByOrder("address:", keys)

	entries := make([]models.AddressBookEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, s.addressBook[k])
	}
	return entries, nil
}

func (s *AddressBookMemoryStore) Add(ctx context.Context, entry models.AddressBookEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.addressBook[entry.UUID]; ok {
		return fmt.Errorf("address book entry %s already exists", entry.UUID)
	}
	if entry.CreateTime.IsZero() {
		entry.CreateTime = time.Now()
	}
	s.addressBook[entry.UUID] = entry
	s.track("address:" + entry.UUID)
	return nil
}

func (s *AddressBookMemoryStore) Update(ctx context.Context, uuid string, update models.AddressBookEntryOptional) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.addressBook[uuid]
	if !ok {
		return fmt.Errorf("address book entry %s: %w", uuid, storage.ErrNotFound)
	}
	entry.Update(&update)
	s.addressBook[uuid] = entry
	return nil
}

func (s *AddressBookMemoryStore) Delete(ctx context.Context, uuid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.addressBook[uuid]; !ok {
		return fmt.Errorf("address book entry %s: %w", uuid, storage.ErrNotFound)
	}
	delete(s.addressBook, uuid)
	delete(s.order, "address:"+uuid)
	return nil
}

// Node service methods
func (s *NodeMemoryStore) List(ctx context.Context) ([]models.CustomNodeConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]models.CustomNodeConfig, 0, len(s.nodes))
	for _, node := range s.nodes {
		nodes = append(nodes, *node.Clone())
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Network != nodes[j].Network {
			return nodes[i].Network < nodes[j].Network
		}
		return nodes[i].Name < nodes[j].Name
	})
	return nodes, nil
}

func (s *NodeMemoryStore) Add(ctx context.Context, node models.CustomNodeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := nodeKey{network: node.Network, name: node.Name}
	if _, ok := s.nodes[key]; ok {
		return fmt.Errorf("node %s/%s already exists", node.Network, node.Name)
	}
	node.IsCustom = true
	s.nodes[key] = *node.Clone()
	return nil
}

func (s *NodeMemoryStore) Update(ctx context.Context, network string, name string, node models.CustomNodeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := nodeKey{network: network, name: name}
	if _, ok := s.nodes[key]; !ok {
		return fmt.Errorf("node %s/%s: %w", network, name, storage.ErrNotFound)
	}
	delete(s.nodes, key)
	node.Network = network
	node.IsCustom = true
	s.nodes[nodeKey{network: network, name: node.Name}] = *node.Clone()
	return nil
}

func (s *NodeMemoryStore) Delete(ctx context.Context, network string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := nodeKey{network: network, name: name}
	if _, ok := s.nodes[key]; !ok {
		return fmt.Errorf("node %s/%s: %w", network, name, storage.ErrNotFound)
	}
	delete(s.nodes, key)
	return nil
}

// Settings service methods
func (s *SettingsMemoryStore) Get(ctx context.Context) (*models.GlobalSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return nil, nil
	}
	settings := *s.settings
	return &settings, nil
}

func (s *SettingsMemoryStore) Save(ctx context.Context, settings models.GlobalSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = &settings
	return nil
}
