package data

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/log"
	"github.com/xhd2015/walletui/models"
)

// NetworkManager merges the built-in network catalogue with the custom
// nodes persisted by the node service.
type NetworkManager struct {
	service  storage.NodeService
	networks []*models.Network
}

func NewNetworkManager(service storage.NodeService) *NetworkManager {
	return &NetworkManager{
		service:  service,
		networks: builtinNetworks(),
	}
}

func (m *NetworkManager) Init(ctx context.Context) error {
	nodes, err := m.service.List(ctx)
	if err != nil {
		return err
	}
	networks := builtinNetworks()
	byID := make(map[string]*models.Network, len(networks))
	for _, network := range networks {
		byID[network.ID] = network
	}
	for i := range nodes {
		node := &nodes[i]
		network := byID[node.Network]
		if network == nil {
			log.Infof(ctx, "skip node %q of unknown network %q", node.Name, node.Network)
			continue
		}
		node.IsCustom = true
		network.Nodes = append(network.Nodes, node)
	}
	m.networks = networks
	return nil
}

// Networks returns all known networks sorted by id.
func (m *NetworkManager) Networks() []*models.Network {
	networks := make([]*models.Network, len(m.networks))
	copy(networks, m.networks)
	sort.Slice(networks, func(i, j int) bool {
		return networks[i].ID < networks[j].ID
	})
	return networks
}

func (m *NetworkManager) GetNetworkByID(id string) *models.Network {
	for _, network := range m.networks {
		if network.ID == id {
			return network
		}
	}
	return nil
}

// GetNetworkByName resolves a network by display name or id.
func (m *NetworkManager) GetNetworkByName(name string) *models.Network {
	for _, network := range m.networks {
		if network.Name == name {
			return network
		}
	}
	return m.GetNetworkByID(name)
}

func (m *NetworkManager) IsNodeNameAvailable(networkID string, name string) bool {
	network := m.GetNetworkByID(networkID)
	if network == nil {
		return false
	}
	return network.NodeByName(strings.TrimSpace(name)) == nil
}

// SimilarNodeName returns an existing node name of the network within edit
// distance 1 of name, or "" if there is none.
func (m *NetworkManager) SimilarNodeName(networkID string, name string, exclude string) string {
	network := m.GetNetworkByID(networkID)
	if network == nil || name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	for _, node := range network.Nodes {
		if node.Name == name || node.Name == exclude {
			continue
		}
		if levenshtein.ComputeDistance(lower, strings.ToLower(node.Name)) <= 1 {
			return node.Name
		}
	}
	return ""
}

func validateNode(node *models.CustomNodeConfig) error {
	node.Name = strings.TrimSpace(node.Name)
	node.URL = strings.TrimSpace(node.URL)
	if node.Name == "" {
		return ErrEmptyName
	}
	if node.URL == "" {
		return ErrEmptyURL
	}
	if node.Auth != nil && node.Auth.Username == "" && node.Auth.Password == "" {
		node.Auth = nil
	}
	return nil
}

func (m *NetworkManager) AddNodeToNetwork(node models.CustomNodeConfig) error {
	ctx := context.Background()
	network := m.GetNetworkByID(node.Network)
	if network == nil {
		return fmt.Errorf("network %q: %w", node.Network, ErrNotFound)
	}
	if err := validateNode(&node); err != nil {
		return err
	}
	if !m.IsNodeNameAvailable(node.Network, node.Name) {
		return fmt.Errorf("node %q: %w", node.Name, ErrNameTaken)
	}
	node.IsCustom = true
	if err := m.service.Add(ctx, node); err != nil {
		log.Errorf(ctx, "add node %s/%s: %v", node.Network, node.Name, err)
		return err
	}
	network.Nodes = append(network.Nodes, &node)
	log.Infof(ctx, "added node %s/%s", node.Network, node.Name)
	return nil
}

// UpdateNode replaces the custom node named name in networkID.
func (m *NetworkManager) UpdateNode(networkID string, name string, node models.CustomNodeConfig) error {
	ctx := context.Background()
	network := m.GetNetworkByID(networkID)
	if network == nil {
		return fmt.Errorf("network %q: %w", networkID, ErrNotFound)
	}
	idx := customNodeIndex(network, name)
	if idx < 0 {
		return fmt.Errorf("node %q: %w", name, ErrNotFound)
	}
	if err := validateNode(&node); err != nil {
		return err
	}
	if node.Name != name && !m.IsNodeNameAvailable(networkID, node.Name) {
		return fmt.Errorf("node %q: %w", node.Name, ErrNameTaken)
	}
	node.Network = networkID
	node.IsCustom = true
	if err := m.service.Update(ctx, networkID, name, node); err != nil {
		log.Errorf(ctx, "update node %s/%s: %v", networkID, name, err)
		return err
	}
	network.Nodes[idx] = &node
	return nil
}

func (m *NetworkManager) DeleteNode(networkID string, name string) error {
	ctx := context.Background()
	network := m.GetNetworkByID(networkID)
	if network == nil {
		return fmt.Errorf("network %q: %w", networkID, ErrNotFound)
	}
	idx := customNodeIndex(network, name)
	if idx < 0 {
		return fmt.Errorf("node %q: %w", name, ErrNotFound)
	}
	if err := m.service.Delete(ctx, networkID, name); err != nil {
		log.Errorf(ctx, "delete node %s/%s: %v", networkID, name, err)
		return err
	}
	network.Nodes = append(network.Nodes[:idx], network.Nodes[idx+1:]...)
	return nil
}

func customNodeIndex(network *models.Network, name string) int {
	for i, node := range network.Nodes {
		if node.IsCustom && node.Name == name {
			return i
		}
	}
	return -1
}
