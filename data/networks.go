package data

import (
	"sort"

	"github.com/xhd2015/walletui/models"
)

func builtinNetworks() []*models.Network {
	return []*models.Network{
		{
			ID:      "Ethereum",
			Name:    "Ethereum",
			ChainID: 1,
			Symbol:  "ETH",
			Nodes: []*models.CustomNodeConfig{
				{Name: "publicnode", URL: "https://ethereum-rpc.publicnode.com", Network: "Ethereum"},
				{Name: "cloudflare", URL: "https://cloudflare-eth.com", Network: "Ethereum"},
			},
		},
		{
			ID:      "Goerli",
			Name:    "Goerli",
			ChainID: 5,
			Symbol:  "GoerliETH",
			Nodes: []*models.CustomNodeConfig{
				{Name: "publicnode", URL: "https://ethereum-goerli-rpc.publicnode.com", Network: "Goerli"},
			},
		},
		{
			ID:      "Sepolia",
			Name:    "Sepolia",
			ChainID: 11155111,
			Symbol:  "SepoliaETH",
			Nodes: []*models.CustomNodeConfig{
				{Name: "publicnode", URL: "https://ethereum-sepolia-rpc.publicnode.com", Network: "Sepolia"},
			},
		},
		{
			ID:      "ETC",
			Name:    "Ethereum Classic",
			ChainID: 61,
			Symbol:  "ETC",
			Nodes: []*models.CustomNodeConfig{
				{Name: "rivet", URL: "https://etc.rivet.link", Network: "ETC"},
			},
		},
		{
			ID:      "Polygon",
			Name:    "Polygon",
			ChainID: 137,
			Symbol:  "MATIC",
			Nodes: []*models.CustomNodeConfig{
				{Name: "polygon-rpc", URL: "https://polygon-rpc.com", Network: "Polygon"},
			},
		},
	}
}

// DistinctNetworks returns the networks referenced by the address book,
// each once, sorted by network id. References that getNetworkByName cannot
// resolve are skipped.
func DistinctNetworks(entries []*models.AddressBookEntry, getNetworkByName func(name string) *models.Network) []*models.Network {
	seen := make(map[string]bool)
	var networks []*models.Network
	for _, entry := range entries {
		if entry == nil || seen[entry.Network] {
			continue
		}
		seen[entry.Network] = true
		network := getNetworkByName(entry.Network)
		if network == nil {
			continue
		}
		networks = append(networks, network)
	}

	// two names may resolve to the same network
	dedup := networks[:0]
	ids := make(map[string]bool, len(networks))
	for _, network := range networks {
		if ids[network.ID] {
			continue
		}
		ids[network.ID] = true
		dedup = append(dedup, network)
	}

	sort.Slice(dedup, func(i, j int) bool {
		return dedup[i].ID < dedup[j].ID
	})
	return dedup
}
