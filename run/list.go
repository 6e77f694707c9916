package run

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/models"
	"github.com/xhd2015/walletui/ui/search"
	"github.com/xhd2015/walletui/ui/tree"
	"golang.org/x/term"
)

const listHelp = `
list - Display accounts, address book and networks in tree format

Options:
  --json                       Output raw JSON data instead of formatted tree
  --include <pattern>          Only include entries containing the pattern (case-insensitive)
  --storage <type>             Storage backend: sqlite (default), file, server or memory
  --server-addr <addr>         Server address (required when --storage=server)
  --server-token <token>       Server authentication token (optional when --storage=server)
  -h,--help                    Show this help message

Examples:
  walletui list                      Show everything in tree format
  walletui list --json               Output raw JSON data
  walletui list --include sepolia    Show only entries mentioning sepolia
`

// Listing is the data shown by the list command.
type Listing struct {
	Accounts    []*models.Account          `json:"accounts"`
	AddressBook []*models.AddressBookEntry `json:"address_book"`
	Networks    []*models.Network          `json:"networks"`
}

func handleList(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string
	var jsonOutput bool
	var includePattern string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Bool("--json", &jsonOutput).
		String("--include", &includePattern).
		Help("-h,--help", listHelp).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}

	storageConfig, err := ApplyConfigDefaults(storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}

	manager, closeStore, err := CreateManager(storageConfig)
	if err != nil {
		return err
	}
	defer closeStore()

	listing := buildListing(manager)
	if includePattern != "" {
		listing = filterListing(listing, includePattern)
	}

	if jsonOutput {
		return outputJSON(os.Stdout, listing)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	renderListing(os.Stdout, isTTY, listing)
	return nil
}

func buildListing(manager *data.Manager) Listing {
	return Listing{
		Accounts:    manager.Accounts.Accounts(),
		AddressBook: manager.AddressBook.AddressBook(),
		Networks:    manager.Networks.Networks(),
	}
}

// filterListing keeps records whose label, address or network contains
// pattern. A network is kept when its name or any node matches.
func filterListing(listing Listing, pattern string) Listing {
	return Listing{
		Accounts: search.Filter(listing.Accounts, pattern, func(account *models.Account) []string {
			return []string{account.Label, account.Address, account.Network}
		}),
		AddressBook: search.Filter(listing.AddressBook, pattern, func(entry *models.AddressBookEntry) []string {
			return []string{entry.Label, entry.Address, entry.Network, entry.Notes}
		}),
		Networks: search.Filter(listing.Networks, pattern, func(network *models.Network) []string {
			values := []string{network.ID, network.Name}
			for _, node := range network.Nodes {
				values = append(values, node.Name, node.URL)
			}
			return values
		}),
	}
}

func listingTree(listing Listing) []*tree.Node {
	accounts := &tree.Node{Label: fmt.Sprintf("Accounts (%d)", len(listing.Accounts))}
	for _, account := range listing.Accounts {
		label := account.Label
		if account.Private {
			label += " (private)"
		}
		accounts.Children = append(accounts.Children, &tree.Node{
			Label:  label,
			Detail: account.Address + " [" + account.Network + "]",
		})
	}

	addressBook := &tree.Node{Label: fmt.Sprintf("Address Book (%d)", len(listing.AddressBook))}
	for _, entry := range listing.AddressBook {
		node := &tree.Node{
			Label:  entry.Label,
			Detail: entry.Address + " [" + entry.Network + "]",
		}
		if entry.Notes != "" {
			node.Children = append(node.Children, &tree.Node{Label: entry.Notes, Muted: true})
		}
		addressBook.Children = append(addressBook.Children, node)
	}

	networks := &tree.Node{Label: fmt.Sprintf("Networks (%d)", len(listing.Networks))}
	for _, network := range listing.Networks {
		networkNode := &tree.Node{
			Label:  network.Name,
			Detail: fmt.Sprintf("chain %d, %s", network.ChainID, network.Symbol),
		}
		for _, node := range network.Nodes {
			detail := node.URL
			if node.Auth != nil {
				detail += " (auth: " + node.Auth.Username + ")"
			}
			networkNode.Children = append(networkNode.Children, &tree.Node{
				Label:  node.Name,
				Detail: detail,
				Muted:  !node.IsCustom,
			})
		}
		networks.Children = append(networks.Children, networkNode)
	}

	return []*tree.Node{accounts, addressBook, networks}
}

func renderListing(out io.Writer, isTTY bool, listing Listing) {
	tree.Walk(listingTree(listing), func(prefix string, connector string, node *tree.Node) {
		io.WriteString(out, prefix+connector+tree.RenderItem(node, isTTY)+"\n")
	})
}

func RenderToString(listing Listing, simulateTTY bool) string {
	var b bytes.Buffer
	renderListing(&b, simulateTTY, listing)
	return b.String()
}

func outputJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
