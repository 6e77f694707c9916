package run

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/models"
)

const exportHelp = `
export <json_file>

Export accounts, address book, custom nodes and settings to a JSON file.
`

const importHelp = `
import <json_file>

Import accounts, address book, custom nodes and settings from a JSON file.
Records that already exist (same address on the same network, or the same
node name on the same network) are skipped.
`

type ExportData struct {
	Accounts    []models.Account          `json:"accounts"`
	AddressBook []models.AddressBookEntry `json:"address_book"`
	Nodes       []models.CustomNodeConfig `json:"nodes"`
	Settings    *models.GlobalSettings    `json:"settings,omitempty"`
}

type ImportResult struct {
	Imported int
	Skipped  int
}

func parseStorageFlags(args []string, helpText string) ([]string, StorageConfig, error) {
	var storageType string
	var serverAddr string
	var serverToken string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Help("-h,--help", helpText).
		Parse(args)
	if err != nil {
		return nil, StorageConfig{}, err
	}
	storageConfig, err := ApplyConfigDefaults(storageType, serverAddr, serverToken)
	if err != nil {
		return nil, StorageConfig{}, err
	}
	return args, storageConfig, nil
}

func handleExport(args []string) error {
	args, storageConfig, err := parseStorageFlags(args, exportHelp)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("export requires exactly one argument: <json_file>")
	}
	jsonFile := args[0]

	manager, closeStore, err := CreateManager(storageConfig)
	if err != nil {
		return err
	}
	defer closeStore()

	exportData := ExportManager(manager)
	content, err := json.MarshalIndent(exportData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	err = os.WriteFile(jsonFile, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Exported %d accounts, %d addresses, %d nodes to %s\n", len(exportData.Accounts), len(exportData.AddressBook), len(exportData.Nodes), jsonFile)
	return nil
}

// ExportManager snapshots everything the user created. Built-in nodes
// are not exported.
func ExportManager(manager *data.Manager) ExportData {
	exportData := ExportData{
		Accounts:    make([]models.Account, 0),
		AddressBook: make([]models.AddressBookEntry, 0),
		Nodes:       make([]models.CustomNodeConfig, 0),
	}
	for _, account := range manager.Accounts.Accounts() {
		exportData.Accounts = append(exportData.Accounts, *account)
	}
	for _, entry := range manager.AddressBook.AddressBook() {
		exportData.AddressBook = append(exportData.AddressBook, *entry)
	}
	for _, network := range manager.Networks.Networks() {
		for _, node := range network.CustomNodes() {
			exportData.Nodes = append(exportData.Nodes, *node)
		}
	}
	settings := manager.Settings.Settings()
	exportData.Settings = &settings
	return exportData
}

func handleImport(args []string) error {
	args, storageConfig, err := parseStorageFlags(args, importHelp)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("import requires exactly one argument: <json_file>")
	}
	jsonFile := args[0]

	content, err := os.ReadFile(jsonFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	var importData ExportData
	err = json.Unmarshal(content, &importData)
	if err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	manager, closeStore, err := CreateManager(storageConfig)
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := ImportManager(manager, importData)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d records, skipped %d duplicates from %s\n", result.Imported, result.Skipped, jsonFile)
	return nil
}

// ImportManager adds the records of importData that do not exist yet.
func ImportManager(manager *data.Manager, importData ExportData) (ImportResult, error) {
	var result ImportResult

	existingAccounts := make(map[string]bool)
	for _, account := range manager.Accounts.Accounts() {
		existingAccounts[accountKey(account.Network, account.Address)] = true
	}
	for _, account := range importData.Accounts {
		address, err := data.NormalizeAddress(account.Address)
		if err != nil {
			return result, fmt.Errorf("account %q: %w", account.Label, err)
		}
		network := account.Network
		if network == "" {
			network = models.DefaultNetwork
		}
		key := accountKey(network, address)
		if existingAccounts[key] {
			result.Skipped++
			continue
		}
		account.UUID = ""
		_, err = manager.Accounts.AddAccount(account)
		if err != nil {
			return result, fmt.Errorf("failed to add account: %w", err)
		}
		existingAccounts[key] = true
		result.Imported++
	}

	for _, entry := range importData.AddressBook {
		entry.UUID = ""
		_, err := manager.AddressBook.CreateAddressBooks(entry)
		if errors.Is(err, data.ErrNameTaken) {
			result.Skipped++
			continue
		}
		if err != nil {
			return result, fmt.Errorf("failed to add address %q: %w", entry.Label, err)
		}
		result.Imported++
	}

	for _, node := range importData.Nodes {
		if !manager.Networks.IsNodeNameAvailable(node.Network, node.Name) {
			result.Skipped++
			continue
		}
		err := manager.Networks.AddNodeToNetwork(node)
		if err != nil {
			return result, fmt.Errorf("failed to add node %q: %w", node.Name, err)
		}
		result.Imported++
	}

	if importData.Settings != nil {
		settings := *importData.Settings
		err := manager.Settings.UpdateSettings(models.GlobalSettingsOptional{
			FiatCurrency:    &settings.FiatCurrency,
			InactivityTimer: &settings.InactivityTimer,
		})
		if err != nil {
			return result, fmt.Errorf("failed to save settings: %w", err)
		}
	}
	return result, nil
}

func accountKey(network string, address string) string {
	return network + "/" + strings.ToLower(address)
}
