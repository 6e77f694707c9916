package run

import (
	"fmt"

	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/models"
)

// seedDemo fills an empty store with sample records for --demo.
func seedDemo(manager *data.Manager) error {
	accounts := []models.Account{
		{Label: "Main", Address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", WalletType: "ledger"},
		{Label: "Savings", Address: "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", WalletType: "software", Private: true},
		{Label: "Testing", Address: "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB", Network: "Sepolia"},
	}
	for _, account := range accounts {
		if _, err := manager.Accounts.AddAccount(account); err != nil {
			return fmt.Errorf("seed account %s: %w", account.Label, err)
		}
	}

	entries := []models.AddressBookEntry{
		{Label: "Alice", Address: "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb", Notes: "rent"},
		{Label: "Bob", Address: "0x52908400098527886E0F7030069857D2E4169EE7", Network: "Polygon"},
		{Label: "Faucet", Address: "0x8617E340B3D01FA5F11F306F4090FD50E238070D", Network: "Sepolia"},
	}
	for _, entry := range entries {
		if _, err := manager.AddressBook.CreateAddressBooks(entry); err != nil {
			return fmt.Errorf("seed address %s: %w", entry.Label, err)
		}
	}

	err := manager.Networks.AddNodeToNetwork(models.CustomNodeConfig{
		Name:    "local",
		URL:     "http://127.0.0.1:8545",
		Network: "Sepolia",
	})
	if err != nil {
		return fmt.Errorf("seed node: %w", err)
	}
	return nil
}
