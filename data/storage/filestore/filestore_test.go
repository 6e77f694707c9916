package filestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/models"
)

func TestPersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "walletui.json")

	fs, err := New(file)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	services := fs.Services()
	if err := services.AddressBook.Add(ctx, models.AddressBookEntry{UUID: "a", Label: "Bob", Network: "Sepolia"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := services.Nodes.Add(ctx, models.CustomNodeConfig{Name: "local", URL: "http://127.0.0.1:8545", Network: "Sepolia"}); err != nil {
		t.Fatalf("Add node: %v", err)
	}
	if err := services.Settings.Save(ctx, models.GlobalSettings{FiatCurrency: "GBP", InactivityTimer: 10}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := New(file)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	services = reloaded.Services()
	entries, _ := services.AddressBook.List(ctx)
	if len(entries) != 1 || entries[0].Label != "Bob" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	nodes, _ := services.Nodes.List(ctx)
	if len(nodes) != 1 || !nodes[0].IsCustom {
		t.Fatalf("unexpected nodes: %+v", nodes)
	}
	settings, _ := services.Settings.Get(ctx)
	if settings == nil || settings.FiatCurrency != "GBP" {
		t.Fatalf("unexpected settings: %+v", settings)
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	fs, err := New(filepath.Join(t.TempDir(), "walletui.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	services := fs.Services()
	if err := services.Accounts.Delete(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := services.Nodes.Update(ctx, "Ethereum", "missing", models.CustomNodeConfig{}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	fs, err := New(filepath.Join(t.TempDir(), "walletui.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	services := fs.Services()
	services.Accounts.Add(ctx, models.Account{UUID: "x"})
	if err := services.Reset.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	accounts, _ := services.Accounts.List(ctx)
	if len(accounts) != 0 {
		t.Errorf("expected no accounts after reset, got %d", len(accounts))
	}
}
