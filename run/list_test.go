package run

import (
	"strings"
	"testing"

	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/data/storage/memory"
	"github.com/xhd2015/walletui/models"
)

func newDemoManager(t *testing.T) *data.Manager {
	t.Helper()
	manager := data.NewManager(memory.New().Services())
	if err := manager.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := seedDemo(manager); err != nil {
		t.Fatalf("seedDemo: %v", err)
	}
	return manager
}

func TestRenderListing(t *testing.T) {
	manager := newDemoManager(t)
	out := RenderToString(buildListing(manager), false)

	for _, want := range []string{
		"• Accounts (3)",
		"  ├─• Main  0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed [Ethereum]",
		"Savings (private)",
		"• Address Book (3)",
		"  │ └─◦ rent",
		"• Networks (5)",
		"• local  http://127.0.0.1:8545",
		"◦ publicnode",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "Ethereum Classic") > strings.Index(out, "Sepolia  chain") {
		t.Errorf("expected networks sorted by id:\n%s", out)
	}
}

func TestFilterListing(t *testing.T) {
	manager := newDemoManager(t)
	listing := filterListing(buildListing(manager), "SEPOLIA")

	if len(listing.Accounts) != 1 || listing.Accounts[0].Label != "Testing" {
		t.Errorf("expected only the Sepolia account, got %d", len(listing.Accounts))
	}
	if len(listing.AddressBook) != 1 || listing.AddressBook[0].Label != "Faucet" {
		t.Errorf("expected only the faucet entry, got %d", len(listing.AddressBook))
	}
	if len(listing.Networks) != 1 || listing.Networks[0].ID != "Sepolia" {
		t.Errorf("expected only Sepolia network, got %d", len(listing.Networks))
	}

	listing = filterListing(buildListing(manager), "127.0.0.1")
	if len(listing.Networks) != 1 || len(listing.Accounts) != 0 {
		t.Errorf("expected node match to keep its network only")
	}
}

func TestApplyStorageDefaults(t *testing.T) {
	got := applyStorageDefaults(nil, "", "", "")
	if got.StorageType != DEFAULT_STORAGE {
		t.Errorf("expected default storage, got %s", got.StorageType)
	}

	saved := &models.Config{StorageType: "server", ServerAddr: "http://saved", ServerToken: "t"}
	got = applyStorageDefaults(saved, "", "http://flag", "")
	if got.StorageType != "server" || got.ServerAddr != "http://flag" || got.ServerToken != "t" {
		t.Errorf("unexpected merge: %+v", got)
	}
}

func TestResolveUIConfig(t *testing.T) {
	saved := &models.Config{Layout: "mobile", StartTab: "nodes", Features: models.Features{PrivateTags: true}}
	conf, err := ResolveUIConfig(saved, "", "")
	if err != nil {
		t.Fatalf("ResolveUIConfig: %v", err)
	}
	if conf.Layout.String() != "mobile" || conf.StartTab.String() != "nodes" || !conf.Features.PrivateTags {
		t.Errorf("unexpected config: %+v", conf)
	}
	if conf.MobileBreakpoint != 80 {
		t.Errorf("expected default breakpoint, got %d", conf.MobileBreakpoint)
	}

	conf, err = ResolveUIConfig(saved, "desktop", "general")
	if err != nil {
		t.Fatalf("ResolveUIConfig: %v", err)
	}
	if conf.Layout.String() != "desktop" || conf.StartTab.String() != "general" {
		t.Errorf("flags should override saved config: %+v", conf)
	}

	if _, err := ResolveUIConfig(nil, "", "wallets"); err == nil {
		t.Errorf("expected unknown tab to fail")
	}
	if _, err := ResolveUIConfig(nil, "tablet", ""); err == nil {
		t.Errorf("expected unknown layout to fail")
	}
}

func TestCreateServicesUnknownStorage(t *testing.T) {
	if _, _, err := createServices(StorageConfig{StorageType: "s3"}); err == nil {
		t.Errorf("expected error for unknown storage")
	}
	if _, _, err := createServices(StorageConfig{StorageType: "server"}); err == nil {
		t.Errorf("expected error for server without address")
	}
}
