package run

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/data/storage/memory"
	"github.com/xhd2015/walletui/internal/config"
	"github.com/xhd2015/walletui/models"
)

func TestExportImport(t *testing.T) {
	source := newDemoManager(t)
	eur := "EUR"
	if err := source.Settings.UpdateSettings(settingsCurrency(eur)); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	exported := ExportManager(source)
	if len(exported.Nodes) != 1 || exported.Nodes[0].Name != "local" {
		t.Fatalf("expected only the custom node to be exported, got %+v", exported.Nodes)
	}

	content, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded ExportData
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	target := data.NewManager(memory.New().Services())
	if err := target.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	result, err := ImportManager(target, decoded)
	if err != nil {
		t.Fatalf("ImportManager: %v", err)
	}
	if result.Imported != 7 || result.Skipped != 0 {
		t.Errorf("expected 7 imported, got %+v", result)
	}
	if target.Settings.Settings().FiatCurrency != "EUR" {
		t.Errorf("expected settings to be imported")
	}
	if node := target.Networks.GetNetworkByID("Sepolia").NodeByName("local"); node == nil || !node.IsCustom {
		t.Errorf("expected custom node to be imported")
	}

	result, err = ImportManager(target, decoded)
	if err != nil {
		t.Fatalf("second ImportManager: %v", err)
	}
	if result.Imported != 0 || result.Skipped != 7 {
		t.Errorf("expected all duplicates to be skipped, got %+v", result)
	}
}

func TestHandleExportFileStorage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.DirEnv, dir)

	out := filepath.Join(dir, "backup.json")
	if err := handleExport([]string{"--storage", "file", out}); err != nil {
		t.Fatalf("handleExport: %v", err)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var exported ExportData
	if err := json.Unmarshal(content, &exported); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if exported.Settings == nil || exported.Settings.FiatCurrency != "USD" {
		t.Errorf("expected default settings in export, got %+v", exported.Settings)
	}

	if err := handleImport([]string{"--storage", "file", out}); err != nil {
		t.Fatalf("handleImport: %v", err)
	}
	if err := handleExport([]string{"--storage", "file"}); err == nil {
		t.Errorf("expected missing file argument to fail")
	}
}

func settingsCurrency(currency string) models.GlobalSettingsOptional {
	return models.GlobalSettingsOptional{FiatCurrency: &currency}
}
