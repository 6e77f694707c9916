package run

import (
	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/models"
	"github.com/xhd2015/walletui/models/states"
)

const DEFAULT_STORAGE = "sqlite"

// StorageConfig holds storage-related configuration values
type StorageConfig struct {
	StorageType string
	ServerAddr  string
	ServerToken string
}

// UIConfig holds the resolved layout preferences.
type UIConfig struct {
	Layout           states.Layout
	MobileBreakpoint int
	StartTab         states.SettingsTab
	Features         models.Features
}

// ApplyConfigDefaults loads saved config and applies defaults to storage settings
func ApplyConfigDefaults(storageType, serverAddr, serverToken string) (StorageConfig, error) {
	savedConfig, err := data.LoadConfig()
	if err != nil {
		return StorageConfig{}, err
	}
	return applyStorageDefaults(savedConfig, storageType, serverAddr, serverToken), nil
}

func applyStorageDefaults(savedConfig *models.Config, storageType, serverAddr, serverToken string) StorageConfig {
	// command line values win over saved config
	if storageType == "" && savedConfig != nil && savedConfig.StorageType != "" {
		storageType = savedConfig.StorageType
	}
	if serverAddr == "" && savedConfig != nil && savedConfig.ServerAddr != "" {
		serverAddr = savedConfig.ServerAddr
	}
	if serverToken == "" && savedConfig != nil && savedConfig.ServerToken != "" {
		serverToken = savedConfig.ServerToken
	}

	if storageType == "" {
		storageType = DEFAULT_STORAGE
	}

	return StorageConfig{
		StorageType: storageType,
		ServerAddr:  serverAddr,
		ServerToken: serverToken,
	}
}

// ResolveUIConfig merges --layout and --tab with the saved config. Unknown
// names are rejected here so the UI only ever sees valid enums.
func ResolveUIConfig(savedConfig *models.Config, layout string, tab string) (UIConfig, error) {
	if savedConfig == nil {
		savedConfig = &models.Config{}
	}
	if layout == "" {
		layout = savedConfig.Layout
	}
	if tab == "" {
		tab = savedConfig.StartTab
	}
	parsedLayout, err := states.ParseLayout(layout)
	if err != nil {
		return UIConfig{}, err
	}
	parsedTab, err := states.ParseSettingsTab(tab)
	if err != nil {
		return UIConfig{}, err
	}
	breakpoint := savedConfig.MobileBreakpoint
	if breakpoint <= 0 {
		breakpoint = states.DefaultMobileBreakpoint
	}
	return UIConfig{
		Layout:           parsedLayout,
		MobileBreakpoint: breakpoint,
		StartTab:         parsedTab,
		Features:         savedConfig.Features,
	}, nil
}
