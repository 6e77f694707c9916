package data

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xhd2015/walletui/internal/config"
	"github.com/xhd2015/walletui/models"
)

const EnvPrefix = "WALLETUI"

var configKeys = []string{
	"storage_type",
	"server_addr",
	"server_token",
	"running_pid",
	"layout",
	"mobile_breakpoint",
	"start_tab",
	"features.private_tags",
}

func LoadConfig() (*models.Config, error) {
	configFile, err := config.GetConfigJSONFile()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(configFile)
}

// LoadConfigFile reads the JSON config at configFile, overlaid with
// WALLETUI_* environment variables. A missing file yields the env-only
// config.
func LoadConfigFile(configFile string) (*models.Config, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var conf models.Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func SaveConfig(conf *models.Config) error {
	configFile, err := config.GetConfigJSONFile()
	if err != nil {
		return err
	}
	return SaveConfigFile(configFile, conf)
}

func SaveConfigFile(configFile string, conf *models.Config) error {
	data, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return err
	}

	return os.WriteFile(configFile, data, 0600)
}
