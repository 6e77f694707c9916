package config

import (
	"os"
	"path/filepath"
)

const appName = "walletui"

// DirEnv overrides the config directory, mainly for tests and portable installs.
const DirEnv = "WALLETUI_CONFIG_DIR"

func GetConfigDir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, appName), nil
}

func GetConfigFile(name string) (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func GetRecordJSONFile() (string, error) {
	return GetConfigFile(appName + ".json")
}

func GetConfigJSONFile() (string, error) {
	return GetConfigFile("config.json")
}

func GetSqliteFile() (string, error) {
	return GetConfigFile(appName + ".db")
}

func GetLogFile() (string, error) {
	return GetConfigFile(appName + ".log")
}

func GetEnvFile() (string, error) {
	return GetConfigFile(".env")
}
