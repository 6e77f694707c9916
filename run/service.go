package run

import (
	"fmt"

	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/data/storage/filestore"
	"github.com/xhd2015/walletui/data/storage/http"
	"github.com/xhd2015/walletui/data/storage/memory"
	"github.com/xhd2015/walletui/data/storage/sqlite"
	"github.com/xhd2015/walletui/internal/config"
)

func createServices(storageConfig StorageConfig) (storage.Services, func() error, error) {
	noClose := func() error { return nil }

	switch storageConfig.StorageType {
	case "sqlite":
		sqliteFile, err := config.GetSqliteFile()
		if err != nil {
			return storage.Services{}, nil, err
		}
		sqliteStore, err := sqlite.New(sqliteFile)
		if err != nil {
			return storage.Services{}, nil, err
		}
		return sqliteStore.Services(), sqliteStore.Close, nil
	case "file":
		recordFile, err := config.GetRecordJSONFile()
		if err != nil {
			return storage.Services{}, nil, err
		}
		fileStore, err := filestore.New(recordFile)
		if err != nil {
			return storage.Services{}, nil, err
		}
		return fileStore.Services(), noClose, nil
	case "server":
		if storageConfig.ServerAddr == "" {
			return storage.Services{}, nil, fmt.Errorf("--server-addr is required when --storage=server")
		}
		client := http.NewClient(storageConfig.ServerAddr, storageConfig.ServerToken)
		return client.Services(), noClose, nil
	case "memory":
		return memory.New().Services(), noClose, nil
	default:
		return storage.Services{}, nil, fmt.Errorf("unsupported storage type: %s, available: sqlite, file, server, memory", storageConfig.StorageType)
	}
}

// CreateManager opens the configured storage and loads all stores.
func CreateManager(storageConfig StorageConfig) (*data.Manager, func() error, error) {
	services, closeFn, err := createServices(storageConfig)
	if err != nil {
		return nil, nil, err
	}
	manager := data.NewManager(services)
	if err := manager.Init(); err != nil {
		closeFn()
		return nil, nil, err
	}
	return manager, closeFn, nil
}
