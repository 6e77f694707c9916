package data

import (
	"context"

	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/log"
	"github.com/xhd2015/walletui/models"
)

type SettingsManager struct {
	service  storage.SettingsService
	settings models.GlobalSettings
}

func NewSettingsManager(service storage.SettingsService) *SettingsManager {
	return &SettingsManager{
		service:  service,
		settings: models.DefaultSettings(),
	}
}

func (m *SettingsManager) Init(ctx context.Context) error {
	settings, err := m.service.Get(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		m.settings = models.DefaultSettings()
		return nil
	}
	m.settings = *settings
	return nil
}

func (m *SettingsManager) Settings() models.GlobalSettings {
	return m.settings
}

func (m *SettingsManager) UpdateSettings(update models.GlobalSettingsOptional) error {
	ctx := context.Background()
	settings := m.settings
	settings.Update(&update)
	if err := m.service.Save(ctx, settings); err != nil {
		log.Errorf(ctx, "save settings: %v", err)
		return err
	}
	m.settings = settings
	log.Infof(ctx, "settings updated: %v", log.JSON(settings))
	return nil
}
