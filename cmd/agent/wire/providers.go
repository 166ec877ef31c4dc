package wire

import (
	"pushbridge/cmd/config"
	"pushbridge/internal/agent/communication"
	"pushbridge/internal/infra/display"
	"pushbridge/internal/infra/messaging"
)

const _appName = "pushbridge"

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideTransport(cfg config.AppConfig) *messaging.FCMTransport {
	return messaging.NewFCMTransport(messaging.FCMConfig{
		APIKey:            cfg.App.APIKey,
		ProjectID:         cfg.App.ProjectID,
		MessagingSenderID: cfg.App.MessagingSenderID,
		AppID:             cfg.App.AppID,
	})
}

func provideUploader(cfg config.AppConfig) *communication.TokenUploader {
	return communication.NewTokenUploader(cfg.Admin.BaseURL)
}

func provideVapidKey(cfg config.AppConfig) string {
	return cfg.App.VapidKey
}

func provideNotifier() *display.DesktopNotifier {
	return display.NewDesktopNotifier(_appName)
}
