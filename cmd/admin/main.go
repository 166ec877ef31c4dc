package main

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"pushbridge/cmd/admin/wire"
	"pushbridge/cmd/config"
	"pushbridge/internal/admin/httpapi"
	"pushbridge/internal/infra/async"
	"pushbridge/internal/infra/httpserver"
	"pushbridge/internal/infra/telemetry"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	slog.SetDefault(slog.New(handler))
	slog.Info("🚀 pushbridge admin is initializing")
	slog.Debug("config loaded", "data", config)

	shutdownOtel := telemetry.Start("pushbridge-admin")

	internalBroker := async.NewLocalBroker()

	registrationFeedController := handleWireInjector(wire.InitializeRegistrationFeedWebSocketController(internalBroker)).(*httpapi.RegistrationFeedWebSocketController)

	httpServer := httpserver.NewServer(
		handleWireInjector(wire.InitializeTokenUploadController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializePushTokenController(internalBroker)).(httpserver.Controller),
		registrationFeedController,
	)

	go httpServer.Run()

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	if err := shutdownOtel(); err != nil {
		slog.Error("shutting down otel providers", slog.Any("error", err))
	}

	registrationFeedController.Shutdown()
	httpServer.Shutdown()
	slog.Info("good bye!!!")
	os.Exit(0)
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
