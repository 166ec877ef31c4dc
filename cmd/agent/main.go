package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"pushbridge/cmd/agent/wire"
	"pushbridge/cmd/config"
	"pushbridge/internal/agent/communication"
	"pushbridge/internal/agent/usecases"
	"pushbridge/internal/infra/async"
	"pushbridge/internal/infra/display"
	"pushbridge/internal/infra/mqtt"
	"pushbridge/internal/infra/telemetry"

	"github.com/spf13/pflag"
)

// The token upload runs detached from the registration call. A one-shot
// process would exit before the request leaves without this window.
const _dispatchGrace = 3 * time.Second

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	register := pflag.Bool("register", false, "request a delivery token, upload it to the admin backend, and exit")
	pflag.Parse()

	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	slog.SetDefault(slog.New(handler))

	if *register {
		runRegistration()
		return
	}

	runAgent(config)
}

func runRegistration() {
	alerter := display.NewTerminalAlerter(os.Stderr)
	service := handleWireInjector(wire.InitializeRegistrationService(alerter)).(usecases.RegistrationService)

	if err := service.RequestRegistration(context.Background()); err != nil {
		slog.Error("registration failed", slog.Any("error", err))
		os.Exit(1)
	}

	time.Sleep(_dispatchGrace)
}

func runAgent(config config.AppConfig) {
	slog.Info("🚀 pushbridge agent is initializing")
	slog.Debug("config loaded", "data", config)

	shutdownOtel := telemetry.Start("pushbridge-agent")

	internalBroker := async.NewLocalBroker()

	appCtx, cancelFn := context.WithCancel(context.Background())

	simpleClientOpts := mqtt.SimpleClientOpts{
		Broker:   config.MQTTClient.Broker,
		ClientID: config.MQTTClient.ClientID,
		Username: config.MQTTClient.Username,
		Password: config.MQTTClient.Password, //pragma: allowlist secret
	}
	mqttClient := mqtt.NewSimpleClient(simpleClientOpts)

	backgroundChannel := communication.NewBackgroundChannel(mqttClient, internalBroker, config.MQTTClient.Topic)

	var wg sync.WaitGroup
	wg.Add(1)
	go handleWireInjector(wire.InitializeDeliveryWorker(internalBroker)).(async.Worker).Run(appCtx, wg.Done)
	wg.Add(1)
	go backgroundChannel.Run(appCtx, wg.Done)

	if config.Refresh.Schedule != "" {
		service := handleWireInjector(wire.InitializeRegistrationService(display.NewLogAlerter())).(usecases.RegistrationService)
		wg.Add(1)
		go usecases.NewRefreshWorker(config.Refresh.Schedule, service).Run(appCtx, wg.Done)
	}

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	if err := shutdownOtel(); err != nil {
		slog.Error("shutting down otel providers", slog.Any("error", err))
	}

	backgroundChannel.Shutdown()
	cancelFn()
	wg.Wait()
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
