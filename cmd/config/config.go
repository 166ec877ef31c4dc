package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("pushbridge")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("pushbridge")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			App: AppIdentityConfig{
				APIKey:            viper.GetString("app.api_key"),
				AuthDomain:        viper.GetString("app.auth_domain"),
				ProjectID:         viper.GetString("app.project_id"),
				MessagingSenderID: viper.GetString("app.messaging_sender_id"),
				AppID:             viper.GetString("app.app_id"),
				VapidKey:          viper.GetString("app.vapid_key"),
			},
			Admin: AdminConfig{
				BaseURL: viper.GetString("admin.base_url"),
			},
			MQTTClient: MQTTClientConfig{
				Broker:   viper.GetString("mqtt_client.broker"),
				ClientID: viper.GetString("mqtt_client.client_id"),
				Username: viper.GetString("mqtt_client.username"),
				Password: viper.GetString("mqtt_client.password"),
				Topic:    viper.GetString("mqtt_client.topic"),
			},
			Refresh: RefreshConfig{
				Schedule: viper.GetString("refresh.schedule"),
			},
			Postgresql: PostgresqlConfig{
				DSN: viper.GetString("database.dsn"),
			},
			Kafka: KafkaConfig{
				Brokers: viper.GetStringSlice("kafka.brokers"),
				Group:   viper.GetString("kafka.group"),
				Topic:   viper.GetString("kafka.topic"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("redis.addr"),
				Password: viper.GetString("redis.password"),
				DB:       viper.GetInt("redis.db"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	App        AppIdentityConfig
	Admin      AdminConfig
	MQTTClient MQTTClientConfig
	Refresh    RefreshConfig
	Kafka      KafkaConfig
	Redis      RedisConfig
	Postgresql PostgresqlConfig
}

type GeneralConfig struct {
	LogLevel string
}

// AppIdentityConfig carries the application identity of the push-messaging
// transport plus the public verification (VAPID) key used when requesting
// delivery tokens. These are fixed per deployment.
type AppIdentityConfig struct {
	APIKey            string
	AuthDomain        string
	ProjectID         string
	MessagingSenderID string
	AppID             string
	VapidKey          string
}

// AdminConfig points the agent at the token intake server.
type AdminConfig struct {
	BaseURL string
}

type MQTTClientConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string
}

// RefreshConfig controls periodic re-registration. An empty schedule
// disables it.
type RefreshConfig struct {
	Schedule string
}

type KafkaConfig struct {
	Brokers []string
	Group   string
	Topic   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PostgresqlConfig struct {
	DSN string
}
