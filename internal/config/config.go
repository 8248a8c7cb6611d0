package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory
const FileName = "queue_commander.cfg.json"

// ArenaConfig holds the battlefield settings
type ArenaConfig struct {
	Battlefield     bool          `json:"battlefield" mapstructure:"battlefield"`
	CastleHealth    int           `json:"castleHealth" mapstructure:"castleHealth"`
	DamagePerDeploy int           `json:"damagePerDeploy" mapstructure:"damagePerDeploy"`
	MarkerLifetime  time.Duration `json:"markerLifetime" mapstructure:"markerLifetime"`
}

// NotifyConfig holds toast settings
type NotifyConfig struct {
	ToastDuration time.Duration `json:"toastDuration" mapstructure:"toastDuration"`
	History       int           `json:"history" mapstructure:"history"`
}

// AudioConfig holds sound cue settings
type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// MonitorConfig holds status monitor settings
type MonitorConfig struct {
	Interval   time.Duration `json:"interval" mapstructure:"interval"`
	StatusFile string        `json:"statusFile" mapstructure:"statusFile"`
}

// GraylogConfig holds GELF output settings
type GraylogConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Address string `json:"address" mapstructure:"address"`
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled      bool          `json:"enabled" mapstructure:"enabled"`
	ServiceName  string        `json:"serviceName" mapstructure:"serviceName"`
	BatchTimeout time.Duration `json:"batchTimeout" mapstructure:"batchTimeout"`
	Endpoint     string        `json:"endpoint" mapstructure:"endpoint"`
	Insecure     bool          `json:"insecure" mapstructure:"insecure"`
}

const (
	defaultMarkerLifetime = 2 * time.Second
	defaultToastDuration  = 4 * time.Second
	defaultMonitorTick    = 30 * time.Second
	defaultBatchTimeout   = 5 * time.Second
)

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("arena.battlefield", true)
	viper.SetDefault("arena.castleHealth", 100)
	viper.SetDefault("arena.damagePerDeploy", 10)
	viper.SetDefault("arena.markerLifetime", "2s")

	viper.SetDefault("notify.toastDuration", "4s")
	viper.SetDefault("notify.history", 5)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0)

	viper.SetDefault("monitor.interval", "30s")
	viper.SetDefault("monitor.statusFile", "")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "queue-commander")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file. Defaults stay in
// effect when the file cannot be read.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// durationOr returns the duration at key, or def when it is missing or invalid.
func durationOr(key string, def time.Duration) time.Duration {
	d := viper.GetDuration(key)
	if d <= 0 {
		return def
	}
	return d
}

// GetArenaConfig returns the arena settings.
func GetArenaConfig() ArenaConfig {
	return ArenaConfig{
		Battlefield:     viper.GetBool("arena.battlefield"),
		CastleHealth:    viper.GetInt("arena.castleHealth"),
		DamagePerDeploy: viper.GetInt("arena.damagePerDeploy"),
		MarkerLifetime:  durationOr("arena.markerLifetime", defaultMarkerLifetime),
	}
}

// GetNotifyConfig returns the toast settings.
func GetNotifyConfig() NotifyConfig {
	return NotifyConfig{
		ToastDuration: durationOr("notify.toastDuration", defaultToastDuration),
		History:       viper.GetInt("notify.history"),
	}
}

// GetAudioConfig returns the sound cue settings.
func GetAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled: viper.GetBool("audio.enabled"),
		Volume:  viper.GetFloat64("audio.volume"),
	}
}

// GetMonitorConfig returns the status monitor settings.
func GetMonitorConfig() MonitorConfig {
	return MonitorConfig{
		Interval:   durationOr("monitor.interval", defaultMonitorTick),
		StatusFile: viper.GetString("monitor.statusFile"),
	}
}

// GetGraylogConfig returns the GELF output settings.
func GetGraylogConfig() GraylogConfig {
	return GraylogConfig{
		Enabled: viper.GetBool("graylog.enabled"),
		Address: viper.GetString("graylog.address"),
	}
}

// GetOTelConfig returns the OpenTelemetry settings.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: durationOr("otel.batchTimeout", defaultBatchTimeout),
		Endpoint:     viper.GetString("otel.endpoint"),
		Insecure:     viper.GetBool("otel.insecure"),
	}
}
