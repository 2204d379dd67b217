// Package config loads service settings from the environment (and an optional
// .env / config.yaml) through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Tables   TablesConfig   `mapstructure:"tables"`
	Mail     MailConfig     `mapstructure:"mail"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Vehicles VehiclesConfig `mapstructure:"vehicles"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	FollowUp FollowUpConfig `mapstructure:"follow_up"`
}

type AppConfig struct {
	Port        int    `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
}

type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
	SESEndpoint      string `mapstructure:"ses_endpoint"`
}

type TablesConfig struct {
	Quotes              string `mapstructure:"quotes"`
	QuoteDrafts         string `mapstructure:"quote_drafts"`
	ConversationEvents  string `mapstructure:"conversation_events"`
	Tasks               string `mapstructure:"tasks"`
	AIActions           string `mapstructure:"ai_actions"`
	VehicleDimensions   string `mapstructure:"vehicle_dimensions"`
	SequenceEnrollments string `mapstructure:"sequence_enrollments"`
}

type MailConfig struct {
	From    string `mapstructure:"from"`
	ReplyTo string `mapstructure:"reply_to"`
	Mock    bool   `mapstructure:"mock"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// VehiclesConfig selects where the vehicle reference table is loaded from:
// "embedded" (default) or "dynamodb".
type VehiclesConfig struct {
	Source string `mapstructure:"source"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FollowUpConfig drives the owner task created after a quote.
type FollowUpConfig struct {
	Owner           string  `mapstructure:"owner"`
	HighThreshold   float64 `mapstructure:"high_threshold"`
	UrgentThreshold float64 `mapstructure:"urgent_threshold"`
	Sequence        string  `mapstructure:"sequence"`
}

// envBindings maps config keys to the flat environment names used in
// deployment manifests.
var envBindings = map[string]string{
	"app.port":                    "PORT",
	"app.environment":             "APP_ENVIRONMENT",
	"aws.region":                  "AWS_REGION",
	"aws.access_key_id":           "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":       "AWS_SECRET_ACCESS_KEY",
	"aws.dynamodb_endpoint":       "DYNAMODB_ENDPOINT",
	"aws.ses_endpoint":            "SES_ENDPOINT",
	"tables.quotes":               "QUOTES_TABLE",
	"tables.quote_drafts":         "QUOTE_DRAFTS_TABLE",
	"tables.conversation_events":  "CONVERSATION_EVENTS_TABLE",
	"tables.tasks":                "TASKS_TABLE",
	"tables.ai_actions":           "AI_ACTIONS_TABLE",
	"tables.vehicle_dimensions":   "VEHICLE_DIMENSIONS_TABLE",
	"tables.sequence_enrollments": "SEQUENCE_ENROLLMENTS_TABLE",
	"mail.from":                   "MAIL_FROM",
	"mail.reply_to":               "MAIL_REPLY_TO",
	"mail.mock":                   "MAIL_MOCK",
	"redis.url":                   "REDIS_URL",
	"vehicles.source":             "VEHICLE_TABLE_SOURCE",
	"logging.level":               "LOG_LEVEL",
	"logging.format":              "LOG_FORMAT",
	"follow_up.owner":             "FOLLOW_UP_OWNER",
	"follow_up.high_threshold":    "FOLLOW_UP_HIGH_THRESHOLD",
	"follow_up.urgent_threshold":  "FOLLOW_UP_URGENT_THRESHOLD",
	"follow_up.sequence":          "FOLLOW_UP_SEQUENCE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.environment", "development")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("tables.quotes", "quotes")
	v.SetDefault("tables.quote_drafts", "quote_drafts")
	v.SetDefault("tables.conversation_events", "conversation_events")
	v.SetDefault("tables.tasks", "tasks")
	v.SetDefault("tables.ai_actions", "ai_actions")
	v.SetDefault("tables.vehicle_dimensions", "vehicle_dimensions")
	v.SetDefault("tables.sequence_enrollments", "sequence_enrollments")
	v.SetDefault("mail.from", "WePrintWraps <quotes@weprintwraps.com>")
	v.SetDefault("mail.mock", false)
	v.SetDefault("vehicles.source", "embedded")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("follow_up.owner", "sales")
	v.SetDefault("follow_up.high_threshold", 2000)
	v.SetDefault("follow_up.urgent_threshold", 5000)
	v.SetDefault("follow_up.sequence", "quote_followup")
}

// Load reads config.yaml (optional, from ./configs or .) and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Vehicles.Source = strings.ToLower(strings.TrimSpace(cfg.Vehicles.Source))

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		return fmt.Errorf("app.port out of range: %d", cfg.App.Port)
	}
	if strings.TrimSpace(cfg.AWS.Region) == "" {
		return fmt.Errorf("aws.region is required")
	}
	switch cfg.Vehicles.Source {
	case "embedded", "dynamodb":
	default:
		return fmt.Errorf("vehicles.source must be embedded or dynamodb, got %q", cfg.Vehicles.Source)
	}
	if !cfg.Mail.Mock && strings.TrimSpace(cfg.Mail.From) == "" {
		return fmt.Errorf("mail.from is required unless mail.mock is set")
	}
	if cfg.FollowUp.UrgentThreshold < cfg.FollowUp.HighThreshold {
		return fmt.Errorf("follow_up.urgent_threshold must be >= high_threshold")
	}
	return nil
}
