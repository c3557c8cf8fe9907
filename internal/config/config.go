package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Demand   DemandConfig   `toml:"demand"`
	Admin    AdminConfig    `toml:"admin"`
	Payments PaymentsConfig `toml:"payments"`
	Graph    GraphConfig    `toml:"graph"`
	Resend   ResendConfig   `toml:"resend"`
	ICS      ICSConfig      `toml:"ics"`
	Notify   NotifyConfig   `toml:"notify"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	StaticDir       string `toml:"static_dir"`
	SiteURL         string `toml:"site_url"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StorageConfig выбор реализации хранилищ: memory или postgres
type StorageConfig struct {
	Driver string `toml:"driver"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig хранилище платежных ссылок
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTLHours int    `toml:"ttl_hours"`
}

// DemandConfig маршруты по спросу (Queenstown)
type DemandConfig struct {
	Threshold int  `toml:"threshold"`
	Enabled   bool `toml:"enabled"`
}

type AdminConfig struct {
	Pin string `toml:"pin"`
}

type PaymentsConfig struct {
	YocoURL     string `toml:"yoco_url"`
	WebhooksURL string `toml:"yoco_webhooks_url"`
	SecretKey   string `toml:"secret_key"`
	TestMode    bool   `toml:"test_mode"`
	Timeout     int    `toml:"timeout"`
}

type GraphConfig struct {
	TenantID     string `toml:"tenant_id"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	UserUPN      string `toml:"user_upn"`
	AuthURL      string `toml:"auth_url"`
	BaseURL      string `toml:"base_url"`
	Timeout      int    `toml:"timeout"`

	// События блокировок в Outlook
	TimeZone     string `toml:"time_zone"`
	BlockSubject string `toml:"block_subject"`
}

// Configured returns true if client credentials are present
func (g GraphConfig) Configured() bool {
	return g.TenantID != "" && g.ClientID != "" && g.ClientSecret != ""
}

type ResendConfig struct {
	APIKey  string `toml:"api_key"`
	From    string `toml:"from"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type ICSConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type NotifyConfig struct {
	AdminEmail  string `toml:"admin_email"`
	ClientEmail string `toml:"client_email"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			StaticDir:       "dist",
			SiteURL:         "http://localhost:8080",
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "shuttle-service",
			Path:        "/metrics",
		},
		Storage: StorageConfig{Driver: StorageMemory},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{Addr: "localhost:6379", TTLHours: 24 * 30},
		Demand: DemandConfig{
			Threshold: 6,
			Enabled:   true,
		},
		Payments: PaymentsConfig{
			YocoURL:     "https://payments.yoco.com/api/checkouts",
			WebhooksURL: "https://payments.yoco.com/api/webhooks",
			Timeout:     15,
		},
		Graph: GraphConfig{
			AuthURL:      "https://login.microsoftonline.com",
			BaseURL:      "https://graph.microsoft.com/v1.0",
			Timeout:      15,
			TimeZone:     "South Africa Standard Time",
			BlockSubject: "Totti Unavailable",
		},
		Resend: ResendConfig{
			URL:     "https://api.resend.com/emails",
			Timeout: 15,
		},
		ICS: ICSConfig{Timeout: 15},
	}
}

// Load читает TOML файл и применяет переменные окружения.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет секреты и флаги из окружения
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}

	str("ADMIN_PIN", &c.Admin.Pin)
	str("YOCO_SECRET_KEY", &c.Payments.SecretKey)
	str("SITE_URL", &c.Server.SiteURL)
	str("GRAPH_TENANT_ID", &c.Graph.TenantID)
	str("GRAPH_CLIENT_ID", &c.Graph.ClientID)
	str("GRAPH_CLIENT_SECRET", &c.Graph.ClientSecret)
	str("GRAPH_USER_UPN", &c.Graph.UserUPN)
	str("RESEND_API_KEY", &c.Resend.APIKey)
	str("RESEND_FROM", &c.Resend.From)
	str("ICS_URL", &c.ICS.URL)
	str("NOTIFY_ADMIN_EMAIL", &c.Notify.AdminEmail)
	str("NOTIFY_CLIENT_EMAIL", &c.Notify.ClientEmail)
	str("STATIC_DIR", &c.Server.StaticDir)

	if v, ok := lookup("YOCO_TEST_MODE"); ok && v != "" {
		v = strings.ToLower(v)
		c.Payments.TestMode = v == "1" || v == "true"
	}

	if v, ok := lookup("QTN_ENABLED"); ok && v != "" {
		c.Demand.Enabled = strings.ToLower(v) == "true"
	}

	if v, ok := lookup("QTN_THRESHOLD"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: QTN_THRESHOLD=%q is not a number", ErrInvalidConfig, v)
		}
		c.Demand.Threshold = n
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = n
	}

	return nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Demand.Threshold <= 0 {
		return fmt.Errorf("%w: demand.threshold must be positive, got %d", ErrInvalidConfig, c.Demand.Threshold)
	}

	if c.ICS.URL != "" && !IsHTTPURL(c.ICS.URL) {
		return fmt.Errorf("%w: ics.url must start with http:// or https://", ErrInvalidConfig)
	}

	return nil
}

// IsHTTPURL returns true if the value is an http(s) URL
func IsHTTPURL(v string) bool {
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}
