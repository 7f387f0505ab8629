package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCurrency           = "NGN"
	defaultPaystackBaseURL    = "https://api.paystack.co"
	defaultBcryptCost         = 12
)

var (
	defaultFeePercentage            = decimal.NewFromInt(5)
	defaultRegularCustomerThreshold = decimal.NewFromInt(50000)
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Platform *PlatformConfig `json:"platform" yaml:"platform"`

	// Paystack payment provider
	Paystack *PaystackConfig `json:"paystack" yaml:"paystack"`

	// Cron guards the scheduled statistics endpoint
	Cron *CronConfig `json:"cron" yaml:"cron"`

	Email *EmailConfig `json:"email" yaml:"email"`

	// QRCode configuration for order pickup codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis backs the catalog cache; empty URL disables caching
	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost       int      `json:"bcryptCost" yaml:"bcryptCost"`
	SuperAdminEmails []string `json:"superAdminEmails" yaml:"superAdminEmails"`
}

// IsSuperAdminEmail reports whether email is configured as a super admin account.
func (c *AuthConfig) IsSuperAdminEmail(email string) bool {
	if c == nil {
		return false
	}
	for _, candidate := range c.SuperAdminEmails {
		if strings.EqualFold(strings.TrimSpace(candidate), strings.TrimSpace(email)) {
			return true
		}
	}

	return false
}

// PlatformConfig holds the marketplace economics.
type PlatformConfig struct {
	FeePercentage            decimal.Decimal `json:"feePercentage" yaml:"feePercentage"`
	RegularCustomerThreshold decimal.Decimal `json:"regularCustomerThreshold" yaml:"regularCustomerThreshold"`
	ShippingFee              decimal.Decimal `json:"shippingFee" yaml:"shippingFee"`
	Currency                 string          `json:"currency" yaml:"currency"`
}

type PaystackConfig struct {
	SecretKey      string        `json:"secretKey" yaml:"secretKey"`
	SubaccountCode string        `json:"subaccountCode" yaml:"subaccountCode"`
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	CallbackURL    string        `json:"callbackUrl" yaml:"callbackUrl"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
}

type CronConfig struct {
	Secret string `json:"secret" yaml:"secret"`
}

// EmailConfig configures the transactional email API. Sending is disabled when APIKey is empty.
type EmailConfig struct {
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	From    string `json:"from" yaml:"from"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google", "kafka" or empty for no-op
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka brokers and topic (for kafka provider)
	Brokers []string `json:"brokers" yaml:"brokers"`
	Topic   string   `json:"topic" yaml:"topic"`
}

type RedisConfig struct {
	URL      string        `json:"url" yaml:"url"`
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME is aligned with existing YAML keys: PAYSTACK_SECRETKEY -> paystack.secretKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				decimalHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}

	if cfg.Platform == nil {
		cfg.Platform = &PlatformConfig{}
	}
	if cfg.Platform.FeePercentage.IsZero() {
		cfg.Platform.FeePercentage = defaultFeePercentage
	}
	if cfg.Platform.RegularCustomerThreshold.IsZero() {
		cfg.Platform.RegularCustomerThreshold = defaultRegularCustomerThreshold
	}
	if cfg.Platform.Currency == "" {
		cfg.Platform.Currency = defaultCurrency
	}

	if cfg.Paystack == nil {
		cfg.Paystack = &PaystackConfig{}
	}
	if cfg.Paystack.BaseURL == "" {
		cfg.Paystack.BaseURL = defaultPaystackBaseURL
	}
	if cfg.Paystack.Timeout == 0 {
		cfg.Paystack.Timeout = 15 * time.Second
	}

	if cfg.Cron == nil {
		cfg.Cron = &CronConfig{}
	}
	if cfg.Email == nil {
		cfg.Email = &EmailConfig{}
	}
	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.CacheTTL == 0 {
		cfg.Redis.CacheTTL = 5 * time.Minute
	}
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// decimalHookFunc decodes YAML numbers and env strings into decimal.Decimal.
func decimalHookFunc() mapstructure.DecodeHookFuncType {
	decimalType := reflect.TypeOf(decimal.Decimal{})

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return decimal.Zero, nil
			}
			d, err := decimal.NewFromString(strings.TrimSpace(v))
			if err != nil {
				return nil, errors.Wrapf(err, "invalid decimal %q", v)
			}

			return d, nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case uint64:
			return decimal.NewFromUint64(v), nil
		case float64:
			return decimal.NewFromFloat(v), nil
		case decimal.Decimal:
			return v, nil
		}

		return data, nil
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
