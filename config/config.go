// Package config loads the engine configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultAPITimeout     = 10 * time.Second
	defaultAcquireTimeout = 5 * time.Second
	defaultRadiusMeters   = 5000
	defaultQueryLimit     = 20

	// Fallback position when the host cannot provide one: central Chennai.
	defaultLatitude  = 13.0827
	defaultLongitude = 80.2707
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API points the engine at the shop discovery backend.
	API struct {
		BaseURL string        `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
		Timeout time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"api" yaml:"api"`

	Discovery DiscoveryConfig `json:"discovery" yaml:"discovery"`

	Geo GeoConfig `json:"geo" yaml:"geo"`

	// Auth optionally holds credentials the engine logs in with at startup.
	// When absent the engine browses unauthenticated.
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Stub configures the local stub API server (cmd/shopstubd).
	Stub *StubConfig `json:"stub" yaml:"stub"`
}

// AuthConfig holds login credentials for the engine.
type AuthConfig struct {
	Email    string `json:"email" yaml:"email" validate:"required,email"`
	Password string `json:"password" yaml:"password" validate:"required"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DiscoveryConfig defines defaults for the nearby-shop query.
type DiscoveryConfig struct {
	DefaultLatitude  float64 `json:"defaultLatitude" yaml:"defaultLatitude"`
	DefaultLongitude float64 `json:"defaultLongitude" yaml:"defaultLongitude"`
	DefaultRadius    int     `json:"defaultRadius" yaml:"defaultRadius" validate:"oneof=1000 2000 5000 10000 20000"`
	Limit            int     `json:"limit" yaml:"limit" validate:"min=1,max=100"`
}

// GeoConfig selects the host location capability.
type GeoConfig struct {
	// Provider is "none" (no capability), "ip" (ip-api.com lookup) or
	// "static" (fixed coordinates, useful for development).
	Provider        string        `json:"provider" yaml:"provider" validate:"oneof=none ip static"`
	AcquireTimeout  time.Duration `json:"acquireTimeout" yaml:"acquireTimeout"`
	IPEndpoint      string        `json:"ipEndpoint" yaml:"ipEndpoint"`
	StaticLatitude  float64       `json:"staticLatitude" yaml:"staticLatitude"`
	StaticLongitude float64       `json:"staticLongitude" yaml:"staticLongitude"`
}

// StubConfig defines the local stub API server.
type StubConfig struct {
	Port       int    `json:"port" yaml:"port" validate:"min=1,max=65535"`
	SecretKey  string `json:"secretKey" yaml:"secretKey" validate:"required"`
	BcryptCost int    `json:"bcryptCost" yaml:"bcryptCost"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: API_BASEURL -> api.baseUrl (not api.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.Timeout <= 0 {
		c.API.Timeout = defaultAPITimeout
	}
	if c.Discovery.DefaultRadius == 0 {
		c.Discovery.DefaultRadius = defaultRadiusMeters
	}
	if c.Discovery.Limit == 0 {
		c.Discovery.Limit = defaultQueryLimit
	}
	if c.Discovery.DefaultLatitude == 0 && c.Discovery.DefaultLongitude == 0 {
		c.Discovery.DefaultLatitude = defaultLatitude
		c.Discovery.DefaultLongitude = defaultLongitude
	}
	if c.Geo.Provider == "" {
		c.Geo.Provider = "none"
	}
	if c.Geo.AcquireTimeout <= 0 {
		c.Geo.AcquireTimeout = defaultAcquireTimeout
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
