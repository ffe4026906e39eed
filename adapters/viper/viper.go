package viper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/undeniable-app/undeniable/utils/helpers"
)

// Viper struct holds the configuration for the Viper client
type Viper struct {
	configName string
	configType string
	configPath string // absolute folder; the environment segment is appended by NewViper
	envPrefix  string
	defaults   map[string]any
	required   []string
	instance   *viper.Viper
}

// Option configures a Viper.
type Option func(*Viper)

// WithEnvPrefix makes every key overridable through PREFIX_SECTION_KEY variables.
func WithEnvPrefix(prefix string) Option {
	return func(v *Viper) {
		v.envPrefix = prefix
	}
}

// WithDefaults registers default values applied before the file is read.
func WithDefaults(defaults map[string]any) Option {
	return func(v *Viper) {
		for key, value := range defaults {
			v.defaults[key] = value
		}
	}
}

// WithRequiredKeys lists keys that must resolve to a non-empty value.
func WithRequiredKeys(keys ...string) Option {
	return func(v *Viper) {
		v.required = append(v.required, keys...)
	}
}

// NewViper creates the viper configuration using the RunMode environment.
func NewViper(configName, configType, configPath string, opts ...Option) *Viper {
	env := helpers.GetEnvironment()
	if helpers.IsEmpty(env) {
		env = "dev" // default enviroment
	}
	configPath = strings.TrimSuffix(configPath, "/")

	v := &Viper{
		configName: configName,
		configType: configType,
		configPath: configPath + "/" + helpers.GetEnvironmentSlug(env) + "/",
		defaults:   map[string]any{},
		instance:   viper.New(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ConfigPath returns the folder the configuration is read from.
func (v *Viper) ConfigPath() string {
	return v.configPath
}

// Instance exposes the underlying viper for flag binding.
func (v *Viper) Instance() *viper.Viper {
	return v.instance
}

// InitialiseViper reads the configuration file and checks the required keys.
// A missing file is tolerated when the defaults and environment can satisfy
// every required key.
func (v *Viper) InitialiseViper() error {
	vp := v.instance
	vp.SetConfigName(v.configName) // Name of configuration file
	vp.SetConfigType(v.configType) // Configuration file type
	vp.AddConfigPath(v.configPath) // Look for configuration file in the given directory

	for key, value := range v.defaults {
		vp.SetDefault(key, value)
	}

	if v.envPrefix != "" {
		vp.SetEnvPrefix(v.envPrefix)
	}
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Enable Viper to read environment variables
	vp.AutomaticEnv()

	if err := vp.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading configuration file: %w", err)
		}
	}

	var missing []string
	for _, key := range v.required {
		if helpers.IsEmpty(vp.GetString(key)) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration keys: %s", strings.Join(missing, ", "))
	}

	return nil
}

// UnmarshalConfig unmarshals the entire Viper configuration into the provided struct reference.
// Durations are decoded from strings such as "5s" and comma separated strings
// into slices.
//
// Example:
//
//	type AppConfig struct {
//	    Server struct {
//	        Port    int           `mapstructure:"port"`
//	        Timeout time.Duration `mapstructure:"read_timeout"`
//	    } `mapstructure:"server"`
//	}
func UnmarshalConfig[T any](v *Viper, target *T) error {
	if target == nil {
		return fmt.Errorf("target struct cannot be nil")
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.instance.Unmarshal(target, hook); err != nil {
		return fmt.Errorf("failed to unmarshal viper config: %w", err)
	}

	return nil
}
