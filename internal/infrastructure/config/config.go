// Package config resolves settings from defaults, an optional YAML file,
// FORMUP_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "FORMUP"

const (
	KeyConfig     = "config"
	KeyLogLevel   = "log_level"
	KeyLogJSON    = "log_json"
	KeyLogDir     = "log_dir"
	KeyHeadless   = "headless"
	KeyTimeout    = "timeout"
	KeySampleData = "sample_data"
	KeyVerbose    = "verbose"
	KeyAddr       = "addr"
	KeyFocusDelay = "focus_delay"
	KeyBrowserBin = "browser_bin"
	KeyNoSandbox  = "no_sandbox"
	KeyAccessLog  = "access_log"
)

type Config struct {
	LogLevel   string        `mapstructure:"log_level"`
	LogJSON    bool          `mapstructure:"log_json"`
	LogDir     string        `mapstructure:"log_dir"`
	Headless   bool          `mapstructure:"headless"`
	Timeout    time.Duration `mapstructure:"timeout"`
	SampleData string        `mapstructure:"sample_data"`
	Verbose    bool          `mapstructure:"verbose"`
	Addr       string        `mapstructure:"addr"`
	FocusDelay time.Duration `mapstructure:"focus_delay"`
	BrowserBin string        `mapstructure:"browser_bin"`
	NoSandbox  bool          `mapstructure:"no_sandbox"`
	AccessLog  bool          `mapstructure:"access_log"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:   "info",
		Headless:   true,
		Timeout:    30 * time.Second,
		Addr:       "127.0.0.1:8787",
		FocusDelay: 100 * time.Millisecond,
		AccessLog:  true,
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogJSON, d.LogJSON)
	v.SetDefault(KeyLogDir, d.LogDir)
	v.SetDefault(KeyHeadless, d.Headless)
	v.SetDefault(KeyTimeout, d.Timeout)
	v.SetDefault(KeySampleData, d.SampleData)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyAddr, d.Addr)
	v.SetDefault(KeyFocusDelay, d.FocusDelay)
	v.SetDefault(KeyBrowserBin, d.BrowserBin)
	v.SetDefault(KeyNoSandbox, d.NoSandbox)
	v.SetDefault(KeyAccessLog, d.AccessLog)
}

// FlagKey maps a flag name such as log-level to its settings key.
func FlagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// Load resolves the configuration. Flags that were not set on the command
// line fall through to the environment, the file and the defaults.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if bindErr == nil {
				bindErr = v.BindPFlag(FlagKey(f.Name), f)
			}
		})
		if bindErr != nil {
			return Config{}, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
