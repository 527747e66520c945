package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mkarsten/fidget/internal/util"
)

// Load resolves the configuration from flags, environment (FIDGET_*), and
// an optional YAML config file. Flags win over environment, which wins
// over the file. The interval is parsed separately so a bare integer can
// keep its historical meaning of minutes.
func Load(flags *pflag.FlagSet, cfgFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FIDGET")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("fidget")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	interval, err := util.ParseDuration(v.GetString("interval"))
	if err != nil {
		return Config{}, err
	}
	cfg.Interval = interval

	return cfg, cfg.Validate()
}
