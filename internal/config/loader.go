package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load デフォルト値の上にコマンドラインフラグを重ねて設定を組み立てる
// 設定ファイルと環境変数は読まない
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := &Config{
		URL:          v.GetString("url"),
		Warning:      v.GetInt("warning"),
		Critical:     v.GetInt("critical"),
		Timeout:      v.GetDuration("timeout"),
		MaxRedirects: v.GetInt("max-redirects"),
		MaxBodySize:  v.GetInt64("max-body-size"),
		UserAgent:    v.GetString("user-agent"),
		Insecure:     v.GetBool("insecure"),
		Verbose:      v.GetBool("verbose"),
		NoColor:      v.GetBool("no-color"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.URL = NormalizeURL(cfg.URL)
	return cfg, nil
}

// setDefaults DefaultConfig の値をviperに登録
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("warning", d.Warning)
	v.SetDefault("critical", d.Critical)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("max-redirects", d.MaxRedirects)
	v.SetDefault("max-body-size", d.MaxBodySize)
	v.SetDefault("user-agent", d.UserAgent)
	v.SetDefault("insecure", d.Insecure)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("no-color", d.NoColor)
}
