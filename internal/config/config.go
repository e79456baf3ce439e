// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves a types.Config from viper: config file, environment,
// .env file and bound flags, in viper's usual precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/openalex-fetch/internal/httputil"
	"github.com/pdiddy/openalex-fetch/internal/logging"
	"github.com/pdiddy/openalex-fetch/internal/openalex"
	"github.com/pdiddy/openalex-fetch/pkg/types"
)

// Viper keys.
const (
	KeyBaseURL   = "openalex.base_url"
	KeyTimeout   = "openalex.timeout"
	KeyUserAgent = "openalex.user_agent"
	KeyMailto    = "openalex.mailto"
	KeyAPIKey    = "openalex.api_key"
	KeyPerPage   = "openalex.per_page"
	KeyTerms     = "query.terms"
	KeyTopic     = "query.topic"
	KeyWorkType  = "query.work_type"
	KeyDataDir   = "export.data_dir"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. OPENALEX_FETCH_OPENALEX_MAILTO.
	EnvPrefix = "OPENALEX_FETCH"

	// Name is the config file base name searched in . and ~/.config/openalex-fetch.
	Name = "openalex-fetch"
)

// DefaultTerms selects corpora and datasets of offensive or hateful language.
const DefaultTerms = `(offensive OR hateful OR toxic OR abusive OR profanity OR "hate speech" OR hatespeech)
AND (corpus OR "data set" OR dataset OR collection)`

const (
	// DefaultTopic is the primary topic "Automated Detection of Hate Speech and Offensive Language".
	DefaultTopic    = "t12262"
	DefaultWorkType = "dataset"
	DefaultDataDir  = "data"
)

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBaseURL, openalex.DefaultBaseURL)
	v.SetDefault(KeyTimeout, httputil.DefaultTimeout)
	v.SetDefault(KeyUserAgent, httputil.DefaultUserAgent)
	v.SetDefault(KeyMailto, "")
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyPerPage, openalex.DefaultPerPage)
	v.SetDefault(KeyTerms, DefaultTerms)
	v.SetDefault(KeyTopic, DefaultTopic)
	v.SetDefault(KeyWorkType, DefaultWorkType)
	v.SetDefault(KeyDataDir, DefaultDataDir)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatConsole)
}

// Init prepares v to read configuration. An explicit cfgFile is used as is;
// otherwise v searches the working directory and ~/.config/openalex-fetch.
// Variables from a .env file in the working directory are exported first so
// the environment binding sees them; a missing .env is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{
		OpenAlex: types.OpenAlexConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration(KeyTimeout),
				UserAgent: v.GetString(KeyUserAgent),
			},
			BaseURL: v.GetString(KeyBaseURL),
			Mailto:  v.GetString(KeyMailto),
			APIKey:  v.GetString(KeyAPIKey),
			PerPage: v.GetInt(KeyPerPage),
		},
		Query: types.QueryConfig{
			Terms:    v.GetString(KeyTerms),
			Topic:    v.GetString(KeyTopic),
			WorkType: v.GetString(KeyWorkType),
		},
		Export: types.ExportConfig{
			DataDir: v.GetString(KeyDataDir),
		},
		Log: types.LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}
	return cfg, Validate(cfg)
}

// Validate reports the first setting that cannot work.
func Validate(cfg types.Config) error {
	u, err := url.Parse(cfg.OpenAlex.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid %s %q: must be an absolute URL", KeyBaseURL, cfg.OpenAlex.BaseURL)
	}
	if cfg.OpenAlex.PerPage < 1 || cfg.OpenAlex.PerPage > openalex.MaxPerPage {
		return fmt.Errorf("invalid %s %d: must be between 1 and %d", KeyPerPage, cfg.OpenAlex.PerPage, openalex.MaxPerPage)
	}
	if cfg.OpenAlex.Timeout < 0 {
		return fmt.Errorf("invalid %s %s: must not be negative", KeyTimeout, cfg.OpenAlex.Timeout)
	}
	if cfg.Export.DataDir == "" {
		return fmt.Errorf("%s must not be empty", KeyDataDir)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q: use console or json", cfg.Log.Format)
	}
	return nil
}
