package config

import (
	"fmt"
	"strings"

	"boogie/constants"

	"github.com/spf13/viper"
)

// Config holds everything read at startup. It is loaded once in main and
// passed explicitly to the pieces that need it.
type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`
	SiteName   string `mapstructure:"site_name"`
	PublicURL  string `mapstructure:"public_url"`

	// Environment selects which htmlBlock documents are visible and is
	// either "development" or "production".
	Environment string `mapstructure:"environment"`

	CMSProjectID  string `mapstructure:"cms_project_id"`
	CMSDataset    string `mapstructure:"cms_dataset"`
	CMSAPIVersion string `mapstructure:"cms_api_version"`
	CMSAPIHost    string `mapstructure:"cms_api_host"`

	AnalyticsID string `mapstructure:"analytics_id"`

	// When set, contact submissions are also written to this sqlite file.
	// Empty keeps the log-only behavior.
	ContactStoreDSN string `mapstructure:"contact_store_dsn"`

	ContentDir string `mapstructure:"content_dir"`
	AssetsDir  string `mapstructure:"assets_dir"`
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads configuration from boogie.yaml (if present) and BOOGIE_*
// environment variables, with env taking precedence.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":6835")
	v.SetDefault("site_name", constants.APP_NAME)
	v.SetDefault("public_url", constants.PUBLIC_URL)
	v.SetDefault("environment", "development")
	v.SetDefault("cms_api_version", "2024-01-01")
	v.SetDefault("cms_api_host", "api.sanity.io")
	// Keys without a meaningful default still need to be registered so
	// environment-only values survive Unmarshal.
	v.SetDefault("cms_project_id", "")
	v.SetDefault("cms_dataset", "")
	v.SetDefault("analytics_id", "")
	v.SetDefault("contact_store_dsn", "")
	v.SetDefault("content_dir", "./pages")
	v.SetDefault("assets_dir", "./assets")

	v.SetConfigName("boogie")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BOOGIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CMSProjectID == "" {
		return Config{}, fmt.Errorf("cms_project_id is required (set BOOGIE_CMS_PROJECT_ID)")
	}
	if cfg.CMSDataset == "" {
		return Config{}, fmt.Errorf("cms_dataset is required (set BOOGIE_CMS_DATASET)")
	}

	return cfg, nil
}
