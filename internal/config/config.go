// Package config loads the demo app's settings: a toml file with
// TABVIEW_-prefixed env overrides.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo configuration.
type Config struct {
	UI UIConfig
}

// UIConfig mirrors the TabView inputs the demo exposes.
type UIConfig struct {
	Scrollable      bool
	ControlClose    bool
	SelectOnFocus   bool
	AutoHideButtons bool
	BackwardLabel   string
	ForwardLabel    string
}

// Load reads configuration from file and env. Env var overrides use
// prefix TABVIEW_, e.g. TABVIEW_UI_SELECT_ON_FOCUS=true.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.scrollable", true)
	v.SetDefault("ui.control_close", false)
	v.SetDefault("ui.select_on_focus", false)
	v.SetDefault("ui.auto_hide_buttons", true)
	v.SetDefault("ui.backward_label", "‹")
	v.SetDefault("ui.forward_label", "›")

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("TABVIEW_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tabview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TABVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	return Config{
		UI: UIConfig{
			Scrollable:      v.GetBool("ui.scrollable"),
			ControlClose:    v.GetBool("ui.control_close"),
			SelectOnFocus:   v.GetBool("ui.select_on_focus"),
			AutoHideButtons: v.GetBool("ui.auto_hide_buttons"),
			BackwardLabel:   v.GetString("ui.backward_label"),
			ForwardLabel:    v.GetString("ui.forward_label"),
		},
	}, nil
}
