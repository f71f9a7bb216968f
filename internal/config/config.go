package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/appdist/distman/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys, shared by the config file, env vars and flags.
const (
	KeyDir        = "dir"
	KeyCDNHost    = "cdn_host"
	KeyUpdateJSON = "update_json"
	KeyLink       = "link"
	KeyRemoveOld  = "rm_old_files"
	KeyYes        = "yes"
	KeyTargets    = "targets"
	KeyLogLevel   = "log_level"
	KeyNoColor    = "no_color"
)

// Keys returns every key accepted by Set.
func Keys() []string {
	return []string{KeyDir, KeyCDNHost, KeyUpdateJSON, KeyLink, KeyRemoveOld, KeyYes, KeyTargets, KeyLogLevel, KeyNoColor}
}

// Settings is the resolved configuration for a run.
type Settings struct {
	Dir        string
	CDNHost    string
	UpdateJSON bool
	Link       bool
	RemoveOld  bool
	AssumeYes  bool
	NoColor    bool
	Targets    []string
	LogLevel   string
}

// Dir returns the config directory: <PREFIX>_CONFIG_DIR when set, otherwise
// ~/.distman.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("CONFIG_DIR")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper with defaults, the config file and environment.
// A missing config file is not an error; a broken one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyDir, ".")
	viper.SetDefault(KeyCDNHost, branding.CDNHost())
	viper.SetDefault(KeyUpdateJSON, true)
	viper.SetDefault(KeyLink, true)
	viper.SetDefault(KeyRemoveOld, false)
	viper.SetDefault(KeyYes, false)
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyNoColor, false)

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		Dir:        viper.GetString(KeyDir),
		CDNHost:    viper.GetString(KeyCDNHost),
		UpdateJSON: viper.GetBool(KeyUpdateJSON),
		Link:       viper.GetBool(KeyLink),
		RemoveOld:  viper.GetBool(KeyRemoveOld),
		AssumeYes:  viper.GetBool(KeyYes),
		NoColor:    viper.GetBool(KeyNoColor),
		Targets:    targetList(viper.GetStringSlice(KeyTargets)),
		LogLevel:   viper.GetString(KeyLogLevel),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	if key == KeyTargets {
		viper.Set(key, targetList([]string{value}))
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// targetList flattens comma- or space-separated entries, as env vars and
// `config set targets "android,ios"` deliver them.
func targetList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, f := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, f)
		}
	}
	return out
}
