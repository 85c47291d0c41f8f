/*
Package config manages TOML config for JyutServe.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/jyutserve/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the config file name inside the config dir.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// StoreConfig points at the syllable data file.
type StoreConfig struct {
	Path string `toml:"path"`
}

// ServerConfig has IPC server options.
// A MaxQueryLen of 0 accepts queries of any length.
type ServerConfig struct {
	MinQueryLen int `toml:"min_query_len"`
	MaxQueryLen int `toml:"max_query_len"`
}

// CliConfig holds cli output options.
type CliConfig struct {
	ShowDecomposition bool `toml:"show_decomposition"`
	Color             bool `toml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: "characters.json",
		},
		Server: ServerConfig{
			MinQueryLen: 0,
			MaxQueryLen: 0,
		},
		CLI: CliConfig{
			ShowDecomposition: true,
			Color:             true,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [configDir]/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	if defaultPath == "" {
		return DefaultConfig(), ""
	}
	log.Debugf("Loading config from default path: %s", defaultPath)
	return InitConfig(defaultPath), defaultPath
}

// InitConfig loads config from file or creates default if missing.
// Any failure falls back to builtin defaults.
func InitConfig(configPath string) *Config {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig()
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig()
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig()
	}
	return config
}

// LoadConfig loads from a TOML file. Unparsable files are salvaged
// section by section, unknown or mistyped keys keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	if !utils.FileExists(configPath) {
		return nil, os.ErrNotExist
	}
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath), nil
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) *Config {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	if section, ok := utils.ExtractSection(tempConfig, "store"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			config.Store.Path = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "min_query_len"); ok {
			config.Server.MinQueryLen = val
		}
		if val, ok := utils.ExtractInt64(section, "max_query_len"); ok {
			config.Server.MaxQueryLen = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		if val, ok := utils.ExtractBool(section, "show_decomposition"); ok {
			config.CLI.ShowDecomposition = val
		}
		if val, ok := utils.ExtractBool(section, "color"); ok {
			config.CLI.Color = val
		}
	}
	return config
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
