package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config 配置文件 ~/.config/dxftags/config.yaml，命令行参数优先
type Config struct {
	Encoding string `yaml:"encoding"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dxftags", "config.yaml")
}

// LoadConfig 文件不存在或格式错误时返回空配置
func LoadConfig(path string) Config {
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

func applyGlobalConfig(cmd *cobra.Command, cfg Config, flags *globalFlags) {
	if cfg.Encoding != "" && !cmd.Flags().Changed("encoding") {
		flags.encoding = cfg.Encoding
	}
	if cfg.LogLevel != "" && !cmd.Flags().Changed("log-level") {
		flags.logLevel = cfg.LogLevel
	}
}
