// Package config loads trainroutes.yaml and maps it onto domain.Config.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Joshuacru/train-routes/internal/domain"
)

// DefaultFile is the config file searched for in the working directory.
const DefaultFile = "trainroutes.yaml"

// Load reads a trainroutes.yaml and applies parsed values on top of
// domain.DefaultConfig. The returned config is always usable: on a missing
// file the defaults come back together with a not_found error the caller may
// choose to ignore.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapConfig(cfg, dto), nil
}

func mapConfig(cfg domain.Config, dto yamlConfig) domain.Config {
	if dto.Routes.File != "" {
		cfg.Routes.File = dto.Routes.File
	}
	if dto.Routes.Database != "" {
		cfg.Routes.Database = dto.Routes.Database
	}
	if dto.Defaults.Format != "" {
		cfg.Defaults.Format = dto.Defaults.Format
	}
	if dto.Paths.JourneysDir != "" {
		cfg.Paths.JourneysDir = dto.Paths.JourneysDir
	}
	if dto.Server.Addr != "" {
		cfg.Server.Addr = dto.Server.Addr
	}
	if len(dto.Server.AllowedOrigins) > 0 {
		cfg.Server.AllowedOrigins = dto.Server.AllowedOrigins
	}
	return cfg
}
