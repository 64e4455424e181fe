package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/Hunterosmun/conways-game/pkg/grid"
)

// fileConfig is the HCL schema. Every attribute is optional; absent ones keep
// the base value.
//
//	rows           = 40
//	cols           = 60
//	topology       = "toroidal"
//	stop_on_resize = false
//	live_percent   = 25
type fileConfig struct {
	Rows         *int    `hcl:"rows,optional"`
	Cols         *int    `hcl:"cols,optional"`
	Topology     *string `hcl:"topology,optional"`
	StopOnResize *bool   `hcl:"stop_on_resize,optional"`
	LivePercent  *int    `hcl:"live_percent,optional"`
	Seed         *int64  `hcl:"seed,optional"`
	Scale        *int    `hcl:"scale,optional"`
	TPS          *int    `hcl:"tps,optional"`
	LogLevel     *string `hcl:"log_level,optional"`
	LogFormat    *string `hcl:"log_format,optional"`
}

// LoadFile reads an .hcl (or .json) file over base.
func LoadFile(path string, base Config) (Config, error) {
	var fc fileConfig
	if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := fc.apply(base)
	if err != nil {
		return Config{}, err
	}
	cfg.File = path
	return cfg, nil
}

// Decode parses src as the file named filename; the extension picks HCL or JSON syntax.
func Decode(filename string, src []byte, base Config) (Config, error) {
	var fc fileConfig
	if err := hclsimple.Decode(filename, src, nil, &fc); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return fc.apply(base)
}

func (fc fileConfig) apply(c Config) (Config, error) {
	if fc.Rows != nil {
		c.Rows = *fc.Rows
	}
	if fc.Cols != nil {
		c.Cols = *fc.Cols
	}
	if fc.Topology != nil {
		topo, err := grid.ParseTopology(*fc.Topology)
		if err != nil {
			return Config{}, fmt.Errorf("config: topology: %w", err)
		}
		c.Topology = topo
	}
	if fc.StopOnResize != nil {
		c.StopOnResize = *fc.StopOnResize
	}
	if fc.LivePercent != nil {
		c.LivePercent = *fc.LivePercent
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.Scale != nil {
		c.Scale = *fc.Scale
	}
	if fc.TPS != nil {
		c.TPS = *fc.TPS
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		c.LogFormat = *fc.LogFormat
	}
	return c, nil
}
