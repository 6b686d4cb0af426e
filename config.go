/*
 * config.go, part of molstore.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package molstore

import (
	"log/slog"
	"os"
	"strings"

	"github.com/rmera/molstore/errors"
	"gopkg.in/yaml.v3"
)

//Radius types understood by RadiusFactory.
const (
	RadiusVdw      = "vdw"
	RadiusCovalent = "covalent"
	RadiusBfactor  = "bfactor"
	RadiusSize     = "size"
)

//Multiple bond modes for BondData.
const (
	MultipleBondOff       = "off"
	MultipleBondSymmetric = "symmetric"
)

//Config holds the tunable parameters of a Structure.
type Config struct {
	//Initial capacities of the stores. They grow as needed.
	AtomCapacity    int `yaml:"atom_capacity"`
	ResidueCapacity int `yaml:"residue_capacity"`
	ChainCapacity   int `yaml:"chain_capacity"`
	ModelCapacity   int `yaml:"model_capacity"`
	BondCapacity    int `yaml:"bond_capacity"`

	//RadiusType is one of vdw, covalent, bfactor or size.
	RadiusType  string  `yaml:"radius_type"`
	RadiusScale float64 `yaml:"radius_scale"`
	//RadiusSize is the radius used with the size radius type.
	RadiusSize float64 `yaml:"radius_size"`

	//BondScale multiplies the atom radius to get the bond radius.
	BondScale    float64 `yaml:"bond_scale"`
	MultipleBond string  `yaml:"multiple_bond"`
	BondSpacing  float64 `yaml:"bond_spacing"`

	LogLevel string `yaml:"log_level"`
}

//DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		AtomCapacity:    16,
		ResidueCapacity: 16,
		ChainCapacity:   16,
		ModelCapacity:   16,
		BondCapacity:    16,
		RadiusType:      RadiusVdw,
		RadiusScale:     1.0,
		RadiusSize:      1.0,
		BondScale:       0.4,
		MultipleBond:    MultipleBondOff,
		BondSpacing:     0.85,
		LogLevel:        "info",
	}
}

//ParseConfig reads a YAML document. Fields not present keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.New(errors.ErrInvalidConfig, err.Error()), "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

//LoadConfig reads and validates the YAML configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "reading config %s", path)
	}
	return ParseConfig(data)
}

//Validate checks that the values in the configuration make sense.
func (C Config) Validate() error {
	caps := map[string]int{
		"atom_capacity":    C.AtomCapacity,
		"residue_capacity": C.ResidueCapacity,
		"chain_capacity":   C.ChainCapacity,
		"model_capacity":   C.ModelCapacity,
		"bond_capacity":    C.BondCapacity,
	}
	for k, v := range caps {
		if v < 0 {
			return errors.Newf(errors.ErrInvalidConfig, "%s must not be negative, got %d", k, v)
		}
	}
	if !isInString([]string{RadiusVdw, RadiusCovalent, RadiusBfactor, RadiusSize}, C.RadiusType) {
		return errors.Newf(errors.ErrInvalidConfig, "unknown radius_type %q", C.RadiusType)
	}
	if !isInString([]string{MultipleBondOff, MultipleBondSymmetric}, C.MultipleBond) {
		return errors.Newf(errors.ErrInvalidConfig, "unknown multiple_bond %q", C.MultipleBond)
	}
	if C.RadiusScale <= 0 || C.BondScale <= 0 || C.BondSpacing <= 0 {
		return errors.New(errors.ErrInvalidConfig, "radius_scale, bond_scale and bond_spacing must be positive")
	}
	if _, ok := logLevels[strings.ToLower(C.LogLevel)]; !ok {
		return errors.Newf(errors.ErrInvalidConfig, "unknown log_level %q", C.LogLevel)
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

//Level returns the slog level named by LogLevel, Info if it is unknown.
func (C Config) Level() slog.Level {
	if l, ok := logLevels[strings.ToLower(C.LogLevel)]; ok {
		return l
	}
	return slog.LevelInfo
}
