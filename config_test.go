/*
 * config_test.go, part of molstore.
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

package molstore_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rmera/molstore"
	"github.com/rmera/molstore/bitset"
	"github.com/rmera/molstore/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(Te *testing.T) {
	require.NoError(Te, molstore.DefaultConfig().Validate())
	cfg, err := molstore.ParseConfig([]byte(`
atom_capacity: 1024
radius_type: covalent
multiple_bond: symmetric
log_level: debug
`))
	require.NoError(Te, err)
	assert.Equal(Te, 1024, cfg.AtomCapacity)
	assert.Equal(Te, molstore.RadiusCovalent, cfg.RadiusType)
	assert.Equal(Te, molstore.MultipleBondSymmetric, cfg.MultipleBond)
	assert.Equal(Te, slog.LevelDebug, cfg.Level())
	//the rest keeps the defaults.
	assert.Equal(Te, 0.85, cfg.BondSpacing)
	assert.Equal(Te, 16, cfg.BondCapacity)

	bad := []string{
		"radius_type: huge",
		"multiple_bond: sometimes",
		"bond_capacity: -1",
		"bond_scale: 0",
		"log_level: loud",
		"atom_capacity: [1, 2]",
	}
	for _, b := range bad {
		_, err := molstore.ParseConfig([]byte(b))
		assert.True(Te, errors.Is(err, errors.ErrInvalidConfig), b)
	}
}

func TestLoadConfig(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "molstore.yaml")
	require.NoError(Te, os.WriteFile(path, []byte("radius_scale: 0.5\nbond_spacing: 1.0\n"), 0o644))
	cfg, err := molstore.LoadConfig(path)
	require.NoError(Te, err)
	assert.Equal(Te, 0.5, cfg.RadiusScale)
	assert.Equal(Te, 1.0, cfg.BondSpacing)

	_, err = molstore.LoadConfig(filepath.Join(dir, "nope.yaml"))
	assert.Error(Te, err)
	assert.True(Te, os.IsNotExist(errors.Cause(err)))

	s := molstore.New("configured", molstore.WithConfig(cfg))
	assert.Equal(Te, cfg, s.Config())
}

func TestMetrics(Te *testing.T) {
	reg := prometheus.NewRegistry()
	m := molstore.NewMetrics(reg)
	s := newDipeptide(Te, molstore.WithMetrics(m))
	assert.Equal(Te, 1.0, testutil.ToFloat64(m.Refreshes))
	assert.Equal(Te, float64(2*atomsPerModel), testutil.ToFloat64(m.Atoms))
	assert.Equal(Te, 20.0, testutil.ToFloat64(m.Bonds))

	_, err := s.AtomData(molstore.AtomDataParams{})
	require.NoError(Te, err)
	_, err = s.BondData(molstore.BondDataParams{})
	require.NoError(Te, err)
	assert.Equal(Te, float64(2*atomsPerModel), testutil.ToFloat64(m.Extracted.WithLabelValues("atom")))
	assert.Equal(Te, 20.0, testutil.ToFloat64(m.Extracted.WithLabelValues("bond")))

	s.Refresh()
	assert.Equal(Te, 2.0, testutil.ToFloat64(m.Refreshes))
	n, err := testutil.GatherAndCount(reg, "molstore_refresh_duration_seconds")
	require.NoError(Te, err)
	assert.Equal(Te, 1, n)

	//without metrics nothing is recorded, and nothing breaks.
	plain := newDipeptide(Te)
	plain.Refresh()
}

func TestLogging(Te *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newDipeptide(Te, molstore.WithLogger(logger))
	out := buf.String()
	assert.Contains(Te, out, "structure=dipeptide")
	assert.Contains(Te, out, "msg=refreshed")
	assert.Contains(Te, out, "msg=\"bonds calculated\"")
	buf.Reset()
	_, err := s.AtomData(molstore.AtomDataParams{Set: s.AtomSet(nil)})
	require.NoError(Te, err)
	assert.Empty(Te, buf.String())
	_, err = s.AtomData(molstore.AtomDataParams{Set: bitset.New(3)})
	require.Error(Te, err)
	assert.Contains(Te, buf.String(), "level=WARN")
	assert.Contains(Te, buf.String(), "kind=atom")
}

func TestConfigLogLevel(Te *testing.T) {
	cfg, err := molstore.ParseConfig([]byte("log_level: debug\n"))
	require.NoError(Te, err)
	var buf bytes.Buffer
	s := molstore.New("leveled", molstore.WithConfig(cfg), molstore.WithLogOutput(&buf))
	s.Refresh()
	out := buf.String()
	assert.Contains(Te, out, "level=DEBUG")
	assert.Contains(Te, out, "msg=refreshed")
	assert.Contains(Te, out, "structure=leveled")

	//the default level is info.
	buf.Reset()
	quiet := molstore.New("quiet", molstore.WithLogOutput(&buf))
	quiet.Refresh()
	assert.Empty(Te, buf.String())

	//an explicit logger wins over the config.
	buf.Reset()
	var other bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&other, nil))
	explicit := molstore.New("explicit", molstore.WithConfig(cfg), molstore.WithLogger(logger), molstore.WithLogOutput(&buf))
	explicit.Refresh()
	assert.Empty(Te, buf.String())
	assert.Empty(Te, other.String())
}
