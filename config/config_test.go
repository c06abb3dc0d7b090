// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvboot/config"
	"github.com/katalvlaran/lvboot/resample"
)

func TestParse_Full(t *testing.T) {
	cfg, err := config.Parse([]byte(`
method: Circular
count: 250
length: 30
block: 4
domain: levels
seed: 42
workers: 2
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, "Circular", cfg.Method)
	assert.Equal(t, 250, cfg.Count)
	assert.Equal(t, 30, cfg.Length)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "json", cfg.Log.Format)

	m, err := cfg.ResolveMethod(resample.Builtin())
	require.NoError(t, err)
	assert.Equal(t, resample.Circular{Block: 4, Domain: resample.LevelDomain}, m)
	assert.Len(t, cfg.GeneratorOptions(), 3)
}

func TestParse_EmptyIsDefault(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	m, err := cfg.ResolveMethod(resample.Builtin())
	require.NoError(t, err)
	assert.Equal(t, resample.Stationary{}, m)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key": "colour: red\n",
		"bad yaml":    "count: [\n",
		"zero count":  "count: 0\n",
		"length one":  "length: 1\n",
		"small block": "mean_block: 0.5\n",
		"bad domain":  "domain: prices\n",
		"neg workers": "workers: -2\n",
		"empty meth":  "method: ''\n",
	}
	for name, doc := range cases {
		doc := doc
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("count: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMethod_FromRegistry(t *testing.T) {
	cfg := config.Default()
	cfg.Method = "gbm"
	m, err := cfg.ResolveMethod(resample.Builtin())
	require.NoError(t, err)
	assert.Equal(t, resample.NameGBM, m.Name())

	cfg.Method = "NotAMethod"
	_, err = cfg.ResolveMethod(resample.Builtin())
	assert.ErrorIs(t, err, resample.ErrUnsupportedMethod)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lvboot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: IID\ncount: 3\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "IID", cfg.Method)
	assert.Equal(t, 3, cfg.Count)

	_, err = config.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
