package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScalars(t *testing.T) {
	assert.Equal(t, GoType{Type: "int", Category: CategoryNumeric}, defaultScalarMap["Int"])
	assert.Equal(t, GoType{Type: "float64", Category: CategoryNumeric}, defaultScalarMap["Float"])
	assert.Equal(t, GoType{Type: "string", Category: CategoryText}, defaultScalarMap["String"])
	assert.Equal(t, GoType{Type: "bool", Category: CategoryBoolean}, defaultScalarMap["Boolean"])
	assert.Equal(t, GoType{Type: "Time", Pkg: "time", Category: CategoryDate}, defaultScalarMap["Date"])
}

func TestLoadScalarsMerge(t *testing.T) {
	conf := &GenerateConfig{ScalarMap: map[string]GoType{
		"Decimal": {Type: "Decimal", Pkg: "github.com/shopspring/decimal", Category: CategoryNumeric},
		"Stamp":   {Type: "Time", Pkg: "time"},
		"Int":     {Type: "int64", Category: CategoryNumeric},
	}}
	loadScalars(conf)

	assert.Equal(t, CategoryDate, conf.ScalarMap["Stamp"].Category)
	assert.Equal(t, "int64", conf.ScalarMap["Int"].Type)
	assert.Equal(t, "github.com/shopspring/decimal", conf.ScalarMap["Decimal"].Pkg)
	assert.Equal(t, defaultScalarMap["String"], conf.ScalarMap["String"])
	// the builtin table is not modified
	assert.Equal(t, "int", defaultScalarMap["Int"].Type)
}

func TestLoadScalarFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scalars.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Decimal": {"type": "Decimal", "pkg": "github.com/shopspring/decimal", "category": "numeric"}}`), 0644))

	m, err := LoadScalarFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]GoType{
		"Decimal": {Type: "Decimal", Pkg: "github.com/shopspring/decimal", Category: CategoryNumeric},
	}, m)

	_, err = LoadScalarFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = LoadScalarFile(bad)
	assert.ErrorContains(t, err, "parse scalars")
}
