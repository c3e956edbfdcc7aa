package generator

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	envPrefix = "GQLBUILDER"

	// DefaultRuntimePkg is the import path of the runtime generated code depends on.
	DefaultRuntimePkg = "github.com/wisdomatom/gqlbuilder-gen/builder"
)

// Config holds the CLI settings, read from the environment (GQLBUILDER_*)
// and an optional .env file. Flags override it.
type Config struct {
	PkgName     string `envconfig:"PKG" default:"client"`
	ScalarsPath string `envconfig:"SCALARS"`
	RuntimePkg  string `envconfig:"RUNTIME"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile     string `envconfig:"LOG_FILE"`
}

// LoadConfig loads envFiles (".env" when none given, a missing file is not an
// error) and then the GQLBUILDER_* variables.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	conf := &Config{}
	if err := envconfig.Process(envPrefix, conf); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if conf.RuntimePkg == "" {
		conf.RuntimePkg = DefaultRuntimePkg
	}
	return conf, nil
}

// GoType maps a GraphQL scalar to a Go type.
type GoType struct {
	Type     string `json:"type"`     // type name (e.g. "Time", "Decimal", or "string")
	Pkg      string `json:"pkg"`      // package path (e.g. "time", "github.com/shopspring/decimal")
	Category string `json:"category"` // numeric, text, boolean, date or empty
}

// GenerateConfig is the input of one generation run.
type GenerateConfig struct {
	Schema     string            `json:"schema"`      // SDL text
	SchemaName string            `json:"schema_name"` // source name used in parse errors
	OutPath    string            `json:"out_path"`
	GoPkgName  string            `json:"go_pkg_name"`
	ScalarMap  map[string]GoType `json:"scalar_map"`
	RuntimePkg string            `json:"runtime_pkg"`
}
