package generator

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

// Scalar categories decide the placeholder and whether a leaf is a date.
const (
	CategoryNumeric = "numeric"
	CategoryText    = "text"
	CategoryBoolean = "boolean"
	CategoryDate    = "date"
)

var (
	//go:embed scalar.json
	scalarFile       string
	defaultScalarMap = map[string]GoType{}
)

func init() {
	err := json.Unmarshal([]byte(scalarFile), &defaultScalarMap)
	if err != nil {
		panic(err)
	}
}

// LoadScalarFile reads a scalars.json mapping, e.g.
//
//	{"Decimal": {"type": "Decimal", "pkg": "github.com/shopspring/decimal", "category": "numeric"}}
func LoadScalarFile(path string) (map[string]GoType, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scalars %s: %w", path, err)
	}
	out := map[string]GoType{}
	if err := json.Unmarshal(bts, &out); err != nil {
		return nil, fmt.Errorf("parse scalars %s: %w", path, err)
	}
	return out, nil
}

// loadScalars merges user scalars over the builtin table.
func loadScalars(conf *GenerateConfig) {
	merged := make(map[string]GoType, len(defaultScalarMap)+len(conf.ScalarMap))
	for k, v := range defaultScalarMap {
		merged[k] = v
	}
	for k, v := range conf.ScalarMap {
		// a custom scalar mapped onto time.Time is a date leaf
		if v.Category == "" && v.Pkg == "time" && v.Type == "Time" {
			v.Category = CategoryDate
		}
		merged[k] = v
	}
	conf.ScalarMap = merged
}
