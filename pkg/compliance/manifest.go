package compliance

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

//go:embed benchmark.yaml
var benchmarkYAML []byte

var (
	benchmarkOnce sync.Once
	benchmark     types.Benchmark
	benchmarkErr  error
)

// LoadBenchmark parses the embedded CIS Microsoft 365 Foundations catalog.
// Parsing and validation happen once; later calls share the result.
func LoadBenchmark() (types.Benchmark, error) {
	benchmarkOnce.Do(func() {
		var b types.Benchmark
		if err := yaml.Unmarshal(benchmarkYAML, &b); err != nil {
			benchmarkErr = fmt.Errorf("parse benchmark catalog: %w", err)
			return
		}
		if err := validator.New().Struct(b); err != nil {
			benchmarkErr = fmt.Errorf("validate benchmark catalog: %w", err)
			return
		}
		seen := make(map[string]bool, len(b.Controls))
		for _, control := range b.Controls {
			if seen[control.ID] {
				benchmarkErr = fmt.Errorf("duplicate control %s in benchmark catalog", control.ID)
				return
			}
			seen[control.ID] = true
		}
		benchmark = b
	})
	return benchmark, benchmarkErr
}
