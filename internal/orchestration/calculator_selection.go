package orchestration

import (
	"github.com/agbru/numlab/internal/fibonacci"
)

// GetCalculatorsToRun determines which calculators should be executed based on
// the algorithm selection. Returns calculators in alphabetically sorted order
// for consistent, reproducible behavior.
//
// Parameters:
//   - algo: The selected algorithm name, or "all" for a full comparison.
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []fibonacci.Calculator: A slice of calculators to execute. Nil when the
//     name is unknown (ParseConfig validates names, so this only happens with
//     a hand-built configuration).
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if algo == "all" {
		keys := factory.List() // List() returns sorted keys
		calculators := make([]fibonacci.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}
