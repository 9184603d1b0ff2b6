// Package eval measures router classification accuracy over labeled query
// sets, grouped into categories. It exercises only the routing decision;
// store answers are out of scope for the report.
package eval

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"careline/common/logger"
	"careline/router"
	"careline/schema"
)

// Case is one labeled query.
type Case struct {
	ID       int    `json:"id"`
	Query    string `json:"query"`
	Expected string `json:"expected_agent"`
	Reason   string `json:"reason,omitempty"`
}

// Category names map to the envelope key holding the case list in the
// corresponding dataset file, mirroring the layout of the test data.
var categoryKeys = map[string]string{
	"basic":           "test_queries",
	"edge_cases":      "edge_cases",
	"clinical_safety": "clinical_safety",
	"hallucination":   "hallucination_tests",
	"uncertainty":     "uncertainty_tests",
}

// categoryFiles lists the dataset file per category, relative to the
// cases directory.
var categoryFiles = map[string]string{
	"basic":           "test_queries.json",
	"edge_cases":      "edge_cases.json",
	"clinical_safety": "clinical_safety.json",
	"hallucination":   "hallucination_tests.json",
	"uncertainty":     "uncertainty_tests.json",
}

// Mistake records one misrouted case.
type Mistake struct {
	Case     Case
	Actual   schema.Intent
	Fallback bool
}

// CategoryResult aggregates outcomes for one category.
type CategoryResult struct {
	Category  string
	Total     int
	Correct   int
	Fallbacks int
	Mistakes  []Mistake
	Elapsed   time.Duration
}

// Accuracy returns the fraction of correctly routed cases in [0, 1],
// or zero for an empty category.
func (r CategoryResult) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// LoadCases reads the case list for one category from dir. A missing file
// is not an error: it is logged and yields an empty list, so partial
// datasets still evaluate.
func LoadCases(dir, category string) ([]Case, error) {
	file, ok := categoryFiles[category]
	if !ok {
		return nil, fmt.Errorf("unknown eval category %q", category)
	}
	path := filepath.Join(dir, file)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("eval: %s not found, skipping %s", path, category)
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var envelope map[string][]Case
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return envelope[categoryKeys[category]], nil
}

// Categories returns the known category names in report order.
func Categories() []string {
	return []string{"basic", "edge_cases", "clinical_safety", "hallucination", "uncertainty"}
}

// Runner evaluates one router over case lists.
type Runner struct {
	Router router.Router
}

// Run routes every case and tallies the outcome against its label.
func (r *Runner) Run(ctx context.Context, category string, cases []Case) CategoryResult {
	result := CategoryResult{Category: category, Total: len(cases)}

	start := time.Now()
	for _, c := range cases {
		decision, err := r.Router.Route(ctx, c.Query)
		if err != nil {
			// Routers are built to absorb failures; count a hard error
			// as a mistake rather than aborting the run.
			result.Mistakes = append(result.Mistakes, Mistake{Case: c})
			continue
		}
		if decision.Fallback {
			result.Fallbacks++
		}
		if string(decision.Intent) == c.Expected {
			result.Correct++
		} else {
			result.Mistakes = append(result.Mistakes, Mistake{
				Case:     c,
				Actual:   decision.Intent,
				Fallback: decision.Fallback,
			})
		}
	}
	result.Elapsed = time.Since(start)
	return result
}

// RunDir evaluates every known category found under dir.
func (r *Runner) RunDir(ctx context.Context, dir string) ([]CategoryResult, error) {
	var results []CategoryResult
	for _, category := range Categories() {
		cases, err := LoadCases(dir, category)
		if err != nil {
			return nil, err
		}
		if len(cases) == 0 {
			continue
		}
		results = append(results, r.Run(ctx, category, cases))
	}
	return results, nil
}
