package bench

import "math"

// roundMillisFactor rounds reported ms/op values to two decimal places.
const roundMillisFactor = 100

// GateResult is the verdict for one benchmark. Ungated benchmarks carry
// Gated=false and are listed informationally.
type GateResult struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ActualMillis float64 `json:"actual_ms"`
	MaxMillis    float64 `json:"max_ms,omitempty"`
	TargetMillis float64 `json:"target_ms,omitempty"`
	Gated        bool    `json:"gated"`
	GatePassed   bool    `json:"gate_passed"`
	TargetMet    bool    `json:"target_met"`
	Iterations   int     `json:"iterations"`
	BytesPerOp   *int64  `json:"bytes_per_op,omitempty"`
	AllocsPerOp  *int64  `json:"allocs_per_op,omitempty"`
}

// Report aggregates the gate verdicts for one benchmark run. Passed is true
// when no gated benchmark exceeded its ceiling; ungated benchmarks never
// fail a run.
type Report struct {
	Passed          bool         `json:"passed"`
	TotalBenchmarks int          `json:"total_benchmarks"`
	GatedBenchmarks int          `json:"gated_benchmarks"`
	GatesPassed     int          `json:"gates_passed"`
	GatesFailed     int          `json:"gates_failed"`
	TargetsMet      int          `json:"targets_met"`
	Results         []GateResult `json:"results"`
}

// Check evaluates parsed benchmark results against a gate table. Results
// keep their input order; benchmarks without a gate are recorded but never
// affect the overall verdict.
func Check(results []Result, gates map[string]Gate) Report {
	report := Report{
		Passed:          true,
		TotalBenchmarks: len(results),
		Results:         make([]GateResult, 0, len(results)),
	}

	for _, result := range results {
		actualMillis := roundMillis(result.MsPerOp())

		gate, gated := gates[result.Name]
		if !gated {
			report.Results = append(report.Results, GateResult{
				Name:         result.Name,
				Description:  "No gate defined",
				ActualMillis: actualMillis,
				Iterations:   result.Iterations,
				BytesPerOp:   result.BytesPerOp,
				AllocsPerOp:  result.AllocsPerOp,
			})

			continue
		}

		gatePassed := result.MsPerOp() <= gate.MaxMillis
		targetMet := result.MsPerOp() <= gate.TargetMillis

		report.GatedBenchmarks++

		if gatePassed {
			report.GatesPassed++
		} else {
			report.GatesFailed++
			report.Passed = false
		}

		if targetMet {
			report.TargetsMet++
		}

		report.Results = append(report.Results, GateResult{
			Name:         result.Name,
			Description:  gate.Description,
			ActualMillis: actualMillis,
			MaxMillis:    gate.MaxMillis,
			TargetMillis: gate.TargetMillis,
			Gated:        true,
			GatePassed:   gatePassed,
			TargetMet:    targetMet,
			Iterations:   result.Iterations,
			BytesPerOp:   result.BytesPerOp,
			AllocsPerOp:  result.AllocsPerOp,
		})
	}

	return report
}

func roundMillis(ms float64) float64 {
	return math.Round(ms*roundMillisFactor) / roundMillisFactor
}
