package bench

// Gate is one latency threshold: a hard ceiling and an aspirational target,
// both in milliseconds per operation. Gates are plain data passed into
// Check, so alternative tables come from configuration, not code changes.
type Gate struct {
	MaxMillis    float64
	TargetMillis float64
	Description  string
}

// DefaultGates returns the stock gate table for the project's CI pipeline.
func DefaultGates() map[string]Gate {
	return map[string]Gate{
		"BenchmarkTUIStartup": {
			MaxMillis:    500,
			TargetMillis: 200,
			Description:  "TUI startup time",
		},
		"BenchmarkListDownloads": {
			MaxMillis:    100,
			TargetMillis: 50,
			Description:  "List downloads operation",
		},
		"BenchmarkQueueList": {
			MaxMillis:    100,
			TargetMillis: 50,
			Description:  "Queue list operation",
		},
		"BenchmarkStateLoad": {
			MaxMillis:    50,
			TargetMillis: 20,
			Description:  "State file loading",
		},
		"BenchmarkStateSave": {
			MaxMillis:    100,
			TargetMillis: 50,
			Description:  "State file saving",
		},
		"BenchmarkChecksumSHA256": {
			MaxMillis:    1000,
			TargetMillis: 500,
			Description:  "SHA256 checksum (per 10MB)",
		},
		"BenchmarkChecksumMD5": {
			MaxMillis:    500,
			TargetMillis: 250,
			Description:  "MD5 checksum (per 10MB)",
		},
	}
}
