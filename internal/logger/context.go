package logger

// Component-specific logger functions

// Fetch returns a logger for remote retrieval operations
func Fetch() Logger {
	return WithField("component", "fetch")
}

// Schema returns a logger for payload validation operations
func Schema() Logger {
	return WithField("component", "schema")
}

// Report returns a logger for report reconciliation operations
func Report() Logger {
	return WithField("component", "report")
}

// CLI returns a logger for CLI operations
func CLI() Logger {
	return WithField("component", "cli")
}
