package config

import "os"

// DefaultBaseURL is the puzzle site used when AOC_BASE_URL is unset
const DefaultBaseURL = "https://adventofcode.com"

// WorkspacePath returns the workspace from the AOC_WORKSPACE env var.
// Empty means the workspace is discovered from the working directory.
func WorkspacePath() string {
	return os.Getenv("AOC_WORKSPACE")
}

// BaseURL returns the puzzle site from the AOC_BASE_URL env var,
// falling back to DefaultBaseURL.
func BaseURL() string {
	if env := os.Getenv("AOC_BASE_URL"); env != "" {
		return env
	}
	return DefaultBaseURL
}

// LogFile returns the log file from the AOC_LOG_FILE env var
func LogFile() string {
	return os.Getenv("AOC_LOG_FILE")
}
