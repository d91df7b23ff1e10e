package orchestrator

import (
	"os"
	"strings"
	"time"
)

// Timeout constants for different operations
var (
	// DefaultWorkflowTimeout bounds a whole run
	DefaultWorkflowTimeout = getTimeoutOrDefault("WORKFLOW_TIMEOUT", 60*time.Minute, 5*time.Second)
	// CloneTimeout bounds a single repository clone
	CloneTimeout = getTimeoutOrDefault("CLONE_TIMEOUT", 5*time.Minute, 2*time.Second)
)

// Default document paths
const (
	DefaultCommitListPath     = "commits.json"
	DefaultDeletionReportPath = "deleted_commits.json"
	DefaultSkipListPath       = "skipped_commits.json"
	DefaultDescriptionsPath   = "description_updates.json"
	DefaultVisibilityPath     = "visibility_updates.json"
	DefaultDescExportPath     = "repo_descriptions.json"
	DefaultVisExportPath      = "repo_visibility.json"
)

// maxBlockingPreview caps how many conflicting commits are shown when the
// safety check fails.
const maxBlockingPreview = 5

// isTestEnvironment detects if we're running in a test environment
func isTestEnvironment() bool {
	for _, arg := range os.Args {
		if strings.Contains(arg, ".test") || strings.Contains(arg, "go test") {
			return true
		}
	}
	return os.Getenv("GO_TEST") == "true" || os.Getenv("TEST_MODE") == "true"
}

// getTimeoutOrDefault returns production timeout or test timeout based on environment
func getTimeoutOrDefault(envVar string, prodDefault, testDefault time.Duration) time.Duration {
	if env := os.Getenv(envVar); env != "" {
		if duration, err := time.ParseDuration(env); err == nil {
			return duration
		}
	}
	if isTestEnvironment() {
		return testDefault
	}
	return prodDefault
}
