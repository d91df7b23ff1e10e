package domain

// Status tags for per-repository outcomes. A repository moves from pending
// through the safety check and confirmation to a terminal tag; the terminal
// tags are skipped, applied and failed.
const (
	StatusPending      = "pending"
	StatusSafetyFailed = "safety_failed"
	StatusSkipped      = "skipped"
	StatusApplied      = "success"
	StatusFailed       = "failed"
	StatusPartial      = "partial"
)

// Per-commit detail statuses inside a DeletionOutcome.
const (
	CommitStatusDeleted  = "deleted"
	CommitStatusNotFound = "not_found"
)

// DeletionOutcome records the result of processing one repository.
type DeletionOutcome struct {
	Repository     string               `json:"repository"`
	TotalCommits   int                  `json:"total_commits"`
	DeletedCommits int                  `json:"deleted_commits"`
	FailedCommits  int                  `json:"failed_commits"`
	Status         string               `json:"status"`
	ErrorMessage   string               `json:"error_message,omitempty"`
	CommitDetails  []CommitStatusDetail `json:"commit_details"`
}

// CommitStatusDetail is the per-commit entry of a DeletionOutcome.
type CommitStatusDetail struct {
	SHA     string `json:"sha"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SkippedReference marks a commit that was not deleted, with the reason.
// The skip-list document these accumulate into is valid retry input for
// the undo workflow.
type SkippedReference struct {
	Repository string `json:"repository"`
	SHA        string `json:"commit_sha"`
	Message    string `json:"commit_message"`
	Reason     string `json:"reason"`
}

// Skip reasons recorded in SkippedReference.
const (
	ReasonDeclined = "declined"
	ReasonSkipped  = "skipped"
	ReasonUnsafe   = "unsafe"
)

// SkipList is the skip-list document.
type SkipList struct {
	Date    string             `json:"date"`
	Commits []SkippedReference `json:"commits"`
}

// DeletionStats aggregates counters across an undo run.
type DeletionStats struct {
	TotalRepos     int `json:"total_repos"`
	ProcessedRepos int `json:"processed_repos"`
	SkippedRepos   int `json:"skipped_repos"`
	TotalCommits   int `json:"total_commits"`
	DeletedCommits int `json:"deleted_commits"`
	SkippedCommits int `json:"skipped_commits"`
}

// DeletionReport is the single output document of an undo run.
type DeletionReport struct {
	RunID           string             `json:"run_id"`
	ExecutionDate   string             `json:"execution_date"`
	Stats           DeletionStats      `json:"statistics"`
	Results         []DeletionOutcome  `json:"results"`
	SkippedForLater []SkippedReference `json:"skipped_for_later"`
}
