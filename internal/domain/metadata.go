package domain

// RepositoryInfo is one enumeration row for the metadata tools.
type RepositoryInfo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	URL         string `json:"url"`
	UpdatedAt   string `json:"updated_at"`
}

// Visibility returns the visibility label for the repository.
func (r RepositoryInfo) Visibility() string {
	if r.Private {
		return "private"
	}
	return "public"
}

// MetadataChange records a single before/after field update on a repository.
type MetadataChange struct {
	Repository string `json:"repository"`
	Field      string `json:"field"`
	OldValue   string `json:"old_value"`
	NewValue   string `json:"new_value"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

// Metadata fields the updaters operate on.
const (
	FieldDescription = "description"
	FieldVisibility  = "visibility"
)

// SkippedRepository records a repository left untouched and why.
type SkippedRepository struct {
	Repository string `json:"repository"`
	Current    string `json:"current_value"`
	Reason     string `json:"reason"`
}

// MetadataStats aggregates counters across a metadata run.
type MetadataStats struct {
	TotalRepos int `json:"total_repos"`
	Updated    int `json:"updated"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

// MetadataReport is the output document of a description or visibility run.
type MetadataReport struct {
	RunID         string              `json:"run_id"`
	ExecutionDate string              `json:"execution_date"`
	Stats         MetadataStats       `json:"statistics"`
	Changes       []MetadataChange    `json:"updates"`
	Skipped       []SkippedRepository `json:"skipped,omitempty"`
}

// RepositoryExport is the export document listing current repository state.
type RepositoryExport struct {
	ExportedAt   string           `json:"exported_at"`
	TotalRepos   int              `json:"total_repositories"`
	Repositories []RepositoryInfo `json:"repositories"`
}
