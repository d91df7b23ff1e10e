package domain

// CommitReference identifies a single commit inside a repository. It is
// produced by the fetch workflow and consumed by the undo workflow.

type CommitReference struct {
	Repository  string `json:"repository"`
	SHA         string `json:"commit_id"`
	Message     string `json:"commit_message"`
	Timestamp   string `json:"timestamp"`
	URL         string `json:"url,omitempty"`
	AuthorName  string `json:"author_name,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
}

// CommitList is the commit-list document written by fetch.
type CommitList struct {
	Date         string            `json:"date"`
	TotalCommits int               `json:"total_commits"`
	Commits      []CommitReference `json:"commits"`
}

// CommitDetail is the per-commit preview read from a local clone.
type CommitDetail struct {
	SHA     string   `json:"sha"`
	Message string   `json:"message"`
	Author  string   `json:"author"`
	Date    string   `json:"date"`
	Files   []string `json:"files,omitempty"`
}

// ShortSHA abbreviates a commit hash for display.
func ShortSHA(sha string) string {
	if len(sha) <= 8 {
		return sha
	}
	return sha[:8]
}

// GroupByRepository buckets commit references by their repository, keeping
// first-seen repository order stable.
func GroupByRepository(commits []CommitReference) (map[string][]CommitReference, []string) {
	grouped := make(map[string][]CommitReference)
	var order []string
	for _, c := range commits {
		if _, ok := grouped[c.Repository]; !ok {
			order = append(order, c.Repository)
		}
		grouped[c.Repository] = append(grouped[c.Repository], c)
	}
	return grouped, order
}
