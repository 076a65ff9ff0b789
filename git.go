package githubtypes

// APICommit is a commit as returned by the git data API.
type APICommit struct {
	Sha Oid    `json:"sha"`
	URL string `json:"url"`
}

// Branch is a repository branch.
type Branch struct {
	Name      string    `json:"name"`
	Commit    APICommit `json:"commit"`
	Protected bool      `json:"protected"`
}
