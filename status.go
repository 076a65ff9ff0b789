package githubtypes

// StatusState is the state of a commit status.
type StatusState string

const (
	StatusError   StatusState = "error"
	StatusFailure StatusState = "failure"
	StatusPending StatusState = "pending"
	StatusSuccess StatusState = "success"
)

// StatusCommit is the commit a status update refers to.
type StatusCommit struct {
	Sha         Oid    `json:"sha"`
	NodeID      string `json:"node_id"`
	URL         string `json:"url"`
	HTMLURL     string `json:"html_url"`
	CommentsURL string `json:"comments_url"`
}
