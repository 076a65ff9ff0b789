package githubtypes

// ShortRepo is the abbreviated repository shape used by installation
// events.
type ShortRepo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
}

// Repository is a repository.
type Repository struct {
	ID               int64    `json:"id"`
	Owner            User     `json:"owner"`
	Name             string   `json:"name"`
	FullName         string   `json:"full_name"`
	Description      *string  `json:"description"`
	Private          bool     `json:"private"`
	Fork             bool     `json:"fork"`
	URL              string   `json:"url"`
	HTMLURL          string   `json:"html_url"`
	ArchiveURL       string   `json:"archive_url"`
	AssigneesURL     string   `json:"assignees_url"`
	BlobsURL         string   `json:"blobs_url"`
	BranchesURL      string   `json:"branches_url"`
	CloneURL         string   `json:"clone_url"`
	CollaboratorsURL string   `json:"collaborators_url"`
	CommentsURL      string   `json:"comments_url"`
	CommitsURL       string   `json:"commits_url"`
	CompareURL       string   `json:"compare_url"`
	ContentsURL      string   `json:"contents_url"`
	ContributorsURL  string   `json:"contributors_url"`
	DeploymentsURL   string   `json:"deployments_url"`
	DownloadsURL     string   `json:"downloads_url"`
	EventsURL        string   `json:"events_url"`
	ForksURL         string   `json:"forks_url"`
	GitCommitsURL    string   `json:"git_commits_url"`
	GitRefsURL       string   `json:"git_refs_url"`
	GitTagsURL       string   `json:"git_tags_url"`
	GitURL           string   `json:"git_url"`
	HooksURL         string   `json:"hooks_url"`
	IssueCommentURL  string   `json:"issue_comment_url"`
	IssueEventsURL   string   `json:"issue_events_url"`
	IssuesURL        string   `json:"issues_url"`
	KeysURL          string   `json:"keys_url"`
	LabelsURL        string   `json:"labels_url"`
	LanguagesURL     string   `json:"languages_url"`
	MergesURL        string   `json:"merges_url"`
	MilestonesURL    string   `json:"milestones_url"`
	MirrorURL        *string  `json:"mirror_url"`
	NotificationsURL string   `json:"notifications_url"`
	PullsURL         string   `json:"pulls_url"`
	ReleasesURL      string   `json:"releases_url"`
	SSHURL           string   `json:"ssh_url"`
	StargazersURL    string   `json:"stargazers_url"`
	StatusesURL      string   `json:"statuses_url"`
	SubscribersURL   string   `json:"subscribers_url"`
	SubscriptionURL  string   `json:"subscription_url"`
	SvnURL           string   `json:"svn_url"`
	TagsURL          string   `json:"tags_url"`
	TeamsURL         string   `json:"teams_url"`
	TreesURL         string   `json:"trees_url"`
	Homepage         *string  `json:"homepage"`
	Language         *string  `json:"language"`
	ForksCount       int64    `json:"forks_count"`
	StargazersCount  int64    `json:"stargazers_count"`
	WatchersCount    int64    `json:"watchers_count"`
	Size             int64    `json:"size"`
	DefaultBranch    string   `json:"default_branch"`
	OpenIssuesCount  int64    `json:"open_issues_count"`
	HasIssues        bool     `json:"has_issues"`
	HasWiki          bool     `json:"has_wiki"`
	HasPages         bool     `json:"has_pages"`
	HasDownloads     bool     `json:"has_downloads"`
	Archived         bool     `json:"archived"`
	PushedAt         DateTime `json:"pushed_at"`
	CreatedAt        DateTime `json:"created_at"`
	UpdatedAt        DateTime `json:"updated_at"`
}

// Comment is a comment on a commit, issue or pull request.
type Comment struct {
	ID        int64    `json:"id"`
	URL       string   `json:"url"`
	HTMLURL   string   `json:"html_url"`
	Body      string   `json:"body"`
	User      User     `json:"user"`
	CreatedAt DateTime `json:"created_at"`
	UpdatedAt DateTime `json:"updated_at"`
}

// PullRequest is a pull request.
type PullRequest struct {
	ID                int64       `json:"id"`
	URL               string      `json:"url"`
	HTMLURL           string      `json:"html_url"`
	DiffURL           string      `json:"diff_url"`
	PatchURL          string      `json:"patch_url"`
	IssueURL          string      `json:"issue_url"`
	CommitsURL        string      `json:"commits_url"`
	ReviewCommentsURL string      `json:"review_comments_url"`
	ReviewCommentURL  string      `json:"review_comment_url"`
	CommentsURL       string      `json:"comments_url"`
	StatusesURL       string      `json:"statuses_url"`
	Number            int64       `json:"number"`
	State             string      `json:"state"`
	Title             string      `json:"title"`
	Body              *string     `json:"body"`
	CreatedAt         DateTime    `json:"created_at"`
	UpdatedAt         DateTime    `json:"updated_at"`
	ClosedAt          *DateTime   `json:"closed_at"`
	MergedAt          *DateTime   `json:"merged_at"`
	Head              ShortCommit `json:"head"`
	Base              ShortCommit `json:"base"`
	User              User        `json:"user"`
	Assignee          *User       `json:"assignee"`
	Assignees         []User      `json:"assignees"`
	MergeCommitSha    *string     `json:"merge_commit_sha"`
	Merged            bool        `json:"merged"`
	Mergeable         *bool       `json:"mergeable"`
	MergedBy          *User       `json:"merged_by"`
	Comments          *int64      `json:"comments"`
	Commits           *int64      `json:"commits"`
	Additions         *int64      `json:"additions"`
	Deletions         *int64      `json:"deletions"`
	ChangedFiles      *int64      `json:"changed_files"`
	Labels            []Label     `json:"labels"`
}

// ShortCommit names the head or base of a pull request.
type ShortCommit struct {
	Label  string `json:"label"`
	GitRef string `json:"ref"`
	Sha    Oid    `json:"sha"`
	User   User   `json:"user"`
}

// Label is an issue or pull request label.
type Label struct {
	URL   string `json:"url"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Issue is an issue.
type Issue struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	LabelsURL   string    `json:"labels_url"`
	CommentsURL string    `json:"comments_url"`
	EventsURL   string    `json:"events_url"`
	HTMLURL     string    `json:"html_url"`
	Number      int64     `json:"number"`
	State       string    `json:"state"`
	Title       string    `json:"title"`
	Body        *string   `json:"body"`
	User        User      `json:"user"`
	Labels      []Label   `json:"labels"`
	Assignee    *User     `json:"assignee"`
	Locked      bool      `json:"locked"`
	Comments    int64     `json:"comments"`
	PullRequest *PullRef  `json:"pull_request"`
	ClosedAt    *DateTime `json:"closed_at"`
	CreatedAt   DateTime  `json:"created_at"`
	UpdatedAt   DateTime  `json:"updated_at"`
	Assignees   []User    `json:"assignees"`
}

// PullRef is a reference to a pull request.
type PullRef struct {
	URL      string `json:"url"`
	HTMLURL  string `json:"html_url"`
	DiffURL  string `json:"diff_url"`
	PatchURL string `json:"patch_url"`
}

// ReviewState is the state of a pull request review.
type ReviewState string

const (
	ReviewCommented        ReviewState = "commented"
	ReviewApproved         ReviewState = "approved"
	ReviewChangesRequested ReviewState = "changes_requested"
	ReviewDismissed        ReviewState = "dismissed"
)

// Review is a pull request review.
type Review struct {
	ID                int64       `json:"id"`
	User              User        `json:"user"`
	Body              *string     `json:"body"`
	CommitID          Oid         `json:"commit_id"`
	SubmittedAt       DateTime    `json:"submitted_at"`
	State             ReviewState `json:"state"`
	HTMLURL           string      `json:"html_url"`
	PullRequestURL    string      `json:"pull_request_url"`
	AuthorAssociation string      `json:"author_association"`
}
