package githubtypes

// CheckRunStatus is the current status of a check run.
type CheckRunStatus string

const (
	CheckRunQueued     CheckRunStatus = "queued"
	CheckRunInProgress CheckRunStatus = "in_progress"
	CheckRunCompleted  CheckRunStatus = "completed"
)

// Conclusion is the final result of a check run or check suite.
type Conclusion string

const (
	ConclusionSuccess        Conclusion = "success"
	ConclusionFailure        Conclusion = "failure"
	ConclusionNeutral        Conclusion = "neutral"
	ConclusionCancelled      Conclusion = "cancelled"
	ConclusionTimedOut       Conclusion = "timed_out"
	ConclusionActionRequired Conclusion = "action_required"
)

// AnnotationLevel is the severity of a check run annotation.
type AnnotationLevel string

const (
	AnnotationNotice  AnnotationLevel = "notice"
	AnnotationWarning AnnotationLevel = "warning"
	AnnotationFailure AnnotationLevel = "failure"
)

// Annotation adds information from an analysis to specific lines of
// code.
type Annotation struct {
	// The path of the file to add an annotation to. For example,
	// `assets/css/main.css`.
	Path string `json:"path"`

	// The start line of the annotation.
	StartLine int `json:"start_line"`

	// The end line of the annotation.
	EndLine int `json:"end_line"`

	// The start column of the annotation. Annotations only support
	// `start_column` and `end_column` on the same line. Omitted if
	// `start_line` and `end_line` have different values.
	StartColumn *int `json:"start_column"`

	// The end column of the annotation.
	EndColumn *int `json:"end_column"`

	// The level of the annotation.
	AnnotationLevel AnnotationLevel `json:"annotation_level"`

	// A short description of the feedback for these lines of code. The
	// maximum size is 64 KB.
	Message string `json:"message"`

	// The title that represents the annotation. The maximum size is
	// 255 characters.
	Title *string `json:"title"`

	// Raw details about this annotation. The maximum size is 64 KB.
	RawDetails *string `json:"raw_details"`
}

// Image is an image displayed in a check run output.
type Image struct {
	// The alternative text for the image.
	Alt string `json:"alt"`

	// The full URL of the image.
	ImageURL string `json:"image_url"`

	// A short image description.
	Caption *string `json:"caption"`
}

// Output is the output of a check run.
type Output struct {
	// The title of the check run.
	Title string `json:"title"`

	// The summary of the check run. Supports Markdown.
	Summary string `json:"summary"`

	// The details of the check run. Supports Markdown.
	Text *string `json:"text"`

	// Annotations on specific lines of code. The Checks API limits
	// annotations to a maximum of 50 per request.
	Annotations []Annotation `json:"annotations"`

	// Images displayed in the GitHub pull request UI.
	Images []Image `json:"images"`
}

// CheckRunAction is a further action the integrator can perform, which
// a user may trigger.
type CheckRunAction struct {
	// The text to be displayed on a button in the web UI. The maximum
	// size is 20 characters.
	Label string `json:"label"`

	// A short explanation of what this action would do. The maximum
	// size is 40 characters.
	Description string `json:"description"`

	// A reference for the action on the integrator's system. The
	// maximum size is 20 characters.
	Identifier string `json:"identifier"`
}

// CheckSuiteID is a reference to a check suite by ID.
type CheckSuiteID struct {
	ID int64 `json:"id"`
}

// CheckRunRepo is a repo associated with a CheckRun.
type CheckRunRepo struct {
	ID   int64  `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// CheckRunCommit is a commit associated with a CheckRun.
type CheckRunCommit struct {
	GitRef string       `json:"ref"`
	Sha    Oid          `json:"sha"`
	Repo   CheckRunRepo `json:"repo"`
}

// CheckRunPullRequest is a pull request associated with a CheckRun.
type CheckRunPullRequest struct {
	URL    string         `json:"url"`
	ID     int64          `json:"id"`
	Number int64          `json:"number"`
	Head   CheckRunCommit `json:"head"`
	Base   CheckRunCommit `json:"base"`
}

// CheckRun is a check run.
type CheckRun struct {
	// The ID of the check run.
	ID int64 `json:"id"`

	// The name of the check run.
	Name string `json:"name"`

	// The SHA of the commit the check run is for.
	HeadSha Oid `json:"head_sha"`

	// A reference for the run on the integrator's system.
	ExternalID string `json:"external_id"`

	URL     string `json:"url"`
	HTMLURL string `json:"html_url"`

	// The current status.
	Status CheckRunStatus `json:"status"`

	// Nil until the check run has a completed status.
	Conclusion *Conclusion `json:"conclusion"`

	// The time that the check run began.
	StartedAt *DateTime `json:"started_at"`

	// The time the check completed.
	CompletedAt *DateTime `json:"completed_at"`

	Output *Output `json:"output"`

	CheckSuite CheckSuiteID `json:"check_suite"`

	App App `json:"app"`

	PullRequests []CheckRunPullRequest `json:"pull_requests"`

	// Possible further actions the integrator can perform. A maximum
	// of three actions are accepted.
	Actions []CheckRunAction `json:"actions"`
}

// CheckSuiteStatus is the summary status for all check runs that are
// part of a check suite.
type CheckSuiteStatus string

const (
	CheckSuiteRequested  CheckSuiteStatus = "requested"
	CheckSuiteInProgress CheckSuiteStatus = "in_progress"
	CheckSuiteCompleted  CheckSuiteStatus = "completed"
)

// CheckSuite is a check suite.
type CheckSuite struct {
	ID int64 `json:"id"`

	// The head branch name the changes are on. Nil if the head branch
	// is in a forked repository.
	HeadBranch *string `json:"head_branch"`

	// The SHA of the most recent commit for this check suite.
	HeadSha Oid `json:"head_sha"`

	// The summary status for all check runs that are part of the check
	// suite.
	Status CheckSuiteStatus `json:"status"`

	// The summary conclusion for all check runs that are part of the
	// check suite. Nil until the status is completed.
	Conclusion *Conclusion `json:"conclusion"`

	// URL that points to the check suite API resource.
	URL string `json:"url"`

	// The commit SHA of the previous commit. The all-zero sha if this
	// is a new branch.
	Before Oid `json:"before"`

	// The commit SHA of the new commit.
	After Oid `json:"after"`

	// Pull requests that match this check suite by head_sha and
	// head_branch. Empty when the head branch is in a forked
	// repository.
	PullRequests []CheckRunPullRequest `json:"pull_requests"`

	App App `json:"app"`
}
