package githubtypes

// WorkflowStatus is the current status of a workflow job.
type WorkflowStatus string

const (
	WorkflowQueued     WorkflowStatus = "queued"
	WorkflowInProgress WorkflowStatus = "in_progress"
	WorkflowWaiting    WorkflowStatus = "waiting"
	WorkflowCompleted  WorkflowStatus = "completed"
)

// WorkflowConclusion is the final result of a workflow job.
type WorkflowConclusion string

const (
	WorkflowConclusionSuccess        WorkflowConclusion = "success"
	WorkflowConclusionFailure        WorkflowConclusion = "failure"
	WorkflowConclusionNeutral        WorkflowConclusion = "neutral"
	WorkflowConclusionCancelled      WorkflowConclusion = "cancelled"
	WorkflowConclusionSkipped        WorkflowConclusion = "skipped"
	WorkflowConclusionTimedOut       WorkflowConclusion = "timed_out"
	WorkflowConclusionActionRequired WorkflowConclusion = "action_required"
)

// WorkflowStepConclusion is the final result of a workflow step.
type WorkflowStepConclusion string

const (
	WorkflowStepSuccess   WorkflowStepConclusion = "success"
	WorkflowStepFailure   WorkflowStepConclusion = "failure"
	WorkflowStepSkipped   WorkflowStepConclusion = "skipped"
	WorkflowStepCancelled WorkflowStepConclusion = "cancelled"
)

// WorkflowStepStatus is the current status of a workflow step.
type WorkflowStepStatus string

const (
	WorkflowStepStatusQueued     WorkflowStepStatus = "queued"
	WorkflowStepStatusInProgress WorkflowStepStatus = "in_progress"
	WorkflowStepStatusCompleted  WorkflowStepStatus = "completed"
	WorkflowStepStatusFailure    WorkflowStepStatus = "failure"
	WorkflowStepStatusPending    WorkflowStepStatus = "pending"
)

// WorkflowStep is a single step within a workflow job.
type WorkflowStep struct {
	CompletedAt *DateTime               `json:"completed_at"`
	Name        string                  `json:"name"`
	Number      int64                   `json:"number"`
	StartedAt   *DateTime               `json:"started_at"`
	Conclusion  *WorkflowStepConclusion `json:"conclusion"`
	Status      *WorkflowStepStatus     `json:"status"`
}

// WorkflowJob is a job within a workflow run.
type WorkflowJob struct {
	CheckRunURL string              `json:"check_run_url"`
	CompletedAt *DateTime           `json:"completed_at"`
	Conclusion  *WorkflowConclusion `json:"conclusion"`
	CreatedAt   DateTime            `json:"created_at"`
	HeadSha     string              `json:"head_sha"`
	HTMLURL     string              `json:"html_url"`
	ID          int64               `json:"id"`
	Labels      []string            `json:"labels"`
	Name        string              `json:"name"`
	NodeID      string              `json:"node_id"`
	RunAttempt  int64               `json:"run_attempt"`
	RunID       int64               `json:"run_id"`
	RunURL      string              `json:"run_url"`

	// The ID of the runner group that is running this job. Nil while
	// the job status is queued.
	RunnerGroupID *int64 `json:"runner_group_id"`

	// The name of the runner group that is running this job. Nil while
	// the job status is queued.
	RunnerGroupName *string `json:"runner_group_name"`

	// The ID of the runner that is running this job. Nil while the job
	// status is queued.
	RunnerID *int64 `json:"runner_id"`

	// The name of the runner that is running this job. Nil while the
	// job status is queued.
	RunnerName *string `json:"runner_name"`

	StartedAt DateTime `json:"started_at"`

	// The current status of the job.
	Status WorkflowStatus `json:"status"`

	HeadBranch   *string        `json:"head_branch"`
	WorkflowName *string        `json:"workflow_name"`
	Steps        []WorkflowStep `json:"steps"`
	URL          string         `json:"url"`
}

// DeploymentApp is the GitHub App a deployment was performed via,
// including the app credentials visible to the deployment's owner.
type DeploymentApp struct {
	ID                 int64                   `json:"id"`
	Slug               string                  `json:"slug"`
	NodeID             string                  `json:"node_id"`
	Owner              User                    `json:"owner"`
	Name               string                  `json:"name"`
	Description        *string                 `json:"description"`
	ExternalURL        string                  `json:"external_url"`
	HTMLURL            string                  `json:"html_url"`
	CreatedAt          DateTime                `json:"created_at"`
	UpdatedAt          DateTime                `json:"updated_at"`
	Permissions        InstallationPermissions `json:"permissions"`
	Events             []string                `json:"events"`
	InstallationCounts int64                   `json:"installation_counts"`
	ClientID           string                  `json:"client_id"`
	ClientSecret       string                  `json:"client_secret"`
	WebhookSecret      *string                 `json:"webhook_secret"`
	Pem                string                  `json:"pem"`
}

// Deployment is a deployment created from the API.
type Deployment struct {
	URL                  string        `json:"url"`
	ID                   int64         `json:"id"`
	NodeID               string        `json:"node_id"`
	Sha                  string        `json:"sha"`
	GitRef               string        `json:"ref"`
	Task                 string        `json:"task"`
	Payload              string        `json:"payload"`
	OriginalEnvironment  string        `json:"original_environment"`
	Environment          string        `json:"environment"`
	Description          *string       `json:"description"`
	Creator              User          `json:"creator"`
	CreatedAt            DateTime      `json:"created_at"`
	UpdatedAt            DateTime      `json:"updated_at"`
	StatusesURL          string        `json:"statuses_url"`
	RepositoryURL        string        `json:"repository_url"`
	TransientEnvironment string        `json:"transient_environment"`
	PerformedViaApp      DeploymentApp `json:"performed_via_github_app"`
}
