package githubtypes

// Permission is an access level granted to a GitHub App.
type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
)

// InstallationPermissions are the permissions given to an app
// installation.
type InstallationPermissions struct {
	Issues       *Permission `json:"issues"`
	Contents     *Permission `json:"contents"`
	PullRequests *Permission `json:"pull_requests"`
	Metadata     *Permission `json:"metadata"`
}

// App is a GitHub App.
type App struct {
	ID          int64    `json:"id"`
	Slug        string   `json:"slug"`
	NodeID      string   `json:"node_id"`
	Owner       User     `json:"owner"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	ExternalURL string   `json:"external_url"`
	HTMLURL     string   `json:"html_url"`
	CreatedAt   DateTime `json:"created_at"`
	UpdatedAt   DateTime `json:"updated_at"`
}

// Installation is information about an app installation.
type Installation struct {
	ID                  int64                   `json:"id"`
	Account             User                    `json:"account"`
	RepositorySelection string                  `json:"repository_selection"`
	AccessTokensURL     string                  `json:"access_tokens_url"`
	RepositoriesURL     string                  `json:"repositories_url"`
	HTMLURL             string                  `json:"html_url"`
	AppID               int64                   `json:"app_id"`
	TargetID            int64                   `json:"target_id"`
	TargetType          string                  `json:"target_type"`
	Permissions         InstallationPermissions `json:"permissions"`
	Events              []EventType             `json:"events"`
	CreatedAt           DateTime                `json:"created_at"`
	UpdatedAt           DateTime                `json:"updated_at"`
	SingleFileName      *string                 `json:"single_file_name"`
}
