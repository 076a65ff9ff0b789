package githubtypes

// Organization is information about an organization.
type Organization struct {
	Login            string `json:"login"`
	ID               int64  `json:"id"`
	NodeID           string `json:"node_id"`
	URL              string `json:"url"`
	ReposURL         string `json:"repos_url"`
	EventsURL        string `json:"events_url"`
	HooksURL         string `json:"hooks_url"`
	IssuesURL        string `json:"issues_url"`
	MembersURL       string `json:"members_url"`
	PublicMembersURL string `json:"public_members_url"`
	AvatarURL        string `json:"avatar_url"`
	Description      string `json:"description"`
}

// Enterprise is information about an enterprise account.
type Enterprise struct {
	ID          int64    `json:"id"`
	NodeID      string   `json:"node_id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	AvatarURL   string   `json:"avatar_url"`
	Description string   `json:"description"`
	WebsiteURL  string   `json:"website_url"`
	HTMLURL     string   `json:"html_url"`
	CreatedAt   DateTime `json:"created_at"`
	UpdatedAt   DateTime `json:"updated_at"`
}
