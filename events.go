// Package githubtypes defines the typed data model for GitHub webhook
// payloads, along with the scalar codecs (Oid, DateTime) those payloads
// are built on.
//
// See: https://developer.github.com/v3/activity/events/types/
package githubtypes

import (
	"encoding/json"
	"fmt"
)

// EventType names a GitHub event as specified in the X-GitHub-Event
// header.
type EventType string

const (
	// (Special event.) Any time any event is triggered.
	EventWildcard EventType = "*"

	// (Special event.) Sent when a webhook is added.
	EventPing EventType = "ping"

	// Triggered when a check run is created, rerequested, completed, or
	// has a requested_action.
	EventCheckRun EventType = "check_run"

	// Triggered when a check suite is completed, requested, or
	// rerequested.
	EventCheckSuite EventType = "check_suite"

	// Any time a commit is commented on.
	EventCommitComment EventType = "commit_comment"

	// Triggered when the body or comment of an issue or pull request
	// includes a URL that matches a configured content reference
	// domain. Only GitHub Apps can receive this event.
	EventContentReference EventType = "content_reference"

	// Any time a branch or tag is created.
	EventCreate EventType = "create"

	// Any time a branch or tag is deleted.
	EventDelete EventType = "delete"

	// Any time a repository has a new deployment created from the API.
	EventDeployment EventType = "deployment"

	// Any time a deployment for a repository has a status update from
	// the API.
	EventDeploymentStatus EventType = "deployment_status"

	// Any time a repository is forked.
	EventFork EventType = "fork"

	// Triggered when someone revokes their authorization of a GitHub
	// App.
	EventGitHubAppAuthorization EventType = "github_app_authorization"

	// Any time a wiki page is updated.
	EventGollum EventType = "gollum"

	// Any time a GitHub App is installed or uninstalled.
	EventInstallation EventType = "installation"

	// Same as EventInstallation, but deprecated. Sent alongside the
	// installation event and can always be ignored.
	EventIntegrationInstallation EventType = "integration_installation"

	// Any time a repository is added or removed from an installation.
	EventInstallationRepositories EventType = "installation_repositories"

	// Same as EventInstallationRepositories, but deprecated. Sent
	// alongside the installation_repositories event and can always be
	// ignored.
	EventIntegrationInstallationRepositories EventType = "integration_installation_repositories"

	// Any time a comment on an issue is created, edited, or deleted.
	EventIssueComment EventType = "issue_comment"

	// Any time an issue is assigned, unassigned, labeled, unlabeled,
	// opened, edited, milestoned, demilestoned, closed, or reopened.
	EventIssues EventType = "issues"

	// Any time a label is created, edited, or deleted.
	EventLabel EventType = "label"

	// Any time a user purchases, cancels, or changes their GitHub
	// Marketplace plan.
	EventMarketplacePurchase EventType = "marketplace_purchase"

	// Any time a user is added or removed as a collaborator to a
	// repository, or has their permissions modified.
	EventMember EventType = "member"

	// Any time a user is added or removed from a team. Organization
	// hooks only.
	EventMembership EventType = "membership"

	// Any time a milestone is created, closed, opened, edited, or
	// deleted.
	EventMilestone EventType = "milestone"

	// Any time a user is added, removed, or invited to an organization.
	// Organization hooks only.
	EventOrganization EventType = "organization"

	// Any time an organization blocks or unblocks a user. Organization
	// hooks only.
	EventOrgBlock EventType = "org_block"

	// Any time a Pages site is built or results in a failed build.
	EventPageBuild EventType = "page_build"

	// Any time a project card is created, edited, moved, converted to
	// an issue, or deleted.
	EventProjectCard EventType = "project_card"

	// Any time a project column is created, edited, moved, or deleted.
	EventProjectColumn EventType = "project_column"

	// Any time a project is created, edited, closed, reopened, or
	// deleted.
	EventProject EventType = "project"

	// Any time a repository changes from private to public.
	EventPublic EventType = "public"

	// Any time a pull request is assigned, unassigned, labeled,
	// unlabeled, opened, edited, closed, reopened, or synchronized.
	// Also any time a pull request review is requested, or a review
	// request is removed.
	EventPullRequest EventType = "pull_request"

	// Any time a pull request review is submitted, edited, or
	// dismissed.
	EventPullRequestReview EventType = "pull_request_review"

	// Any time a comment on a pull request's unified diff is created,
	// edited, or deleted (in the Files Changed tab).
	EventPullRequestReviewComment EventType = "pull_request_review_comment"

	// Any Git push to a repository, including editing tags or branches.
	// Commits via API actions that update references are also counted.
	// This is the default event.
	EventPush EventType = "push"

	// Any time a release is published in a repository.
	EventRelease EventType = "release"

	// Any time a repository is created, deleted (organization hooks
	// only), archived, unarchived, made public, or made private.
	EventRepository EventType = "repository"

	// Triggered when a successful, cancelled, or failed repository
	// import finishes for a GitHub organization or a personal
	// repository.
	EventRepositoryImport EventType = "repository_import"

	// Triggered when a security alert is created, dismissed, or
	// resolved.
	EventRepositoryVulnerabilityAlert EventType = "repository_vulnerability_alert"

	// Triggered when a new security advisory is published, updated, or
	// withdrawn. Security Advisory webhooks are available to GitHub
	// Apps only.
	EventSecurityAdvisory EventType = "security_advisory"

	// Any time a repository has a status update from the API.
	EventStatus EventType = "status"

	// Any time a team is created, deleted, modified, or added to or
	// removed from a repository. Organization hooks only.
	EventTeam EventType = "team"

	// Any time a team is added or modified on a repository.
	EventTeamAdd EventType = "team_add"

	// Any time a user stars a repository.
	EventWatch EventType = "watch"
)

var eventTypes = map[EventType]struct{}{
	EventWildcard:                            {},
	EventPing:                                {},
	EventCheckRun:                            {},
	EventCheckSuite:                          {},
	EventCommitComment:                       {},
	EventContentReference:                    {},
	EventCreate:                              {},
	EventDelete:                              {},
	EventDeployment:                          {},
	EventDeploymentStatus:                    {},
	EventFork:                                {},
	EventGitHubAppAuthorization:              {},
	EventGollum:                              {},
	EventInstallation:                        {},
	EventIntegrationInstallation:             {},
	EventInstallationRepositories:            {},
	EventIntegrationInstallationRepositories: {},
	EventIssueComment:                        {},
	EventIssues:                              {},
	EventLabel:                               {},
	EventMarketplacePurchase:                 {},
	EventMember:                              {},
	EventMembership:                          {},
	EventMilestone:                           {},
	EventOrganization:                        {},
	EventOrgBlock:                            {},
	EventPageBuild:                           {},
	EventProjectCard:                         {},
	EventProjectColumn:                       {},
	EventProject:                             {},
	EventPublic:                              {},
	EventPullRequest:                         {},
	EventPullRequestReview:                   {},
	EventPullRequestReviewComment:            {},
	EventPush:                                {},
	EventRelease:                             {},
	EventRepository:                          {},
	EventRepositoryImport:                    {},
	EventRepositoryVulnerabilityAlert:        {},
	EventSecurityAdvisory:                    {},
	EventStatus:                              {},
	EventTeam:                                {},
	EventTeamAdd:                             {},
	EventWatch:                               {},
}

// ParseEventType validates the name of a GitHub event, as found in the
// X-GitHub-Event header.
func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if !t.IsValid() {
		return "", malformedf("invalid GitHub event %q", s)
	}
	return t, nil
}

// IsValid reports whether t names a known GitHub event.
func (t EventType) IsValid() bool {
	_, ok := eventTypes[t]
	return ok
}

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown event
// names.
func (t *EventType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return malformedf("invalid event type: %v", err)
	}
	parsed, err := ParseEventType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Event is a deserialized webhook payload.
type Event interface {
	// Installation returns the GitHub App installation ID the event was
	// delivered to, if any.
	Installation() (int64, bool)
}

// ParseEvent deserializes the webhook payload for the given event type.
//
// The wildcard event type never appears in the X-GitHub-Event header
// and has no payload of its own.
func ParseEvent(eventType EventType, payload []byte) (Event, error) {
	var event Event
	switch eventType {
	case EventPing:
		event = new(PingEvent)
	case EventCheckRun:
		event = new(CheckRunEvent)
	case EventCheckSuite:
		event = new(CheckSuiteEvent)
	case EventCommitComment:
		event = new(CommitCommentEvent)
	case EventCreate:
		event = new(CreateEvent)
	case EventDelete:
		event = new(DeleteEvent)
	case EventGitHubAppAuthorization:
		event = new(GitHubAppAuthorizationEvent)
	case EventGollum:
		event = new(GollumEvent)
	case EventInstallation:
		event = new(InstallationEvent)
	case EventInstallationRepositories:
		event = new(InstallationRepositoriesEvent)
	case EventIntegrationInstallation:
		event = new(IntegrationInstallationEvent)
	case EventIntegrationInstallationRepositories:
		event = new(IntegrationInstallationRepositoriesEvent)
	case EventIssueComment:
		event = new(IssueCommentEvent)
	case EventIssues:
		event = new(IssuesEvent)
	case EventLabel:
		event = new(LabelEvent)
	case EventPullRequest:
		event = new(PullRequestEvent)
	case EventPullRequestReview:
		event = new(PullRequestReviewEvent)
	case EventPullRequestReviewComment:
		event = new(PullRequestReviewCommentEvent)
	case EventPush:
		event = new(PushEvent)
	case EventRepository:
		event = new(RepositoryEvent)
	case EventWatch:
		event = new(WatchEvent)
	default:
		return nil, malformedf("no payload type for event %q", eventType)
	}
	if err := json.Unmarshal(payload, event); err != nil {
		return nil, fmt.Errorf("parsing %s event: %w", eventType, err)
	}
	return event, nil
}

// InstallationID is an App installation ID.
type InstallationID struct {
	ID int64 `json:"id"`
}

// HookConfig is the configuration of a webhook subscription.
type HookConfig struct {
	ContentType string  `json:"content_type"`
	InsecureSSL string  `json:"insecure_ssl"`
	Secret      *string `json:"secret"`
	URL         string  `json:"url"`
}

// Hook describes a webhook subscription. The Type field distinguishes
// repository hooks from app hooks: app hooks carry AppID, repository
// hooks carry the URL fields.
type Hook struct {
	Type      string      `json:"type"`
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Active    bool        `json:"active"`
	Events    []EventType `json:"events"`
	Config    HookConfig  `json:"config"`
	UpdatedAt DateTime    `json:"updated_at"`
	CreatedAt DateTime    `json:"created_at"`

	// App hooks only.
	AppID *int64 `json:"app_id,omitempty"`

	// Repository hooks only.
	URL     string `json:"url,omitempty"`
	TestURL string `json:"test_url,omitempty"`
	PingURL string `json:"ping_url,omitempty"`
}

// PingEvent is sent when a webhook is added.
type PingEvent struct {
	Zen        string      `json:"zen"`
	HookID     int64       `json:"hook_id"`
	Hook       Hook        `json:"hook"`
	Repository *Repository `json:"repository"`
	Sender     *User       `json:"sender"`
}

func (e *PingEvent) Installation() (int64, bool) { return 0, false }

// CheckRunEventAction is the action performed on a check run.
type CheckRunEventAction string

const (
	// A new check run was created.
	CheckRunActionCreated CheckRunEventAction = "created"

	// The status of the check run is completed.
	CheckRunActionCompleted CheckRunEventAction = "completed"

	// Someone requested to re-run the check run.
	CheckRunActionRerequested CheckRunEventAction = "rerequested"

	// Someone requested that an action be taken, e.g. clicked a
	// "Fix it" button in the UI.
	CheckRunActionRequestedAction CheckRunEventAction = "requested_action"
)

// CheckRunEvent is delivered when a check run is created, rerequested,
// completed, or has a requested action.
//
// See: https://developer.github.com/v3/activity/events/types/#checkrunevent
type CheckRunEvent struct {
	// The action performed.
	Action CheckRunEventAction `json:"action"`

	// The check run.
	CheckRun CheckRun `json:"check_run"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID.
	InstallationID InstallationID `json:"installation"`
}

func (e *CheckRunEvent) Installation() (int64, bool) {
	return e.InstallationID.ID, true
}

// CheckSuiteEventAction is the action performed on a check suite.
type CheckSuiteEventAction string

const (
	CheckSuiteActionCompleted   CheckSuiteEventAction = "completed"
	CheckSuiteActionRequested   CheckSuiteEventAction = "requested"
	CheckSuiteActionRerequested CheckSuiteEventAction = "rerequested"
)

// IsRequested reports whether the action indicates that the check suite
// has been requested or re-requested.
func (a CheckSuiteEventAction) IsRequested() bool {
	return a == CheckSuiteActionRequested || a == CheckSuiteActionRerequested
}

// IsCompleted reports whether the action indicates that the check suite
// is completed.
func (a CheckSuiteEventAction) IsCompleted() bool {
	return a == CheckSuiteActionCompleted
}

// CheckSuiteEvent is delivered when a check suite is completed,
// requested, or rerequested.
type CheckSuiteEvent struct {
	// The action performed.
	Action CheckSuiteEventAction `json:"action"`

	// The check suite.
	CheckSuite CheckSuite `json:"check_suite"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID.
	InstallationID InstallationID `json:"installation"`
}

// IsRequested reports whether this event indicates that a check suite
// was requested.
func (e *CheckSuiteEvent) IsRequested() bool {
	return e.Action.IsRequested()
}

func (e *CheckSuiteEvent) Installation() (int64, bool) {
	return e.InstallationID.ID, true
}

// CommitCommentAction is the action performed on a commit comment.
type CommitCommentAction string

const (
	CommitCommentActionCreated CommitCommentAction = "created"
)

// CommitCommentEvent is delivered any time a commit is commented on.
type CommitCommentEvent struct {
	Action CommitCommentAction `json:"action"`

	// The comment in question.
	Comment Comment `json:"comment"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *CommitCommentEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// CreateRefType is the kind of Git ref that was created.
type CreateRefType string

const (
	CreateRefRepository CreateRefType = "repository"
	CreateRefBranch     CreateRefType = "branch"
	CreateRefTag        CreateRefType = "tag"
)

// CreateEvent is delivered any time a branch or tag is created.
type CreateEvent struct {
	// The Git ref type.
	RefType CreateRefType `json:"ref_type"`

	// The Git ref string. Nil if only a repository was created.
	GitRef *string `json:"ref"`

	// The name of the repository's default branch (usually `master`).
	MasterBranch string `json:"master_branch"`

	// The repository's current description.
	Description *string `json:"description"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *CreateEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// DeleteRefType is the kind of Git ref that was deleted.
type DeleteRefType string

const (
	DeleteRefBranch DeleteRefType = "branch"
	DeleteRefTag    DeleteRefType = "tag"
)

// DeleteEvent is delivered any time a branch or tag is deleted.
type DeleteEvent struct {
	// The Git ref type.
	RefType DeleteRefType `json:"ref_type"`

	// The Git ref string.
	GitRef string `json:"ref"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *DeleteEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// GitHubAppAuthorizationAction is the action performed on an app
// authorization.
type GitHubAppAuthorizationAction string

const (
	GitHubAppAuthorizationActionRevoked GitHubAppAuthorizationAction = "revoked"
)

// GitHubAppAuthorizationEvent is delivered when someone revokes their
// authorization of a GitHub App. A GitHub App receives this webhook by
// default and cannot unsubscribe from this event.
type GitHubAppAuthorizationEvent struct {
	Action GitHubAppAuthorizationAction `json:"action"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID.
	InstallationID InstallationID `json:"installation"`
}

func (e *GitHubAppAuthorizationEvent) Installation() (int64, bool) {
	return e.InstallationID.ID, true
}

// PageAction is the action performed on a wiki page.
type PageAction string

const (
	PageActionCreated PageAction = "created"
	PageActionEdited  PageAction = "edited"
)

// Page is a wiki page that was created or edited.
type Page struct {
	PageName string     `json:"page_name"`
	Title    string     `json:"title"`
	Summary  *string    `json:"summary"`
	Action   PageAction `json:"action"`
	Sha      Oid        `json:"sha"`
	HTMLURL  string     `json:"html_url"`
}

// GollumEvent is delivered any time a wiki page is updated.
type GollumEvent struct {
	// The pages that were created or edited.
	Pages []Page `json:"pages"`

	// The repository for which the action took place.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *GollumEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// InstallationAction is the action performed on an app installation.
type InstallationAction string

const (
	InstallationActionCreated                InstallationAction = "created"
	InstallationActionDeleted                InstallationAction = "deleted"
	InstallationActionNewPermissionsAccepted InstallationAction = "new_permissions_accepted"
)

// InstallationEvent is delivered any time a GitHub App is installed or
// uninstalled.
type InstallationEvent struct {
	Action           InstallationAction `json:"action"`
	InstallationInfo Installation       `json:"installation"`
	Sender           User               `json:"sender"`
}

func (e *InstallationEvent) Installation() (int64, bool) {
	return e.InstallationInfo.ID, true
}

// InstallationRepositoriesAction is the action performed on an
// installation's repository list.
type InstallationRepositoriesAction string

const (
	InstallationRepositoriesActionAdded   InstallationRepositoriesAction = "added"
	InstallationRepositoriesActionRemoved InstallationRepositoriesAction = "removed"
)

// InstallationRepositoriesEvent is delivered any time a repository is
// added or removed from an installation.
type InstallationRepositoriesEvent struct {
	Action              InstallationRepositoriesAction `json:"action"`
	InstallationInfo    Installation                   `json:"installation"`
	RepositorySelection string                         `json:"repository_selection"`
	RepositoriesAdded   []ShortRepo                    `json:"repositories_added"`
	RepositoriesRemoved []ShortRepo                    `json:"repositories_removed"`
	Sender              User                           `json:"sender"`
}

func (e *InstallationRepositoriesEvent) Installation() (int64, bool) {
	return e.InstallationInfo.ID, true
}

// IntegrationInstallationEvent is deprecated by GitHub. Use
// InstallationEvent instead.
type IntegrationInstallationEvent struct{}

func (e *IntegrationInstallationEvent) Installation() (int64, bool) { return 0, false }

// IntegrationInstallationRepositoriesEvent is deprecated by GitHub. Use
// InstallationRepositoriesEvent instead.
type IntegrationInstallationRepositoriesEvent struct{}

func (e *IntegrationInstallationRepositoriesEvent) Installation() (int64, bool) { return 0, false }

// IssueCommentAction is the action performed on an issue comment.
type IssueCommentAction string

const (
	IssueCommentActionCreated IssueCommentAction = "created"
	IssueCommentActionEdited  IssueCommentAction = "edited"
	IssueCommentActionDeleted IssueCommentAction = "deleted"
)

// IssueCommentEvent is delivered any time a comment on an issue is
// created, edited, or deleted.
type IssueCommentEvent struct {
	// The action that was performed.
	Action IssueCommentAction `json:"action"`

	// The issue associated with the comment.
	Issue Issue `json:"issue"`

	// The comment in question.
	Comment Comment `json:"comment"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *IssueCommentEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// IssueAction is the action performed on an issue.
type IssueAction string

const (
	IssueActionOpened       IssueAction = "opened"
	IssueActionEdited       IssueAction = "edited"
	IssueActionDeleted      IssueAction = "deleted"
	IssueActionTransferred  IssueAction = "transferred"
	IssueActionPinned       IssueAction = "pinned"
	IssueActionUnpinned     IssueAction = "unpinned"
	IssueActionClosed       IssueAction = "closed"
	IssueActionReopened     IssueAction = "reopened"
	IssueActionAssigned     IssueAction = "assigned"
	IssueActionUnassigned   IssueAction = "unassigned"
	IssueActionLabeled      IssueAction = "labeled"
	IssueActionUnlabeled    IssueAction = "unlabeled"
	IssueActionMilestoned   IssueAction = "milestoned"
	IssueActionDemilestoned IssueAction = "demilestoned"
)

// ChangeFrom holds the previous value of an edited field.
type ChangeFrom struct {
	From string `json:"from"`
}

// IssueChanges describes the edits made to an issue.
type IssueChanges struct {
	// A change to the body, if any.
	Body *ChangeFrom `json:"body"`

	// A change to the title, if any.
	Title *ChangeFrom `json:"title"`
}

// IssuesEvent is delivered any time an issue changes.
type IssuesEvent struct {
	// The action that was performed.
	Action IssueAction `json:"action"`

	// The issue itself.
	Issue Issue `json:"issue"`

	// Changes to the issue (if the action is "edited").
	Changes *IssueChanges `json:"changes"`

	// The label that was added or removed (if the action is "labeled"
	// or "unlabeled").
	Label *Label `json:"label"`

	// The user who was assigned or unassigned from the issue (if the
	// action is "assigned" or "unassigned").
	Assignee *User `json:"assignee"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *IssuesEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// LabelAction is the action performed on a label.
type LabelAction string

const (
	LabelActionCreated LabelAction = "created"
	LabelActionEdited  LabelAction = "edited"
	LabelActionDeleted LabelAction = "deleted"
)

// LabelChanges describes the edits made to a label.
type LabelChanges struct {
	// A change to the color, if any.
	Color *ChangeFrom `json:"color"`

	// A change to the name, if any.
	Name *ChangeFrom `json:"name"`
}

// LabelEvent is delivered any time a label is created, edited, or
// deleted.
type LabelEvent struct {
	// The action that was performed.
	Action LabelAction `json:"action"`

	// The label itself.
	Label Label `json:"label"`

	// Changes to the label (if the action is "edited").
	Changes *LabelChanges `json:"changes"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *LabelEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// PullRequestAction is the action performed on a pull request.
type PullRequestAction string

const (
	PullRequestActionAssigned             PullRequestAction = "assigned"
	PullRequestActionUnassigned           PullRequestAction = "unassigned"
	PullRequestActionReviewRequested      PullRequestAction = "review_requested"
	PullRequestActionReviewRequestRemoved PullRequestAction = "review_request_removed"
	PullRequestActionLabeled              PullRequestAction = "labeled"
	PullRequestActionUnlabeled            PullRequestAction = "unlabeled"
	PullRequestActionOpened               PullRequestAction = "opened"
	PullRequestActionEdited               PullRequestAction = "edited"
	PullRequestActionClosed               PullRequestAction = "closed"
	PullRequestActionReadyForReview       PullRequestAction = "ready_for_review"
	PullRequestActionLocked               PullRequestAction = "locked"
	PullRequestActionUnlocked             PullRequestAction = "unlocked"
	PullRequestActionReopened             PullRequestAction = "reopened"
	PullRequestActionSynchronize          PullRequestAction = "synchronize"
)

// PullRequestEvent is delivered any time a pull request changes.
//
// If the action is "closed" and the pull request's Merged field is
// false, the pull request was closed with unmerged commits. If the
// action is "closed" and Merged is true, the pull request was merged.
type PullRequestEvent struct {
	// The action that was performed.
	Action PullRequestAction `json:"action"`

	// The pull request number.
	Number int64 `json:"number"`

	// The pull request itself.
	PullRequest PullRequest `json:"pull_request"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *PullRequestEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// PullRequestReviewAction is the action performed on a review.
type PullRequestReviewAction string

const (
	PullRequestReviewActionSubmitted PullRequestReviewAction = "submitted"
	PullRequestReviewActionEdited    PullRequestReviewAction = "edited"
	PullRequestReviewActionDismissed PullRequestReviewAction = "dismissed"
)

// PullRequestReviewChanges describes the edits made to a review.
type PullRequestReviewChanges struct {
	Body *ChangeFrom `json:"body"`
}

// PullRequestReviewEvent is delivered any time a pull request review is
// submitted, edited, or dismissed.
type PullRequestReviewEvent struct {
	// The action that was performed.
	Action PullRequestReviewAction `json:"action"`

	// The review that was affected.
	Review Review `json:"review"`

	// Changes to the review if the action is "edited".
	Changes *PullRequestReviewChanges `json:"changes"`

	// The pull request itself.
	PullRequest PullRequest `json:"pull_request"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *PullRequestReviewEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// PullRequestReviewCommentAction is the action performed on a review
// comment.
type PullRequestReviewCommentAction string

const (
	PullRequestReviewCommentActionCreated PullRequestReviewCommentAction = "created"
	PullRequestReviewCommentActionEdited  PullRequestReviewCommentAction = "edited"
	PullRequestReviewCommentActionDeleted PullRequestReviewCommentAction = "deleted"
)

// PullRequestReviewCommentChanges describes the edits made to a review
// comment.
type PullRequestReviewCommentChanges struct {
	// A change to the body, if any.
	Body *ChangeFrom `json:"body"`
}

// PullRequestReviewCommentEvent is delivered any time a comment on a
// pull request's unified diff is created, edited, or deleted.
type PullRequestReviewCommentEvent struct {
	Action PullRequestReviewCommentAction `json:"action"`

	// The changes to the comment if the action was "edited".
	Changes *PullRequestReviewCommentChanges `json:"changes"`

	// The pull request itself.
	PullRequest PullRequest `json:"pull_request"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The comment in question.
	Comment Comment `json:"comment"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *PullRequestReviewCommentEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// Pusher is the user who performed a push, with less information than
// the sender.
type Pusher struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

// PushAuthor is the author or committer of a pushed commit.
type PushAuthor struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Username *string `json:"username"`
}

// PushCommit is a commit delivered as part of a push event.
type PushCommit struct {
	ID        Oid        `json:"id"`
	TreeID    Oid        `json:"tree_id"`
	Distinct  bool       `json:"distinct"`
	Message   string     `json:"message"`
	Timestamp DateTime   `json:"timestamp"`
	URL       string     `json:"url"`
	Author    PushAuthor `json:"author"`
	Committer PushAuthor `json:"committer"`
	Added     []string   `json:"added"`
	Removed   []string   `json:"removed"`
	Modified  []string   `json:"modified"`
}

// PushEvent is delivered for any Git push to a repository, including
// editing tags or branches. Commits via API actions that update
// references are also counted. This is the default event.
type PushEvent struct {
	// The Git ref string that was pushed.
	GitRef string `json:"ref"`

	// The commit hash of the branch before the push. The all-zero sha
	// if the branch is new.
	Before Oid `json:"before"`

	// The commit hash of the branch after the push.
	After Oid `json:"after"`

	// True if this is a new branch.
	Created bool `json:"created"`

	// True if this branch is being deleted.
	Deleted bool `json:"deleted"`

	// True if this was a force-push.
	Forced bool `json:"forced"`

	BaseRef *string `json:"base_ref"`

	// The URL to compare the changes with.
	Compare string `json:"compare"`

	// The list of commits that were pushed.
	Commits []PushCommit `json:"commits"`

	// The new head commit.
	HeadCommit *PushCommit `json:"head_commit"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who pushed the branch. This is the same as the sender,
	// except with less information.
	Pusher Pusher `json:"pusher"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *PushEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// RepositoryAction is the action performed on a repository.
type RepositoryAction string

const (
	RepositoryActionCreated    RepositoryAction = "created"
	RepositoryActionDeleted    RepositoryAction = "deleted"
	RepositoryActionArchived   RepositoryAction = "archived"
	RepositoryActionUnarchived RepositoryAction = "unarchived"
	RepositoryActionPublicized RepositoryAction = "publicized"
	RepositoryActionPrivatized RepositoryAction = "privatized"
)

// RepositoryEvent is delivered any time a repository is created,
// deleted, archived, unarchived, made public, or made private.
type RepositoryEvent struct {
	// The action that was performed.
	Action RepositoryAction `json:"action"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *RepositoryEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

// WatchAction is the action performed on a watch.
type WatchAction string

const (
	WatchActionStarted WatchAction = "started"
)

// WatchEvent is delivered any time a user stars a repository.
type WatchEvent struct {
	// The action that was performed.
	Action WatchAction `json:"action"`

	// The repository associated with this event.
	Repository Repository `json:"repository"`

	// The user who triggered the event.
	Sender User `json:"sender"`

	// The App installation ID. Only present for GitHub App events.
	InstallationID *InstallationID `json:"installation"`
}

func (e *WatchEvent) Installation() (int64, bool) {
	return optionalInstallation(e.InstallationID)
}

func optionalInstallation(id *InstallationID) (int64, bool) {
	if id == nil {
		return 0, false
	}
	return id.ID, true
}
