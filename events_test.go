package githubtypes

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEventType(t *testing.T) {
	names := []string{
		"*", "ping", "check_run", "check_suite", "commit_comment",
		"content_reference", "create", "delete", "deployment",
		"deployment_status", "fork", "github_app_authorization",
		"gollum", "installation", "integration_installation",
		"installation_repositories",
		"integration_installation_repositories", "issue_comment",
		"issues", "label", "marketplace_purchase", "member",
		"membership", "milestone", "organization", "org_block",
		"page_build", "project_card", "project_column", "project",
		"public", "pull_request", "pull_request_review",
		"pull_request_review_comment", "push", "release", "repository",
		"repository_import", "repository_vulnerability_alert",
		"security_advisory", "status", "team", "team_add", "watch",
	}
	for _, name := range names {
		et, err := ParseEventType(name)
		if err != nil {
			t.Errorf("ParseEventType(%q): %v", name, err)
			continue
		}
		if string(et) != name {
			t.Errorf("ParseEventType(%q) = %q", name, et)
		}
	}

	for _, name := range []string{"", "pings", "Push", "company.created"} {
		if _, err := ParseEventType(name); err == nil {
			t.Errorf("ParseEventType(%q) succeeded, want error", name)
		}
	}
}

func TestEventTypeJSON(t *testing.T) {
	var et EventType
	if err := et.UnmarshalJSON([]byte(`"push"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if et != EventPush {
		t.Errorf("got %q, want %q", et, EventPush)
	}
	if err := et.UnmarshalJSON([]byte(`"bogus"`)); err == nil {
		t.Error("UnmarshalJSON of unknown event succeeded, want error")
	}
	var malformed *MalformedInputError
	if err := et.UnmarshalJSON([]byte(`42`)); !errors.As(err, &malformed) {
		t.Errorf("UnmarshalJSON of number: error is %T, want *MalformedInputError", err)
	}
}

const pushEventFixture = `{
	"ref": "refs/heads/main",
	"before": "0000000000000000000000000000000000000000",
	"after": "4b825dc642cb6eb9a060e54bf8d69288fbee4904",
	"created": true,
	"deleted": false,
	"forced": false,
	"base_ref": null,
	"compare": "https://github.com/octocat/hello/compare/main",
	"commits": [
		{
			"id": "4b825dc642cb6eb9a060e54bf8d69288fbee4904",
			"tree_id": "4b825dc642cb6eb9a060e54bf8d69288fbee4904",
			"distinct": true,
			"message": "initial commit",
			"timestamp": "2019-01-01T00:00:00Z",
			"url": "https://github.com/octocat/hello/commit/4b825d",
			"author": {"name": "Octocat", "email": "octocat@github.com", "username": "octocat"},
			"committer": {"name": "Octocat", "email": "octocat@github.com", "username": "octocat"},
			"added": ["README.md"],
			"removed": [],
			"modified": []
		}
	],
	"head_commit": null,
	"repository": {
		"id": 135493233,
		"name": "hello",
		"full_name": "octocat/hello",
		"private": false,
		"owner": {"login": "octocat", "id": 1}
	},
	"pusher": {"name": "octocat", "email": "octocat@github.com"},
	"sender": {"login": "octocat", "id": 1},
	"installation": {"id": 2633}
}`

func TestParsePushEvent(t *testing.T) {
	event, err := ParseEvent(EventPush, []byte(pushEventFixture))
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	push, ok := event.(*PushEvent)
	if !ok {
		t.Fatalf("ParseEvent returned %T, want *PushEvent", event)
	}

	if push.GitRef != "refs/heads/main" {
		t.Errorf("GitRef = %q", push.GitRef)
	}
	if !push.Before.IsZero() {
		t.Errorf("Before = %v, want all-zero sha", push.Before)
	}
	if push.After != EmptyTree {
		t.Errorf("After = %v, want %v", push.After, EmptyTree)
	}
	if len(push.Commits) != 1 {
		t.Fatalf("len(Commits) = %d, want 1", len(push.Commits))
	}
	commit := push.Commits[0]
	if got := commit.Timestamp.Unix(); got != 1546300800 {
		t.Errorf("commit timestamp = %d, want 1546300800", got)
	}
	wantAuthor := PushAuthor{
		Name:     "Octocat",
		Email:    strPtr("octocat@github.com"),
		Username: strPtr("octocat"),
	}
	if diff := cmp.Diff(wantAuthor, commit.Author); diff != "" {
		t.Errorf("author mismatch (-want +got):\n%s", diff)
	}
	if id, ok := push.Installation(); !ok || id != 2633 {
		t.Errorf("Installation() = %d, %v; want 2633, true", id, ok)
	}
}

func TestParsePushEventIntegerTimestamps(t *testing.T) {
	// Push commit timestamps may arrive as epoch seconds instead of
	// RFC 3339 strings.
	payload := `{
		"ref": "refs/heads/main",
		"before": "0000000000000000000000000000000000000000",
		"after": "4b825dc642cb6eb9a060e54bf8d69288fbee4904",
		"commits": [{
			"id": "4b825dc642cb6eb9a060e54bf8d69288fbee4904",
			"tree_id": "4b825dc642cb6eb9a060e54bf8d69288fbee4904",
			"message": "initial commit",
			"timestamp": 1546300800,
			"author": {"name": "Octocat"},
			"committer": {"name": "Octocat"}
		}],
		"pusher": {"name": "octocat"}
	}`
	event, err := ParseEvent(EventPush, []byte(payload))
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	push := event.(*PushEvent)
	if got := push.Commits[0].Timestamp.Unix(); got != 1546300800 {
		t.Errorf("commit timestamp = %d, want 1546300800", got)
	}
}

func TestParsePingEvent(t *testing.T) {
	payload := `{
		"zen": "Keep it logically awesome.",
		"hook_id": 123,
		"hook": {
			"type": "App",
			"id": 123,
			"name": "web",
			"active": true,
			"app_id": 42,
			"events": ["push", "pull_request"],
			"config": {"content_type": "json", "insecure_ssl": "0", "url": "https://example.com/webhooks"},
			"updated_at": "2019-01-01T00:00:00Z",
			"created_at": "2019-01-01T00:00:00Z"
		}
	}`
	event, err := ParseEvent(EventPing, []byte(payload))
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	ping := event.(*PingEvent)
	if ping.Zen != "Keep it logically awesome." {
		t.Errorf("Zen = %q", ping.Zen)
	}
	if ping.Hook.AppID == nil || *ping.Hook.AppID != 42 {
		t.Errorf("Hook.AppID = %v, want 42", ping.Hook.AppID)
	}
	wantEvents := []EventType{EventPush, EventPullRequest}
	if diff := cmp.Diff(wantEvents, ping.Hook.Events); diff != "" {
		t.Errorf("hook events mismatch (-want +got):\n%s", diff)
	}
	if _, ok := ping.Installation(); ok {
		t.Error("ping event should not carry an installation")
	}
}

func TestParseCheckSuiteEvent(t *testing.T) {
	payload := `{
		"action": "requested",
		"check_suite": {
			"id": 118578147,
			"head_branch": "changes",
			"head_sha": "ec26c3e57ca3a959ca5aad62de7213c562f8c821",
			"status": "requested",
			"conclusion": null,
			"url": "https://api.github.com/repos/octocat/hello/check-suites/118578147",
			"before": "6113728f27ae82c7b1a177c8d03f9e96e0adf246",
			"after": "ec26c3e57ca3a959ca5aad62de7213c562f8c821",
			"pull_requests": [],
			"app": {"id": 10, "name": "CI", "owner": {"login": "octocat", "id": 1},
				"created_at": "2019-01-01T00:00:00Z", "updated_at": "2019-01-01T00:00:00Z"}
		},
		"repository": {"id": 1, "name": "hello", "full_name": "octocat/hello"},
		"sender": {"login": "octocat", "id": 1},
		"installation": {"id": 5}
	}`
	event, err := ParseEvent(EventCheckSuite, []byte(payload))
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	suite := event.(*CheckSuiteEvent)
	if !suite.IsRequested() {
		t.Error("IsRequested() = false, want true")
	}
	if suite.Action.IsCompleted() {
		t.Error("IsCompleted() = true, want false")
	}
	if got := suite.CheckSuite.HeadSha.String(); got != "ec26c3e57ca3a959ca5aad62de7213c562f8c821" {
		t.Errorf("HeadSha = %q", got)
	}
	if suite.CheckSuite.Conclusion != nil {
		t.Errorf("Conclusion = %v, want nil", *suite.CheckSuite.Conclusion)
	}
	if id, ok := suite.Installation(); !ok || id != 5 {
		t.Errorf("Installation() = %d, %v; want 5, true", id, ok)
	}
}

func TestParseIssuesEvent(t *testing.T) {
	payload := `{
		"action": "edited",
		"issue": {
			"id": 73464126,
			"number": 2,
			"state": "open",
			"title": "Spelling error in the README file",
			"body": "It looks like you accidentally spelled commit with two t's.",
			"user": {"login": "octocat", "id": 1},
			"labels": [{"url": "https://api.github.com/repos/octocat/hello/labels/bug", "name": "bug", "color": "fc2929"}],
			"locked": false,
			"comments": 0,
			"created_at": "2019-05-05T23:40:27Z",
			"updated_at": "2019-05-05T23:40:27Z",
			"closed_at": null
		},
		"changes": {"title": {"from": "Spelling error"}},
		"repository": {"id": 1, "name": "hello", "full_name": "octocat/hello"},
		"sender": {"login": "octocat", "id": 1}
	}`
	event, err := ParseEvent(EventIssues, []byte(payload))
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	issues := event.(*IssuesEvent)
	if issues.Action != IssueActionEdited {
		t.Errorf("Action = %q, want %q", issues.Action, IssueActionEdited)
	}
	if issues.Changes == nil || issues.Changes.Title == nil || issues.Changes.Title.From != "Spelling error" {
		t.Errorf("Changes = %+v, want title changed from \"Spelling error\"", issues.Changes)
	}
	wantLabels := []Label{{
		URL:   "https://api.github.com/repos/octocat/hello/labels/bug",
		Name:  "bug",
		Color: "fc2929",
	}}
	if diff := cmp.Diff(wantLabels, issues.Issue.Labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if _, ok := issues.Installation(); ok {
		t.Error("Installation() reported an ID for a non-app delivery")
	}
}

func TestParseEventErrors(t *testing.T) {
	if _, err := ParseEvent(EventWildcard, []byte(`{}`)); err == nil {
		t.Error("ParseEvent of wildcard succeeded, want error")
	}
	if _, err := ParseEvent(EventType("bogus"), []byte(`{}`)); err == nil {
		t.Error("ParseEvent of unknown event succeeded, want error")
	}
	if _, err := ParseEvent(EventPush, []byte(`{"before`)); err == nil {
		t.Error("ParseEvent of truncated JSON succeeded, want error")
	}

	// A malformed scalar inside the payload surfaces as
	// MalformedInputError so callers can tell schema mismatches from
	// transient failures.
	_, err := ParseEvent(EventPush, []byte(`{"before": "zz"}`))
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Errorf("error is %T (%v), want *MalformedInputError", err, err)
	}
}

func strPtr(s string) *string { return &s }
