package models

import githubtypes "github.com/jasonwhite/github-types"

// Job is a webhook delivery queued for background processing. The
// payload is kept raw because its structure depends on the event type;
// workers parse it with githubtypes.ParseEvent.
type Job struct {
	Event      githubtypes.EventType
	DeliveryID string
	Payload    []byte
	Attempts   int
}
