package events

import "context"

// Stream carrying all platform events.
const StreamPlatform = "events:platform"

// Event types
const (
	EventCampaignStatusChanged = "campaign_status_changed"
	EventApplicationCreated    = "application_created"
	EventApplicantsSelected    = "applicants_selected"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
