package service

// Broadcaster pushes dashboard events out to connected clients. Implemented
// by the notify hub; services hold the interface so transport stays
// swappable.
type Broadcaster interface {
	BroadcastEvent(event string, payload interface{})
}

// Event names emitted by the services.
const (
	EventPollCreated       = "poll_created"
	EventPollUpdated       = "poll_updated"
	EventPollDeleted       = "poll_deleted"
	EventResponseSubmitted = "response_submitted"
)
