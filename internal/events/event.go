package events

// Event is a single backend-supplied lab event. Both fields are opaque
// display strings; an event has no identity beyond its list position.
type Event struct {
	Time    string `json:"time"`
	Message string `json:"message"`
}

// payload is the body shape served by GET /api/events.
type payload struct {
	Events []Event `json:"events"`
}
