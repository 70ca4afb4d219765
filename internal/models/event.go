package models

const (
	EventTypeTaskSubmitted    = "task.submitted"
	EventTypeFeedbackProvided = "feedback.provided"
)

// EventEnvelope is decoded first to route a message by its type.
type EventEnvelope struct {
	EventID string `json:"event_id"`
	Type    string `json:"type"`
}

type TaskSubmittedEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	TaskID    int    `json:"task_id"`
	Student   string `json:"student"`
	Creator   string `json:"creator"`
	Timestamp int64  `json:"timestamp"`
}

type FeedbackProvidedEvent struct {
	EventID    string   `json:"event_id"`
	Type       string   `json:"type"`
	FeedbackID int      `json:"feedback_id"`
	TaskID     int      `json:"task_id"`
	Tutor      string   `json:"tutor"`
	Comments   string   `json:"comments"`
	Students   []string `json:"students"`
	Timestamp  int64    `json:"timestamp"`
}
