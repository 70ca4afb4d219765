package models

import "time"

// Feedback refers to a task by id only; the task is never looked up.
type Feedback struct {
	ID        int       `json:"id"`
	TaskID    int       `json:"task_id"`
	Tutor     string    `json:"tutor"`
	Comments  string    `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *Feedback) Clone() *Feedback {
	clone := *f
	return &clone
}
