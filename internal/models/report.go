package models

import "time"

type ProgressReport struct {
	Student        string    `json:"student"`
	AverageScore   int       `json:"average_score"`
	TasksCompleted int       `json:"tasks_completed"`
	GeneratedAt    time.Time `json:"generated_at"`
}
