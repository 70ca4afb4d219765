package models

import (
	"slices"
	"time"
)

type Task struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Creator       string            `json:"creator"`
	Collaborators []string          `json:"collaborators"`
	Submissions   map[string]string `json:"submissions"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (t *Task) HasCollaborator(name string) bool {
	return slices.Contains(t.Collaborators, name)
}

// Submitters returns the students with a recorded submission, sorted by name.
func (t *Task) Submitters() []string {
	students := make([]string, 0, len(t.Submissions))
	for student := range t.Submissions {
		students = append(students, student)
	}
	slices.Sort(students)
	return students
}

func (t *Task) Clone() *Task {
	clone := *t
	clone.Collaborators = slices.Clone(t.Collaborators)
	if clone.Collaborators == nil {
		clone.Collaborators = []string{}
	}
	clone.Submissions = make(map[string]string, len(t.Submissions))
	for student, text := range t.Submissions {
		clone.Submissions[student] = text
	}
	return &clone
}
