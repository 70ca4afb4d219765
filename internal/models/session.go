package models

import "time"

type Session struct {
	ID      int       `json:"id"`
	Tutor   string    `json:"tutor"`
	Student string    `json:"student"`
	Date    time.Time `json:"date"`
	// Time is kept exactly as scheduled, e.g. "10:00 AM".
	Time string `json:"time"`
}

func (s *Session) Clone() *Session {
	clone := *s
	return &clone
}
