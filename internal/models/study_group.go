package models

import (
	"slices"
	"time"
)

type StudyGroup struct {
	ID        int       `json:"id"`
	GroupName string    `json:"group_name"`
	Creator   string    `json:"creator"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"created_at"`
}

func (g *StudyGroup) HasMember(name string) bool {
	return slices.Contains(g.Members, name)
}

func (g *StudyGroup) Clone() *StudyGroup {
	clone := *g
	clone.Members = slices.Clone(g.Members)
	return &clone
}
