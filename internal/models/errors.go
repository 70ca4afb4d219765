package models

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrAlreadyCollaborator = errors.New("already a collaborator")
	ErrFeedbackNotFound    = errors.New("feedback not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrGroupNotFound       = errors.New("study group not found")
)
