package models

import (
	"time"

	"sint-message-service/internal/letter"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// GenerationResult holds the artifacts produced for one letter task.
// Binary artifacts are kept in memory on the task and served through the
// download endpoints rather than inlined in the status JSON.
type GenerationResult struct {
	Message    string                  `json:"message"`
	Letter     *letter.FormattedLetter `json:"letter,omitempty"`
	LetterHTML string                  `json:"letterHtml,omitempty"`
	VideoURL   string                  `json:"videoUrl,omitempty"`
	HasAudio   bool                    `json:"hasAudio"`
	HasPDF     bool                    `json:"hasPdf"`

	Audio []byte `json:"-"`
	PDF   []byte `json:"-"`
}

// Task represents an async letter generation task
type Task struct {
	ID        string                `json:"id"`
	Status    TaskStatus            `json:"status"`
	Request   GenerateLetterRequest `json:"request"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	Error     string                `json:"error,omitempty"`
	Result    *GenerationResult     `json:"result,omitempty"`
}
