package model

import "time"

const (
	TaskStatusPending   = "PENDING"
	TaskStatusCompleted = "COMPLETED"
	TaskStatusFailed    = "FAILED"
)

func ValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusPending, TaskStatusCompleted, TaskStatusFailed:
		return true
	}
	return false
}

type Task struct {
	ID            int64     `db:"id"`
	OwnerID       int64     `db:"owner_id"`
	ApplicationID int64     `db:"application_id"`
	Status        string    `db:"status"`
	InputText     string    `db:"input_text"`
	OutputText    string    `db:"output_text"`
	CreatedAt     time.Time `db:"created_at"`
}
