package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type TaskStatus string

const (
	TaskStatusTodo          TaskStatus = "todo"
	TaskStatusInProgress    TaskStatus = "inprogress"
	TaskStatusAwaitFeedback TaskStatus = "awaitfeedback"
	TaskStatusDone          TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityUrgent TaskPriority = "urgent"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// StringList is an ordered list of assignee identifiers stored as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// SubtaskList is an ordered list of subtask objects stored as a JSON column.
// The server treats subtask shapes as opaque client data.
type SubtaskList []interface{}

func (l SubtaskList) Value() (driver.Value, error) {
	if l == nil {
		l = SubtaskList{}
	}
	return json.Marshal(l)
}

func (l *SubtaskList) Scan(value interface{}) error {
	if value == nil {
		*l = SubtaskList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into SubtaskList", value)
	}
}

// Task is a kanban card. Date fields (DueDate, CreatedAt, UpdatedAt) are
// free-form client-supplied strings and are never parsed server-side.
type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	DueDate     string       `gorm:"type:varchar(50);not null" json:"dueDate"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	Category    string       `gorm:"type:varchar(100);not null" json:"category"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	AssignedTo  StringList   `gorm:"type:json" json:"assignedTo"`
	Subtasks    SubtaskList  `gorm:"type:json" json:"subtasks"`
	CreatedAt   string       `gorm:"type:varchar(50)" json:"createdAt"`
	UpdatedAt   string       `gorm:"type:varchar(50)" json:"updatedAt"`
	Order       *int         `gorm:"column:sort_order" json:"order"`
	IsPrivate   bool         `gorm:"not null;default:false;index:idx_tasks_visibility" json:"isPrivate"`
	OwnerID     *string      `gorm:"type:varchar(100);index:idx_tasks_visibility" json:"ownerId"`
}
