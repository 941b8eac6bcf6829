package mapper

import (
	"strconv"
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

// ToTaskItem renders a stored task for the wire: ids as strings, NULL
// columns as empty strings, dates as YYYY-MM-DD, clock values clipped
// to HH:MM, and the reminder instant split into its two parts.
func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        strconv.FormatInt(task.ID, 10),
		UserID:    task.UserID,
		Title:     task.Title,
		Completed: task.Completed,
	}

	if task.Notes != nil {
		item.Notes = *task.Notes
	}
	if task.Category != nil {
		item.Category = *task.Category
	}
	if task.DueDate != nil {
		item.DueDate = task.DueDate.Format(domain.DateLayout)
	}
	if task.DueTime != nil {
		item.DueTime = clipClock(*task.DueTime)
	}
	if task.Priority != nil {
		item.Priority = string(*task.Priority)
	}
	if task.ReminderTime != nil {
		item.ReminderDate = task.ReminderTime.Format(domain.DateLayout)
		item.ReminderTime = task.ReminderTime.Format(domain.ClockLayout)
	}

	// A fallback only: rows written through this API always carry the
	// column default.
	createdAt := task.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	item.CreatedAt = createdAt.Format(time.RFC3339)

	return item
}

// clipClock drops the seconds from a TIME column value.
func clipClock(value string) string {
	if len(value) > 5 {
		return value[:5]
	}
	return value
}
