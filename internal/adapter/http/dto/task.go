package dto

// TaskItem is the wire shape of a task. Optional columns render as
// empty strings, never null, and the stored reminder instant is split
// back into its date and time parts.
type TaskItem struct {
	ID           string `json:"id"`
	UserID       int64  `json:"userId"`
	Title        string `json:"title"`
	Notes        string `json:"notes"`
	Category     string `json:"category"`
	DueDate      string `json:"dueDate"`
	DueTime      string `json:"dueTime"`
	Priority     string `json:"priority"`
	ReminderDate string `json:"reminderDate"`
	ReminderTime string `json:"reminderTime"`
	CreatedAt    string `json:"createdAt"`
	Completed    bool   `json:"completed"`
}

// UserID and Completed decode as any: clients send ids as numbers or
// strings, and completed as true, 1 or "1". Coercion happens in the
// validation package.
type CreateTaskRequest struct {
	UserID       any     `json:"userId"`
	Title        string  `json:"title"`
	Notes        *string `json:"notes"`
	Category     *string `json:"category"`
	DueDate      *string `json:"dueDate"`
	DueTime      *string `json:"dueTime"`
	Priority     *string `json:"priority"`
	ReminderDate *string `json:"reminderDate"`
	ReminderTime *string `json:"reminderTime"`
	Completed    any     `json:"completed"`
}

type UpdateTaskRequest struct {
	UserID       any     `json:"userId"`
	Title        *string `json:"title"`
	Notes        *string `json:"notes"`
	Category     *string `json:"category"`
	DueDate      *string `json:"dueDate"`
	DueTime      *string `json:"dueTime"`
	Priority     *string `json:"priority"`
	ReminderDate *string `json:"reminderDate"`
	ReminderTime *string `json:"reminderTime"`
	Completed    any     `json:"completed"`
}

type DeleteTaskResponse struct {
	Message string `json:"message"`
	TaskID  string `json:"taskId"`
}
