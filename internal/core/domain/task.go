package domain

import "time"

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

func ValidTaskPriority(value string) bool {
	switch TaskPriority(value) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task mirrors a row of the tasks table. DueTime carries the raw
// time-of-day column value (HH:MM:SS) since it has no date component.
type Task struct {
	ID           int64
	UserID       int64
	Title        string
	Notes        *string
	Category     *string
	DueDate      *time.Time
	DueTime      *string
	Priority     *TaskPriority
	ReminderTime *time.Time
	Completed    bool
	CreatedAt    time.Time
}

// CreateTaskInput holds normalized values ready for insertion: optional
// strings trimmed, empty collapsed to nil, and the reminder already
// composed into a single datetime literal.
type CreateTaskInput struct {
	UserID       int64
	Title        string
	Notes        *string
	Category     *string
	DueDate      *string
	DueTime      *string
	Priority     *string
	ReminderTime *string
	Completed    bool
}

// UpdateTaskInput is a partial update. Each optional column carries a
// presence flag so "not provided" and "explicitly cleared" stay
// distinct. The reminder parts are kept raw because recomposition needs
// the currently stored reminder.
type UpdateTaskInput struct {
	// UserID triggers the ownership check when present. Absent means the
	// check is skipped, which keeps older clients working.
	UserID *int64

	Title        *string
	Notes        *string
	NotesSet     bool
	Category     *string
	CategorySet  bool
	DueDate      *string
	DueDateSet   bool
	DueTime      *string
	DueTimeSet   bool
	Priority     *string
	PrioritySet  bool
	ReminderDate string
	ReminderTime string
	ReminderSet  bool
	Completed    *bool
}

// TaskPatch is the storage-level update set. A nil pointer with its
// flag raised writes NULL; a lowered flag leaves the column untouched.
type TaskPatch struct {
	Title           *string
	Notes           *string
	NotesSet        bool
	Category        *string
	CategorySet     bool
	DueDate         *string
	DueDateSet      bool
	DueTime         *string
	DueTimeSet      bool
	Priority        *string
	PrioritySet     bool
	ReminderTime    *string
	ReminderTimeSet bool
	Completed       *bool
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil &&
		!p.NotesSet &&
		!p.CategorySet &&
		!p.DueDateSet &&
		!p.DueTimeSet &&
		!p.PrioritySet &&
		!p.ReminderTimeSet &&
		p.Completed == nil
}
