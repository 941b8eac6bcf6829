package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput normalizes a create payload: strings trimmed and
// collapsed to nil when empty, completed coerced, reminder parts
// composed into the stored datetime (today's date when only a time is
// given).
func BuildCreateTaskInput(req dto.CreateTaskRequest, now time.Time) (domain.CreateTaskInput, error) {
	if req.UserID == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	userID, err := ParseID(req.UserID)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dueDate := trimOrNil(req.DueDate)
	if dueDate != nil && !validDate(*dueDate) {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dueTime := trimOrNil(req.DueTime)
	if dueTime != nil && !validClock(*dueTime) {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := trimOrNil(req.Priority)
	if priority != nil && !domain.ValidTaskPriority(*priority) {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	reminderDate, reminderTime, err := reminderParts(req.ReminderDate, req.ReminderTime)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		UserID:       userID,
		Title:        title,
		Notes:        trimOrNil(req.Notes),
		Category:     trimOrNil(req.Category),
		DueDate:      dueDate,
		DueTime:      dueTime,
		Priority:     priority,
		ReminderTime: domain.ComposeReminder(reminderDate, reminderTime, nil, now),
		Completed:    truthyCompleted(req.Completed),
	}, nil
}

// BuildUpdateTaskInput turns a partial payload into an update input,
// raising a presence flag for every key the client actually sent. A
// key set to null or whitespace clears its column; an absent key leaves
// it untouched. Emptiness of the whole set is judged later, after the
// existence and ownership checks.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	var input domain.UpdateTaskInput

	if hasJSONField(raw, "userId") && !isJSONNull(raw["userId"]) {
		userID, err := ParseID(req.UserID)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.UserID = &userID
	}

	if hasJSONField(raw, "title") {
		// title is NOT NULL in storage; clearing it is not a thing.
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &title
	}

	if hasJSONField(raw, "notes") {
		input.NotesSet = true
		input.Notes = trimOrNil(req.Notes)
	}

	if hasJSONField(raw, "category") {
		input.CategorySet = true
		input.Category = trimOrNil(req.Category)
	}

	if hasJSONField(raw, "dueDate") {
		input.DueDateSet = true
		input.DueDate = trimOrNil(req.DueDate)
		if input.DueDate != nil && !validDate(*input.DueDate) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	if hasJSONField(raw, "dueTime") {
		input.DueTimeSet = true
		input.DueTime = trimOrNil(req.DueTime)
		if input.DueTime != nil && !validClock(*input.DueTime) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	if hasJSONField(raw, "priority") {
		input.PrioritySet = true
		input.Priority = trimOrNil(req.Priority)
		if input.Priority != nil && !domain.ValidTaskPriority(*input.Priority) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	if hasJSONField(raw, "reminderDate") || hasJSONField(raw, "reminderTime") {
		input.ReminderSet = true
		reminderDate, reminderTime, err := reminderParts(req.ReminderDate, req.ReminderTime)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		input.ReminderDate = reminderDate
		input.ReminderTime = reminderTime
	}

	if hasJSONField(raw, "completed") {
		completed := truthyCompleted(req.Completed)
		input.Completed = &completed
	}

	return input, nil
}

// reminderParts trims the two reminder inputs and checks their shape;
// either may be empty, composition decides what that means.
func reminderParts(date, clock *string) (string, string, error) {
	datePart := ""
	if trimmed := trimOrNil(date); trimmed != nil {
		if !validDate(*trimmed) {
			return "", "", ErrInvalidTaskPayload
		}
		datePart = *trimmed
	}

	timePart := ""
	if trimmed := trimOrNil(clock); trimmed != nil {
		// Composition appends ":00", so only HH:MM fits here.
		if _, err := time.Parse(domain.ClockLayout, *trimmed); err != nil {
			return "", "", ErrInvalidTaskPayload
		}
		timePart = *trimmed
	}

	return datePart, timePart, nil
}

func validDate(value string) bool {
	_, err := time.Parse(domain.DateLayout, value)
	return err == nil
}

func validClock(value string) bool {
	if _, err := time.Parse("15:04", value); err == nil {
		return true
	}
	_, err := time.Parse("15:04:05", value)
	return err == nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
