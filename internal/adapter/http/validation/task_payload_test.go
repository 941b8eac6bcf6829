package validation_test

import (
	"encoding/json"
	"testing"
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(v string) *string { return &v }

func TestBuildCreateTaskInput_NormalizesOptionalFields(t *testing.T) {
	req := dto.CreateTaskRequest{
		UserID:   float64(7),
		Title:    "  Buy milk  ",
		Notes:    strptr("   "),
		Category: strptr(" Errands "),
		Priority: strptr("High"),
	}

	input, err := validation.BuildCreateTaskInput(req, time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(7), input.UserID)
	assert.Equal(t, "Buy milk", input.Title)
	assert.Nil(t, input.Notes, "whitespace-only notes collapse to nil")
	require.NotNil(t, input.Category)
	assert.Equal(t, "Errands", *input.Category)
	require.NotNil(t, input.Priority)
	assert.Equal(t, "High", *input.Priority)
	assert.Nil(t, input.ReminderTime)
	assert.False(t, input.Completed)
}

func TestBuildCreateTaskInput_StringUserID(t *testing.T) {
	req := dto.CreateTaskRequest{UserID: "12", Title: "task"}

	input, err := validation.BuildCreateTaskInput(req, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(12), input.UserID)
}

func TestBuildCreateTaskInput_Rejections(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		req  dto.CreateTaskRequest
	}{
		{"missing userId", dto.CreateTaskRequest{Title: "task"}},
		{"non-numeric userId", dto.CreateTaskRequest{UserID: "seven", Title: "task"}},
		{"missing title", dto.CreateTaskRequest{UserID: float64(1)}},
		{"blank title", dto.CreateTaskRequest{UserID: float64(1), Title: "   "}},
		{"bad dueDate", dto.CreateTaskRequest{UserID: float64(1), Title: "t", DueDate: strptr("05/01/2024")}},
		{"bad dueTime", dto.CreateTaskRequest{UserID: float64(1), Title: "t", DueTime: strptr("25:99")}},
		{"bad priority", dto.CreateTaskRequest{UserID: float64(1), Title: "t", Priority: strptr("Urgent")}},
		{"bad reminderDate", dto.CreateTaskRequest{UserID: float64(1), Title: "t", ReminderDate: strptr("soon")}},
		{"bad reminderTime", dto.CreateTaskRequest{UserID: float64(1), Title: "t", ReminderTime: strptr("9am")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validation.BuildCreateTaskInput(tt.req, now)
			assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
		})
	}
}

func TestBuildCreateTaskInput_ComposesReminder(t *testing.T) {
	req := dto.CreateTaskRequest{
		UserID:       float64(1),
		Title:        "t",
		ReminderDate: strptr("2024-01-05"),
		ReminderTime: strptr("14:30"),
	}

	input, err := validation.BuildCreateTaskInput(req, time.Now())
	require.NoError(t, err)
	require.NotNil(t, input.ReminderTime)
	assert.Equal(t, "2024-01-05T14:30:00", *input.ReminderTime)
}

func TestBuildCreateTaskInput_ReminderTimeOnlyUsesToday(t *testing.T) {
	now := time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC)
	req := dto.CreateTaskRequest{
		UserID:       float64(1),
		Title:        "t",
		ReminderTime: strptr("09:00"),
	}

	input, err := validation.BuildCreateTaskInput(req, now)
	require.NoError(t, err)
	require.NotNil(t, input.ReminderTime)
	assert.Equal(t, "2024-03-09T09:00:00", *input.ReminderTime)
}

func TestBuildCreateTaskInput_CompletedCoercion(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"bool true", true, true},
		{"number one", float64(1), true},
		{"string one", "1", true},
		{"bool false", false, false},
		{"number zero", float64(0), false},
		{"string zero", "0", false},
		{"string true", "true", false},
		{"absent", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateTaskRequest{UserID: float64(1), Title: "t", Completed: tt.value}
			input, err := validation.BuildCreateTaskInput(req, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, input.Completed)
		})
	}
}

func rawBody(t *testing.T, body string) (dto.UpdateTaskRequest, map[string]json.RawMessage) {
	t.Helper()

	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return req, raw
}

func TestBuildUpdateTaskInput_PresenceFlags(t *testing.T) {
	req, raw := rawBody(t, `{"title":" New title ","notes":null,"completed":"1"}`)

	input, err := validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)

	require.NotNil(t, input.Title)
	assert.Equal(t, "New title", *input.Title)

	assert.True(t, input.NotesSet, "null notes means clear, not absent")
	assert.Nil(t, input.Notes)

	assert.False(t, input.CategorySet)
	assert.False(t, input.DueDateSet)
	assert.False(t, input.ReminderSet)

	require.NotNil(t, input.Completed)
	assert.True(t, *input.Completed)
	assert.Nil(t, input.UserID)
}

func TestBuildUpdateTaskInput_EmptyBody(t *testing.T) {
	req, raw := rawBody(t, `{}`)

	input, err := validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)

	// Emptiness is judged downstream, after existence and ownership.
	assert.Equal(t, domain.UpdateTaskInput{}, input)
}

func TestBuildUpdateTaskInput_UserIDVariants(t *testing.T) {
	req, raw := rawBody(t, `{"userId":"9","title":"x"}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	require.NotNil(t, input.UserID)
	assert.Equal(t, int64(9), *input.UserID)

	req, raw = rawBody(t, `{"userId":null,"title":"x"}`)
	input, err = validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	assert.Nil(t, input.UserID, "null userId skips the ownership check")

	req, raw = rawBody(t, `{"userId":"nope","title":"x"}`)
	_, err = validation.BuildUpdateTaskInput(req, raw)
	assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_TitleRules(t *testing.T) {
	req, raw := rawBody(t, `{"title":null}`)
	_, err := validation.BuildUpdateTaskInput(req, raw)
	assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload)

	req, raw = rawBody(t, `{"title":"   "}`)
	_, err = validation.BuildUpdateTaskInput(req, raw)
	assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_ReminderParts(t *testing.T) {
	req, raw := rawBody(t, `{"reminderTime":"09:30"}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	assert.True(t, input.ReminderSet)
	assert.Equal(t, "", input.ReminderDate)
	assert.Equal(t, "09:30", input.ReminderTime)

	// Explicitly clearing both parts still raises the flag so the
	// column is set to NULL rather than left alone.
	req, raw = rawBody(t, `{"reminderDate":"","reminderTime":""}`)
	input, err = validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	assert.True(t, input.ReminderSet)
	assert.Equal(t, "", input.ReminderDate)
	assert.Equal(t, "", input.ReminderTime)
}

func TestBuildUpdateTaskInput_ClearsOptionalColumn(t *testing.T) {
	req, raw := rawBody(t, `{"category":"  "}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	assert.True(t, input.CategorySet)
	assert.Nil(t, input.Category)
}
