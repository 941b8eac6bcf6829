package apierrors

const (
	MsgInvalidPin         = "invalidPin"
	MsgLoginFailed        = "loginFailed"
	MsgFailRegister       = "failRegister"
	MsgFailLogin          = "failLogin"
	MsgInvalidUserID      = "invalidUserID"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgUserNotFound       = "userNotFound"
	MsgTaskNotFound       = "taskNotFound"
	MsgTaskAccessDenied   = "taskAccessDenied"
	MsgNothingToUpdate    = "nothingToUpdate"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
)
