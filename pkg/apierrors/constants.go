package apierrors

// Success messages.
const (
	MsgTasksRetrieved   = "tasksRetrieved"
	MsgTaskRetrieved    = "taskRetrieved"
	MsgTaskCreated      = "taskCreated"
	MsgTaskUpdated      = "taskUpdated"
	MsgTaskCompleted    = "taskCompleted"
	MsgTaskDeleted      = "taskDeleted"
	MsgDiagnosticsOk    = "diagnosticsOk"
	MsgDiagnosticsKinds = "diagnosticsKinds"
)

// Failure messages, one per error kind.
const (
	MsgTaskNotFound         = "taskNotFound"
	MsgTaskAlreadyCompleted = "taskAlreadyCompleted"
	MsgInvalidInput         = "invalidInput"
	MsgInvalidArguments     = "invalidArguments"
	MsgUnauthorized         = "unauthorized"
	MsgInvalidOperation     = "invalidOperation"
	MsgRequestTimeout       = "requestTimeout"
	MsgInternalError        = "internalError"
	MsgRouteNotFound        = "routeNotFound"
	MsgMethodNotAllowed     = "methodNotAllowed"
)

// Field validation messages.
const (
	MsgFieldRequired  = "fieldRequired"
	MsgFieldMaxLength = "fieldMaxLength"
	MsgFieldBoolean   = "fieldBoolean"
	MsgFieldDatetime  = "fieldDatetime"
	MsgFieldInteger   = "fieldInteger"
)
