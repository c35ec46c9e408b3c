package handler

type ContextKey string

var (
	RequestIDCtxKey ContextKey = "requestID"
	StaffCtx        ContextKey = "staff"
	ServiceCtx      ContextKey = "service"
	ClientCtx       ContextKey = "client"
	AppointmentCtx  ContextKey = "appointment"
)
