package errors

// Messages returned to clients
const (
	MsgRedfinURLRequired = "redfin_url is required"
	MsgResourceNotFound  = "Resource not found"
	MsgInternalError     = "Internal server error"
)
