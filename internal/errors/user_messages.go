package errors

// User-friendly error messages
const (
	MsgUpstreamFailed     = "The listings provider could not be reached. Please try again in a few minutes."
	MsgServiceUnavailable = "We're unable to process your request right now. Please try again in a few minutes."
	MsgRateLimited        = "You're searching too quickly! Please wait a moment and try again."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgUnauthorized       = "You need to be signed in to do that."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
