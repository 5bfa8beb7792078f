package api

// Messages shown to the user when the service gives nothing better.
const (
	MsgNetworkError = "Network error. Please try again!"
	MsgGenericError = "Something went wrong!"
)

// RequestError is the single error kind produced by the client. Transport
// failures and server-reported errors are both reduced to one human-readable
// message; callers turn it into a notification and never retry.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}
