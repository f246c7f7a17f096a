package model

// User-facing texts of the login flow. Each outcome has exactly one message.
const (
	PromptAPIKey = "Enter your Canvas API Key"

	MsgNoAPIKey       = "No API key entered"
	MsgLoginSucceeded = "Login successful"
	MsgLoginRejected  = "Login failed. Try again"
	MsgLoginError     = "An error occurred. Try again"
)

// LoginOutcome classifies how a login attempt ended.
type LoginOutcome string

const (
	LoginSucceeded      LoginOutcome = "succeeded"
	LoginEmptyInput     LoginOutcome = "empty_input"
	LoginRejected       LoginOutcome = "rejected"        // Response received, status outside 2xx.
	LoginTransportError LoginOutcome = "transport_error" // No response received.
)

// Message returns the notification text shown to the user for the outcome.
func (o LoginOutcome) Message() string {
	switch o {
	case LoginSucceeded:
		return MsgLoginSucceeded
	case LoginEmptyInput:
		return MsgNoAPIKey
	case LoginRejected:
		return MsgLoginRejected
	default:
		return MsgLoginError
	}
}

// LoginResult is the internal record of a login attempt. StatusCode is zero
// unless a response was received; Err is set only for transport errors.
type LoginResult struct {
	Outcome    LoginOutcome
	StatusCode int
	Err        error
}

// IsSuccessStatus reports whether an HTTP status code is in the 2xx range.
func IsSuccessStatus(code int) bool {
	return code >= 200 && code <= 299
}
