package domain

// Error is the failure shape carried by failure actions.
type Error struct {
	Message string `json:"message"`
}

func (e Error) Error() string { return e.Message }

// ErrorFrom normalizes any adapter error into an Error.
func ErrorFrom(err error) Error {
	if err == nil {
		return Error{Message: "unknown error"}
	}
	return Error{Message: err.Error()}
}
