package optional

// AbsentValueError signals a forced unwrap of an empty Optional.
//
// It is returned by Get and passed to panic by MustGet,
// and never originates from any other operation.
type AbsentValueError struct {
	// Message optionally overrides the default error text.
	Message string
}

// Error implements the error interface.
func (e *AbsentValueError) Error() string {
	if e.Message == "" {
		return "optional: absent value"
	}

	return e.Message
}
