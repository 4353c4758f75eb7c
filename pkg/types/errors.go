package types

import "fmt"

// ValidationError reports missing or unusable client input. Handlers map it
// to a 400; nothing has touched disk or the database when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AttachmentError wraps a failed filesystem move of an uploaded photo. It is
// fatal for the request; no partial attachment set is reported as success.
type AttachmentError struct {
	Path string
	Err  error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("attachment %s: %v", e.Path, e.Err)
}

func (e *AttachmentError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed statement against the store. There is no
// retry; callers surface it as a server error.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
