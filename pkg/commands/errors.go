package commands

import "fmt"

// ValidationError reports bad input to a command. It is returned inside the
// response envelope, never as a transport failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

func invalid(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrUnknownCommand is returned by the dispatcher for a name it does not know.
type ErrUnknownCommand struct {
	Name string
}

func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

func IsUnknownCommand(err error) bool {
	_, ok := err.(*ErrUnknownCommand)
	return ok
}

// ErrInvalidArguments is returned by the dispatcher when the argument
// object of a command cannot be decoded.
type ErrInvalidArguments struct {
	Command string
	Err     error
}

func (e *ErrInvalidArguments) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Command, e.Err)
}

func (e *ErrInvalidArguments) Unwrap() error {
	return e.Err
}

func IsInvalidArguments(err error) bool {
	_, ok := err.(*ErrInvalidArguments)
	return ok
}
