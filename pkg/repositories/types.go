package repositories

import "fmt"

// ErrDuplicateID is returned when a record with the same id was already saved.
type ErrDuplicateID struct {
	ID string
}

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("duplicate id: %s", e.ID)
}

func IsDuplicateID(err error) bool {
	_, ok := err.(*ErrDuplicateID)
	return ok
}
