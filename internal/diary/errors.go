package diary

import "errors"

// ErrNotFound is returned by Get, Update and Delete when no event with
// the given ID exists in the collection.
var ErrNotFound = errors.New("event not found")
