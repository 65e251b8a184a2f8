package models

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports a lookup by id that matched no record.
type NotFoundError struct {
	Entity string // "product" or "cart"
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// ConflictError reports a uniqueness violation on create.
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a %s with %s %q already exists", e.Entity, e.Field, e.Value)
}

// ValidationError reports a malformed candidate record with per-field detail.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed on: %s", strings.Join(names, ", "))
}

// StorageError reports that a backing document could not be read or
// written. An absent file on first read is not a storage error; that path
// bootstraps an empty collection instead.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
