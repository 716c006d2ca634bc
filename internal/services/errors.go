package services

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when post-processing leaves no tweet text
var ErrEmptyResult = errors.New("generation produced an empty tweet")

// ValidationError rejects a request before any network call is made
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PersistenceError is returned once every insert attempt has failed
type PersistenceError struct {
	Attempts int
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist preferences after %d attempts: %v", e.Attempts, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ProviderReplyError reports a model reply the pipeline cannot interpret
type ProviderReplyError struct {
	Stage string
	Reply string
}

func (e *ProviderReplyError) Error() string {
	return fmt.Sprintf("unexpected %s reply: %q", e.Stage, e.Reply)
}
