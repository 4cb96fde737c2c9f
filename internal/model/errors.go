package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEntryNotFound is returned when an archive does not contain the requested entry.
	ErrEntryNotFound = errors.New("entry not found in archive")
	// ErrNoTargetFiles marks a patch pass that found nothing to rewrite.
	ErrNoTargetFiles = errors.New("no files patched")
	// ErrCancelled marks a job stopped through its context.
	ErrCancelled = errors.New("cancelled")
)

// ResolutionError reports a required external artifact that could not be found.
type ResolutionError struct {
	Artifact     string
	SearchedDirs []string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s not found; searched: %s", e.Artifact, strings.Join(e.SearchedDirs, ", "))
}

// ErrorKind classifies stage failures.
type ErrorKind string

// Error kinds.
const (
	KindDependency ErrorKind = "dependency"
	KindStage      ErrorKind = "stage"
	KindIO         ErrorKind = "io"
)

// StageError wraps a failure raised by one stage.
type StageError struct {
	Stage Stage
	Kind  ErrorKind
	Err   error
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Stage, e.Kind)
	}

	return fmt.Sprintf("%s: %s error: %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ExtractionError reports that every extraction strategy failed.
type ExtractionError struct {
	Archive  string
	Entry    string
	Attempts []error
}

func (e *ExtractionError) Error() string {
	msgs := make([]string, 0, len(e.Attempts))
	for _, err := range e.Attempts {
		msgs = append(msgs, err.Error())
	}

	return fmt.Sprintf("extract %s from %s: %s", e.Entry, e.Archive, strings.Join(msgs, "; "))
}

func (e *ExtractionError) Unwrap() []error { return e.Attempts }
