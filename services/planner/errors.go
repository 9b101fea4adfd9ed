package planner

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindPreconditionMissing ErrorKind = "preconditionMissing"
	KindInvalidInput        ErrorKind = "invalidInput"
	KindNotFound            ErrorKind = "notFound"
	KindDataFetchFailure    ErrorKind = "dataFetchFailure"
	KindWriteFailure        ErrorKind = "writeFailure"
	KindPartialWriteFailure ErrorKind = "partialWriteFailure"
)

var (
	ErrSubjectNotFound = errors.New("can't find the subject you selected")
	ErrTemplateMissing = errors.New("please define your usual week before creating any homework")
)

// PlannerError is returned by every PlannerService operation that fails.
type PlannerError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *PlannerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PlannerError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, message string, err error) *PlannerError {
	return &PlannerError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind of a PlannerError, or "" for other errors.
func KindOf(err error) ErrorKind {
	var pe *PlannerError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// PartialWriteError reports an allocation batch that stopped part way.
// The first Applied allocations are committed.
type PartialWriteError struct {
	Applied int
	Total   int
	Date    string
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("applied %d of %d allocations, failed on %s: %v", e.Applied, e.Total, e.Date, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
