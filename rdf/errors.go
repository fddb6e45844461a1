package rdf

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported target format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeConfig indicates an invalid or conflicting configuration option.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
	// ErrCodeInputDefect indicates the graph itself cannot be serialized
	// under the requested configuration (e.g. a blank-node cycle).
	ErrCodeInputDefect ErrorCode = "INPUT_DEFECT"
	// ErrCodeIO indicates a writer I/O failure.
	ErrCodeIO ErrorCode = "IO_ERROR"
)

var (
	// ErrUnsupportedFormat indicates an unsupported target format.
	ErrUnsupportedFormat = errors.New("rdf: unsupported target format")
	// ErrBlankNodeCycle indicates a blank-node cycle was found while
	// InlineBlankNodes was requested.
	ErrBlankNodeCycle = errors.New("rdf: blank-node cycle is incompatible with inline rendering")
	// ErrDanglingBlankSubject indicates a blank node that is a subject but
	// never an object, which InlineBlankNodes cannot render.
	ErrDanglingBlankSubject = errors.New("rdf: blank-node subject never appears as an object, cannot inline")
	// ErrUnresolvableIRI indicates an IRI could not be resolved to a QName
	// where one was required (RDF/XML predicates).
	ErrUnresolvableIRI = errors.New("rdf: IRI cannot be resolved to a QName")
)

// Code classifies an error returned by this package into an ErrorCode, for
// callers that need to choose an exit code or log level. Returns "" for a
// nil error.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrBlankNodeCycle), errors.Is(err, ErrDanglingBlankSubject):
		return ErrCodeInputDefect
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ErrCodeConfig
	}
	var defectErr *InputDefectError
	if errors.As(err, &defectErr) {
		return ErrCodeInputDefect
	}
	return ErrCodeIO
}

// ConfigError indicates an unknown option value or a combination of
// options that cannot be satisfied together. It is always returned before
// any output bytes are written.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rdf: configuration error for %q: %s", e.Option, e.Reason)
}

// InputDefectError wraps a fatal defect in the graph itself (as opposed to
// the writer's configuration): an RDF/XML predicate that cannot be resolved
// to a QName, or, under InlineBlankNodes, a blank-node cycle or a dangling
// blank-node subject. No output is produced when this error is returned.
type InputDefectError struct {
	Err  error
	Term Term
}

func (e *InputDefectError) Error() string {
	if e.Term != nil {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Term.String())
	}
	return e.Err.Error()
}

func (e *InputDefectError) Unwrap() error { return e.Err }

// SortAnomalyError records a non-fatal diagnostic: the sorted and unsorted
// views of a collection disagreed in size, which indicates a comparator
// bug. Serialization proceeds using the sorted data; the caller decides
// whether to surface this.
type SortAnomalyError struct {
	Stage        string
	SortedSize   int
	UnsortedSize int
}

func (e *SortAnomalyError) Error() string {
	return fmt.Sprintf("rdf: %s unexpectedly lost or gained during sorting: %d != %d",
		e.Stage, e.SortedSize, e.UnsortedSize)
}
