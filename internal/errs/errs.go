// Package errs defines the typed failures shared by every ioc-triage
// operation. Callers branch on error kinds with the Is* helpers instead of
// matching message strings.
package errs

import (
	"errors"
	"fmt"
)

// DecodeError reports malformed encoded input handed to a codec.
type DecodeError struct {
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decode failed: %v", e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError wraps a codec failure with the encoding name.
func NewDecodeError(encoding string, err error) error {
	return &DecodeError{Encoding: encoding, Err: err}
}

// NotFoundError reports a referenced file or path that does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// NewNotFoundError wraps a missing-path failure.
func NewNotFoundError(path string, err error) error {
	return &NotFoundError{Path: path, Err: err}
}

// NetworkError reports a transport-level failure: connection refused,
// timeout, DNS failure, or an unexpected HTTP status.
type NetworkError struct {
	Operation string
	Endpoint  string
	Status    int
	Err       error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d from %s", e.Operation, e.Status, e.Endpoint)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps a transport failure with the operation name and
// the endpoint it targeted.
func NewNetworkError(operation, endpoint string, err error) error {
	return &NetworkError{Operation: operation, Endpoint: endpoint, Err: err}
}

// NewStatusError builds a NetworkError for a non-success HTTP status.
func NewStatusError(operation, endpoint string, status int) error {
	return &NetworkError{Operation: operation, Endpoint: endpoint, Status: status}
}

// ParseError reports a response body that is not valid structured data or
// is missing an expected field.
type ParseError struct {
	Source string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Source, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps a malformed-document failure.
func NewParseError(source, reason string, err error) error {
	return &ParseError{Source: source, Reason: reason, Err: err}
}

// IOError reports a create, write, read or delete failure on a local
// artifact.
type IOError struct {
	Operation string
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Operation, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError wraps a filesystem failure with the operation and path.
func NewIOError(operation, path string, err error) error {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// UnsupportedOperationError reports a caller-selected variant that no
// capability group recognizes.
type UnsupportedOperationError struct {
	Group string
	Name  string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported %s operation %q", e.Group, e.Name)
}

// NewUnsupportedOperationError builds an error for an unknown variant name
// within a capability group.
func NewUnsupportedOperationError(group, name string) error {
	return &UnsupportedOperationError{Group: group, Name: name}
}

// IsDecode verifica si un error es un fallo de decodificación.
func IsDecode(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// IsNotFound verifica si un error es por una ruta inexistente.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsNetwork verifica si un error es de transporte.
func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

// IsParse verifica si un error es por datos mal formados.
func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsIO verifica si un error es de entrada/salida local.
func IsIO(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}

// IsUnsupported verifica si un error es por una operación desconocida.
func IsUnsupported(err error) bool {
	var target *UnsupportedOperationError
	return errors.As(err, &target)
}
