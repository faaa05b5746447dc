// Package errors holds the domain-level sentinel errors shared by the service
// and API layers. Services wrap them with fmt.Errorf("%w: ...") and the API
// layer maps them to HTTP status codes with errors.Is.
package errors

import "errors"

var (
	// ErrNotFound: the chat, session or profile does not exist. Maps to 404.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation: caller input broke a business rule. Maps to 400 and the
	// wrapped message is shown to the client as is.
	ErrValidation = errors.New("validation failed")

	// ErrConflict: the resource is busy, e.g. a completion is already in flight
	// for the chat. Maps to 409.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission: the caller does not own the resource or is anonymous where
	// an account is required. Maps to 403.
	ErrPermission = errors.New("permission denied")

	// ErrUpstream: an external collaborator (billing, auth) failed. Maps to 502.
	ErrUpstream = errors.New("upstream service failed")

	// ErrInternal: anything unexpected. Maps to 500.
	ErrInternal = errors.New("internal server error")
)
