// Package errors provides the closed error taxonomy for provctl.
//
// Purpose:
//
//	Define one typed error shape for every failure the CLI can report:
//	transport failures, malformed endpoint URLs, each distinguished HTTP
//	status of the provisioning API, and local credential-store failures.
//	Commands never invent ad-hoc errors; they surface these variants and
//	the process exits non-zero.
//
package errors

import (
	"fmt"
)

// Kind identifies one variant of the error taxonomy.
type Kind string

const (
	// KindTransportFailure is a network or serialization failure at the
	// HTTP layer; not a server response.
	KindTransportFailure Kind = "TRANSPORT_FAILURE"
	// KindInvalidURL indicates the supplied endpoint failed URL parsing.
	KindInvalidURL Kind = "INVALID_URL"
	// KindBadRequest maps HTTP 400.
	KindBadRequest Kind = "BAD_REQUEST"
	// KindUnauthorized maps HTTP 401. The response body may be absent
	// when the failure occurs during the token-validity pre-check.
	KindUnauthorized Kind = "UNAUTHORIZED"
	// KindPaymentRequired maps HTTP 402.
	KindPaymentRequired Kind = "PAYMENT_REQUIRED"
	// KindForbidden maps HTTP 403.
	KindForbidden Kind = "FORBIDDEN"
	// KindNotFound maps HTTP 404.
	KindNotFound Kind = "NOT_FOUND"
	// KindNotAcceptable maps HTTP 406.
	KindNotAcceptable Kind = "NOT_ACCEPTABLE"
	// KindConflict maps HTTP 409.
	KindConflict Kind = "CONFLICT"
	// KindUndocumented is any other non-success status.
	KindUndocumented Kind = "UNDOCUMENTED"
	// KindInvalidAccount is a local credential lookup miss, distinct
	// from a server-side 401.
	KindInvalidAccount Kind = "INVALID_ACCOUNT"
	// KindCredentialStorageFailed is a secret-store write failure.
	KindCredentialStorageFailed Kind = "CREDENTIAL_STORAGE_FAILED"
	// KindCredentialDeletionFailed is a secret-store delete failure.
	KindCredentialDeletionFailed Kind = "CREDENTIAL_DELETION_FAILED"
	// KindIO is a failure reading local input (prompt or file).
	KindIO Kind = "IO_ERROR"
	// KindOther catches conditions not otherwise classified.
	KindOther Kind = "OTHER"
)

// APIErrorResponse is the provisioning API's standard error body.
// Every non-2xx response is expected to carry this shape.
type APIErrorResponse struct {
	Code      int64   `json:"code"`
	Message   string  `json:"message"`
	DebugInfo *string `json:"debugInfo,omitempty"`
	ErrorCode *int64  `json:"errorCode,omitempty"`
}

// Error is a taxonomy member. Response is the decoded error body when
// the server returned one; Err is the underlying cause for local
// failures.
type Error struct {
	Kind     Kind
	Status   int
	Response *APIErrorResponse
	Err      error
}

var kindMessages = map[Kind]string{
	KindTransportFailure:         "request failed",
	KindInvalidURL:               "invalid URL",
	KindBadRequest:               "bad request",
	KindUnauthorized:             "unauthorized",
	KindPaymentRequired:          "payment required",
	KindForbidden:                "forbidden",
	KindNotFound:                 "not found",
	KindNotAcceptable:            "not acceptable",
	KindConflict:                 "conflict",
	KindUndocumented:             "undocumented API error",
	KindInvalidAccount:           "invalid account",
	KindCredentialStorageFailed:  "credential storage failed",
	KindCredentialDeletionFailed: "credential deletion failed",
	KindIO:                       "IO error",
	KindOther:                    "uncaught error",
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := kindMessages[e.Kind]
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Response != nil {
		msg = fmt.Sprintf("%s: %d %s", msg, e.Response.Code, e.Response.Message)
		if e.Response.DebugInfo != nil {
			msg += " (" + *e.Response.DebugInfo + ")"
		}
		return msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// statusKinds maps each distinguished HTTP status to its variant.
// Statuses not listed surface as KindUndocumented.
var statusKinds = map[int]Kind{
	400: KindBadRequest,
	401: KindUnauthorized,
	402: KindPaymentRequired,
	403: KindForbidden,
	404: KindNotFound,
	406: KindNotAcceptable,
	409: KindConflict,
}

// FromStatus maps a non-success HTTP status and its decoded error body
// to the corresponding variant.
func FromStatus(status int, resp *APIErrorResponse) *Error {
	kind, ok := statusKinds[status]
	if !ok {
		kind = KindUndocumented
	}
	return &Error{Kind: kind, Status: status, Response: resp}
}

// NewTransportFailure wraps a network or serialization failure.
func NewTransportFailure(err error) *Error {
	return &Error{Kind: KindTransportFailure, Err: err}
}

// NewInvalidURL wraps an endpoint parse failure.
func NewInvalidURL(err error) *Error {
	return &Error{Kind: KindInvalidURL, Err: err}
}

// NewUnauthorized creates a 401 variant. resp may be nil when the
// failure occurs before the server returns its error schema.
func NewUnauthorized(resp *APIErrorResponse) *Error {
	return &Error{Kind: KindUnauthorized, Status: 401, Response: resp}
}

// NewInvalidAccount creates a local credential-lookup failure.
func NewInvalidAccount() *Error {
	return &Error{Kind: KindInvalidAccount}
}

// NewCredentialStorageFailed wraps a secret-store write failure.
func NewCredentialStorageFailed(err error) *Error {
	return &Error{Kind: KindCredentialStorageFailed, Err: err}
}

// NewCredentialDeletionFailed wraps a secret-store delete failure.
func NewCredentialDeletionFailed(err error) *Error {
	return &Error{Kind: KindCredentialDeletionFailed, Err: err}
}

// NewIO wraps a local input failure.
func NewIO(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

// NewOther wraps an unclassified failure.
func NewOther(err error) *Error {
	return &Error{Kind: KindOther, Err: err}
}

// KindOf returns the taxonomy kind of err, or KindOther for errors
// outside the taxonomy.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindOther
}
