// Package app contains shared application-layer constants used across the
// task-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "user with this email already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgInvalidToken is returned when a presented token cannot be verified
	// (bad signature, wrong issuer or audience) or carries unusable claims.
	MsgInvalidToken = "invalid token"

	// MsgNotFound is returned when a read, update or delete operation
	// targets a resource that does not exist for the current user. Resources
	// owned by a different user surface the same message so their existence
	// is never leaked.
	MsgNotFound = "not found"

	// MsgPinTooShort is returned when a PIN setup or change request carries
	// a PIN shorter than the minimum length.
	MsgPinTooShort = "PIN must be at least 4 digits"

	// MsgPinMismatch is returned when the PIN and its confirmation value do
	// not match.
	MsgPinMismatch = "PIN and confirmation PIN do not match"

	// MsgWrongCurrentPin is returned when a PIN change request carries an
	// incorrect current PIN.
	MsgWrongCurrentPin = "current PIN is incorrect"

	// MsgPinSetUp is returned on successful PIN setup.
	MsgPinSetUp = "PIN setup successfully"

	// MsgPinChanged is returned on successful PIN change.
	MsgPinChanged = "PIN changed successfully"
)
