package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// Import related errors
var (
	ErrImportBatchNotTerminal = errors.Wrap(BadParameterError,
		"import batch is not in a terminal state")
	ErrImportBatchAlreadyRolledBack = errors.Wrap(BadParameterError,
		"import batch has already been rolled back")
	ErrNoRecordsToImport = errors.Wrap(BadParameterError,
		"dry run produced no records to create")
)
