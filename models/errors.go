package models

// Typed failures raised by policy and workflow code. The HTTP layer maps each
// type to a status; anything outside this set surfaces as a generic 500 so
// store internals never leak to clients.

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

// ErrorPreconditionFailed: publish attempted without an approval mark.
type ErrorPreconditionFailed struct {
	Message string
}

func (e ErrorPreconditionFailed) Error() string { return e.Message }

// ErrorInvalidState: the article is in no state to perform the operation,
// e.g. publish with no draft content to copy.
type ErrorInvalidState struct {
	Message string
}

func (e ErrorInvalidState) Error() string { return e.Message }

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string { return e.Message }
