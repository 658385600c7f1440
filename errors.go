package gql

import "github.com/pkg/errors"

var (
	// ErrNoSchema is returned when an execution is attempted without a schema
	ErrNoSchema = errors.New("no schema provided")

	// ErrMissingOperation is returned when neither a query nor a mutation was supplied
	ErrMissingOperation = errors.New("must provide a query or a mutation")

	// ErrAmbiguousOperation is returned when both a query and a mutation were supplied
	ErrAmbiguousOperation = errors.New("must provide only one of query or mutation")

	// ErrNoResult is returned when the engine returns neither a result nor an error
	ErrNoResult = errors.New("engine returned no result")

	// ErrBadRequest is returned when the request body cannot be read or decoded
	ErrBadRequest = errors.New("bad request")
)
