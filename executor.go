package gql

import (
	"context"
	"net/http"
	"time"

	"github.com/bhoriuchi/gql/logger"
	"github.com/bhoriuchi/gql/metrics"
	"github.com/bhoriuchi/gql/utils"
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

// Executor executes operations with a fixed set of options and serves
// them over http
type Executor struct {
	log     *logger.LogWrapper
	options *Options
}

// New creates an executor for the schema
func New(schema *graphql.Schema, opts ...Option) *Executor {
	options := NewOptions(schema, opts...)

	return &Executor{
		log:     logger.NewLogWrapper(options.LogFunc, nil),
		options: options,
	}
}

// Execute runs the operation. r may be nil when there is no inbound request.
func (e *Executor) Execute(ctx context.Context, params *Params, r *http.Request) (*graphql.Result, error) {
	start := time.Now()
	log := e.log.WithField("request_id", uuid.NewString())

	operation := utils.OperationUnknown
	if source, err := params.Source(); err == nil {
		operation = utils.OperationType(source, params.OperationName)
	}
	log = log.WithField("operation", operation)
	if params != nil && params.OperationName != "" {
		log = log.WithField("operation_name", params.OperationName)
	}

	log.Tracef("executing operation")
	result, err := Execute(ctx, params, e.options, r)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeOK
	switch {
	case err != nil:
		outcome = metrics.OutcomeFailed
		log.WithError(err).Debugf("operation failed after %s", elapsed)
	case result != nil && result.HasErrors():
		outcome = metrics.OutcomeErrors
		log.Debugf("operation completed with %d errors after %s", len(result.Errors), elapsed)
	default:
		log.Debugf("operation completed after %s", elapsed)
	}

	if e.options.Metrics != nil {
		e.options.Metrics.ObserveExecution(operation, outcome, elapsed)
	}

	return result, err
}
