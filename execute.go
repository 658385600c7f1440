package gql

import (
	"context"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
)

// Execute runs a single operation against the configured schema.
//
// When opts.ContextFunc is set and r is non-nil the execution context is
// derived from r, otherwise ctx is used as is. A nil derived context keeps
// ctx. Errors from the context func and the engine are returned unchanged.
// Errors raised while executing the operation are reported in the result.
func Execute(ctx context.Context, params *Params, opts *Options, r *http.Request) (*graphql.Result, error) {
	if opts == nil || opts.Schema == nil {
		return nil, errors.WithStack(ErrNoSchema)
	}

	source, err := params.Source()
	if err != nil {
		return nil, err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if opts.ContextFunc != nil && r != nil {
		derived, err := opts.ContextFunc(ctx, r)
		if err != nil {
			return nil, err
		}
		if derived != nil {
			ctx = derived
		}
	}

	rootValue := opts.RootValue
	if opts.RootValueFunc != nil {
		rootValue = opts.RootValueFunc(ctx, r)
	}
	if rootValue == nil {
		rootValue = map[string]interface{}{}
	}

	engine := opts.Engine
	if engine == nil {
		engine = DefaultEngine
	}

	result, err := engine(graphql.Params{
		Schema:         *opts.Schema,
		RequestString:  source,
		Context:        ctx,
		RootObject:     rootValue,
		VariableValues: params.Variables,
		OperationName:  params.OperationName,
	})
	if err == nil && result == nil {
		return nil, errors.WithStack(ErrNoResult)
	}

	return result, err
}
