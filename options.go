package gql

import (
	"context"
	"net/http"

	"github.com/bhoriuchi/gql/logger"
	"github.com/bhoriuchi/gql/metrics"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
)

// ContextFunc derives the execution context from the inbound request
type ContextFunc func(ctx context.Context, r *http.Request) (context.Context, error)

// RootValueFunc builds the root value for an execution
type RootValueFunc func(ctx context.Context, r *http.Request) map[string]interface{}

// EngineFunc executes a prepared operation
type EngineFunc func(p graphql.Params) (*graphql.Result, error)

type FormatErrorFunc func(err error) gqlerrors.FormattedError

type ResultCallbackFunc func(ctx context.Context, params *Params, result *graphql.Result, responseBody []byte)

type Option func(opts *Options)

// Options configures execution. It is built once and only read afterwards.
type Options struct {
	Schema             *graphql.Schema
	ContextFunc        ContextFunc
	RootValue          map[string]interface{}
	RootValueFunc      RootValueFunc
	Engine             EngineFunc
	Playground         bool
	PlaygroundEndpoint string
	PlaygroundTitle    string
	Headers            http.Header
	Pretty             bool
	FormatErrorFunc    FormatErrorFunc
	ResultCallbackFunc ResultCallbackFunc
	LogFunc            logger.LogFunc
	Metrics            *metrics.Collector
}

// DefaultEngine runs the operation with graphql.Do
func DefaultEngine(p graphql.Params) (*graphql.Result, error) {
	return graphql.Do(p), nil
}

// NewOptions builds options for the schema
func NewOptions(schema *graphql.Schema, opts ...Option) *Options {
	options := &Options{
		Schema:  schema,
		Engine:  DefaultEngine,
		LogFunc: logger.NoopLogFunc,
	}

	for _, opt := range opts {
		opt(options)
	}

	return options
}

func WithContextFunc(f ContextFunc) Option {
	return func(opts *Options) {
		opts.ContextFunc = f
	}
}

func WithRootValue(v map[string]interface{}) Option {
	return func(opts *Options) {
		opts.RootValue = v
	}
}

func WithRootValueFunc(f RootValueFunc) Option {
	return func(opts *Options) {
		opts.RootValueFunc = f
	}
}

// WithEngine replaces graphql.Do as the execution call
func WithEngine(f EngineFunc) Option {
	return func(opts *Options) {
		opts.Engine = f
	}
}

// WithPlayground serves the explorer page on GET requests. An empty
// endpoint uses the request path.
func WithPlayground(endpoint string) Option {
	return func(opts *Options) {
		opts.Playground = true
		opts.PlaygroundEndpoint = endpoint
	}
}

func WithPlaygroundTitle(title string) Option {
	return func(opts *Options) {
		opts.PlaygroundTitle = title
	}
}

// WithHeader adds a custom response header
func WithHeader(key, value string) Option {
	return func(opts *Options) {
		if opts.Headers == nil {
			opts.Headers = http.Header{}
		}
		opts.Headers.Add(key, value)
	}
}

func WithPretty() Option {
	return func(opts *Options) {
		opts.Pretty = true
	}
}

func WithFormatErrorFunc(f FormatErrorFunc) Option {
	return func(opts *Options) {
		opts.FormatErrorFunc = f
	}
}

func WithResultCallbackFunc(f ResultCallbackFunc) Option {
	return func(opts *Options) {
		opts.ResultCallbackFunc = f
	}
}

func WithLogFunc(l logger.LogFunc) Option {
	return func(opts *Options) {
		opts.LogFunc = l
	}
}

func WithMetrics(c *metrics.Collector) Option {
	return func(opts *Options) {
		opts.Metrics = c
	}
}
