package gql

import (
	"encoding/json"
	"net/http"

	"github.com/bhoriuchi/gql/ide"
	"github.com/bhoriuchi/gql/utils"
	"github.com/graphql-go/graphql/gqlerrors"
)

type errorResponse struct {
	Errors gqlerrors.FormattedErrors `json:"errors"`
}

// ServeHTTP parses the operation from the request, executes it and writes
// the result as JSON. GET requests without an operation receive the
// explorer page when it is enabled.
func (e *Executor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	for k, values := range e.options.Headers {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}

	if e.options.Playground && r.Method == http.MethodGet && !HasOperation(r) {
		endpoint := e.options.PlaygroundEndpoint
		if endpoint == "" {
			endpoint = r.URL.Path
		}

		e.log.Tracef("serving playground for endpoint %q", endpoint)
		ide.ServePlayground(w, ide.PlaygroundParams{
			Endpoint: endpoint,
			Title:    e.options.PlaygroundTitle,
		})
		return
	}

	params, err := ParseParams(r)
	if err != nil {
		e.log.WithError(err).Debugf("failed to parse request")
		e.writeJSON(w, http.StatusBadRequest, errorResponse{Errors: utils.GQLErrors(err)})
		return
	}

	result, err := e.Execute(ctx, params, r)
	if err != nil {
		e.log.WithError(err).Errorf("failed to execute operation")
		e.writeJSON(w, http.StatusInternalServerError, errorResponse{Errors: utils.GQLErrors(err)})
		return
	}

	if formatErrorFunc := e.options.FormatErrorFunc; formatErrorFunc != nil && len(result.Errors) > 0 {
		formatted := make([]gqlerrors.FormattedError, len(result.Errors))
		for i, formattedError := range result.Errors {
			formatted[i] = formatErrorFunc(formattedError.OriginalError())
		}
		result.Errors = formatted
	}

	buff := e.writeJSON(w, http.StatusOK, result)

	if e.options.ResultCallbackFunc != nil {
		e.options.ResultCallbackFunc(ctx, params, result, buff)
	}
}

func (e *Executor) writeJSON(w http.ResponseWriter, status int, v interface{}) []byte {
	var (
		buff []byte
		err  error
	)

	if e.options.Pretty {
		buff, err = json.MarshalIndent(v, "", "\t")
	} else {
		buff, err = json.Marshal(v)
	}

	if err != nil {
		e.log.WithError(err).Errorf("failed to marshal response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buff); err != nil {
		e.log.WithError(err).Warnf("failed to write response")
	}

	return buff
}
