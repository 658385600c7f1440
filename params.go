package gql

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Constants
const (
	ContentTypeJSON           = "application/json"
	ContentTypeGraphQL        = "application/graphql"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

// Params holds a single GraphQL operation. Exactly one of Query or Mutation
// may be set.
type Params struct {
	Query         string                 `json:"query,omitempty"`
	Mutation      string                 `json:"mutation,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
	OperationName string                 `json:"operationName,omitempty"`
}

// NewQuery creates params for a query
func NewQuery(source string) *Params {
	return &Params{Query: source}
}

// NewMutation creates params for a mutation
func NewMutation(source string) *Params {
	return &Params{Mutation: source}
}

// Validate checks that exactly one operation source is present
func (p *Params) Validate() error {
	if p == nil {
		return errors.WithStack(ErrMissingOperation)
	}

	switch {
	case p.Query != "" && p.Mutation != "":
		return errors.WithStack(ErrAmbiguousOperation)
	case p.Query == "" && p.Mutation == "":
		return errors.WithStack(ErrMissingOperation)
	}

	return nil
}

// Source returns the operation source text
func (p *Params) Source() (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	if p.Query != "" {
		return p.Query, nil
	}

	return p.Mutation, nil
}

// variables may be sent as an object or as a JSON string holding one
type rawParams struct {
	Query         string          `json:"query"`
	Mutation      string          `json:"mutation"`
	Variables     json.RawMessage `json:"variables"`
	OperationName string          `json:"operationName"`
}

func decodeVariables(raw []byte) (map[string]interface{}, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.Wrap(ErrBadRequest, "variables must be a JSON object")
		}
		raw = []byte(s)
		if len(bytes.TrimSpace(raw)) == 0 {
			return nil, nil
		}
	}

	var variables map[string]interface{}
	if err := json.Unmarshal(raw, &variables); err != nil {
		return nil, errors.Wrap(ErrBadRequest, "variables must be a JSON object")
	}
	return variables, nil
}

func getFromForm(values url.Values) (*Params, bool, error) {
	query, mutation := values.Get("query"), values.Get("mutation")
	if query == "" && mutation == "" {
		return nil, false, nil
	}

	p := &Params{
		Query:         query,
		Mutation:      mutation,
		OperationName: values.Get("operationName"),
	}

	variables, err := decodeVariables([]byte(values.Get("variables")))
	if err != nil {
		return nil, true, err
	}
	p.Variables = variables

	return p, true, nil
}

// HasOperation reports whether the request URL carries an operation
func HasOperation(r *http.Request) bool {
	values := r.URL.Query()
	return values.Get("query") != "" || values.Get("mutation") != ""
}

// ParseParams reads GraphQL params from the request URL or body and
// validates them. The body is restored so it may be read again.
func ParseParams(r *http.Request) (*Params, error) {
	p, err := parseParams(r)
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func parseParams(r *http.Request) (*Params, error) {
	if p, ok, err := getFromForm(r.URL.Query()); ok {
		return p, err
	}

	if r.Method != http.MethodPost || r.Body == nil {
		return &Params{}, nil
	}

	contentType := strings.TrimSpace(strings.Split(r.Header.Get("Content-Type"), ";")[0])

	switch contentType {
	case ContentTypeGraphQL:
		body, err := readBody(r)
		if err != nil {
			return nil, err
		}
		return &Params{Query: string(body)}, nil

	case ContentTypeFormURLEncoded:
		if err := r.ParseForm(); err != nil {
			return nil, errors.Wrapf(ErrBadRequest, "failed to parse form: %s", err)
		}

		if p, ok, err := getFromForm(r.PostForm); ok {
			return p, err
		}
		return &Params{}, nil

	case ContentTypeJSON:
		fallthrough
	default:
		body, err := readBody(r)
		if err != nil {
			return nil, err
		}

		var raw rawParams
		if err := json.Unmarshal(body, &raw); err != nil {
			if typeErr, ok := err.(*json.UnmarshalTypeError); ok && typeErr.Field != "" {
				return nil, errors.Wrap(ErrBadRequest, "query, mutation and operationName must be strings")
			}
			return nil, errors.Wrap(ErrBadRequest, "body is not a valid JSON object")
		}

		variables, err := decodeVariables(raw.Variables)
		if err != nil {
			return nil, err
		}

		return &Params{
			Query:         raw.Query,
			Mutation:      raw.Mutation,
			Variables:     variables,
			OperationName: raw.OperationName,
		}, nil
	}
}

// readBody reads the body and puts it back on the request
func readBody(r *http.Request) ([]byte, error) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrBadRequest, "failed to read body: %s", err)
	}
	r.Body = ioutil.NopCloser(bytes.NewBuffer(body))
	return body, nil
}
