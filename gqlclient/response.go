package gqlclient

import (
	"net/http"

	"github.com/bhoriuchi/gql/utils"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/pkg/errors"
)

// graphql json response
type graphQLResponse struct {
	Data   interface{}               `json:"data"`
	Errors gqlerrors.FormattedErrors `json:"errors"`
}

// Response response object
type Response struct {
	httpRequest  *http.Request
	httpResponse *http.Response
	rawResult    []byte
	data         interface{}
	errors       gqlerrors.FormattedErrors
}

// HTTPRequest returns the http request
func (c *Response) HTTPRequest() *http.Request {
	return c.httpRequest
}

// HTTPResponse returns the http response
func (c *Response) HTTPResponse() *http.Response {
	return c.httpResponse
}

// RawResult returns the raw result body
func (c *Response) RawResult() []byte {
	return c.rawResult
}

func (c *Response) Data() interface{} {
	return c.data
}

func (c *Response) Errors() gqlerrors.FormattedErrors {
	return c.errors
}

// FirstError returns the first error or nil
func (c *Response) FirstError() *gqlerrors.FormattedError {
	if c.HasErrors() {
		first := c.errors[0]
		return &first
	}
	return nil
}

func (c *Response) HasErrors() bool {
	return len(c.errors) > 0
}

// Decode decodes the data into out
func (c *Response) Decode(out interface{}) error {
	if c.data == nil {
		return errors.New("no data to decode")
	}
	return utils.ReMarshal(c.data, out)
}
