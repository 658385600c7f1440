package gqlclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/bhoriuchi/gql"
	"github.com/pkg/errors"
)

const defaultRequestTimeout = 10 * time.Second

// BeforeFunc modifies the request before it is sent
type BeforeFunc func(req *http.Request) error

// Options client options
type Options struct {
	URL            string
	Before         []BeforeFunc
	Insecure       bool
	RequestTimeout time.Duration
	HTTPClient     *http.Client
}

// Client posts operations to a graphql endpoint
type Client struct {
	url        string
	before     []BeforeFunc
	httpClient *http.Client
}

// NewClient creates a new client
func NewClient(opts *Options) (*Client, error) {
	if opts == nil || opts.URL == "" {
		return nil, errors.New("client url is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout == 0 {
			timeout = defaultRequestTimeout
		}

		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: opts.Insecure,
				},
			},
		}
	}

	return &Client{
		url:        opts.URL,
		before:     opts.Before,
		httpClient: httpClient,
	}, nil
}

// Do posts the operation as JSON. A response that carries graphql errors
// is returned without an error; a non-200 status returns both the
// response and an error.
func (c *Client) Do(ctx context.Context, params *gql.Params) (*Response, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode params")
	}

	rsp := &Response{}
	rsp.httpRequest, err = http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	rsp.httpRequest.Header.Set("Content-Type", gql.ContentTypeJSON)

	// apply before middleware
	for _, before := range c.before {
		if err := before(rsp.httpRequest); err != nil {
			return nil, err
		}
	}

	rsp.httpResponse, err = c.httpClient.Do(rsp.httpRequest)
	if err != nil {
		return nil, err
	}
	defer rsp.httpResponse.Body.Close()

	rsp.rawResult, err = ioutil.ReadAll(rsp.httpResponse.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	var grsp graphQLResponse
	if err := json.Unmarshal(rsp.rawResult, &grsp); err != nil {
		return rsp, errors.Wrapf(err, "failed to decode response with status %s", rsp.httpResponse.Status)
	}

	rsp.data = grsp.Data
	if len(grsp.Errors) > 0 {
		rsp.errors = grsp.Errors
	}

	if rsp.httpResponse.StatusCode != http.StatusOK {
		return rsp, errors.Errorf("unexpected status %s", rsp.httpResponse.Status)
	}

	return rsp, nil
}
