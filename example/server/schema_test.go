package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bhoriuchi/gql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleSchema(t *testing.T) {
	schema, err := buildSchema()
	require.NoError(t, err)
	e := gql.New(schema, gql.WithContextFunc(viewerContext))

	r := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	r.Header.Set("X-User", "alice")
	result, err := e.Execute(context.Background(), gql.NewQuery("{ viewer }"), r)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"viewer": "alice"}, result.Data)

	result, err = e.Execute(context.Background(), gql.NewMutation(`mutation { setGreeting(value: "there") }`), r)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)

	result, err = e.Execute(context.Background(), gql.NewQuery("{ hello }"), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"hello": "there"}, result.Data)
}
