package main

import (
	"context"
	"net/http"
	"sync"

	"github.com/graphql-go/graphql"
)

type viewerKey struct{}

// viewerContext makes the X-User header available to resolvers
func viewerContext(ctx context.Context, r *http.Request) (context.Context, error) {
	viewer := r.Header.Get("X-User")
	if viewer == "" {
		viewer = "anonymous"
	}
	return context.WithValue(ctx, viewerKey{}, viewer), nil
}

func buildSchema() (*graphql.Schema, error) {
	var (
		mx       sync.RWMutex
		greeting = "world"
	)

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"hello": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						mx.RLock()
						defer mx.RUnlock()
						return greeting, nil
					},
				},
				"viewer": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Context.Value(viewerKey{}), nil
					},
				},
			},
		}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{
			Name: "Mutation",
			Fields: graphql.Fields{
				"setGreeting": &graphql.Field{
					Type: graphql.String,
					Args: graphql.FieldConfigArgument{
						"value": &graphql.ArgumentConfig{
							Type: graphql.NewNonNull(graphql.String),
						},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						mx.Lock()
						defer mx.Unlock()
						greeting = p.Args["value"].(string)
						return greeting, nil
					},
				},
			},
		}),
	})

	if err != nil {
		return nil, err
	}

	return &schema, nil
}
