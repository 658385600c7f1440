package utils

import (
	"encoding/json"
	"fmt"

	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"
)

// OperationUnknown is reported when the operation cannot be determined
const OperationUnknown = "unknown"

// GetOperationAST finds the operation to execute in the document
func GetOperationAST(nodes *ast.Document, operationName string) (*ast.OperationDefinition, error) {
	var operation *ast.OperationDefinition

	for _, def := range nodes.Definitions {
		switch def := def.(type) {
		case *ast.OperationDefinition:
			if operationName == "" && operation != nil {
				return nil, fmt.Errorf("must provide operation name if query contains multiple operations")
			}
			if operationName == "" || (def.GetName() != nil && def.GetName().Value == operationName) {
				operation = def
			}
		}
	}

	return operation, nil
}

func ParseQuery(query string) (*ast.Document, error) {
	return parser.Parse(parser.ParseParams{
		Source: source.NewSource(&source.Source{
			Body: []byte(query),
			Name: "GraphQL request",
		}),
	})
}

// OperationType returns the type of the operation that would be selected
// from the source. It is informational only, the engine does the real
// parsing and validation.
func OperationType(query, operationName string) string {
	doc, err := ParseQuery(query)
	if err != nil {
		return OperationUnknown
	}

	op, err := GetOperationAST(doc, operationName)
	if err != nil || op == nil || op.GetOperation() == "" {
		return OperationUnknown
	}

	return op.GetOperation()
}

// ReMarshal converts one type to another
func ReMarshal(in, out interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// GQLErrors
func GQLErrors(in interface{}) gqlerrors.FormattedErrors {
	switch v := in.(type) {
	case gqlerrors.FormattedErrors:
		return v
	case []gqlerrors.FormattedError:
		return v
	case []gqlerrors.Error:
		errs := gqlerrors.FormattedErrors{}
		for _, err := range v {
			formattedErr := gqlerrors.FormatError(err.OriginalError)
			formattedErr.Message = err.Message
			formattedErr.Locations = err.Locations
			formattedErr.Path = err.Path
			errs = append(errs, formattedErr)
		}
		return errs
	case []error:
		errs := gqlerrors.FormattedErrors{}
		for _, err := range v {
			errs = append(errs, gqlerrors.FormatError(err))
		}
		return errs
	case error:
		return gqlerrors.FormattedErrors{gqlerrors.FormatError(v)}
	}

	err := fmt.Errorf("unspecified error")
	return gqlerrors.FormattedErrors{gqlerrors.FormatError(err)}
}
