package utils_test

import (
	"errors"
	"testing"

	"github.com/bhoriuchi/gql/utils"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/stretchr/testify/assert"
)

func TestOperationType(t *testing.T) {
	assert.Equal(t, "query", utils.OperationType("{ hello }", ""))
	assert.Equal(t, "mutation", utils.OperationType("mutation { echo }", ""))
	assert.Equal(t, "mutation", utils.OperationType("query A { hello } mutation B { echo }", "B"))
	assert.Equal(t, utils.OperationUnknown, utils.OperationType("query A { hello } mutation B { echo }", ""))
	assert.Equal(t, utils.OperationUnknown, utils.OperationType("{ hello", ""))
	assert.Equal(t, utils.OperationUnknown, utils.OperationType("{ hello }", "Missing"))
}

func TestGQLErrors(t *testing.T) {
	errs := utils.GQLErrors(errors.New("boom"))
	assert.Len(t, errs, 1)
	assert.Equal(t, "boom", errs[0].Message)

	errs = utils.GQLErrors([]error{errors.New("a"), errors.New("b")})
	assert.Len(t, errs, 2)

	formatted := gqlerrors.FormattedErrors{{Message: "kept"}}
	assert.Equal(t, formatted, utils.GQLErrors(formatted))

	assert.Equal(t, "unspecified error", utils.GQLErrors(42)[0].Message)
}
