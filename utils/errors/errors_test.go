package errors_test

import (
	"testing"

	errors2 "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/fhevote/utils/errors"
)

func TestKeyVals(t *testing.T) {
	var err error = errors.With(errors2.New("test"), "key", "val")
	err = errors2.Wrap(err, "wrapped")

	assert.EqualValues(t, []interface{}{"key", "val"}, errors.KeyVals(err))
	assert.Equal(t, "wrapped: test", err.Error())
}

func TestKeyVals_Nested(t *testing.T) {
	inner := errors.With(errors2.New("test"), "inner", 1)
	err := errors.With(errors2.Wrap(inner, "wrapped"), "outer", 2)

	assert.EqualValues(t, []interface{}{"outer", 2, "inner", 1}, errors.KeyVals(err))
	assert.Empty(t, errors.KeyVals(errors2.New("plain")))
}

func TestWith_Nil(t *testing.T) {
	assert.Nil(t, errors.With(nil, "key", "val"))
}
