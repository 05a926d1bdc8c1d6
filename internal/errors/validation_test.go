package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keeperforge/keeper-core/internal/errors"
)

func TestValidationBuilder_NoErrors(t *testing.T) {
	vb := errors.NewValidationBuilder()

	assert.NoError(t, vb.Build())
}

func TestValidationBuilder_CollectsFields(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("EntityStore").
		InvalidField("OwnerID", "unknown player").
		Build()

	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "EntityStore")
	assert.Contains(t, err.Error(), "OwnerID")
}

func TestValidationError_ToError_Empty(t *testing.T) {
	v := errors.NewValidationError()

	assert.Nil(t, v.ToError())
}
