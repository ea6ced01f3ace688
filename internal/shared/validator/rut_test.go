package validator_test

import (
	"testing"

	"github.com/cokeke26/fenats/internal/shared/validator"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rutPayload struct {
	Rut string `binding:"required,rut"`
}

func TestValidateRut(t *testing.T) {
	require.NoError(t, validator.RegisterAll())
	require.NoError(t, validator.RegisterAll(), "second registration must be a no-op")

	testCases := []struct {
		value string
		valid bool
	}{
		{value: "10.017.452-9", valid: true},
		{value: "10017452k", valid: true},
		{value: "5", valid: false},
		{value: "ABC", valid: false},
	}

	for _, tc := range testCases {
		err := binding.Validator.ValidateStruct(&rutPayload{Rut: tc.value})
		if tc.valid {
			assert.NoError(t, err, tc.value)
			continue
		}

		require.Error(t, err, tc.value)
		resp, ok := validator.ToErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, "ERROR-001", resp.Code)
		assert.Contains(t, resp.Message, "RUT")
	}
}
