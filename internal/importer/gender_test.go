package importer_test

import (
	"testing"

	"github.com/cokeke26/fenats/internal/importer"
	"github.com/cokeke26/fenats/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassifyGender(t *testing.T) {
	testCases := []struct {
		input    string
		expected model.Gender
	}{
		{input: "Femenino", expected: model.GenderFemale},
		{input: "FEM", expected: model.GenderFemale},
		{input: "mujer", expected: model.GenderFemale},
		{input: " f ", expected: model.GenderFemale},
		{input: "Féménino", expected: model.GenderFemale},
		{input: "Masculino", expected: model.GenderMale},
		{input: "masc.", expected: model.GenderMale},
		{input: "Hombre", expected: model.GenderMale},
		{input: "M", expected: model.GenderMale},
		{input: "Otro", expected: model.GenderUnset},
		{input: "X", expected: model.GenderUnset},
		{input: "Mf", expected: model.GenderUnset},
		{input: "", expected: model.GenderUnset},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			input := tc.input
			assert.Equal(t, tc.expected, importer.ClassifyGender(&input))
		})
	}
}

func TestClassifyGender_Nil(t *testing.T) {
	assert.Equal(t, model.GenderUnset, importer.ClassifyGender(nil))
}
