package rut_test

import (
	"testing"

	"github.com/cokeke26/fenats/internal/shared/rut"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "dotted with hyphen", input: "10.017.452-9", expected: "10017452-9"},
		{name: "lowercase k without hyphen", input: "10017452k", expected: "10017452-K"},
		{name: "uppercase K", input: "10017452K", expected: "10017452-K"},
		{name: "spaces and noise", input: "  9 313 137 - 1 ", expected: "9313137-1"},
		{name: "leading zeros", input: "0009313137-1", expected: "9313137-1"},
		{name: "only zeros in number", input: "00-5", expected: "0-5"},
		{name: "two characters", input: "15", expected: "1-5"},
		{name: "wrong check digit still accepted", input: "9313137-9", expected: "9313137-9"},
		{name: "empty", input: "", expected: ""},
		{name: "single digit", input: "5", expected: ""},
		{name: "letters only", input: "ABCDEF", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rut.Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"10.017.452-9", "10017452k", "0009313137-1", "00-5", "1-1", " 7.654.321 - k"}

	for _, input := range inputs {
		once := rut.Normalize(input)
		assert.NotEmpty(t, once, input)
		assert.Equal(t, once, rut.Normalize(once), input)
	}
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "9313137-1", expected: "9.313.137-1"},
		{input: "10017452-K", expected: "10.017.452-K"},
		{input: "10.017.452-9", expected: "10.017.452-9"},
		{input: "123-4", expected: "123-4"},
		{input: "1234-5", expected: "1.234-5"},
		{input: "0-5", expected: "0-5"},
		{input: "x", expected: "x"},
		{input: "", expected: ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, rut.Format(tc.input), tc.input)
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "9.313.***-1", rut.Mask("9313137-1"))
	assert.Equal(t, "10.017.***-K", rut.Mask("10017452-K"))
	assert.Equal(t, "***-5", rut.Mask("123-5"))
	assert.Equal(t, "***", rut.Mask(""))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "10017452", rut.DigitsOnly("10.017.452"))
	assert.Equal(t, "", rut.DigitsOnly("ABCDEF"))
}
