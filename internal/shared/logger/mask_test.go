package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@gmail.com", MaskEmail("john.doe@gmail.com"))
	assert.Equal(t, "***@fenats.cl", MaskEmail("@fenats.cl"))
	assert.Equal(t, "***@***", MaskEmail("not-an-email"))
	assert.Equal(t, "", MaskEmail(""))
}

func TestMaskName(t *testing.T) {
	assert.Equal(t, "María J. P. S.", MaskName("María José Pérez Soto"))
	assert.Equal(t, "Juan", MaskName("  Juan "))
	assert.Equal(t, "Ángela Á.", MaskName("Ángela Álvarez"))
	assert.Equal(t, "", MaskName("   "))
}

func TestParseLevel(t *testing.T) {
	level, ok := parseLevel("WARN")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)

	_, ok = parseLevel("verbose")
	assert.False(t, ok)
}
