package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("7b1a43ab-5da0-4cf2-9643-01fbd32bd286"))
	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("not-a-uuid"))
	assert.False(t, IsValidID("7b1a43ab-5da0-4cf2-9643"))
}
