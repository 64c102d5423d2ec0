package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+2348012345678"))
	assert.True(t, ValidatePhone("+1 (415) 555-0132"))
	assert.True(t, ValidatePhone("8012345678"))

	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone("0"))
}
