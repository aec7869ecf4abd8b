package auth

import (
	"regexp"
	"testing"

	"bvs/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerator_Generate(t *testing.T) {
	generator := NewOTPGenerator(&config.Config{Auth: &config.AuthConfig{OTPLength: 6}})
	digits := regexp.MustCompile(`^[0-9]{6}$`)

	for range 50 {
		code, err := generator.Generate()
		require.NoError(t, err)
		assert.Regexp(t, digits, code)
	}
}

func TestOTPGenerator_DefaultLength(t *testing.T) {
	code, err := NewOTPGenerator(nil).Generate()
	require.NoError(t, err)
	assert.Len(t, code, defaultOTPLength)
}
