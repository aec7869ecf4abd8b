package auth

import (
	"crypto/rand"
	"math/big"
	"strings"

	"bvs/config"
	"bvs/internal/domain/service"
	"bvs/internal/errors"
)

const defaultOTPLength = 6

type numericOTPGenerator struct {
	length int
}

// NewOTPGenerator returns a generator of zero-padded decimal codes drawn from crypto/rand.
func NewOTPGenerator(cfg *config.Config) service.OTPGenerator {
	length := defaultOTPLength
	if cfg != nil && cfg.Auth != nil && cfg.Auth.OTPLength > 0 {
		length = cfg.Auth.OTPLength
	}

	return &numericOTPGenerator{length: length}
}

func (g *numericOTPGenerator) Generate() (string, error) {
	var sb strings.Builder
	sb.Grow(g.length)

	ten := big.NewInt(10)
	for range g.length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "read random digit")
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}

	return sb.String(), nil
}
