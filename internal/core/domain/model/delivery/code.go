package delivery

import (
	"math/rand/v2"
	"strings"

	"mtaani/internal/pkg/errs"
)

// Delivery codes are the external-facing identifiers printed on receipts
// and quoted in support calls: "RYD" followed by 8 random characters.
const (
	codePrefix  = "RYD"
	codeLength  = 8
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator produces external delivery codes. Injected so the state
// machine and tests stay deterministic.
type CodeGenerator interface {
	NextCode() string
}

// RandomCodeGenerator is the production generator.
type RandomCodeGenerator struct{}

// NewRandomCodeGenerator creates the production code generator.
func NewRandomCodeGenerator() RandomCodeGenerator {
	return RandomCodeGenerator{}
}

// NextCode returns a fresh "RYD"-prefixed code.
func (RandomCodeGenerator) NextCode() string {
	var b strings.Builder
	b.Grow(len(codePrefix) + codeLength)
	b.WriteString(codePrefix)
	for range codeLength {
		b.WriteByte(codeCharset[rand.IntN(len(codeCharset))]) //nolint:gosec // not security sensitive
	}
	return b.String()
}

// validateCode checks the shape of an externally supplied delivery code.
func validateCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("deliveryCode")
	}
	if !strings.HasPrefix(code, codePrefix) || len(code) != len(codePrefix)+codeLength {
		return errs.NewValueIsInvalidError("deliveryCode")
	}
	return nil
}
