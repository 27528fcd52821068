package tracking_code

import (
	"crypto/rand"
	"fmt"
)

const (
	codePrefix = "EI"
	codeDigits = 8
)

// CodeFactory issues tracking codes in the public format: the fixed "EI"
// prefix followed by 8 independently drawn decimal digits.
type CodeFactory struct{}

func New() *CodeFactory {
	return &CodeFactory{}
}

func (f *CodeFactory) NewCode() (string, error) {
	buf := make([]byte, codeDigits)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random digits: %w", err)
	}

	code := make([]byte, 0, len(codePrefix)+codeDigits)
	code = append(code, codePrefix...)
	for _, b := range buf {
		code = append(code, '0'+b%10)
	}

	return string(code), nil
}
