package service

import (
	"strings"

	"github.com/gofrs/uuid/v5"
)

const cnpjLen = 14

// CleanCNPJ keeps only the digits of s.
func CleanCNPJ(s string) string {
	var b strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// FormatCNPJ renders NN.NNN.NNN/NNNN-NN. Input that does not clean to 14
// digits is returned as is.
func FormatCNPJ(s string) string {
	d := CleanCNPJ(s)
	if len(d) != cnpjLen {
		return s
	}

	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// IsValidCNPJ checks length, repeated digits and both check digits.
func IsValidCNPJ(s string) bool {
	d := CleanCNPJ(s)
	if len(d) != cnpjLen {
		return false
	}

	if strings.Count(d, d[:1]) == cnpjLen {
		return false
	}

	first := cnpjCheckDigit(d[:12], []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})
	second := cnpjCheckDigit(d[:12]+string(rune('0'+first)), []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})

	return int(d[12]-'0') == first && int(d[13]-'0') == second
}

func cnpjCheckDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}

	rest := sum % 11
	if rest < 2 {
		return 0
	}

	return 11 - rest
}

// GenerateID returns an opaque identifier for records not yet persisted.
func GenerateID() string {
	return uuid.Must(uuid.NewV4()).String()
}
