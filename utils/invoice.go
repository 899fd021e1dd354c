package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"
)

const invoiceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomCode returns n characters of A-Z0-9, e.g. "AB4D93KF".
// rand.Int avoids modulo bias.
func RandomCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(invoiceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(invoiceCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateInvoiceNumber → "INV-20260115-AB4D93KF"
func GenerateInvoiceNumber(at time.Time) (string, error) {
	code, err := RandomCode(8)
	if err != nil {
		return "", err
	}
	return "INV-" + at.Format("20060102") + "-" + code, nil
}

// PtrTime returns pointer to time.Time
func PtrTime(t time.Time) *time.Time { return &t }
