// file: internals/helpers/transaction_code.go
package helper

import (
	"crypto/rand"
	"math/big"
)

const (
	codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeDigits  = "0123456789"
)

// GenerateTransactionCode returns a human-readable batch code:
// 3 random uppercase letters followed by 4 digits, e.g. "KQA0381".
func GenerateTransactionCode() string {
	buf := make([]byte, 0, 7)
	for i := 0; i < 3; i++ {
		buf = append(buf, codeLetters[randIndex(len(codeLetters))])
	}
	for i := 0; i < 4; i++ {
		buf = append(buf, codeDigits[randIndex(len(codeDigits))])
	}
	return string(buf)
}

func randIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// fall back to the first symbol rather than panic in a request path.
		return 0
	}
	return int(v.Int64())
}
