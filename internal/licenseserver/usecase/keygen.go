package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateKey returns a key shaped XXXX-XXXX-XXXX-XXXX.
func GenerateKey() (string, error) {
	base := big.NewInt(int64(len(keyAlphabet)))
	var b strings.Builder
	for seg := 0; seg < 4; seg++ {
		if seg > 0 {
			b.WriteByte('-')
		}
		for i := 0; i < 4; i++ {
			n, err := rand.Int(rand.Reader, base)
			if err != nil {
				return "", fmt.Errorf("failed to generate license key: %w", err)
			}
			b.WriteByte(keyAlphabet[n.Int64()])
		}
	}
	return b.String(), nil
}
