package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// AccountNumberLength is the number of digits in a generated account number.
const AccountNumberLength = 14

var accountNumberSpace = new(big.Int).Exp(big.NewInt(10), big.NewInt(AccountNumberLength-1), nil)

// GenerateAccountNumber returns a random numeric account number that never starts with 0.
// Uniqueness is not guaranteed here; stores reject collisions and callers regenerate.
func GenerateAccountNumber() (string, error) {
	n, err := rand.Int(rand.Reader, accountNumberSpace)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("1%0*d", AccountNumberLength-1, n), nil
}
