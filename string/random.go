package string

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/cockroachdb/errors"
)

func init() {
	assertAvailablePRNG()
}

func assertAvailablePRNG() {
	// Assert that a cryptographically secure PRNG is available.
	// Panic otherwise.
	buf := make([]byte, 1)

	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		panic(fmt.Sprintf("crypto/rand is unavailable: Read() failed with %#v", err))
	}
}

// GenerateRandomBytes returns securely generated random bytes.
// It will return an error if the system's secure random
// number generator fails to function correctly, in which
// case the caller should not continue.
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	// Note that err == nil only if we read len(b) bytes.
	if err != nil {
		return nil, err
	}

	return b, nil
}

const randletters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

// GenerateRandomString returns a securely generated random string.
// It will return an error if the system's secure random
// number generator fails to function correctly, in which
// case the caller should not continue.
func GenerateRandomString(n int) (string, error) {
	return GenerateRandomStringFrom(randletters, n)
}

// GenerateRandomStringFrom returns a securely generated random string of n
// characters picked from letters.
func GenerateRandomStringFrom(letters string, n int) (string, error) {
	if letters == "" {
		return "", errors.New("no letters to pick from")
	}
	ret := make([]byte, n)
	max := big.NewInt(int64(len(letters)))
	for i := range n {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "reading random source")
		}
		ret[i] = letters[num.Int64()]
	}

	return string(ret), nil
}
