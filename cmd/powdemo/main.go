// Command powdemo is a standalone demonstration of the brute-force search
// primitive behind proof-of-work, with no relationship to the ledger: it
// hunts for the smallest repetition count y such that the SHA-256 digest of
// "Hello World" repeated y times starts with four hex zeros, then prints the
// solution and how long the hunt took.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const (
	phrase     = "Hello World"
	difficulty = 4
)

func createHash(x string, y int) string {
	sum := sha256.Sum256([]byte(strings.Repeat(x, y)))
	return hex.EncodeToString(sum[:])
}

func main() {
	start := time.Now()
	target := strings.Repeat("0", difficulty)

	y := 0
	for createHash(phrase, y)[:difficulty] != target {
		y++
	}

	fmt.Printf("The solution for y = %d and hash is: %s\n", y, createHash(phrase, y))
	fmt.Printf("( %.2f seconds )\n", time.Since(start).Seconds())
}
