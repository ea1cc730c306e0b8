// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package keys

import (
	"crypto/rand"
	"fmt"
)

// Length of every generated key.
const Length = 10

// Alphabet is base62 (0-9, a-z, A-Z): no character needs escaping in a URL
// path segment.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxByte is the largest multiple of len(Alphabet) that fits in a byte.
// Bytes at or above it are discarded so every character is equally likely.
const maxByte = 256 - 256%len(Alphabet)

// Generate returns a Length-character random key. The generator makes no
// uniqueness guarantee; the store's unique constraints catch collisions and
// the service retries with fresh keys.
func Generate() (string, error) {
	out := make([]byte, Length)
	buf := make([]byte, Length)
	filled := 0
	for filled < Length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate key: %w", err)
		}
		for _, b := range buf {
			if filled == Length {
				break
			}
			if int(b) >= maxByte {
				continue
			}
			out[filled] = Alphabet[int(b)%len(Alphabet)]
			filled++
		}
	}
	return string(out), nil
}
