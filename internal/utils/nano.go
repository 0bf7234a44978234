package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NanoidSize is the length of ids used for donor sessions and payment
// idempotency keys.
var NanoidSize = 32

func NanoID() string {
	return NanoIDSize(NanoidSize)
}

// NanoIDSize generates an alphanumeric id of the given length, falling back
// to NanoidSize when size is not positive.
func NanoIDSize(size int) string {
	if size <= 0 {
		size = NanoidSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}
