package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewShortID generates a compact random identifier with the given prefix,
// e.g. "p_3f2a91" for animals. Length counts the random part only.
func NewShortID(prefix string, length int) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	if length > len(id) {
		length = len(id)
	}
	return prefix + id[:length]
}
