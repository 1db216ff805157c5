package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// GenerateOrderCode generates a human-shareable order code.
// Format: PO-XXXXXXXX (8 uppercase hex chars from crypto/rand).
// Customers read this back over WhatsApp, so it stays short.
func GenerateOrderCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("PO-%s", strings.ToUpper(hex.EncodeToString(b))), nil
}
