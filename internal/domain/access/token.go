package access

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewGuestAccessToken issues a capability for following up on a request
// without an account. It is random (UUIDv4 from crypto/rand) and carries no
// information about the request it is stored on.
func NewGuestAccessToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("access: generate guest token: %w", err)
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}
