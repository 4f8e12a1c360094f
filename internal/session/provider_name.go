package session

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-scores/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
func normalizeProviderName(raw string, provider providers.GameProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
