package usecases

import "strings"

func normalizedEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
