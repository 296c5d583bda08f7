package auth

import "strings"

// Schemes accepted in the Authorization header.
var Schemes = []string{"Bearer", "JWT"}

// TokenFromHeader returns the token of an "Authorization: <scheme> <token>"
// header value, or "" when the value uses no accepted scheme.
func TokenFromHeader(value string) string {
	for _, scheme := range Schemes {
		prefix := scheme + " "
		if len(value) > len(prefix) && strings.EqualFold(value[:len(prefix)], prefix) {
			return strings.TrimSpace(value[len(prefix):])
		}
	}
	return ""
}

// TokenLookup is the echo-jwt lookup string for Schemes.
func TokenLookup() string {
	lookups := make([]string, len(Schemes))
	for i, scheme := range Schemes {
		lookups[i] = "header:Authorization:" + scheme + " "
	}
	return strings.Join(lookups, ",")
}
