package validators

import "strings"

// NormalizeEmail aplica a forma canônica usada em toda comparação de
// email: trim + lowercase.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasEmailShape é um filtro sintático barato; a validação forte fica no
// binding "email" do gin.
func HasEmailShape(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
