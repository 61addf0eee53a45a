package account

import "strings"

// NormalizeNickname gera a chave do usuário: minúsculas, só [a-z0-9].
// "Virat K." e "virat-k" colidem na mesma chave "viratk".
func NormalizeNickname(nickname string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(nickname) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
