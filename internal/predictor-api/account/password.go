package account

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt só aceita até 72 bytes
const bcryptMaxLen = 72

// bcryptInput reduz senhas longas a um SHA-256 em hex (64 bytes) antes do bcrypt
func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxLen {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

// HashPassword gera o hash bcrypt usado em todos os registros novos.
// Aceita senhas de qualquer tamanho.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword(bcryptInput(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compara a senha com o hash guardado.
// legacy=true indica que o registro ainda usa o digest antigo e deve ser regravado.
func VerifyPassword(stored, password string) (ok bool, legacy bool) {
	if isBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), bcryptInput(password)) == nil, false
	}
	return stored != "" && stored == LegacyDigest(password), true
}

func isBcrypt(h string) bool {
	return strings.HasPrefix(h, "$2a$") || strings.HasPrefix(h, "$2b$") || strings.HasPrefix(h, "$2y$")
}

// LegacyDigest reproduz o digest de 32 bits dos registros importados do
// armazenamento antigo (hash = hash*31 + unidade UTF-16, em hexadecimal com sinal).
// INSEGURO: serve apenas para reconhecer esses registros e migrá-los para bcrypt.
func LegacyDigest(s string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(u)
	}
	return strconv.FormatInt(int64(h), 16)
}
