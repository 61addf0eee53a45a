package account

import "errors"

var (
	// Loja remota inacessível (transporte)
	ErrNetworkFailure = errors.New("user store unavailable")
	// Usuário inexistente
	ErrNotFound = errors.New("user not found")
	// Conflito: apelido já usado (após normalização)
	ErrDuplicateNickname = errors.New("nickname already taken")
	// Login inválido; não diferencia apelido inexistente de senha errada
	ErrInvalidCredential = errors.New("invalid nickname or password")
	// Escrita rejeitada pela loja
	ErrStoreWrite = errors.New("store write failed")
	// Campos obrigatórios ausentes
	ErrValidation = errors.New("validation failed")
)
