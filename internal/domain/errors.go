package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrForbidden           = errors.New("acesso negado")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrEmailAlreadyExists  = errors.New("o e-mail já está cadastrado")
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrSubscriptionExpired = errors.New("assinatura expirada")
	ErrCodeAlreadyUsed     = errors.New("este código já foi utilizado")
	ErrInvalidLicense      = errors.New("código de licença inválido ou expirado")
)
