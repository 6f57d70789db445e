package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrDoctorNotFound     = errors.New("médico não encontrado")
	ErrHospitalNotFound   = errors.New("hospital não encontrado")
	ErrProductionNotFound = errors.New("produção não encontrada")
	ErrRepasseNotFound    = errors.New("repasse não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrCRMAlreadyExists   = errors.New("o CRM já está cadastrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("não autorizado")
)
