package dto

// PageRequest paginação para listagens (page começa em 1).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// Normalize aplica os valores padrão e limites (page>=1, 1<=page_size<=100).
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Offset devolve o deslocamento equivalente para o repositório.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paginated envelope genérico de listagem com metadados de página.
type Paginated[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPaginated monta o envelope calculando total_pages.
func NewPaginated[T any](items []T, total, page, pageSize int) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse resposta simples de sucesso (deleções, etc.).
type MessageResponse struct {
	Message string `json:"message"`
}
