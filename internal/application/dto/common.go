package dto

// PageRequest paginación para listados (page empieza en 1).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// DefaultPage aplica valores por defecto y límites.
func (p *PageRequest) DefaultPage() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Offset devuelve el desplazamiento para la query.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
