package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse token de acceso tipo bearer.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
