package dto

// SignUpRequest entrada do cadastro (password em texto, hasheada no use case).
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// SignUpResponse confirmação do cadastro.
type SignUpResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// SignInRequest entrada do login.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserData dados públicos do usuário (sem password).
type UserData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignInResponse saída do login com token bearer.
type SignInResponse struct {
	Message     string   `json:"message"`
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserData `json:"user"`
}
