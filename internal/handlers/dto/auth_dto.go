package dto

// SignUpRequest representa a requisição de cadastro de conta
type SignUpRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=50"`
	Email           string `json:"email" binding:"required,max=100"`
	Password        string `json:"password" binding:"required,min=4,max=72"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// LoginRequest representa a requisição de login.
// Identifier aceita username ou email.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de um login bem-sucedido
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
