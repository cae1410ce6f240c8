package types

// LoginRequest credenciales de POST /login.
type LoginRequest struct {
	Login      string `json:"login" binding:"required"`
	Contrasena string `json:"contrasena" binding:"required"`
}

// TokenResponse token JWT emitido tras autenticar.
type TokenResponse struct {
	Token string `json:"token"`
}
