package dto

// LoginRequest entrada de /api/auth/login.
type LoginRequest struct {
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de login: token bearer.
type LoginResponse struct {
	Token string `json:"token"`
}

// MeResponse salida de /api/me.
type MeResponse struct {
	ID     string   `json:"id"`
	Correo string   `json:"correo"`
	Roles  []string `json:"roles"`
}
