package auth

// TokenClaims is the payload carried inside an access token.
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Nombre    string `json:"nombre"`
	Iniciales string `json:"iniciales"`
	Rol       string `json:"rol"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	Usuario     UserInfo `json:"usuario"`
}

// UserInfo is the public shape of an authenticated user.
type UserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Nombre    string `json:"nombre"`
	Iniciales string `json:"iniciales"`
	Rol       string `json:"rol"`
}
