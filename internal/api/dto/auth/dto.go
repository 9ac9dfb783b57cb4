package auth

type RegisterRequest struct {
	Username string `json:"username"` // Логин, без учета регистра
	Password string `json:"password"` // Минимум 4 символа
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
