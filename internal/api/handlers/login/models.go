package login

// LoginRequest входные данные для аутентификации
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse выданный токен и данные пользователя
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // в секундах
	UserID    int64  `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}
