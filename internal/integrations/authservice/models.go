package authservice

// User модель пользователя из AuthService
// Ядро сервиса использует только идентификатор; остальные поля нужны для логов и ответов
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials учетные данные для аутентификации
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
