package authservice

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("authservice client: invalid credentials")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("authservice client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
