package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP codes.
var (
	ErrNotFound     = errors.New("ресурс не найден")
	ErrUserNotFound = errors.New("пользователь не найден")
	ErrInvalidInput = errors.New("некорректные данные")
	ErrDuplicate    = errors.New("товар с таким артикулом уже существует")
	ErrUnauthorized = errors.New("неверный логин или пароль")
	ErrParse        = errors.New("не удалось разобрать файл")
)
