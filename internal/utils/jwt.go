package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Клиент не проверяет подпись токена — это задача бекенда. Токен здесь
// используется только как источник идентификатора пользователя и срока действия.

// ParseUserID извлекает идентификатор пользователя из claims токена.
// Бекенд кладет идентификатор либо в user_id, либо в sub (строкой)
func ParseUserID(tokenString string) (int, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return 0, err
	}

	if id, ok := claims["user_id"].(float64); ok {
		return int(id), nil
	}
	if sub, ok := claims["sub"].(string); ok {
		return strconv.Atoi(sub)
	}

	return 0, errors.New("токен не содержит идентификатора пользователя")
}

// TokenExpired сообщает, истёк ли срок действия токена.
// Непрозрачные (не-JWT) токены считаются действующими
func TokenExpired(tokenString string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
