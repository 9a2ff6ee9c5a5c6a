package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	key      []byte
	method   jwt.SigningMethod
	lifetime time.Duration
}

type User struct {
	Email   string
	Expires int64 // Unix second
}

func New(key string, method string, lifetime time.Duration) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	m := jwt.GetSigningMethod(method)
	if m == nil {
		return nil, fmt.Errorf("unknown signing method: %s", method)
	}
	// 密钥是对称的，只接受 HMAC 系列算法
	if _, ok := m.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing method: %s", method)
	}

	if lifetime <= 0 {
		return nil, fmt.Errorf("invalid token lifetime: %s", lifetime)
	}

	return &JWT{key: []byte(key), method: m, lifetime: lifetime}, nil
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	// 映射字段
	user := &User{}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{j.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	// 匹配内容
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sub, ok := claims["sub"].(string); ok && sub != "" {
			user.Email = sub
		} else {
			return nil, fmt.Errorf("invalid subject")
		}
		user.Expires = int64(claims["exp"].(float64))
	} else {
		return nil, fmt.Errorf("invalid token")
	}

	return user, nil
}

func (j *JWT) SignUser(email string) (string, int64, error) {
	expires := time.Now().Add(j.lifetime).Unix()

	// 创建声明
	claims := jwt.MapClaims{
		"sub": email,
		"exp": expires,
	}

	// 创建令牌
	token := jwt.NewWithClaims(j.method, claims)

	// 签名并返回
	signed, err := token.SignedString(j.key)
	return signed, expires, err
}
