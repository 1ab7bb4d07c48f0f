package session

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Сессия вне Telegram: бэкенд выдаёт bearer-токен за подписанный payload
// Login Widget. Храним его в одном месте – файл для CLI/dev-запусков и
// подписанная cookie для браузера. Имя cookie совпадает с ключом
// localStorage оригинального веб-клиента.

const CookieName = "pvndora_session"

var ErrNoSession = errors.New("session not found")

// Store – файловое хранилище bearer-токена (аналог localStorage).
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, []byte(token), 0600)
}

func (s *Store) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSession
		}
		return "", err
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

type cookieClaims struct {
	Bearer string `json:"bearer"`
	jwt.RegisteredClaims
}

// IssueCookie подписывает bearer-токен бэкенда в cookie-значение.
func IssueCookie(secret, bearer string, ttl time.Duration) (string, error) {
	claims := cookieClaims{
		Bearer: bearer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseCookie возвращает bearer-токен из подписанной cookie.
func ParseCookie(secret, value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &cookieClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*cookieClaims)
	if !ok || !token.Valid || claims.Bearer == "" {
		return "", ErrNoSession
	}
	return claims.Bearer, nil
}
