package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// WebAppUser – пользователь из подписанного initData.
type WebAppUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Language  string `json:"language_code"`
	PhotoURL  string `json:"photo_url"`
}

// Максимальный возраст auth_date в initData.
const initDataMaxAge = 86400 * time.Second

// ValidateInitData проверяет подпись initData мини-аппа (схема WebAppData) и
// возвращает пользователя из поля user.
func ValidateInitData(initData string, botToken string) (*WebAppUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, err
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, fmt.Errorf("hash missing")
	}
	values.Del("hash")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var dataCheck []string
	for _, k := range keys {
		for _, v := range values[k] {
			dataCheck = append(dataCheck, fmt.Sprintf("%s=%s", k, v))
		}
	}
	dataCheckString := strings.Join(dataCheck, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	secretKey := secret.Sum(nil)

	h := hmac.New(sha256.New, secretKey)
	h.Write([]byte(dataCheckString))
	expectedHash := hex.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(expectedHash), []byte(hash)) {
		return nil, fmt.Errorf("invalid hash")
	}

	authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, err
	}
	if time.Since(time.Unix(authDate, 0)) > initDataMaxAge {
		return nil, fmt.Errorf("auth date too old")
	}

	var user WebAppUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("user id missing")
	}

	return &user, nil
}

// LoginWidgetPayload – данные колбэка Telegram Login Widget
// (десктопный вход вне Telegram).
type LoginWidgetPayload struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
	AuthDate  int64  `json:"auth_date"`
	Hash      string `json:"hash"`
}

// VerifyLoginWidget проверяет подпись Login Widget. В отличие от initData,
// ключ здесь – просто SHA256 от токена бота.
func VerifyLoginWidget(p LoginWidgetPayload, botToken string) error {
	fields := map[string]string{
		"id":        strconv.FormatInt(p.ID, 10),
		"auth_date": strconv.FormatInt(p.AuthDate, 10),
	}
	if p.FirstName != "" {
		fields["first_name"] = p.FirstName
	}
	if p.LastName != "" {
		fields["last_name"] = p.LastName
	}
	if p.Username != "" {
		fields["username"] = p.Username
	}
	if p.PhotoURL != "" {
		fields["photo_url"] = p.PhotoURL
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var dataCheck []string
	for _, k := range keys {
		dataCheck = append(dataCheck, k+"="+fields[k])
	}

	secretKey := sha256.Sum256([]byte(botToken))
	h := hmac.New(sha256.New, secretKey[:])
	h.Write([]byte(strings.Join(dataCheck, "\n")))
	expected := hex.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(p.Hash)) {
		return fmt.Errorf("invalid hash")
	}
	if time.Since(time.Unix(p.AuthDate, 0)) > initDataMaxAge {
		return fmt.Errorf("auth date too old")
	}
	return nil
}
