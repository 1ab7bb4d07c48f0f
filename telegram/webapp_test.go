package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "110201543:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw"

func signInitData(t *testing.T, values url.Values) string {
	t.Helper()

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var dataCheck []string
	for _, k := range keys {
		dataCheck = append(dataCheck, fmt.Sprintf("%s=%s", k, values.Get(k)))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(testBotToken))
	h := hmac.New(sha256.New, secret.Sum(nil))
	h.Write([]byte(strings.Join(dataCheck, "\n")))

	values.Set("hash", hex.EncodeToString(h.Sum(nil)))
	return values.Encode()
}

func TestValidateInitData(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		values := url.Values{}
		values.Set("user", `{"id":7777,"first_name":"Ann","username":"ann_w"}`)
		values.Set("auth_date", fmt.Sprintf("%d", time.Now().Unix()))
		values.Set("query_id", "AAF03")

		user, err := ValidateInitData(signInitData(t, values), testBotToken)
		require.NoError(t, err)
		assert.Equal(t, int64(7777), user.ID)
		assert.Equal(t, "ann_w", user.Username)
	})

	t.Run("TamperedUser", func(t *testing.T) {
		values := url.Values{}
		values.Set("user", `{"id":7777}`)
		values.Set("auth_date", fmt.Sprintf("%d", time.Now().Unix()))
		initData := signInitData(t, values)

		tampered := strings.Replace(initData, "7777", "9999", 1)
		_, err := ValidateInitData(tampered, testBotToken)
		assert.Error(t, err)
	})

	t.Run("WrongToken", func(t *testing.T) {
		values := url.Values{}
		values.Set("user", `{"id":7777}`)
		values.Set("auth_date", fmt.Sprintf("%d", time.Now().Unix()))

		_, err := ValidateInitData(signInitData(t, values), "another-token")
		assert.Error(t, err)
	})

	t.Run("StaleAuthDate", func(t *testing.T) {
		values := url.Values{}
		values.Set("user", `{"id":7777}`)
		values.Set("auth_date", fmt.Sprintf("%d", time.Now().Add(-48*time.Hour).Unix()))

		_, err := ValidateInitData(signInitData(t, values), testBotToken)
		assert.Error(t, err)
	})

	t.Run("NoHash", func(t *testing.T) {
		_, err := ValidateInitData("user=%7B%22id%22%3A1%7D&auth_date=1", testBotToken)
		assert.Error(t, err)
	})
}
