package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/monitoring"
)

// Клиент основного API PVNDORA. Все деньги, стоки и баны живут на той стороне;
// здесь только транспорт: аутентификация, JSON и нормализация ошибок.
// Без ретраев и без дедупликации – каждый вызов одноразовый.

const (
	initDataHeader = "X-Init-Data"

	// Технический префикс апстрима в теле 429
	rateLimitPrefix = "telegram_rate_limit:"
	// Сообщение, когда после срезания префикса ничего не осталось
	rateLimitMessage = "Слишком много запросов, подождите минуту"
)

type Client struct {
	baseURL  string
	http     *http.Client
	log      *zap.Logger
	initData string
	bearer   string
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// WithInitData возвращает копию клиента, подписывающую запросы initData.
// initData имеет приоритет над bearer-сессией.
func (c *Client) WithInitData(initData string) *Client {
	out := *c
	out.initData = initData
	return &out
}

// WithBearer возвращает копию клиента с bearer-сессией (десктопный вход).
func (c *Client) WithBearer(token string) *Client {
	out := *c
	out.bearer = token
	return &out
}

// apiError – тело ошибки бэкенда; detail предпочитается error.
type apiError struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Не больше одной схемы аутентификации на запрос
	if c.initData != "" {
		req.Header.Set(initDataHeader, c.initData)
	} else if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		monitoring.APIRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return err
	}
	defer resp.Body.Close()

	monitoring.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	monitoring.APIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(raw, resp.StatusCode)
		c.log.Debug("api error",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return fmt.Errorf("%s", msg)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorMessage достаёт человекочитаемое сообщение из тела ошибки:
// detail, затем error, иначе "HTTP <status>". Для 429 срезается технический
// префикс апстрима; пустой остаток заменяется общим сообщением.
func errorMessage(raw []byte, status int) string {
	var body apiError
	_ = json.Unmarshal(raw, &body)

	msg := body.Detail
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}

	if status == http.StatusTooManyRequests {
		msg = strings.TrimSpace(strings.TrimPrefix(msg, rateLimitPrefix))
		if msg == "" || msg == fmt.Sprintf("HTTP %d", status) {
			msg = rateLimitMessage
		}
	}
	return msg
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) put(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out)
}

func (c *Client) delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}
