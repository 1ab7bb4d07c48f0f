package apiclient

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/monitoring"
)

// SSE-поток статусов генераций "Студии". Однонаправленный: сервер шлёт
// события generation.status, клиент переподключается после обрыва с
// фиксированной паузой. Порядок не гарантируется, по каждой генерации
// действует последнее пришедшее сообщение.

const streamReconnectDelay = 3 * time.Second

type GenerationStatus struct {
	GenerationID string  `json:"generation_id"`
	Status       string  `json:"status"`
	Progress     float64 `json:"progress"`
	ResultURL    string  `json:"result_url,omitempty"`
	Error        string  `json:"error,omitempty"`
}

type StudioStream struct {
	client   *Client
	initData string

	mu     sync.Mutex
	latest map[string]GenerationStatus
}

func (c *Client) NewStudioStream(initData string) *StudioStream {
	return &StudioStream{
		client:   c,
		initData: initData,
		latest:   make(map[string]GenerationStatus),
	}
}

// Run держит поток открытым до отмены контекста, пересоздавая соединение
// после каждого обрыва. События уходят в канал и запоминаются в Latest.
func (s *StudioStream) Run(ctx context.Context, events chan<- GenerationStatus) error {
	for {
		if err := s.consume(ctx, events); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.client.log.Debug("studio stream dropped", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(streamReconnectDelay):
		}
	}
}

// Latest – последний известный статус генерации.
func (s *StudioStream) Latest(generationID string) (GenerationStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.latest[generationID]
	return st, ok
}

func (s *StudioStream) consume(ctx context.Context, events chan<- GenerationStatus) error {
	endpoint := s.client.baseURL + "/api/webapp/realtime/stream?stream=studio&init_data=" +
		url.QueryEscape(s.initData)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	// Для стрима таймаут клиента не годится – живём на контексте
	httpClient := &http.Client{Transport: s.client.http.Transport}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var eventName string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if eventName != "generation.status" {
				continue
			}
			var st GenerationStatus
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data:")), &st); err != nil {
				s.client.log.Debug("bad studio event", zap.Error(err))
				continue
			}
			monitoring.StudioEventsTotal.WithLabelValues(st.Status).Inc()

			s.mu.Lock()
			s.latest[st.GenerationID] = st
			s.mu.Unlock()

			select {
			case events <- st:
			case <-ctx.Done():
				return ctx.Err()
			}
		case line == "":
			eventName = ""
		}
	}
	return scanner.Err()
}
