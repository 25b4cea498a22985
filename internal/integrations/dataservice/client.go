package dataservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для получения набора данных с другого экземпляра сервиса
type Client struct {
	baseURL    string
	httpClient *resty.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
// Пустой token означает запрос без авторизации
func NewClient(baseURL, token string, timeout time.Duration, retries int, log Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		SetHeader("Accept", "application/json")

	if token != "" {
		client.SetAuthToken(token)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
		log:        log,
	}
}

// FetchDocument получает документ {rooms, classInfo, schedules}
func (c *Client) FetchDocument(ctx context.Context) (*records.Document, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Cache-Control", "no-store").
		Get(DataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	// Обработка статус-кодов
	switch resp.StatusCode() {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode())
	default:
		var errResp ErrorResponse
		if json.Unmarshal(resp.Body(), &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode(), errResp.Error)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode(), resp.String())
	}

	var doc records.Document
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Fetched dataset from %s: rooms=%d, classInfo=%d, schedules=%d",
		c.baseURL, len(doc.Rooms), len(doc.ClassInfo), len(doc.Schedules))

	return &doc, nil
}
