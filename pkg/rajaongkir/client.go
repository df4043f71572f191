package rajaongkir

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	searchPath    = "/tariff/api/v1/destination/search"
	calculatePath = "/tariff/api/v1/calculate"

	maxResponseSizeBytes = 2 << 20
)

// Config holds connection settings for the rate service.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" split_words:"true" required:"true"`
	APIKey  string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"15s"`
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// Client is a stateless gateway to the RajaOngkir tariff API. Transport and
// HTTP failures are never surfaced as Go errors; they are normalized into an
// error Meta so callers have a single failure signal to check.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("rajaongkir base url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid rajaongkir base url: %w", err)
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("rajaongkir api key is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c, nil
}

func MustNew(cfg Config, opts ...ClientOption) *Client {
	client, err := NewClient(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// SearchDestination looks up locations matching the keyword. The returned
// payload carries an error Meta instead of a Go error on any failure.
func (c *Client) SearchDestination(ctx context.Context, keyword string) SearchResponse {
	params := url.Values{}
	params.Set("keyword", keyword)

	var out SearchResponse
	if err := c.get(ctx, searchPath, params, &out); err != nil {
		log.Warn().Err(err).Str("keyword", keyword).Msg("destination search failed")
		return SearchResponse{
			Meta: errorMeta(fmt.Sprintf("Error searching destination: %s", err)),
		}
	}
	return out
}

// CalculateShippingCost quotes shipping between two location IDs. The returned
// payload carries an error Meta instead of a Go error on any failure.
func (c *Client) CalculateShippingCost(ctx context.Context, req CalculateRequest) CalculateResponse {
	params := url.Values{}
	params.Set("shipper_destination_id", strconv.Itoa(req.ShipperDestinationID))
	params.Set("receiver_destination_id", strconv.Itoa(req.ReceiverDestinationID))
	params.Set("weight", strconv.FormatFloat(req.WeightGrams, 'f', -1, 64))
	params.Set("item_value", strconv.FormatFloat(req.ItemValue, 'f', -1, 64))
	params.Set("cod", strconv.FormatBool(req.COD))
	if req.OriginPinPoint != "" {
		params.Set("origin_pin_point", req.OriginPinPoint)
	}
	if req.DestinationPinPoint != "" {
		params.Set("destination_pin_point", req.DestinationPinPoint)
	}

	var out CalculateResponse
	if err := c.get(ctx, calculatePath, params, &out); err != nil {
		log.Warn().Err(err).
			Int("shipper", req.ShipperDestinationID).
			Int("receiver", req.ReceiverDestinationID).
			Msg("shipping cost calculation failed")
		return CalculateResponse{
			Meta: errorMeta(fmt.Sprintf("Error calculating shipping cost: %s", err)),
		}
	}
	return out
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorMeta(message string) Meta {
	return Meta{
		Message: message,
		Code:    http.StatusInternalServerError,
		Status:  "error",
	}
}
