package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"travelbroker/pkg/logger"
)

const (
	flightOffersPath = "/v2/shopping/flight-offers"
	hotelOffersPath  = "/v2/shopping/hotel-offers"
	flightOrdersPath = "/v1/booking/flight-orders"
)

// Client calls the provider's shopping and booking endpoints with a bearer
// token obtained from Credentials.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      *Credentials
	logger     logger.Client
}

func NewClient(httpClient *http.Client, baseURL string, creds *Credentials, log logger.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		creds:      creds,
		logger:     log,
	}
}

// Page is one decoded provider search response: the entries under "data"
// plus the full payload for pass-through.
type Page struct {
	Data []json.RawMessage
	Raw  json.RawMessage
}

func (c *Client) FlightOffers(ctx context.Context, query url.Values) (*Page, error) {
	return c.search(ctx, flightOffersPath, query)
}

func (c *Client) HotelOffers(ctx context.Context, query url.Values) (*Page, error) {
	return c.search(ctx, hotelOffersPath, query)
}

func (c *Client) search(ctx context.Context, path string, query url.Values) (*Page, error) {
	body, err := c.call(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: search payload: %v", ErrMalformedResponse, err)
	}

	return &Page{Data: payload.Data, Raw: body}, nil
}

// CreateFlightOrder posts a flight order and returns the provider's raw
// order payload.
func (c *Client) CreateFlightOrder(ctx context.Context, order any) (json.RawMessage, error) {
	reqBody, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("amadeus: failed to marshal flight order: %w", err)
	}
	return c.call(ctx, http.MethodPost, flightOrdersPath, nil, reqBody)
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, reqBody []byte) (json.RawMessage, error) {
	tok, err := c.creds.Token(ctx)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if reqBody != nil {
		bodyReader = bytes.NewReader(reqBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("amadeus: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	if resp.StatusCode >= 300 {
		c.logger.Warn("provider returned non-success status",
			logger.Field{Key: "path", Value: path},
			logger.Field{Key: "status", Value: resp.StatusCode},
		)
		return nil, &APIError{Status: resp.StatusCode, Body: json.RawMessage(body)}
	}

	return body, nil
}
