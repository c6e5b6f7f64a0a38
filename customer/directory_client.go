package customer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hanksha/venue-booking-backend/model"
	"github.com/patrickmn/go-cache"
)

type upsertRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type upsertResponse struct {
	ID string `json:"id"`
}

// Client talks to a remote customer directory that deduplicates customers by email.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *cache.Cache
}

func NewClient(baseURL, apiKey string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
		cache:   cache.New(10*time.Minute, 30*time.Minute),
	}
}

// UpsertByEmail returns the directory id of the customer, creating the record on first sight.
// Ids are cached per normalized email.
func (c *Client) UpsertByEmail(ctx context.Context, customer model.Customer) (string, error) {
	email := model.NormalizeEmail(customer.Email)

	if len(email) == 0 {
		return "", errors.New("email cannot be empty")
	}

	if cachedID, found := c.cache.Get(email); found {
		return cachedID.(string), nil
	}

	customersURL, err := c.getURL("customers")

	if err != nil {
		return "", err
	}

	body, err := json.Marshal(upsertRequest{
		Email: email,
		Name:  strings.TrimSpace(customer.Name),
		Phone: strings.TrimSpace(customer.Phone),
	})

	if err != nil {
		return "", fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, customersURL, bytes.NewReader(body))

	if err != nil {
		return "", fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	res, err := c.client.Do(req)

	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		if readErr != nil {
			return "", fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return "", fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return "", fmt.Errorf("failed to read body: %w", readErr)
	}

	var created upsertResponse

	if err := json.Unmarshal(bodyBytes, &created); err != nil {
		return "", fmt.Errorf("failed reading body: %w", err)
	}

	if len(created.ID) == 0 {
		return "", errors.New("directory returned an empty customer id")
	}

	c.cache.Set(email, created.ID, cache.DefaultExpiration)

	return created.ID, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
