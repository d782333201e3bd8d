package translink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const DefaultEndpoint = "https://opia.api.translink.com.au/v2/"

const defaultTimeout = 15 * time.Second
const maxAttempts = 3

// Cache lets the client memoise geocode and stop lookups between journeys.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string)
}

// Config carries everything the client needs to talk to the OPIA service.
// Credentials are explicit here rather than read from the process
// environment so they can be validated once at startup.
type Config struct {
	Endpoint string
	Username string
	Password string
	APIKey   string

	// Timeout applies to each upstream call individually. Defaults to 15s.
	Timeout time.Duration

	HTTPClient *http.Client
	StopCache  Cache
}

type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient validates the config and returns a journey planning client.
func NewClient(config Config) (*Client, error) {
	if config.Username == "" || config.Password == "" {
		return nil, errors.New("translink: username and password are required")
	}
	if config.APIKey == "" {
		return nil, errors.New("translink: api key is required")
	}

	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}, nil
}

// getJSON performs an authenticated GET against the OPIA service and decodes
// the body into target. Transport failures and 5xx responses are retried with
// exponential backoff; 4xx responses and undecodable bodies are not.
func (c *Client) getJSON(ctx context.Context, stage string, requestURL string, target any) error {
	var lastStatus int

	operation := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, "GET", requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.SetBasicAuth(c.config.Username, c.config.Password)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		lastStatus = resp.StatusCode

		if resp.StatusCode >= 500 {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}

		lastStatus = 0

		jsonBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if err := json.Unmarshal(jsonBytes, target); err != nil {
			return backoff.Permanent(fmt.Errorf("%w: %s", ErrMalformedResponse, err))
		}

		return nil
	}

	retryBackoff := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxAttempts-1)

	err := backoff.Retry(operation, backoff.WithContext(retryBackoff, ctx))
	if err != nil {
		if errors.Is(err, ErrMalformedResponse) {
			return err
		}

		log.Debug().Err(err).Str("stage", stage).Msg("Translink request failed")

		return &UpstreamError{
			Stage:      stage,
			StatusCode: lastStatus,
			Err:        err,
		}
	}

	return nil
}
