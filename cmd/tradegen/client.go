package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

type apiClient struct {
	r *resty.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &apiClient{r: c}
}

func (c *apiClient) users(ctx context.Context) ([]user, error) {
	var env envelope[[]user]
	if err := c.get(ctx, "/users", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *apiClient) instruments(ctx context.Context) ([]instrument, error) {
	var env envelope[[]instrument]
	if err := c.get(ctx, "/instruments", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *apiClient) get(ctx context.Context, path string, out any) error {
	resp, err := c.r.R().SetContext(ctx).SetResult(out).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode())
	}
	return nil
}

// createTrade posts a trade. Rejections by the API are returned as the
// status code and envelope message, not as an error.
func (c *apiClient) createTrade(ctx context.Context, req tradeRequest) (int, envelope[trade], error) {
	var ok, failed envelope[trade]
	resp, err := c.r.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&ok).
		SetError(&failed).
		Post("/trades")
	if err != nil {
		return 0, envelope[trade]{}, fmt.Errorf("POST /trades: %w", err)
	}
	if resp.IsError() {
		return resp.StatusCode(), failed, nil
	}
	return resp.StatusCode(), ok, nil
}
