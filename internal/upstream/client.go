package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homecare_portal/internal/config"
	"homecare_portal/internal/util"
	"homecare_portal/pkg/logger"
	"homecare_portal/pkg/monitoring"

	"go.uber.org/zap"
)

// Client 上游诊疗平台API的HTTP客户端。持久化、业务规则与鉴权全部由上游执行，
// 门户只透传调用方的Bearer令牌
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg *config.UpstreamConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// listEnvelope 上游列表接口的统一包装
type listEnvelope struct {
	List  json.RawMessage `json:"list"`
	Total int64           `json:"total"`
}

type upstreamError struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, bearer, method, path string, query url.Values, body, out interface{}, operation string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		monitoring.UpstreamRequestDuration.WithLabelValues(operation, "transport_error").Observe(time.Since(start).Seconds())
		logger.Log.Error("Upstream request failed",
			zap.String("operation", operation),
			zap.Error(err))
		return fmt.Errorf("%w: %v", util.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	monitoring.UpstreamRequestDuration.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode >= 400 {
		var ue upstreamError
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(data, &ue)

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return util.ErrUpstreamNotFound
		case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
			return util.ErrPermissionDenied
		case resp.StatusCode < 500:
			if ue.Message != "" {
				return fmt.Errorf("%w: %s", util.ErrUpstreamRejected, ue.Message)
			}
			return util.ErrUpstreamRejected
		default:
			return fmt.Errorf("%w: status %d", util.ErrUpstreamUnavailable, resp.StatusCode)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: bad response body: %v", util.ErrUpstreamUnavailable, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, bearer, path string, query url.Values, out interface{}, op string) error {
	return c.do(ctx, bearer, http.MethodGet, path, query, nil, out, op)
}

func (c *Client) post(ctx context.Context, bearer, path string, body, out interface{}, op string) error {
	return c.do(ctx, bearer, http.MethodPost, path, nil, body, out, op)
}

func (c *Client) put(ctx context.Context, bearer, path string, body, out interface{}, op string) error {
	return c.do(ctx, bearer, http.MethodPut, path, nil, body, out, op)
}

func (c *Client) delete(ctx context.Context, bearer, path string, op string) error {
	return c.do(ctx, bearer, http.MethodDelete, path, nil, nil, nil, op)
}

// getList 解开列表包装并反序列化到切片
func (c *Client) getList(ctx context.Context, bearer, path string, query url.Values, list interface{}, op string) (int64, error) {
	var env listEnvelope
	if err := c.get(ctx, bearer, path, query, &env, op); err != nil {
		return 0, err
	}
	if len(env.List) > 0 {
		if err := json.Unmarshal(env.List, list); err != nil {
			return 0, fmt.Errorf("%w: bad list payload: %v", util.ErrUpstreamUnavailable, err)
		}
	}
	return env.Total, nil
}

func pageQuery(q url.Values, page, limit int) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
