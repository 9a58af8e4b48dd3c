package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NetworkController wraps HTTP calls to capability services. Timeout bounds
// every request so no pipeline stage can hang the caller.
type NetworkController struct {
	BaseUrl string
	Timeout time.Duration

	client *http.Client
}

func (n *NetworkController) httpClient() *http.Client {
	if n.client == nil {
		timeout := n.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		n.client = &http.Client{Timeout: timeout}
	}
	return n.client
}

func (n *NetworkController) Post(ctx context.Context, path string, headers *map[string]string, body any) (*[]byte, *int, error) {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		payload = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s%s", n.BaseUrl, path), payload)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return n.do(req, headers)
}

func (n *NetworkController) Get(ctx context.Context, path string, headers *map[string]string) (*[]byte, *int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", n.BaseUrl, path), nil)
	if err != nil {
		return nil, nil, err
	}
	return n.do(req, headers)
}

func (n *NetworkController) do(req *http.Request, headers *map[string]string) (*[]byte, *int, error) {
	if headers != nil {
		for key, value := range *headers {
			req.Header.Set(key, value)
		}
	}
	res, err := n.httpClient().Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()
	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &res.StatusCode, err
	}
	return &responseBody, &res.StatusCode, nil
}
