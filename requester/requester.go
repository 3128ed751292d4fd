// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/rpc/v2/json2"
)

const defaultTimeout = 30 * time.Second

// EndpointRequester sends JSON-RPC 2.0 requests to a single endpoint.
type EndpointRequester struct {
	cli     *http.Client
	uri     string
	metrics *Metrics
}

type Option func(*EndpointRequester)

// WithHTTPClient overrides the client used to send requests.
func WithHTTPClient(cli *http.Client) Option {
	return func(e *EndpointRequester) {
		e.cli = cli
	}
}

// WithMetrics records per-method request counts and latencies in [m].
func WithMetrics(m *Metrics) Option {
	return func(e *EndpointRequester) {
		e.metrics = m
	}
}

func New(uri string, opts ...Option) *EndpointRequester {
	e := &EndpointRequester{
		cli: &http.Client{Timeout: defaultTimeout},
		uri: uri,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SendRequest calls [method] with [params] and decodes the result into
// [reply]. Errors returned by the server are *json2.Error.
func (e *EndpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
) error {
	start := time.Now()
	err := e.sendRequest(ctx, method, params, reply)
	e.metrics.observe(method, time.Since(start), err)
	return err
}

func (e *EndpointRequester) sendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
) error {
	uri, err := url.Parse(e.uri)
	if err != nil {
		return err
	}
	requestBodyBytes, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed to encode client params: %w", err)
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		uri.String(),
		bytes.NewBuffer(requestBodyBytes),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.cli.Do(req)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}
	defer resp.Body.Close()

	// Return an error for any non successful status code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if err := json2.DecodeClientResponse(resp.Body, reply); err != nil {
		return fmt.Errorf("failed to decode client response: %w", err)
	}
	return nil
}
