// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Version string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      uint64          `json:"id"`
}

func newTestServer(t *testing.T, handle func(req testRequest) (int, string)) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req testRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		status, body := handle(req)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestSendRequest(t *testing.T) {
	require := require.New(t)
	server := newTestServer(t, func(req testRequest) (int, string) {
		require.Equal("2.0", req.Version)
		require.Equal("getBalance", req.Method)
		require.JSONEq(`["abc",{"commitment":"confirmed"}]`, string(req.Params))
		return http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":{"value":42}}`
	})
	defer server.Close()

	r := New(server.URL)
	var reply struct {
		Value uint64 `json:"value"`
	}
	params := []interface{}{"abc", map[string]string{"commitment": "confirmed"}}
	require.NoError(r.SendRequest(context.Background(), "getBalance", params, &reply))
	require.Equal(uint64(42), reply.Value)
}

func TestSendRequestErrors(t *testing.T) {
	require := require.New(t)
	server := newTestServer(t, func(req testRequest) (int, string) {
		switch req.Method {
		case "unavailable":
			return http.StatusServiceUnavailable, ""
		default:
			return http.StatusOK, `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"invalid params"}}`
		}
	})
	defer server.Close()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics("test", reg)
	require.NoError(err)
	r := New(server.URL, WithMetrics(m))

	err = r.SendRequest(context.Background(), "unavailable", nil, new(struct{}))
	require.ErrorIs(err, ErrUnexpectedStatus)

	err = r.SendRequest(context.Background(), "bad", []interface{}{}, new(struct{}))
	var jsonErr *json2.Error
	require.True(errors.As(err, &jsonErr))
	require.Equal(json2.ErrorCode(-32602), jsonErr.Code)
	require.Equal("invalid params", jsonErr.Message)

	require.Equal(float64(1), testutil.ToFloat64(m.requests.WithLabelValues("bad")))
	require.Equal(float64(1), testutil.ToFloat64(m.failures.WithLabelValues("unavailable")))
}

func TestSendRequestUnreachable(t *testing.T) {
	require := require.New(t)
	server := httptest.NewServer(http.NotFoundHandler())
	uri := server.URL
	server.Close()

	r := New(uri, WithHTTPClient(&http.Client{}))
	err := r.SendRequest(context.Background(), "getVersion", nil, new(struct{}))
	require.Error(err)
}

func TestDuplicateMetrics(t *testing.T) {
	require := require.New(t)
	reg := prometheus.NewRegistry()
	_, err := NewMetrics("test", reg)
	require.NoError(err)
	_, err = NewMetrics("test", reg)
	require.Error(err)
}
