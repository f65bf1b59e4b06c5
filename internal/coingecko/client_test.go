package coingecko_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	coingecko "coinquery/internal/coingecko"
)

func jsonResponse(t *testing.T, status int, body any) *http.Response {
	t.Helper()
	buffer := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buffer).Encode(body))
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(buffer),
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	// Assert: a valid key should return a client.
	client, err := coingecko.New("test")
	require.NoErrorf(t, err, "unexpected error: %v", err)
	require.NotNilf(t, client, "unexpected nil client")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock http client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(t, http.StatusOK, map[string]any{}), nil
		}).
		Times(1)

	// Arrange: create a new client with a custom HTTP client.
	client, err := coingecko.New("test", coingecko.WithHTTPClient(httpClient))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: call SimplePrice with the custom HTTP client.
	client.SimplePrice(context.Background(), []string{"ethereum"}, []string{"usd"}, false)
}

func TestWithBaseURL(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock http client
	httpClient := NewMockHTTPClient(ctrl)

	// Arrange: define a base url
	baseURL := "http://localhost:8080"

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Truef(t, strings.HasPrefix(req.URL.String(), baseURL), "expected url to start with base url, received: %s", req.URL.String())
			return jsonResponse(t, http.StatusOK, map[string]any{}), nil
		}).
		Times(1)

	// Arrange: create a new client.
	client, err := coingecko.New("test", coingecko.WithHTTPClient(httpClient), coingecko.WithBaseURL(baseURL))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: call SimplePrice with the overridden base URL.
	client.SimplePrice(context.Background(), []string{"ethereum"}, []string{"usd"}, false)
}

func TestWithHeader(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock http client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "bar", req.Header.Get("foo"))
			return jsonResponse(t, http.StatusOK, map[string]any{}), nil
		}).
		Times(1)

	// Arrange: create a new client with a custom header.
	client, err := coingecko.New("test", coingecko.WithHTTPClient(httpClient), coingecko.WithHeader(http.Header{"foo": []string{"bar"}}))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: call SimplePrice with the custom header.
	client.SimplePrice(context.Background(), []string{"ethereum"}, []string{"usd"}, false)
}

func TestAPIKeyQueryParam(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock http client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "test-key", req.URL.Query().Get("x_cg_demo_api_key"))
			return jsonResponse(t, http.StatusOK, map[string]any{}), nil
		}).
		Times(1)

	// Arrange: create a new client with a key.
	client, err := coingecko.New("test-key", coingecko.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act: any request should carry the key.
	client.SimplePrice(context.Background(), []string{"ethereum"}, []string{"usd"}, false)
}
