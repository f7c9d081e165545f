package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RequestOptions struct {
	Method         string
	URL            string
	Body           any
	AuthToken      string
	ExpectedStatus int
}

type TestResponse struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// MakeRequest sends a request through the router and asserts the status.
// A string body is sent verbatim, anything else is JSON encoded.
func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions) *TestResponse {
	t.Helper()

	var requestBody *bytes.Buffer
	switch body := options.Body.(type) {
	case nil:
		requestBody = bytes.NewBuffer(nil)
	case string:
		requestBody = bytes.NewBufferString(body)
	default:
		bodyJSON, err := json.Marshal(body)
		require.NoError(t, err)
		requestBody = bytes.NewBuffer(bodyJSON)
	}

	req, err := http.NewRequest(options.Method, options.URL, requestBody)
	require.NoError(t, err)

	if options.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if options.AuthToken != "" {
		req.Header.Set("Authorization", options.AuthToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(
		t,
		options.ExpectedStatus,
		w.Code,
		"unexpected status for %s %s, body: %s",
		options.Method,
		options.URL,
		w.Body.String(),
	)

	return &TestResponse{
		StatusCode: w.Code,
		Body:       w.Body.Bytes(),
		Header:     w.Header(),
	}
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodGet,
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
	target any,
) {
	t.Helper()

	resp := MakeGetRequest(t, router, url, authToken, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, target), "body: %s", string(resp.Body))
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodPost,
		URL:            url,
		Body:           body,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	target any,
) {
	t.Helper()

	resp := MakePostRequest(t, router, url, authToken, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, target), "body: %s", string(resp.Body))
}

func MakePatchRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	target any,
) {
	t.Helper()

	resp := MakeRequest(t, router, RequestOptions{
		Method:         http.MethodPatch,
		URL:            url,
		Body:           body,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
	require.NoError(t, json.Unmarshal(resp.Body, target), "body: %s", string(resp.Body))
}

func MakeDeleteRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodDelete,
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

// ErrorMessage decodes the {code, message} error body.
func ErrorMessage(t *testing.T, resp *TestResponse) string {
	t.Helper()

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &body), "body: %s", string(resp.Body))
	assert.Equal(t, resp.StatusCode, body.Code)

	return body.Message
}
