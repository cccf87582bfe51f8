// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	gr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer gr.Close()
	data, err := io.ReadAll(gr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name              string
		acceptEncoding    string
		contentEncoding   string
		requestBody       []byte
		compressRequest   bool
		expectedStatus    int
		expectedBody      string
		expectGzippedBody bool
	}{
		{
			name:              "compress response when client accepts gzip",
			acceptEncoding:    "gzip",
			expectedStatus:    http.StatusOK,
			expectedBody:      "<h1>Posts</h1>",
			expectGzippedBody: true,
		},
		{
			name:           "no compression when client doesn't accept gzip",
			expectedStatus: http.StatusOK,
			expectedBody:   "<h1>Posts</h1>",
		},
		{
			name:              "accept-encoding with quality values",
			acceptEncoding:    "gzip;q=1.0, identity;q=0.5",
			expectedStatus:    http.StatusOK,
			expectedBody:      "<h1>Posts</h1>",
			expectGzippedBody: true,
		},
		{
			name:            "decompress gzipped request body",
			contentEncoding: "gzip",
			requestBody:     []byte("username=ann"),
			compressRequest: true,
			expectedStatus:  http.StatusOK,
			expectedBody:    "username=ann",
		},
		{
			name:              "decompress request and compress response",
			acceptEncoding:    "gzip",
			contentEncoding:   "gzip",
			requestBody:       []byte("body=hello"),
			compressRequest:   true,
			expectedStatus:    http.StatusOK,
			expectedBody:      "body=hello",
			expectGzippedBody: true,
		},
		{
			name:            "invalid gzip request body",
			contentEncoding: "gzip",
			requestBody:     []byte("not gzipped data"),
			expectedStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.requestBody != nil {
					body, err := io.ReadAll(r.Body)
					require.NoError(t, err)
					assert.Empty(t, r.Header.Get("Content-Encoding"))
					w.Write(body)
					return
				}
				w.Write([]byte(tt.expectedBody))
			})

			var body io.Reader
			if tt.requestBody != nil {
				if tt.compressRequest {
					body = gzipBytes(t, tt.requestBody)
				} else {
					body = bytes.NewReader(tt.requestBody)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/test", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			if tt.expectGzippedBody {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
				assert.Equal(t, tt.expectedBody, gunzip(t, rr.Body))
				return
			}

			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat("This is repetitive data. ", 1000)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10)
}

func TestGZip_PoolReuse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("Response"))
	})
	middleware := withGZip(next)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "request %d failed", i)
		assert.Equal(t, "Response", gunzip(t, rr.Body), "request %d: wrong response", i)
	}
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Concurrent response"))
	})
	middleware := withGZip(next)

	const n = 50
	results := make(chan string, n)
	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			gr, err := gzip.NewReader(rr.Body)
			if err != nil {
				results <- ""
				return
			}
			data, _ := io.ReadAll(gr)
			results <- string(data)
		}()
	}

	for i := 0; i < n; i++ {
		assert.Equal(t, "Concurrent response", <-results)
	}
}

func TestGZip_NoBodyStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "not modified", status: http.StatusNotModified},
		{name: "redirect after post", status: http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest(http.MethodPost, "/test", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			if tt.status == http.StatusFound {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Empty(t, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Zero(t, rr.Body.Len())
		})
	}
}

func TestGZip_NothingWritten(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closeCalled := false
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { closeCalled = true },
	}

	assert.NoError(t, wrapped.Close())
	assert.True(t, closeCalled, "OnClose should be called")

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("test")}).Close())
}
