package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIDFromParams(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "Basic ID",
			id:   "east",
			want: "east",
		},
		{
			name: "ID with JSON extension",
			id:   "east.json",
			want: "east",
		},
		{
			name: "ID with multiple dots",
			id:   "east.data.json",
			want: "east.data",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()

			var result string
			router.Handler(http.MethodGet, "/api/test/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				result = ExtractIDFromParams(r, "id")
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/test/"+tc.id, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.want, result)
		})
	}
}

func TestExtractIDFromParamsWithoutRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/test/east", nil)
	assert.Equal(t, "", ExtractIDFromParams(req, "id"))
}

func TestParseTrustedProxies(t *testing.T) {
	proxies, err := ParseTrustedProxies([]string{"10.0.0.1", " 192.168.0.0/16 ", "", "2001:db8::/32"})
	require.NoError(t, err)
	assert.Len(t, proxies, 3)

	assert.True(t, proxies.Trusts("10.0.0.1"))
	assert.False(t, proxies.Trusts("10.0.0.2"))
	assert.True(t, proxies.Trusts("192.168.4.20"))
	assert.True(t, proxies.Trusts("2001:db8::1"))
	assert.False(t, proxies.Trusts("not-an-ip"))

	_, err = ParseTrustedProxies([]string{"10.0.0.300"})
	assert.Error(t, err)
	_, err = ParseTrustedProxies([]string{"10.0.0.0/33"})
	assert.Error(t, err)
}

func TestClientIP(t *testing.T) {
	trusted, err := ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    TrustedProxies
		want       string
	}{
		{name: "remote address", remoteAddr: "203.0.113.7:5123", want: "203.0.113.7"},
		{name: "ipv6 remote address", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "address without port", remoteAddr: "unix", want: "unix"},
		{name: "forwarded header ignored without trusted proxies", remoteAddr: "203.0.113.7:5123", forwarded: "198.51.100.2", want: "203.0.113.7"},
		{name: "forwarded header ignored from untrusted peer", remoteAddr: "203.0.113.7:5123", forwarded: "198.51.100.2", trusted: trusted, want: "203.0.113.7"},
		{name: "trusted proxy forwards client", remoteAddr: "10.0.0.1:80", forwarded: "198.51.100.2", trusted: trusted, want: "198.51.100.2"},
		{name: "spoofed leading hops are skipped", remoteAddr: "10.0.0.1:80", forwarded: "1.2.3.4, 198.51.100.2, 10.0.0.7", trusted: trusted, want: "198.51.100.2"},
		{name: "blank forwarded header", remoteAddr: "10.0.0.1:80", forwarded: " ,", trusted: trusted, want: "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, ClientIP(req, tt.trusted))
		})
	}
}
