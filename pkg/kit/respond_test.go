package kit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	cases := []struct {
		name    string
		in      string
		want    body
		wantErr bool
	}{
		{name: "ok", in: `{"name":"a"}`, want: body{Name: "a"}},
		{name: "empty", in: ``},
		{name: "unknown fields ignored", in: `{"name":"a","x":1}`, want: body{Name: "a"}},
		{name: "truncated", in: `{"name":`, wantErr: true},
		{name: "trailing data", in: `{"name":"a"}{}`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.in))
			var got body
			err := DecodeJSON(httptest.NewRecorder(), req, &got)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrBadJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWriteText(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteText(rec, http.StatusNotFound, "Item not found.")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Item not found.", rec.Body.String())
}

func TestMetricsAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	cases := []struct {
		token, header string
		want          int
	}{
		{"", "Bearer ", http.StatusForbidden},
		{"t", "", http.StatusForbidden},
		{"t", "Bearer x", http.StatusForbidden},
		{"t", "Bearer t", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		MetricsAuth(tc.token)(ok).ServeHTTP(rec, req)
		assert.Equal(t, tc.want, rec.Code, "%+v", tc)
	}
}
