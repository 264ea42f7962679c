package binder_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cykrypt/registration/pkg/binder"
)

type payload struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

func newRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		var p payload
		err := binder.JSON()(newRequest(`{"name":"fsociety","members":["a","b"]}`, "application/json"), &p)
		require.NoError(t, err)
		assert.Equal(t, "fsociety", p.Name)
		assert.Equal(t, []string{"a", "b"}, p.Members)
	})

	t.Run("charset parameter and missing content type", func(t *testing.T) {
		t.Parallel()

		var p payload
		require.NoError(t, binder.JSON()(newRequest(`{"name":"x"}`, "application/json; charset=utf-8"), &p))
		require.NoError(t, binder.JSON()(newRequest(`{"name":"y"}`, ""), &p))
		assert.Equal(t, "y", p.Name)
	})

	t.Run("strings are not altered", func(t *testing.T) {
		t.Parallel()

		var p payload
		require.NoError(t, binder.JSON()(newRequest(`{"name":"<b>x</b>"}`, "application/json"), &p))
		assert.Equal(t, "<b>x</b>", p.Name)
	})

	t.Run("wrong media type", func(t *testing.T) {
		t.Parallel()

		var p payload
		err := binder.JSON()(newRequest(`name=x`, "application/x-www-form-urlencoded"), &p)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("malformed and empty bodies", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{"", "{", `{"name":1}`, `{"name":"a"} {"name":"b"}`} {
			var p payload
			err := binder.JSON()(newRequest(body, "application/json"), &p)
			assert.ErrorIs(t, err, binder.ErrFailedToParseJSON, "body %q", body)
		}
	})

	t.Run("unknown fields", func(t *testing.T) {
		t.Parallel()

		var p payload
		body := `{"name":"x","extra":true}`
		require.NoError(t, binder.JSON()(newRequest(body, "application/json"), &p))
		assert.ErrorIs(t, binder.JSON(binder.WithStrict())(newRequest(body, "application/json"), &p), binder.ErrFailedToParseJSON)
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		body := `{"name":"` + strings.Repeat("a", 100) + `"}`
		var p payload
		err := binder.JSON(binder.WithMaxSize(64))(newRequest(body, "application/json"), &p)
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
		require.NoError(t, binder.JSON(binder.WithMaxSize(int64(len(body))))(newRequest(body, "application/json"), &p))
	})
}
