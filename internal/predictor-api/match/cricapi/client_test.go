package cricapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SeriesMatches(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/series_info", r.URL.Path)
			assert.Equal(t, "key-1", r.URL.Query().Get("apikey"))
			assert.Equal(t, "series-1", r.URL.Query().Get("id"))
			_, _ = w.Write([]byte(`{"status":"success","data":{"matchList":[
				{"id":"m1","name":"India vs Pakistan","teams":["India","Pakistan"],
				 "teamInfo":[{"name":"India","shortname":"IND"}],
				 "venue":"Colombo","date":"2026-02-15","dateTimeGMT":"2026-02-15T13:30:00",
				 "matchStarted":false,"matchEnded":false,"status":"Match not started"}]}}`))
		}))
		defer srv.Close()

		c := New(srv.URL+"/", "key-1", "series-1")
		got, err := c.SeriesMatches(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "m1", got[0].ID)
		assert.Equal(t, []string{"India", "Pakistan"}, got[0].Teams)
		assert.Equal(t, "IND", got[0].TeamInfo[0].ShortName)
	})

	t.Run("failure status body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"failure","reason":"hits today exceeded"}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL, "k", "s").SeriesMatches(context.Background())
		assert.ErrorIs(t, err, ErrUnrecognized)
	})

	t.Run("missing match list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success","data":{}}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL, "k", "s").SeriesMatches(context.Background())
		assert.ErrorIs(t, err, ErrUnrecognized)
	})

	t.Run("http error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := New(srv.URL, "k", "s").SeriesMatches(context.Background())
		assert.ErrorIs(t, err, ErrStatus)
	})

	t.Run("not json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>oops</html>`))
		}))
		defer srv.Close()

		_, err := New(srv.URL, "k", "s").SeriesMatches(context.Background())
		assert.ErrorIs(t, err, ErrUnrecognized)
	})
}
