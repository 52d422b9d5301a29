package lib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const teleportPayload = `{
	"_embedded": {
		"city:search-results": [
			{"matching_full_name": "Pune, Maharashtra, India"},
			{"matching_full_name": "Punaauia, French Polynesia"}
		]
	}
}`

func TestSuggestParsesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pun", r.URL.Query().Get("search"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(teleportPayload))
	}))
	defer upstream.Close()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("citysuggest:pun").RedisNil()
	mock.ExpectSetEx("citysuggest:pun", "Pune, Maharashtra, India\nPunaauia, French Polynesia", 24*time.Hour).SetVal("OK")

	s := NewCitySuggester(rdb)
	s.BaseURL = upstream.URL

	suggestions := s.Suggest(context.Background(), "Pun")
	assert.Equal(t, []string{"Pune, Maharashtra, India", "Punaauia, French Polynesia"}, suggestions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuggestCacheHitSkipsUpstream(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("citysuggest:pune").SetVal("Pune, Maharashtra, India")

	s := NewCitySuggester(rdb)
	s.BaseURL = "http://127.0.0.1:0" // unreachable; cache must answer

	suggestions := s.Suggest(context.Background(), "Pune")
	assert.Equal(t, []string{"Pune, Maharashtra, India"}, suggestions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuggestFallsBackToEmpty(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("citysuggest:pun").RedisNil()

	s := NewCitySuggester(rdb)
	s.BaseURL = upstream.URL

	suggestions := s.Suggest(context.Background(), "pun")
	assert.Empty(t, suggestions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuggestEmptyQuery(t *testing.T) {
	s := NewCitySuggester(nil)
	assert.Empty(t, s.Suggest(context.Background(), "   "))
}
