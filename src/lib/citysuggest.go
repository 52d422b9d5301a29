package lib

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
)

const suggestCacheTTL = 24 * time.Hour

// CitySuggester resolves partial city names to full display names. Failures
// degrade to an empty suggestion list; the search page works without it.
type CitySuggester interface {
	Suggest(ctx context.Context, query string) []string
}

type TeleportSuggester struct {
	BaseURL string
	http    *http.Client
	rdb     *redis.Client
}

func NewCitySuggester(rdb *redis.Client) *TeleportSuggester {
	return &TeleportSuggester{
		BaseURL: "https://api.teleport.org/api/cities/",
		http:    &http.Client{Timeout: 3 * time.Second},
		rdb:     rdb,
	}
}

func (s *TeleportSuggester) Suggest(ctx context.Context, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}
	}

	cacheKey := fmt.Sprintf("citysuggest:%s", q)
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			return splitCached(val)
		}
	}

	u := fmt.Sprintf("%s?search=%s&limit=8", s.BaseURL, url.QueryEscape(q))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return []string{}
	}
	res, err := s.http.Do(req)
	if err != nil {
		log.Printf("[citysuggest] upstream error: %s\n", err.Error())
		return []string{}
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Printf("[citysuggest] upstream status: %d\n", res.StatusCode)
		return []string{}
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return []string{}
	}

	names := gjson.GetBytes(body, `_embedded.city:search-results.#.matching_full_name`)
	suggestions := []string{}
	for _, name := range names.Array() {
		if name.String() != "" {
			suggestions = append(suggestions, name.String())
		}
	}

	if s.rdb != nil && len(suggestions) > 0 {
		if err := s.rdb.SetEx(ctx, cacheKey, strings.Join(suggestions, "\n"), suggestCacheTTL).Err(); err != nil {
			log.Printf("[citysuggest] cache write failed: %s\n", err.Error())
		}
	}
	return suggestions
}

func splitCached(val string) []string {
	if val == "" {
		return []string{}
	}
	return strings.Split(val, "\n")
}
