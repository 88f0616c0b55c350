// Package upstream implements the read-only client for the statistics API.
//
// Status policy shared by every call: 2xx decodes, 4xx is a valid "no data"
// result (nil payload, nil error), 5xx and transport failures are errors.
// The cache layer turns those errors into a suppressed nil for the error-TTL
// window; nothing in this package ever reaches the HTTP response path.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arenahub/prerender/internal/core/observability"
	"github.com/arenahub/prerender/internal/game"
)

var errNotFound = errors.New("not found")

type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

func New(base string, hc *http.Client, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}
	return &Client{base: u, http: hc, logger: logger}, nil
}

// CharacterProfile returns nil for an unknown character.
func (c *Client) CharacterProfile(ctx context.Context, region, realm, name string) (*Profile, error) {
	body, err := c.get(ctx, "profile", "",
		"api", strings.ToLower(region), strings.ToLower(realm), strings.ToLower(name))
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	p, err := decodeProfile(body, game.BracketLabel)
	if err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

// ActivityStats fetches the season cutoffs block.
func (c *Client) ActivityStats(ctx context.Context, region string) (*ActivityStats, error) {
	body, err := c.get(ctx, "activity_stats", "", "api", game.Locale(region), "activity", "stats")
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	s, err := decodeActivityStats(body)
	if err != nil {
		return nil, fmt.Errorf("decode activity stats: %w", err)
	}
	return s, nil
}

func (c *Client) MetaStats(ctx context.Context, region string) (*MetaStats, error) {
	body, err := c.get(ctx, "meta", "region="+url.QueryEscape(strings.ToUpper(region)), "api", "meta")
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	m, err := decodeMetaStats(body)
	if err != nil {
		return nil, fmt.Errorf("decode meta stats: %w", err)
	}
	return m, nil
}

// Ladder fetches the first leaderboard page. The multiclass bracket lives on
// its own endpoint returning a bare array, wrapped here so callers see the
// same LadderPage shape either way.
func (c *Client) Ladder(ctx context.Context, region, activity, bracket string) (*LadderPage, error) {
	locale := game.Locale(region)

	if strings.EqualFold(bracket, game.BracketMulticlass) {
		body, err := c.get(ctx, "ladder", "page=1&role=all", "api", locale, "ladder", "multiclassers")
		if err != nil {
			if errors.Is(err, errNotFound) {
				return nil, nil
			}
			return nil, err
		}
		p, err := decodeMulticlassers(body)
		if err != nil {
			return nil, fmt.Errorf("decode multiclassers: %w", err)
		}
		return p, nil
	}

	body, err := c.get(ctx, "ladder", "page=1&specs=",
		"api", locale, strings.ToLower(activity), strings.ToLower(bracket))
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	p, err := decodeLadder(body)
	if err != nil {
		return nil, fmt.Errorf("decode ladder: %w", err)
	}
	return p, nil
}

// get performs one upstream request. Path segments are joined and escaped by
// url.JoinPath. Returns errNotFound on any 4xx.
func (c *Client) get(ctx context.Context, resource, query string, segments ...string) ([]byte, error) {
	u := c.base.JoinPath(segments...)
	u.RawQuery = query

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	observability.ObserveUpstreamLatency(resource, time.Since(start).Seconds())

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return b, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		c.logger.Debug("upstream no data", "resource", resource, "path", u.Path, "status", resp.StatusCode)
		return nil, errNotFound
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return nil, fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(b))
	}
}
