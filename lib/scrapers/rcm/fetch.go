package rcm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrTooManyRedirects = fmt.Errorf("too many redirects")

const maxRedirectHops = 5

// Envelope is a single HTTP response: everything the scraping steps
// need and nothing more.
type Envelope struct {
	Body       string
	Headers    http.Header
	StatusCode int
}

func isRedirectStatus(status int) bool {
	switch status {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	}
	return false
}

// resolveLocation turns a Location header into the next (host, path)
// pair: absolute urls switch hosts, anything else replaces the path on
// the current host.
func resolveLocation(host, location string) (string, string) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		u, err := url.Parse(location)
		if err == nil && u.Host != "" {
			return u.Host, u.RequestURI()
		}
	}
	if !strings.HasPrefix(location, "/") {
		location = "/" + location
	}
	return host, location
}

// FetchWithRedirects GETs (host, path) with the given cookie string,
// following redirects by hand up to maxRedirectHops. Any non-redirect
// response is returned as-is for the caller to inspect; a redirect
// without a Location header counts as terminal too.
func (c *Client) FetchWithRedirects(ctx context.Context, host, path, cookies string) (*Envelope, error) {
	ctx, span := tracer.Start(ctx, "client:FetchWithRedirects")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	hops := 0
	for {
		res, err := c.get(ctx, host, path, cookies)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "fetch failed")
			return nil, err
		}

		location := res.Header().Get("Location")
		if !isRedirectStatus(res.StatusCode()) || location == "" {
			return &Envelope{
				Body:       res.String(),
				Headers:    res.Header(),
				StatusCode: res.StatusCode(),
			}, nil
		}

		hops++
		if hops > maxRedirectHops {
			span.SetStatus(codes.Error, ErrTooManyRedirects.Error())
			return nil, ErrTooManyRedirects
		}
		host, path = resolveLocation(host, location)
	}
}
