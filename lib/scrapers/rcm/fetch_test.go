package rcm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t testing.TB, serverUrl string) *Client {
	u, err := url.Parse(serverUrl)
	require.NoError(t, err)
	return NewClient(ClientOptions{Host: u.Host, Scheme: "http"})
}

// newRedirectChain serves /r0 -> /r1 -> ... -> /r<hops> where the last
// path answers 200 "done".
func newRedirectChain(t testing.TB, hops int) *httptest.Server {
	mux := http.NewServeMux()
	for i := 0; i < hops; i++ {
		next := fmt.Sprintf("/r%d", i+1)
		mux.HandleFunc(fmt.Sprintf("/r%d", i), func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, next, http.StatusFound)
		})
	}
	mux.HandleFunc(fmt.Sprintf("/r%d", hops), func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "done")
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchWithRedirectsAtBound(t *testing.T) {
	server := newRedirectChain(t, 5)
	client := newTestClient(t, server.URL)

	env, err := client.FetchWithRedirects(context.Background(), client.Host, "/r0", "")
	require.NoError(t, err)
	require.Equal(t, 200, env.StatusCode)
	require.Equal(t, "done", env.Body)
}

func TestFetchWithRedirectsPastBound(t *testing.T) {
	server := newRedirectChain(t, 6)
	client := newTestClient(t, server.URL)

	_, err := client.FetchWithRedirects(context.Background(), client.Host, "/r0", "")
	require.ErrorIs(t, err, ErrTooManyRedirects)
}

func TestFetchWithRedirectsNonRedirectStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "missing")
	}))
	t.Cleanup(server.Close)
	client := newTestClient(t, server.URL)

	// non-2xx non-redirect statuses come back as-is, the caller
	// inspects them
	env, err := client.FetchWithRedirects(context.Background(), client.Host, "/whatever", "")
	require.NoError(t, err)
	require.Equal(t, 404, env.StatusCode)
	require.Equal(t, "missing", env.Body)
}

func TestFetchWithRedirectsNoLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// a 302 with no Location header is terminal
		w.WriteHeader(http.StatusFound)
	}))
	t.Cleanup(server.Close)
	client := newTestClient(t, server.URL)

	env, err := client.FetchWithRedirects(context.Background(), client.Host, "/", "")
	require.NoError(t, err)
	require.Equal(t, 302, env.StatusCode)
}

func TestFetchWithRedirectsAbsoluteLocation(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "other host")
	}))
	t.Cleanup(target.Close)

	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL+"/landing", http.StatusMovedPermanently)
	}))
	t.Cleanup(source.Close)

	client := newTestClient(t, source.URL)
	env, err := client.FetchWithRedirects(context.Background(), client.Host, "/", "")
	require.NoError(t, err)
	require.Equal(t, "other host", env.Body)
}

func TestFetchWithRedirectsSendsCookies(t *testing.T) {
	var gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)
	_, err := client.FetchWithRedirects(context.Background(), client.Host, "/", "a=1; b=2")
	require.NoError(t, err)
	require.Equal(t, "a=1; b=2", gotCookie)
}

func TestClientDoesNotRetainCookies(t *testing.T) {
	// the explicit cookie string is the whole session: cookies set by
	// one response must never ride along on a later request by
	// themselves
	var cookieHeaders []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieHeaders = append(cookieHeaders, r.Header.Get("Cookie"))
		w.Header().Add("Set-Cookie", "sticky=1; path=/")
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)
	_, err := client.FetchWithRedirects(context.Background(), client.Host, "/", "mine=1")
	require.NoError(t, err)
	_, err = client.FetchWithRedirects(context.Background(), client.Host, "/", "")
	require.NoError(t, err)

	require.Equal(t, []string{"mine=1", ""}, cookieHeaders)
}

func TestResolveLocation(t *testing.T) {
	host, path := resolveLocation("secure.example.com", "/Secure/ValidateUser.aspx?t=1")
	require.Equal(t, "secure.example.com", host)
	require.Equal(t, "/Secure/ValidateUser.aspx?t=1", path)

	host, path = resolveLocation("secure.example.com", "Default.aspx")
	require.Equal(t, "secure.example.com", host)
	require.Equal(t, "/Default.aspx", path)

	host, path = resolveLocation("secure.example.com", "https://other.example.com/landing?x=2")
	require.Equal(t, "other.example.com", host)
	require.Equal(t, "/landing?x=2", path)
}
