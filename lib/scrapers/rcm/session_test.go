package rcm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// loginFixtureServer simulates the portal's login handshake: a login
// page that sets a session cookie, a postback endpoint, and the
// validateuser page the postback redirects onto.
type loginFixtureServer struct {
	server *httptest.Server

	loginPage    string
	postStatus   int
	postLocation string

	postCount      int
	postedForm     map[string]string
	validateCalled bool
	validateCookie string
}

func newLoginFixtureServer(t testing.TB) *loginFixtureServer {
	f := &loginFixtureServer{
		loginPage:    loginPageFixture,
		postStatus:   http.StatusFound,
		postLocation: "/Secure/ValidateUser.aspx?token=xyz",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/Login.aspx", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Add("Set-Cookie", "ASP.NET_SessionId=abc123; path=/; HttpOnly")
			fmt.Fprint(w, f.loginPage)
			return
		}

		f.postCount++
		require.NoError(t, r.ParseForm())
		f.postedForm = map[string]string{}
		for k := range r.PostForm {
			f.postedForm[k] = r.PostForm.Get(k)
		}

		w.Header().Add("Set-Cookie", "rcmauth=tok456; path=/; secure")
		if f.postLocation != "" {
			w.Header().Set("Location", f.postLocation)
		}
		w.WriteHeader(f.postStatus)
	})
	mux.HandleFunc("/Secure/ValidateUser.aspx", func(w http.ResponseWriter, r *http.Request) {
		f.validateCalled = true
		f.validateCookie = r.Header.Get("Cookie")
		w.Header().Add("Set-Cookie", "branch=AKL; path=/")
		w.Header().Set("Location", "/Default.aspx")
		w.WriteHeader(http.StatusFound)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func TestAcquireSessionVerified(t *testing.T) {
	fixture := newLoginFixtureServer(t)
	client := newTestClient(t, fixture.server.URL)

	outcome, err := client.AcquireSession(context.Background(), Credentials{
		Username: "akl-branch",
		Password: "hunter2",
	})
	require.NoError(t, err)

	require.True(t, outcome.Success)
	require.Equal(t, "ASP.NET_SessionId=abc123; rcmauth=tok456; branch=AKL", outcome.Cookies)
	require.Equal(t, "/Default.aspx", outcome.RedirectLocation)

	// the verification page must be hit with the merged cookies from
	// both earlier responses
	require.True(t, fixture.validateCalled)
	require.Equal(t, "ASP.NET_SessionId=abc123; rcmauth=tok456", fixture.validateCookie)

	// the postback must echo the page tokens and carry the button value
	require.Equal(t, "/wEPDwUKMTY1NDU2MTA1MmRkZBnp5sQCjJ290WQXaDxDUFGnXvVW", fixture.postedForm["__VIEWSTATE"])
	require.Equal(t, "CA0B0334", fixture.postedForm["__VIEWSTATEGENERATOR"])
	require.Equal(t, "Login", fixture.postedForm["btnLogin"])
	require.Equal(t, "akl-branch", fixture.postedForm["txtUsername"])
	require.Equal(t, "hunter2", fixture.postedForm["txtPassword"])
}

func TestAcquireSessionLocationCaseInsensitive(t *testing.T) {
	fixture := newLoginFixtureServer(t)
	fixture.postLocation = "/Secure/VALIDATEUSER.ASPX"
	client := newTestClient(t, fixture.server.URL)

	outcome, err := client.AcquireSession(context.Background(), Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)
	require.True(t, outcome.Success)
}

func TestAcquireSessionRejected(t *testing.T) {
	fixture := newLoginFixtureServer(t)
	// the portal re-renders the login page with a 200 on bad
	// credentials instead of redirecting
	fixture.postStatus = http.StatusOK
	fixture.postLocation = ""
	client := newTestClient(t, fixture.server.URL)

	outcome, err := client.AcquireSession(context.Background(), Credentials{Username: "u", Password: "wrong"})
	require.NoError(t, err)

	require.False(t, outcome.Success)
	require.Equal(t, "Invalid Credentials", outcome.Message)
	// cookies gathered so far still come back so the caller can see
	// what state the session was left in
	require.Equal(t, "ASP.NET_SessionId=abc123; rcmauth=tok456", outcome.Cookies)
	require.False(t, fixture.validateCalled)
}

func TestAcquireSessionWrongRedirect(t *testing.T) {
	fixture := newLoginFixtureServer(t)
	fixture.postLocation = "/Login.aspx?failed=1"
	client := newTestClient(t, fixture.server.URL)

	outcome, err := client.AcquireSession(context.Background(), Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)
	require.False(t, outcome.Success)
	require.Equal(t, "/Login.aspx?failed=1", outcome.RedirectLocation)
}

func TestAcquireSessionMissingViewState(t *testing.T) {
	fixture := newLoginFixtureServer(t)
	fixture.loginPage = loginPageNoViewstateFixture
	client := newTestClient(t, fixture.server.URL)

	_, err := client.AcquireSession(context.Background(), Credentials{Username: "u", Password: "p"})
	require.ErrorIs(t, err, ErrValidationFields)
	// a parse failure must stop the handshake before any credentials
	// are sent
	require.Zero(t, fixture.postCount)
}
