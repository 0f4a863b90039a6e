package rcm

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// ErrValidationFields means the login page no longer carries the
// WebForms hidden fields we postback. That is a page-structure change
// (or a page that failed to render), not a credentials problem, so it
// surfaces as an error instead of a failed LoginOutcome.
var ErrValidationFields = fmt.Errorf("failed to parse validation fields")

const loginPath = "/Login.aspx"

// WebForms routes a postback to the handler of whichever control
// submitted it, so the button's value has to travel with the form.
const (
	loginUsernameField = "txtUsername"
	loginPasswordField = "txtPassword"
	loginButtonField   = "btnLogin"
	loginButtonValue   = "Login"
)

type Credentials struct {
	Username string
	Password string
}

// LoginOutcome is the terminal value of a login attempt. Success=false
// with a message is the normal shape for rejected credentials; hard
// failures (transport, parse) come back as errors instead.
type LoginOutcome struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	Cookies          string `json:"cookies"`
	RedirectLocation string `json:"redirect,omitempty"`
}

// AcquireSession performs the WebForms login handshake: fetch the login
// page, harvest its hidden postback tokens and initial cookies, replay
// the login form, then follow the verification redirect once to pick up
// the rest of the session cookies.
func (c *Client) AcquireSession(ctx context.Context, creds Credentials) (LoginOutcome, error) {
	ctx, span := tracer.Start(ctx, "client:AcquireSession")
	defer span.End()

	res, err := c.get(ctx, c.Host, loginPath, "")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch login page")
		return LoginOutcome{}, err
	}
	initialCookies := mergeCookies("", res.Header().Values("Set-Cookie"))

	tokens, err := parsePostbackTokens(res.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse login page")
		return LoginOutcome{}, err
	}
	if tokens.viewState == "" || tokens.eventValidation == "" {
		span.SetStatus(codes.Error, ErrValidationFields.Error())
		return LoginOutcome{}, ErrValidationFields
	}

	form := url.Values{}
	form.Set("__EVENTTARGET", "")
	form.Set("__EVENTARGUMENT", "")
	form.Set("__VIEWSTATE", tokens.viewState)
	form.Set("__VIEWSTATEGENERATOR", tokens.viewStateGenerator)
	form.Set("__EVENTVALIDATION", tokens.eventValidation)
	form.Set(loginUsernameField, creds.Username)
	form.Set(loginPasswordField, creds.Password)
	form.Set(loginButtonField, loginButtonValue)

	res, err = c.postForm(ctx, c.Host, loginPath, initialCookies, loginPath, form)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to post login form")
		return LoginOutcome{}, err
	}
	// only headers matter from here on, the body is ignored
	cookiesAfterPost := mergeCookies(initialCookies, res.Header().Values("Set-Cookie"))
	location := res.Header().Get("Location")

	// a successful login is a 302 onto the user-validation page; the
	// path may carry query parameters and arbitrary casing, so this is
	// a substring check
	verified := res.StatusCode() == 302 &&
		strings.Contains(strings.ToLower(location), "validateuser")
	if !verified {
		span.SetStatus(codes.Ok, "login rejected")
		return LoginOutcome{
			Success:          false,
			Message:          "Invalid Credentials",
			Cookies:          cookiesAfterPost,
			RedirectLocation: location,
		}, nil
	}

	redirectHost, redirectPath := resolveLocation(c.Host, location)
	res, err = c.get(ctx, redirectHost, redirectPath, cookiesAfterPost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to follow login redirect")
		return LoginOutcome{}, err
	}
	finalCookies := mergeCookies(cookiesAfterPost, res.Header().Values("Set-Cookie"))

	return LoginOutcome{
		Success:          true,
		Message:          "Login Verified",
		Cookies:          finalCookies,
		RedirectLocation: res.Header().Get("Location"),
	}, nil
}

// postForm submits a urlencoded form the way a browser would, with
// Origin and Referer pointing back at the page the form came from.
func (c *Client) postForm(ctx context.Context, host, path, cookies, referer string, form url.Values) (*resty.Response, error) {
	encoded := form.Encode()
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("Origin", c.origin(host)).
		SetHeader("Referer", c.origin(host)+referer).
		SetContentLength(true).
		SetBody(encoded)
	if cookies != "" {
		req.SetHeader("Cookie", cookies)
	}
	return req.Post(c.origin(host) + path)
}
