// Package api is the outbound REST client for the corporate-site backend.
// It owns bearer-token decoration, the JSON/multipart wire formats for
// bilingual payloads, and the normalization of every failure into a single
// error shape (see errors.go). On an expired session it clears the stored
// token and steers navigation to the locale-prefixed login view before the
// caller sees the rejection.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/aldawaly/go-backoffice/internal/locale"
	"github.com/aldawaly/go-backoffice/internal/logging"
	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

const defaultTimeout = 20 * time.Second

// Navigator lets the client observe the current view and trigger the login
// redirect after an expiry. The embedding UI supplies it.
type Navigator interface {
	CurrentPath() string
	Redirect(path string)
}

// Upload carries a file part for multipart submissions. The reader is
// consumed once; retries are the caller's concern.
type Upload struct {
	Field    string
	FileName string
	Reader   io.Reader
}

// Client performs authenticated HTTP calls against the backend API.
type Client struct {
	http     *resty.Client
	tokens   interfaces.TokenSource
	expirer  interfaces.SessionExpirer
	resolver *locale.Resolver
	routes   *locale.Routes
	nav      Navigator
	logger   interfaces.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource supplies the session token reader.
func WithTokenSource(tokens interfaces.TokenSource) Option {
	return func(c *Client) { c.tokens = tokens }
}

// WithSessionExpirer supplies the 401 handler that clears the session.
func WithSessionExpirer(expirer interfaces.SessionExpirer) Option {
	return func(c *Client) { c.expirer = expirer }
}

// WithNavigator supplies the navigation hook for the post-expiry redirect.
func WithNavigator(nav Navigator) Option {
	return func(c *Client) { c.nav = nav }
}

// WithRoutes overrides the locale-prefixed route builder.
func WithRoutes(routes *locale.Routes) Option {
	return func(c *Client) { c.routes = routes }
}

// WithLocaleResolver ties the client to the active locale for redirects.
func WithLocaleResolver(resolver *locale.Resolver) Option {
	return func(c *Client) { c.resolver = resolver }
}

// WithLogger injects the API logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout overrides the transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.SetTimeout(timeout)
		}
	}
}

// New constructs a client rooted at the API base URL (e.g. "/api" behind a
// proxy, or an absolute origin).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(defaultTimeout),
		routes: locale.NewRoutes(nil),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Service accessors.

func (c *Client) Auth() *AuthService         { return &AuthService{client: c} }
func (c *Client) News() *NewsService         { return &NewsService{client: c} }
func (c *Client) Products() *ProductsService { return &ProductsService{client: c} }
func (c *Client) Recipes() *RecipesService   { return &RecipesService{client: c} }
func (c *Client) Books() *BooksService       { return &BooksService{client: c} }
func (c *Client) Hero() *HeroService         { return &HeroService{client: c} }
func (c *Client) Users() *UsersService       { return &UsersService{client: c} }

// envelope is the backend's uniform response wrapper. Some endpoints return
// bare payloads; decode falls through to those.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// do executes one call. mustAuth write flows fail before the network when no
// token is stored; public reads proceed unauthenticated.
func (c *Client) do(ctx context.Context, method, path string, build func(*resty.Request), out any, mustAuth bool) error {
	token := c.token()
	if mustAuth && token == "" {
		return unauthenticatedError()
	}

	requestID := uuid.NewString()
	req := c.http.R().SetContext(ctx).SetHeader("X-Request-ID", requestID)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if build != nil {
		build(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("api.request.failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return networkError(err)
	}
	return c.handle(ctx, resp, out)
}

func (c *Client) handle(ctx context.Context, resp *resty.Response, out any) error {
	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		c.expireSession(ctx)
		return sessionExpiredError()
	case resp.StatusCode() == http.StatusForbidden:
		return &Error{Kind: KindForbidden, Message: extractMessage(resp.Body()), Status: resp.StatusCode()}
	case resp.IsError():
		return &Error{Kind: KindServer, Message: extractMessage(resp.Body()), Status: resp.StatusCode()}
	}
	return decode(resp.Body(), out)
}

// decode unwraps the response envelope; a 2xx body whose envelope carries
// success=false is a logical failure and rejects like any server error.
func decode(body []byte, out any) error {
	if len(body) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Success != nil && !*env.Success {
			return &Error{Kind: KindServer, Message: extractMessage(body), Status: http.StatusOK}
		}
		if out == nil {
			return nil
		}
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return networkError(err)
			}
			return nil
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return networkError(err)
	}
	return nil
}

// expireSession runs the 401 side effects: clear the stored session, then
// redirect to the locale-prefixed login view unless already on it.
func (c *Client) expireSession(ctx context.Context) {
	if c.expirer != nil {
		c.expirer.HandleExpiry(ctx)
	}
	if c.nav == nil || c.routes == nil {
		return
	}

	current := c.nav.CurrentPath()
	if locale.IsLoginPath(current) {
		return
	}

	active := locale.FromPath(current)
	if c.resolver != nil {
		active = c.resolver.Current()
	}
	target, err := c.routes.LoginPath(active)
	if err != nil {
		c.logger.Error("api.expiry.redirect_failed", "error", err)
		return
	}
	c.logger.Warn("api.session_expired", "redirect", target)
	c.nav.Redirect(target)
}

// jsonField serializes a nested bilingual or array value for a multipart
// part; the backend parses these string parts back into objects.
func jsonField(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(encoded)
}

func applyMultipart(req *resty.Request, fields map[string]string, uploads ...*Upload) {
	req.SetMultipartFormData(fields)
	for _, upload := range uploads {
		if upload == nil || upload.Reader == nil {
			continue
		}
		field := upload.Field
		if field == "" {
			field = "image"
		}
		name := upload.FileName
		if name == "" {
			// A part without a filename parses as a plain form value, not
			// a file.
			name = "upload"
		}
		req.SetFileReader(field, name, upload.Reader)
	}
}
