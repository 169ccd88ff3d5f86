package request

import (
	"context"
	"net"
	"net/http"
	"strings"
)

const (
	forwardedForHeader = "X-Forwarded-For"
	bearerPrefix       = "Bearer "
)

type Context struct {
	request        *http.Request
	responseWriter http.ResponseWriter

	endpoint  string
	callerKey string

	adminAuthenticated bool
}

func NewContext(request *http.Request, response http.ResponseWriter, endpoint string) *Context {
	return &Context{
		request:        request,
		responseWriter: response,
		endpoint:       endpoint,
	}
}

func (c *Context) Request() *http.Request {
	return c.request
}

func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.responseWriter
}

func (c *Context) SetResponseWriter(writer http.ResponseWriter) {
	c.responseWriter = writer
}

func (c *Context) Endpoint() string {
	return c.endpoint
}

// CallerKey identifies the caller for rate limiting. It is derived from the
// first X-Forwarded-For entry when present, otherwise from the connection
// address. It is unauthenticated and trivially spoofable.
func (c *Context) CallerKey() string {
	if c.callerKey != "" {
		return c.callerKey
	}

	forwarded := c.request.Header.Get(forwardedForHeader)
	if forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		c.callerKey = strings.TrimSpace(first)
		return c.callerKey
	}

	host, _, err := net.SplitHostPort(c.request.RemoteAddr)
	if err != nil {
		host = c.request.RemoteAddr
	}
	c.callerKey = host
	return c.callerKey
}

// BearerToken extracts the token from the Authorization header.
func (c *Context) BearerToken() string {
	value := strings.TrimSpace(c.request.Header.Get("Authorization"))
	if !strings.HasPrefix(value, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(value, bearerPrefix))
}

func (c *Context) IsAdminAuthenticated() bool {
	return c.adminAuthenticated
}

func (c *Context) AuthenticateAdmin() {
	c.adminAuthenticated = true
}

func (c *Context) Context() context.Context {
	return c.request.Context()
}

func (c *Context) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}
