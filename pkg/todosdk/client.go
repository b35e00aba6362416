package todosdk

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Client talks to the to-do list service. It is safe for concurrent use; all
// calls share one cookie jar and therefore one session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a fresh cookie jar.
func NewClient(baseURL string) *Client {
	// cookiejar.New only fails on a bad PublicSuffixList, and we pass none.
	jar, _ := cookiejar.New(nil)

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// SessionCookie returns the named cookie the jar holds for the service, or
// nil when there is none.
func (c *Client) SessionCookie(name string) *http.Cookie {
	if c.HTTPClient.Jar == nil {
		return nil
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil
	}
	for _, cookie := range c.HTTPClient.Jar.Cookies(u) {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
