package wxextract

import (
	"crypto/tls"
	"net/http"
	"time"
)

// newHTTPClient creates the client used to download pages. Redirects are
// not followed: a 3xx response is returned as is and its body goes through
// extraction like any other page.
func newHTTPClient(transport http.RoundTripper, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func newTransport(skipTLSVerification bool) http.RoundTripper {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if skipTLSVerification {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec
		}
	}

	return transport
}
