package wxextract

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Extractor is the core of wxextract, which used to download a
// WeChat article then extract its title and content.
type Extractor struct {
	UserAgent        string
	EnableLog        bool
	EnableVerboseLog bool

	Transport           http.RoundTripper
	RequestTimeout      time.Duration // zero means no timeout
	SkipTLSVerification bool

	isValidated bool
	httpClient  *http.Client
}

// Validate prepares Extractor to make sure its configurations
// are valid and ready to use. Must be run at least once before
// extraction started.
func (ext *Extractor) Validate() {
	if ext.UserAgent == "" {
		ext.UserAgent = DefaultUserAgent
	}

	if ext.Transport == nil {
		ext.Transport = newTransport(ext.SkipTLSVerification)
	}

	ext.httpClient = newHTTPClient(ext.Transport, ext.RequestTimeout)
	ext.isValidated = true
}

// Extract downloads the page at url and extracts its title and content.
// A missing title is not an error, it is replaced by UnknownTitle. A missing
// content returns ErrContentNotFound, while download failure returns *FetchError.
func (ext *Extractor) Extract(ctx context.Context, url string) (*Result, error) {
	if !ext.isValidated {
		return nil, errors.New("extractor hasn't been validated")
	}

	ext.logf("fetching article %s", url)
	html, err := ext.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	ext.logf("fetched %s characters", charCount(html))

	title := extractTitle(html)
	ext.logf("title: %s", title)

	ext.logf("extracting content")
	content, found := extractContent(html)
	if !found {
		return nil, ErrContentNotFound
	}
	ext.logf("extracted %s characters", charCount(content))

	return &Result{
		Title:   title,
		URL:     url,
		Content: content,
	}, nil
}

// fetch downloads the page. Like `curl -s`, the status code is not checked
// and redirects are not followed: any non empty body is accepted. URL without
// scheme is requested over http.
func (ext *Extractor) fetch(ctx context.Context, url string) (string, error) {
	reqURL := normalizeURL(url)
	if !isValidURL(reqURL) {
		return "", &FetchError{URL: url, Err: errors.New("url is not valid")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", ext.UserAgent)

	resp, err := ext.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: errors.Wrap(err, "failed to read body")}
	}

	ext.logResponse(reqURL, resp.StatusCode, len(body))
	if len(body) == 0 {
		return "", &FetchError{URL: url, Err: ErrEmptyBody}
	}

	return string(body), nil
}
