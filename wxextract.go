// Package wxextract downloads a WeChat article page and extracts its title
// and the raw HTML of its `js_content` container, so the markup can be saved
// to a single file for later processing.
package wxextract

const (
	// DefaultUserAgent is the user agent sent when Extractor.UserAgent is empty.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	// DefaultOutputName is the file name used by the CLI when no output
	// path is specified.
	DefaultOutputName = ".extracted_content.html"

	// UnknownTitle is used when the page has no recognizable title.
	UnknownTitle = "未知标题"
)

// Result is the outcome of a successful extraction.
type Result struct {
	Title   string
	URL     string
	Content string // raw markup inside js_content, never validated
}
