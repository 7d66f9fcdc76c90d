package wxextract

import (
	nurl "net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// normalizeURL adds http:// to URL that doesn't specify its scheme,
// e.g. "mp.weixin.qq.com/s/abc".
func normalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "://") {
		return s
	}

	return "http://" + s
}

// isValidURL checks if URL is an absolute URL with scheme and host.
func isValidURL(s string) bool {
	url, err := nurl.ParseRequestURI(s)
	return err == nil && url.Scheme != "" && url.Hostname() != ""
}

// charCount returns number of characters in s, formatted with
// thousands separator, e.g. "12,345".
func charCount(s string) string {
	return countPrinter.Sprintf("%d", utf8.RuneCountInString(s))
}
