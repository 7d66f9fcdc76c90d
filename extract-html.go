package wxextract

import (
	"regexp"
	"strings"
)

// rxSpaces matches any Unicode whitespace, including \v and the \x1c-\x1f
// separators. `\s` alone only covers ASCII space, \t, \n, \f and \r.
const rxSpaces = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]*`

var (
	rxTitle     = regexp.MustCompile(`(?s)<h1[^>]*class="[^"]*rich_media_title[^"]*"[^>]*>(.*?)</h1>`)
	rxContent   = regexp.MustCompile(`(?s)id="js_content"[^>]*>(.*?)</div>` + rxSpaces + `</div>` + rxSpaces + `<script`)
	rxTagMarkup = regexp.MustCompile(`<[^>]+>`)
)

// extractTitle returns the text inside the first <h1> whose class contains
// rich_media_title, with all nested tags stripped. If there is no such
// heading, UnknownTitle is returned.
func extractTitle(html string) string {
	match := rxTitle.FindStringSubmatch(html)
	if match == nil {
		return UnknownTitle
	}

	title := rxTagMarkup.ReplaceAllString(match[1], "")
	return strings.TrimSpace(title)
}

// extractContent returns the raw markup of the js_content container. The
// capture stops at the first `</div></div><script` sequence, so pages that
// close the container differently won't match.
func extractContent(html string) (string, bool) {
	match := rxContent.FindStringSubmatch(html)
	if match == nil {
		return "", false
	}

	return match[1], true
}
