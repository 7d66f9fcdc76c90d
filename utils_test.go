package wxextract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidURL(t *testing.T) {
	assert.True(t, isValidURL("https://mp.weixin.qq.com/s/abc"))
	assert.True(t, isValidURL("http://127.0.0.1:8080"))
	assert.False(t, isValidURL("itIsNotAURL"))
	assert.False(t, isValidURL("/s/abc"))
	assert.False(t, isValidURL(""))
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "http://mp.weixin.qq.com/s/abc", normalizeURL("mp.weixin.qq.com/s/abc"))
	assert.Equal(t, "http://localhost:8080/s", normalizeURL(" localhost:8080/s "))
	assert.Equal(t, "https://mp.weixin.qq.com/s/abc", normalizeURL("https://mp.weixin.qq.com/s/abc"))
	assert.Equal(t, "", normalizeURL(""))
}

func TestCharCount(t *testing.T) {
	assert.Equal(t, "0", charCount(""))
	assert.Equal(t, "2", charCount("标题"))
	assert.Equal(t, "999", charCount(strings.Repeat("a", 999)))
	assert.Equal(t, "1,234", charCount(strings.Repeat("a", 1234)))
	assert.Equal(t, "1,000,000", charCount(strings.Repeat("文", 1000000)))
}
