package pkg

import (
	"regexp"
	"strings"
)

var slugSpaces = regexp.MustCompile(`\s+`)

// Slugify 小写 + 空白折叠成连字符，不保证唯一
func Slugify(name string) string {
	return slugSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
