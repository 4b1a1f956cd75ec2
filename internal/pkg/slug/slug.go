package slug

import (
	"strconv"
	"strings"
	"unicode"
)

// Make turns a title into a URL-safe lowercase slug: letters and digits
// survive, every other run of characters collapses to a single hyphen.
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ForBlog derives the canonical slug for a blog post. Appending the
// primary key keeps slugs unique even when titles collide.
func ForBlog(title string, id uint) string {
	return Make(title) + "-" + strconv.FormatUint(uint64(id), 10)
}
