package pavlog

import (
	"regexp"
	"strings"
)

var nameRegexp = regexp.MustCompile(`^([A-Za-z0-9_-]+(:[A-Za-z0-9_-]+)*)?$`)

// IsValidName reports whether name is a valid logger name: the empty string
// (the root logger) or one or more colon separated segments of letters,
// digits, '_' and '-'.
func IsValidName(name string) bool {
	return nameRegexp.MatchString(name)
}

// CombineNames splits every part on ':', drops empty segments and joins what
// is left. CombineNames("", "child") is "child" and
// CombineNames(CombineNames(a, b), c) == CombineNames(a, b, c).
func CombineNames(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		for _, s := range strings.Split(p, nameSeparator) {
			if s != emptyString {
				segments = append(segments, s)
			}
		}
	}
	return strings.Join(segments, nameSeparator)
}
