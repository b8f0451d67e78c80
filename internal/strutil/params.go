package strutil

import "strings"

// CutParams splits a media type value from its ;parameters, stripping
// whitespaces around the separator in addition.
func CutParams(value string) (mime, params string) {
	sep := strings.IndexByte(value, ';')
	if sep == -1 {
		return value, ""
	}

	return RStripWS(value[:sep]), LStripWS(value[sep+1:])
}

func LStripWS(str string) string {
	for i, c := range str {
		switch c {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}
