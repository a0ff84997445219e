package errs

import "strings"

// sanitize flattens control characters out of values interpolated into error
// messages so a single log line stays a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
