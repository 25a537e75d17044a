package display

import "strings"

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiUnderline = "\x1b[4m"
)

// ansiHelp wraps s in the given escape codes and a trailing reset.
func ansiHelp(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + ansiReset
}
