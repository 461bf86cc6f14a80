package util

import (
	"strings"

	"github.com/pterm/pterm"
)

func Contains(list []string, str string) bool {
	for _, v := range list {
		if v == str {
			return true
		}
	}
	return false
}

// Slug derives the key an instance is stored under: lower-cased, every
// non-alphanumeric rune collapsed to an underscore. Installing the same
// name twice therefore always lands on the same profile and directory.
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func Fatal(err error) {
	if err != nil {
		pterm.Fatal.Println(err)
	}
}
