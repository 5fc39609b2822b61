package pretty

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// widthCond pins East Asian ambiguous characters to one column so output
// does not depend on the locale of the process.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// StringWidth returns the number of display columns s occupies. Wide
// characters count two columns and combining sequences count as one
// cluster. Control characters, which have no display width of their own,
// count one column each so that measurements err toward breaking.
func StringWidth(s string) int {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c >= 0x7f {
			return wideWidth(s)
		}
	}
	return len(s)
}

func wideWidth(s string) int {
	w := widthCond.StringWidth(s)
	for _, r := range s {
		if unicode.IsControl(r) {
			w++
		}
	}
	return w
}
