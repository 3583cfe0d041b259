package calendar

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// layouts caches translated patterns. Translation is pure string work,
// but the same handful of patterns is typically formatted over and over.
var layouts = gocache.New(gocache.NoExpiration, 0)

// Layout translates a CLDR-style date pattern ("dd/MM/yyyy",
// "EEEE d MMMM") into a Go reference layout. Pattern letters are
// consumed in runs; text between single quotes is copied verbatim, with
// ” producing a literal apostrophe. Letters with no layout equivalent
// pass through unchanged.
func Layout(pattern string) string {
	if cached, ok := layouts.Get(pattern); ok {
		return cached.(string)
	}
	layout := translate(pattern)
	layouts.Set(pattern, layout, gocache.NoExpiration)
	return layout
}

func translate(pattern string) string {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		// Quoted literal section.
		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			i++
			for i < len(runes) && runes[i] != '\'' {
				b.WriteRune(runes[i])
				i++
			}
			i++ // closing quote
			continue
		}

		if !isPatternLetter(r) {
			b.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		b.WriteString(layoutFor(r, n))
		i += n
	}
	return b.String()
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// layoutFor maps a run of n repetitions of pattern letter r to its Go
// layout element.
func layoutFor(r rune, n int) string {
	switch r {
	case 'y':
		if n == 2 {
			return "06"
		}
		return "2006"
	case 'M':
		switch n {
		case 1:
			return "1"
		case 2:
			return "01"
		case 3:
			return "Jan"
		default:
			return "January"
		}
	case 'd':
		if n == 1 {
			return "2"
		}
		return "02"
	case 'E':
		if n >= 4 {
			return "Monday"
		}
		return "Mon"
	case 'H':
		return "15"
	case 'h':
		if n == 1 {
			return "3"
		}
		return "03"
	case 'm':
		if n == 1 {
			return "4"
		}
		return "04"
	case 's':
		if n == 1 {
			return "5"
		}
		return "05"
	case 'S':
		// Fractional seconds; valid directly after a "." separator.
		return strings.Repeat("0", n)
	case 'a':
		return "PM"
	case 'z':
		return "MST"
	case 'Z':
		if n >= 5 {
			return "-07:00"
		}
		return "-0700"
	case 'X', 'x':
		return "Z0700"
	default:
		return strings.Repeat(string(r), n)
	}
}
