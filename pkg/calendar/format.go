package calendar

import (
	"time"

	"github.com/goodsign/monday"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// mondayLocales pairs the locales the formatter has translations for
// with their BCP 47 tags. The matcher picks the closest supported locale
// for a requested tag, defaulting to US English.
var mondayLocales = []struct {
	tag    language.Tag
	locale monday.Locale
}{
	{language.AmericanEnglish, monday.LocaleEnUS},
	{language.BritishEnglish, monday.LocaleEnGB},
	{language.French, monday.LocaleFrFR},
	{language.German, monday.LocaleDeDE},
	{language.Spanish, monday.LocaleEsES},
	{language.Italian, monday.LocaleItIT},
	{language.Dutch, monday.LocaleNlNL},
	{language.Portuguese, monday.LocalePtPT},
	{language.BrazilianPortuguese, monday.LocalePtBR},
	{language.Russian, monday.LocaleRuRU},
	{language.Japanese, monday.LocaleJaJP},
	{language.Korean, monday.LocaleKoKR},
	{language.SimplifiedChinese, monday.LocaleZhCN},
	{language.TraditionalChinese, monday.LocaleZhTW},
	{language.Turkish, monday.LocaleTrTR},
	{language.Polish, monday.LocalePlPL},
	{language.Swedish, monday.LocaleSvSE},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(mondayLocales))
	for i, l := range mondayLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// localeFor resolves a language tag to the closest formatting locale.
func localeFor(tag language.Tag) monday.Locale {
	_, idx, _ := localeMatcher.Match(tag)
	return mondayLocales[idx].locale
}

// Format renders t with a CLDR-style pattern in the calendar's locale.
func (c *Calendar) Format(t time.Time, pattern string) string {
	return c.FormatLocale(t, pattern, c.locale)
}

// FormatLocale renders t with a CLDR-style pattern in the given locale.
func (c *Calendar) FormatLocale(t time.Time, pattern string, locale language.Tag) string {
	return monday.Format(c.in(t), Layout(pattern), localeFor(locale))
}

// Parse builds an instant from value according to a CLDR-style pattern,
// resolved in the calendar's timezone and locale. Fails-empty: the zero
// time and an error on any parse failure.
func (c *Calendar) Parse(value, pattern string) (time.Time, error) {
	t, err := monday.ParseInLocation(Layout(pattern), value, c.loc, localeFor(c.locale))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse %q with pattern %q", value, pattern)
	}
	return t, nil
}
