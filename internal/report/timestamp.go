package report

import "regexp"

// timestampPattern matches the generation timestamp a rendered report
// embeds: DD.MM.YYYY HH:MM. The match is digit-shape only, no calendar
// validation; the token is compared and reused verbatim.
var timestampPattern = regexp.MustCompile(`\d\d\.\d\d\.\d\d\d\d \d\d:\d\d`)

// ExtractTimestamp returns the first embedded timestamp token in text, or
// ErrTimestampNotFound when the text carries none.
func ExtractTimestamp(text string) (string, error) {
	match := timestampPattern.FindString(text)
	if match == "" {
		return "", ErrTimestampNotFound
	}
	return match, nil
}
