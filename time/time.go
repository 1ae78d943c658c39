package time

import (
	"time"
)

// dateTimeFormat is the Atom date construct form defined by RFC 4287
// section 3.3: RFC 3339 in UTC at second precision with a literal Z offset.
const dateTimeFormat = "2006-01-02T15:04:05Z"

// FormatDateTime formats value as an Atom date construct. The value is
// converted to UTC and truncated to whole seconds before formatting.
func FormatDateTime(value time.Time) string {
	return value.UTC().Truncate(time.Second).Format(dateTimeFormat)
}

// ParseDateTime parses a string in the Atom date construct form.
func ParseDateTime(value string) (time.Time, error) {
	return time.Parse(dateTimeFormat, value)
}
