package time

import (
	"testing"
	"time"
)

func TestDateTime(t *testing.T) {
	cases := map[string]struct {
		value  time.Time
		expect string
	}{
		"utc": {
			value:  time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
			expect: "2021-06-01T00:00:00Z",
		},
		"zoned input converted to utc": {
			value:  time.Date(2021, 6, 1, 2, 30, 0, 0, time.FixedZone("CEST", 2*60*60)),
			expect: "2021-06-01T00:30:00Z",
		},
		"sub-second precision dropped": {
			value:  time.Date(2021, 6, 1, 0, 0, 0, 999999999, time.UTC),
			expect: "2021-06-01T00:00:00Z",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.expect, FormatDateTime(c.value); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	parsed, err := ParseDateTime("2021-06-01T00:00:00Z")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(expect) {
		t.Errorf("expect %v, got %v", expect, parsed)
	}

	if _, err := ParseDateTime("2021-06-01 00:00:00"); err == nil {
		t.Errorf("expect error parsing non-atom date form, got none")
	}
}
