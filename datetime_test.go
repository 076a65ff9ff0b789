package githubtypes

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
)

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("2019-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	if got := dt.Unix(); got != 1546300800 {
		t.Errorf("Unix() = %d, want 1546300800", got)
	}

	// Offsets are normalized to UTC.
	dt, err = ParseDateTime("2019-01-01T02:00:00+02:00")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	if got := dt.Unix(); got != 1546300800 {
		t.Errorf("Unix() = %d, want 1546300800", got)
	}
	if dt.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", dt.Location())
	}

	// Fractional seconds are truncated so the instant survives the
	// epoch seconds encoding unchanged.
	dt, err = ParseDateTime("2019-01-01T00:00:00.5Z")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	if got := dt.Nanosecond(); got != 0 {
		t.Errorf("Nanosecond() = %d, want 0", got)
	}
	if got := dt.Unix(); got != 1546300800 {
		t.Errorf("Unix() = %d, want 1546300800", got)
	}

	_, err = ParseDateTime("not a date")
	if err == nil {
		t.Fatal("ParseDateTime of garbage succeeded, want error")
	}
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Errorf("error is %T, want *MalformedInputError", err)
	}
}

func TestDateTimeFromUnix(t *testing.T) {
	testCases := []struct {
		name    string
		sec     int64
		want    string
		wantErr bool
	}{
		{name: "epoch", sec: 0, want: "1970-01-01T00:00:00Z"},
		{name: "2019", sec: 1546300800, want: "2019-01-01T00:00:00Z"},
		{name: "before epoch", sec: -1, want: "1969-12-31T23:59:59Z"},
		{name: "year 10000", sec: 253402300800, wantErr: true},
		{name: "max int64", sec: math.MaxInt64, wantErr: true},
		{name: "min int64", sec: math.MinInt64, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dt, err := DateTimeFromUnix(tc.sec)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("DateTimeFromUnix(%d) succeeded, want error", tc.sec)
				}
				var malformed *MalformedInputError
				if !errors.As(err, &malformed) {
					t.Errorf("error is %T, want *MalformedInputError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DateTimeFromUnix(%d): %v", tc.sec, err)
			}
			want, err := ParseDateTime(tc.want)
			if err != nil {
				t.Fatalf("ParseDateTime(%q): %v", tc.want, err)
			}
			if !dt.Equal(want.Time) {
				t.Errorf("DateTimeFromUnix(%d) = %v, want %v", tc.sec, dt, want)
			}
		})
	}
}

func TestDateTimeJSONDecodeShapes(t *testing.T) {
	// The same instant arrives as either a string or an integer.
	var fromString, fromInt DateTime
	if err := json.Unmarshal([]byte(`"2019-01-01T00:00:00Z"`), &fromString); err != nil {
		t.Fatalf("Unmarshal string: %v", err)
	}
	if err := json.Unmarshal([]byte(`1546300800`), &fromInt); err != nil {
		t.Fatalf("Unmarshal integer: %v", err)
	}
	if !fromString.Equal(fromInt.Time) {
		t.Errorf("string form %v != integer form %v", fromString, fromInt)
	}

	var dt DateTime
	if err := json.Unmarshal([]byte(`1.5`), &dt); err == nil {
		t.Error("Unmarshal of float succeeded, want error")
	}
	if err := json.Unmarshal([]byte(`"yesterday"`), &dt); err == nil {
		t.Error("Unmarshal of non-RFC3339 string succeeded, want error")
	}
	if err := json.Unmarshal([]byte(`18446744073709551615`), &dt); err == nil {
		t.Error("Unmarshal of out-of-range unsigned succeeded, want error")
	}
	if err := json.Unmarshal([]byte(`true`), &dt); err == nil {
		t.Error("Unmarshal of bool succeeded, want error")
	}
}

func TestDateTimeJSONRoundTrip(t *testing.T) {
	inputs := []string{
		`"2019-01-01T00:00:00Z"`,
		`"2019-01-01T00:00:00.123Z"`,
		`"1970-01-01T00:00:00Z"`,
		`1546300800`,
		`0`,
		`-1`,
	}
	for _, input := range inputs {
		var decoded DateTime
		if err := json.Unmarshal([]byte(input), &decoded); err != nil {
			t.Fatalf("Unmarshal(%s): %v", input, err)
		}
		encoded, err := json.Marshal(decoded)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", decoded, err)
		}
		// Encoding is always the string form; decoding it again must
		// yield the same instant.
		var again DateTime
		if err := json.Unmarshal(encoded, &again); err != nil {
			t.Fatalf("Unmarshal(%s): %v", encoded, err)
		}
		if !again.Equal(decoded.Time) {
			t.Errorf("round trip of %s: got %v, want %v", input, again, decoded)
		}
	}
}

func TestDateTimeCBOR(t *testing.T) {
	dt, err := DateTimeFromUnix(1546300800)
	if err != nil {
		t.Fatalf("DateTimeFromUnix: %v", err)
	}

	data, err := cbor.Marshal(dt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// The binary form must be the epoch seconds integer.
	var sec int64
	if err := cbor.Unmarshal(data, &sec); err != nil {
		t.Fatalf("Unmarshal into int64: %v", err)
	}
	if sec != 1546300800 {
		t.Errorf("binary form = %d, want 1546300800", sec)
	}

	var decoded DateTime
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Equal(dt.Time) {
		t.Errorf("round trip = %v, want %v", decoded, dt)
	}

	text, err := cbor.Marshal("2019-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("Marshal string: %v", err)
	}
	if err := cbor.Unmarshal(text, &decoded); err == nil {
		t.Error("Unmarshal of text form in binary transport succeeded, want error")
	}
}

// A value decoded from a fractional RFC 3339 string must survive the
// binary transport unchanged. The binary form only carries whole
// seconds, so the fraction has to be gone before the value is encoded.
func TestDateTimeCBORRoundTripAfterFractionalInput(t *testing.T) {
	var dt DateTime
	if err := json.Unmarshal([]byte(`"2019-01-01T00:00:00.5Z"`), &dt); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	data, err := cbor.Marshal(dt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded DateTime
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Equal(dt.Time) {
		t.Errorf("round trip = %v, want %v", decoded, dt)
	}
}

func TestNow(t *testing.T) {
	before := time.Now().Add(-time.Second)
	now := Now()
	after := time.Now().Add(time.Second)
	if now.Before(before) || now.After(after) {
		t.Errorf("Now() = %v, outside [%v, %v]", now, before, after)
	}
	if now.Location() != time.UTC {
		t.Errorf("Now().Location() = %v, want UTC", now.Location())
	}
}
