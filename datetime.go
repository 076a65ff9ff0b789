package githubtypes

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// DateTime is a UTC timestamp with whole-second resolution. GitHub
// delivers timestamps either as an RFC 3339 string or as seconds since
// the Unix epoch depending on the endpoint, so decoding accepts both
// shapes. Encoding to a human-readable format always produces the
// RFC 3339 string form; binary formats such as CBOR carry the epoch
// seconds integer.
//
// Sub-second precision is truncated on construction. The binary form
// can only carry whole seconds, so holding a finer-grained instant
// would make the two transports disagree about the value.
type DateTime struct {
	time.Time
}

// NewDateTime normalizes t to UTC and truncates it to whole seconds.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t.UTC().Truncate(time.Second)}
}

// Now returns the current instant.
func Now() DateTime {
	return NewDateTime(time.Now())
}

// ParseDateTime parses an RFC 3339 date-time string. Fractional
// seconds are accepted on input but truncated.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateTime{}, malformedf("%v", err)
	}
	return NewDateTime(t), nil
}

// DateTimeFromUnix interprets sec as whole seconds since the Unix
// epoch. Instants whose year falls outside [0, 9999] cannot be
// expressed in RFC 3339 and are rejected.
func DateTimeFromUnix(sec int64) (DateTime, error) {
	t := time.Unix(sec, 0).UTC()
	if y := t.Year(); y < 0 || y > 9999 {
		return DateTime{}, malformedf("value is not a legal timestamp: %d", sec)
	}
	return DateTime{t}, nil
}

// MarshalJSON implements json.Marshaler, producing the RFC 3339 string
// form.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.UTC().Format(time.RFC3339))), nil
}

// UnmarshalJSON implements json.Unmarshaler. The wire value may be
// either an RFC 3339 string or an integer count of epoch seconds.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return malformedf("empty timestamp value")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return malformedf("invalid timestamp string: %v", err)
		}
		dt, err := ParseDateTime(s)
		if err != nil {
			return err
		}
		*d = dt
		return nil
	}
	sec, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return malformedf("expected date time string or seconds since unix epoch, got %s", data)
	}
	dt, err := DateTimeFromUnix(sec)
	if err != nil {
		return err
	}
	*d = dt
	return nil
}

// MarshalCBOR implements cbor.Marshaler, producing the epoch seconds
// integer.
func (d DateTime) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(d.Unix())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (d *DateTime) UnmarshalCBOR(data []byte) error {
	var sec int64
	if err := cbor.Unmarshal(data, &sec); err != nil {
		return malformedf("expected seconds since unix epoch: %v", err)
	}
	dt, err := DateTimeFromUnix(sec)
	if err != nil {
		return err
	}
	*d = dt
	return nil
}
