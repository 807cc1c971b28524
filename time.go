package mart

import (
	"encoding/json"
	"time"

	"github.com/tokenmart/mart/errors"
)

// UnixTime represents a point in time as POSIX time.
// This type comes in handy when dealing with protobuf messages. Instead of
// using Go's time.Time that includes nanoseconds use primitive int64 type and
// seconds precision. Some languages do not support nanoseconds precision
// anyway.
type UnixTime int64

// AsUnixTime converts given Time structure into its UNIX time representation.
// All time information more granular than a second is dropped as it cannot be
// represented by the UnixTime type.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// Add modifies this UNIX time by given duration. This is compatible with
// time.Time.Add method. Any duration value smaller than a second is ignored
// as it cannot be represented by the UnixTime type.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

// Time returns a time.Time structure that represents the same moment in time.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// String returns the usual representation of this time as the time.Time
// structure would.
func (t UnixTime) String() string {
	return t.Time().UTC().String()
}

// UnmarshalJSON supports unmarshaling both as time.Time and from a number.
// Usually a number is used as a representation of this time in JSON but it
// is convenient to support a string format as well.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		unix := UnixTime(n)
		if err := unix.Validate(); err != nil {
			return err
		}
		*t = unix
		return nil
	}

	var stdtime time.Time
	if err := json.Unmarshal(raw, &stdtime); err == nil {
		unix := UnixTime(stdtime.Unix())
		if err := unix.Validate(); err != nil {
			return err
		}
		*t = unix
		return nil
	}

	return errors.Wrap(errors.ErrInput, "invalid time format")
}

// MarshalJSON returns a JSON representation of this time.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(t))
}

const maxUnixTime = 253402300799 // 9999-12-31 23:59:59

// Validate returns an error if this time value is invalid.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "negative time")
	}
	if t > maxUnixTime {
		return errors.Wrap(errors.ErrState, "time must be an A.D. value")
	}
	return nil
}

// InThePast returns true if given time is in the past as compared to the
// current time as declared in the context. Context "now" is considered to be
// the past.
func (t UnixTime) InThePast(ctx Context) bool {
	return IsExpired(ctx, t)
}
