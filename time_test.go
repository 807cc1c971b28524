package mart

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest/assert"
)

func TestUnixTimeUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		raw      string
		wantErr  *errors.Error
		wantTime UnixTime
	}{
		"number": {
			raw:      "1536935843",
			wantTime: 1536935843,
		},
		"zero": {
			raw:      "0",
			wantTime: 0,
		},
		"string time": {
			raw:      `"2018-09-14T14:37:23Z"`,
			wantTime: 1536935843,
		},
		"negative number": {
			raw:     "-1",
			wantErr: errors.ErrState,
		},
		"invalid string": {
			raw:     `"not a time"`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantTime, got)
		})
	}
}

func TestUnixTimeAdd(t *testing.T) {
	now := UnixTime(1536935843)
	assert.Equal(t, UnixTime(1536935845), now.Add(2*time.Second))
	assert.Equal(t, UnixTime(1536935841), now.Add(-2*time.Second))
	// sub-second durations are below this type's resolution
	assert.Equal(t, now, now.Add(999*time.Millisecond))
}

func TestAsUnixTimeDropsSubsecond(t *testing.T) {
	stdtime := time.Unix(1536935843, 123456789)
	unix := AsUnixTime(stdtime)
	assert.Equal(t, UnixTime(1536935843), unix)
	assert.Equal(t, int64(0), int64(unix.Time().Nanosecond()))
}

func TestUnixTimeValidate(t *testing.T) {
	assert.Nil(t, UnixTime(0).Validate())
	assert.Nil(t, UnixTime(maxUnixTime).Validate())
	if err := UnixTime(-1).Validate(); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	if err := UnixTime(maxUnixTime + 1).Validate(); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}
