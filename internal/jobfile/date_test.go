package jobfile

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateBytes(year, month, weekday, day, hour, minute, second uint16) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint16(buf[0:], year)
	binary.LittleEndian.PutUint16(buf[2:], month)
	binary.LittleEndian.PutUint16(buf[4:], weekday)
	binary.LittleEndian.PutUint16(buf[6:], day)
	binary.LittleEndian.PutUint16(buf[8:], hour)
	binary.LittleEndian.PutUint16(buf[10:], minute)
	binary.LittleEndian.PutUint16(buf[12:], second)
	return buf
}

func TestDecodeJobDateWithWeekday(t *testing.T) {
	d, err := DecodeJobDate(dateBytes(2004, 11, 2, 23, 9, 5, 7), true)
	require.NoError(t, err)

	assert.Equal(t, uint16(2004), d.Year)
	assert.Equal(t, uint16(11), d.Month)
	assert.True(t, d.HasWeekday)
	assert.Equal(t, uint16(2), d.Weekday)
	assert.Equal(t, "Tuesday Nov 23 09:05:07 2004", d.String())
}

func TestDecodeJobDateWithoutWeekday(t *testing.T) {
	// The weekday word is skipped, not shifted over: day stays at offset 6.
	buf := dateBytes(2005, 5, 0xFFFF, 14, 3, 59, 0)
	d, err := DecodeJobDate(buf, false)
	require.NoError(t, err)

	assert.False(t, d.HasWeekday)
	assert.Equal(t, uint16(14), d.Day)
	assert.Equal(t, "May 14 03:59:00 2005", d.String())
}

func TestDecodeJobDateTruncated(t *testing.T) {
	for _, hasWeekday := range []bool{true, false} {
		_, err := DecodeJobDate(make([]byte, 13), hasWeekday)
		require.ErrorIs(t, err, ErrTruncated)
	}
}

func TestJobDateStringOutOfRangeIndexes(t *testing.T) {
	tests := []struct {
		name string
		date JobDate
		want string
	}{
		{
			"month zero",
			JobDate{Year: 2000, Month: 0, Day: 1},
			"0 1 00:00:00 2000",
		},
		{
			"month past December",
			JobDate{Year: 2000, Month: 13, Day: 1},
			"13 1 00:00:00 2000",
		},
		{
			"weekday past Saturday",
			JobDate{Year: 2000, Month: 1, Weekday: 9, HasWeekday: true, Day: 1},
			"9 Jan 1 00:00:00 2000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.String())
		})
	}
}
