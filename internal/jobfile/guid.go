package jobfile

import (
	"encoding/binary"
	"fmt"
)

// guidSize is the fixed byte span of an identifier sub-record.
const guidSize = 16

// JobGUID is the 16-byte task identifier. The first three groups are
// little-endian, the last four big-endian; the split is part of the wire
// format and is never normalized.
type JobGUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 uint16
	Data5 uint16
	Data6 uint16
	Data7 uint16
}

// DecodeGUID reads an identifier sub-record from the first 16 bytes of data.
func DecodeGUID(data []byte) (JobGUID, error) {
	if len(data) < guidSize {
		return JobGUID{}, fmt.Errorf("%w: need %d bytes for identifier, have %d", ErrTruncated, guidSize, len(data))
	}
	return JobGUID{
		Data1: binary.LittleEndian.Uint32(data[0:4]),
		Data2: binary.LittleEndian.Uint16(data[4:6]),
		Data3: binary.LittleEndian.Uint16(data[6:8]),
		Data4: binary.BigEndian.Uint16(data[8:10]),
		Data5: binary.BigEndian.Uint16(data[10:12]),
		Data6: binary.BigEndian.Uint16(data[12:14]),
		Data7: binary.BigEndian.Uint16(data[14:16]),
	}, nil
}

// String renders the braced hex-group form. The final three groups use a
// minimum width of 2 hex digits, not a fixed width: a group above 0xFF
// widens the last segment past the canonical 12 digits. That matches the
// on-record interpretation this decoder was built against and is kept
// deliberately.
func (g JobGUID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%04X-%02X%02X%02X}",
		g.Data1, g.Data2, g.Data3, g.Data4, g.Data5, g.Data6, g.Data7)
}
