package jobfile

import "fmt"

// Fixed header offsets. The scheduled-date window and the first trailer
// count overlap the preceding date spans; those offsets reproduce the
// observed on-disk interpretation exactly and must not be "corrected".
const (
	offProductInfo   = 0
	offFileVersion   = 2
	offGUID          = 4
	offPriority      = 32
	offMaxRunTime    = 36
	offExitCode      = 40
	offStatus        = 44
	offFlags         = 48
	offRunDate       = 52
	offScheduledDate = 68
	offTrailer       = 70

	runDateSpan       = 16
	scheduledDateSpan = 20
)

// Job is a fully decoded binary job file: the fixed header plus the five
// trailer strings. A Job is built once per file and never mutated.
type Job struct {
	ProductInfo   uint16
	FileVersion   uint16
	GUID          JobGUID
	Priority      uint32
	MaxRunTimeMs  int32
	ExitCode      int32
	Status        int32
	Flags         uint32
	RunDate       JobDate
	ScheduledDate JobDate

	Name             string
	Parameters       string
	WorkingDirectory string
	User             string
	Comment          string
}

// DecodeJob decodes a complete job file buffer. Any field whose span runs
// past the end of the buffer, or any trailer string that is not well-formed
// UTF-16, fails the whole decode.
func DecodeJob(data []byte) (*Job, error) {
	c := newCursor(data)
	j := &Job{}
	var err error

	if j.ProductInfo, err = c.uint16(); err != nil {
		return nil, fmt.Errorf("product info: %w", err)
	}
	if j.FileVersion, err = c.uint16(); err != nil {
		return nil, fmt.Errorf("file version: %w", err)
	}
	guidBytes, err := c.bytes(guidSize)
	if err != nil {
		return nil, fmt.Errorf("identifier: %w", err)
	}
	if j.GUID, err = DecodeGUID(guidBytes); err != nil {
		return nil, fmt.Errorf("identifier: %w", err)
	}

	c.seek(offPriority)
	if j.Priority, err = c.uint32(); err != nil {
		return nil, fmt.Errorf("priority: %w", err)
	}
	if j.MaxRunTimeMs, err = c.int32(); err != nil {
		return nil, fmt.Errorf("maximum run time: %w", err)
	}
	if j.ExitCode, err = c.int32(); err != nil {
		return nil, fmt.Errorf("exit code: %w", err)
	}
	if j.Status, err = c.int32(); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	if j.Flags, err = c.uint32(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}

	runBytes, err := c.bytes(runDateSpan)
	if err != nil {
		return nil, fmt.Errorf("run date: %w", err)
	}
	if j.RunDate, err = DecodeJobDate(runBytes, true); err != nil {
		return nil, fmt.Errorf("run date: %w", err)
	}
	schedBytes, err := c.bytes(scheduledDateSpan)
	if err != nil {
		return nil, fmt.Errorf("scheduled date: %w", err)
	}
	if j.ScheduledDate, err = DecodeJobDate(schedBytes, false); err != nil {
		return nil, fmt.Errorf("scheduled date: %w", err)
	}

	c.seek(offTrailer)
	if j.Name, err = c.utf16String(); err != nil {
		return nil, fmt.Errorf("application name: %w", err)
	}
	if j.Parameters, err = c.utf16String(); err != nil {
		return nil, fmt.Errorf("parameters: %w", err)
	}
	if j.WorkingDirectory, err = c.utf16String(); err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}
	if j.User, err = c.utf16String(); err != nil {
		return nil, fmt.Errorf("user: %w", err)
	}
	if j.Comment, err = c.utf16String(); err != nil {
		return nil, fmt.Errorf("comment: %w", err)
	}

	return j, nil
}
