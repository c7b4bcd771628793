// Package taskxml decodes the modern XML Task Scheduler format: UTF-16LE
// encoded markup transcoded to UTF-8 and deserialized into the recognized
// Task element subset.
package taskxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxTaskSize bounds how much transcoded XML is read before parsing.
const maxTaskSize = 64 << 10

// ErrMissingStartBoundary reports a CalendarTrigger without the required
// StartBoundary element.
var ErrMissingStartBoundary = errors.New("calendar trigger has no StartBoundary")

// ErrMissingCommand reports an Exec action without the required Command
// element.
var ErrMissingCommand = errors.New("exec action has no Command")

// Task is the recognized subset of an XML task definition. Pointer fields
// are optional elements; nil means the element was absent.
type Task struct {
	XMLName          xml.Name         `xml:"Task"`
	RegistrationInfo RegistrationInfo `xml:"RegistrationInfo"`
	Triggers         Triggers         `xml:"Triggers"`
	Settings         Settings         `xml:"Settings"`
	Actions          Actions          `xml:"Actions"`
}

type RegistrationInfo struct {
	Author      *string `xml:"Author"`
	Date        *string `xml:"Date"`
	Description *string `xml:"Description"`
}

type Triggers struct {
	CalendarTrigger *CalendarTrigger `xml:"CalendarTrigger"`
}

type CalendarTrigger struct {
	StartBoundary string  `xml:"StartBoundary"`
	EndBoundary   *string `xml:"EndBoundary"`
	Enabled       *bool   `xml:"Enabled"`
}

type Settings struct {
	Enabled                 *bool `xml:"Enabled"`
	AllowStartIfOnBatteries *bool `xml:"AllowStartIfOnBatteries"`
}

type Actions struct {
	Exec *Exec `xml:"Exec"`
}

type Exec struct {
	Command   string  `xml:"Command"`
	Arguments *string `xml:"Arguments"`
}

// Decode reads a UTF-16LE task definition from r, transcodes it to UTF-8
// (consuming a BOM if present), and deserializes at most maxTaskSize bytes
// of it. Structural requirements of the recognized elements are validated
// after parsing.
func Decode(r io.Reader) (*Task, error) {
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	data, err := io.ReadAll(io.LimitReader(transform.NewReader(r, decoder), maxTaskSize))
	if err != nil {
		return nil, fmt.Errorf("transcoding task definition: %w", err)
	}

	var task Task
	parser := xml.NewDecoder(bytes.NewReader(data))
	// Task definitions declare encoding="UTF-16" in the XML prolog; the
	// stream is already UTF-8 at this point, so pass it through unchanged.
	parser.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := parser.Decode(&task); err != nil {
		return nil, fmt.Errorf("parsing task definition: %w", err)
	}

	if trigger := task.Triggers.CalendarTrigger; trigger != nil && trigger.StartBoundary == "" {
		return nil, ErrMissingStartBoundary
	}
	if exec := task.Actions.Exec; exec != nil && exec.Command == "" {
		return nil, ErrMissingCommand
	}
	return &task, nil
}
