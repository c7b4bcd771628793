package taskxml

import (
	"fmt"
	"strings"
)

// noValue marks an optional element that was absent from the definition.
const noValue = "(none)"

func optString(s *string) string {
	if s == nil {
		return noValue
	}
	return *s
}

func optBool(b *bool) string {
	if b == nil {
		return noValue
	}
	return fmt.Sprintf("%t", *b)
}

// Report renders the task as unlabeled "Key: value" lines: registration
// info, the calendar trigger when present, the settings block, and the exec
// action when present.
func (t *Task) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Author: %s\n", optString(t.RegistrationInfo.Author))
	fmt.Fprintf(&b, "Date: %s\n", optString(t.RegistrationInfo.Date))
	fmt.Fprintf(&b, "Description: %s\n", optString(t.RegistrationInfo.Description))

	if trigger := t.Triggers.CalendarTrigger; trigger != nil {
		fmt.Fprintf(&b, "StartBoundary: %s\n", trigger.StartBoundary)
		fmt.Fprintf(&b, "EndBoundary: %s\n", optString(trigger.EndBoundary))
		fmt.Fprintf(&b, "Enabled: %s\n", optBool(trigger.Enabled))
	}

	b.WriteString("Settings:\n")
	fmt.Fprintf(&b, "  Enabled: %s\n", optBool(t.Settings.Enabled))
	fmt.Fprintf(&b, "  AllowStartIfOnBatteries: %s\n", optBool(t.Settings.AllowStartIfOnBatteries))

	if exec := t.Actions.Exec; exec != nil {
		fmt.Fprintf(&b, "Command: %s\n", exec.Command)
		fmt.Fprintf(&b, "Arguments: %s\n", optString(exec.Arguments))
	}

	return b.String()
}
