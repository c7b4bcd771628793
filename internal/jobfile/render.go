package jobfile

import (
	"fmt"
	"strings"
)

// matchBits collects the names of every table entry whose bits are fully
// set in v.
func matchBits(table []bitName, v uint32) []string {
	var names []string
	for _, e := range table {
		if v&e.bit == e.bit {
			names = append(names, e.name)
		}
	}
	return names
}

// Report renders the record as the fixed multi-line audit report, one
// "Label: value" line per field, ending with a newline.
func (j *Job) Report() string {
	var b strings.Builder

	product, ok := productVersions[j.ProductInfo]
	if !ok {
		product = "Unknown Version"
	}
	fmt.Fprintf(&b, "Product Info: %s\n", product)
	fmt.Fprintf(&b, "File Version: %d\n", j.FileVersion)
	fmt.Fprintf(&b, "UUID: %s\n", j.GUID)

	if priorities := matchBits(priorityClasses, j.Priority); len(priorities) > 0 {
		fmt.Fprintf(&b, "Priorities: %s\n", strings.Join(priorities, ", "))
	}

	// Truncating division throughout; negative inputs yield negative
	// components.
	hours := j.MaxRunTimeMs / 3600000
	rem := j.MaxRunTimeMs % 3600000
	minutes := rem / 60000
	rem = rem % 60000
	seconds := rem / 1000
	ms := rem % 1000
	fmt.Fprintf(&b, "Maximum Run Time: %02d:%02d:%02d.%d (HH:MM:SS.MS)\n", hours, minutes, seconds, ms)

	fmt.Fprintf(&b, "Exit Code: %d\n", j.ExitCode)

	status, ok := taskStatuses[j.Status]
	if !ok {
		status = "Unknown Status"
	}
	fmt.Fprintf(&b, "Status: %s\n", status)

	// The Flags line is always present, even with no matches.
	fmt.Fprintf(&b, "Flags: %s\n", strings.Join(matchBits(taskFlags, j.Flags), ", "))

	fmt.Fprintf(&b, "Date Run: %s\n", j.RunDate)
	fmt.Fprintf(&b, "Scheduled Date: %s\n", j.ScheduledDate)
	fmt.Fprintf(&b, "Application: %s\n", j.Name)
	fmt.Fprintf(&b, "Parameters: %s\n", j.Parameters)
	fmt.Fprintf(&b, "Working Directory: %s\n", j.WorkingDirectory)
	fmt.Fprintf(&b, "User: %s\n", j.User)
	fmt.Fprintf(&b, "Comment: %s\n", j.Comment)

	return b.String()
}
