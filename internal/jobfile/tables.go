package jobfile

// productVersions maps the header's product info word to a Windows release.
var productVersions = map[uint16]string{
	0x0400: "Windows NT 4.0",
	0x0500: "Windows 2000",
	0x0501: "Windows XP",
	0x0600: "Windows Vista",
	0x0601: "Windows 7",
	0x0602: "Windows 8",
	0x0603: "Windows 8.1",
	0x0A00: "Windows 10",
}

// taskStatuses maps the SCHED_S_* status codes reported in the header.
var taskStatuses = map[int32]string{
	0x41300: "Task is ready to run",
	0x41301: "Task is running",
	0x41302: "Task is disabled",
	0x41303: "Task has not run",
	0x41304: "No more scheduled runs",
	0x41305: "Properties not set",
	0x41306: "Last run terminated by user",
	0x41307: "No triggers/triggers disabled",
	0x41308: "Triggers do not have set run times",
}

type bitName struct {
	bit  uint32
	name string
}

// taskFlags lists the flag bits rendered by containment: an entry matches
// when all of its bits are set in the record's flags word.
var taskFlags = []bitName{
	{0x00000001, "TASK_APPLICATION_NAME"},
	{0x00200000, "TASK_FLAG_RUN_ONLY_IF_LOGGED_ON"},
	{0x00100000, "TASK_FLAG_SYSTEM_REQUIRED"},
	{0x00080000, "TASK_FLAG_RESTART_ON_IDLE_RESUME"},
	{0x00040000, "TASK_FLAG_RUN_IF_CONNECTED_TO_INTERNET"},
	{0x00020000, "TASK_FLAG_HIDDEN"},
	{0x00010000, "TASK_FLAG_RUN_ONLY_IF_DOCKED"},
	{0x80000000, "TASK_FLAG_KILL_IF_GOING_ON_BATTERIES"},
	{0x40000000, "TASK_FLAG_DONT_START_IF_ON_BATTERIES"},
	{0x20000000, "TASK_FLAG_KILL_ON_IDLE_END"},
	{0x10000000, "TASK_FLAG_START_ONLY_IF_IDLE"},
	{0x04000000, "TASK_FLAG_DISABLED"},
	{0x02000000, "TASK_FLAG_DELETE_WHEN_DONE"},
	{0x01000000, "TASK_FLAG_INTERACTIVE"},
}

// priorityClasses lists the process priority class bits, matched the same
// way as taskFlags.
var priorityClasses = []bitName{
	{0x20000000, "NORMAL_PRIORITY_CLASS"},
	{0x40000000, "IDLE_PRIORITY_CLASS"},
	{0x80000000, "HIGH_PRIORITY_CLASS"},
	{0x00100000, "REALTIME_PRIORITY_CLASS"},
}
