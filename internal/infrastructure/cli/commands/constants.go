package commands

// Display formats
const (
	TimestampFormat = "2006-01-02 15:04:05"
)

// Defaults
const (
	DefaultHistoryLimit       = 20
	DefaultHistorySearchLimit = 50
)

// Error messages
const (
	ErrDeployServiceUnavailable = "deploy service unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable"
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrQueryRequired            = "--query required"
)

// Success messages
const (
	MsgNoHistoryRecorded = "No history recorded yet."
)
