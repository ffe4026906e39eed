package constant

import "github.com/undeniable-app/undeniable/utils/types"

const (
	ResetColor  = "\033[0m"  // Reset color
	RedColor    = "\033[31m" // Red (Error)
	YellowColor = "\033[33m" // Yellow (Warn)
	GreenColor  = "\033[32m" // Green (Info)
	BlueColor   = "\033[34m" // Blue (Debug)
)

// Supported log modes
const (
	INFO  types.LogMode = "info"
	WARN  types.LogMode = "warn"
	ERROR types.LogMode = "error"
	DEBUG types.LogMode = "debug"
	FATAL types.LogMode = "fatal"
)

// Log messages shared across packages
const (
	ConnectionClosed  = "connection closed"
	DirectoryLoaded   = "insurer directory loaded"
	DirectoryRowDrop  = "skipping directory row due to validation error"
	DirectoryFailed   = "error loading insurance companies"
	ServerStarting    = "starting server"
	ServerStopped     = "server stopped"
	AnalyticsRecorded = "analytics event recorded"
	HandlerFailed     = "handler returned an error"
)
