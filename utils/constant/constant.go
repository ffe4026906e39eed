package constant

import (
	"time"

	"github.com/undeniable-app/undeniable/utils/types"
)

// These are generic constant for the application
const (
	RequestID = "request_id"
	Logger    = "logger"

	// These are general constant for config file
	Service            = "Service"
	DefaultAppPort     = "DefaultAppPort"
	Environment        = "Environment"
	RunMode            = "RunMode"
	LogRotationEnabled = "LogRotationEnabled"
	EnvPrefix          = "UNDENIABLE"
	DefaultConfigName  = "config"
	DefaultConfigType  = "yaml"
	DefaultConfigDir   = "./config"
)

// These are generic typed constant for the application
const (
	IS_PROD types.StringConstant = "IS_PROD"
)

// GraceFul Shutdown Constants
const (
	ServerDefaultGracefulTime time.Duration = 10 * time.Second
)

// Directory sources
const (
	SourceEmbedded types.SourceKind = "embedded"
	SourceFile     types.SourceKind = "file"
	SourceHTTP     types.SourceKind = "http"
	SourceS3       types.SourceKind = "s3"
)

// Sentinel values shared by the directory, resolver and form packages.
const (
	// NotListedCompany is the selection offered for insurers missing from the directory.
	NotListedCompany = "Other - not listed"
	// BlankEmail marks a directory row with no contact address on file.
	BlankEmail = " "
)
