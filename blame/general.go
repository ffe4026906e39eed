package blame

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/helpers"
	"github.com/undeniable-app/undeniable/utils/types"
)

//go:embed error_definition.json
var embeddedBlameData []byte

var (
	localBlameManager = &BlameManager{}
	localBlameOnce    sync.Once
)

// Sentinels for errors.Is comparisons. Only the error code is compared.
var (
	ErrDirectoryLoad         = NewBasicError(ErrorDirectoryLoad)
	ErrDirectoryPending      = NewBasicError(ErrorDirectoryPending)
	ErrUnlistedCompany       = NewBasicError(ErrorCompanyUnlisted)
	ErrCompanyNotFound       = NewBasicError(ErrorCompanyNotFound)
	ErrClipboardWriteRefused = NewBasicError(ErrorClipboardWriteRefused)
)

// getLocalBlameManager returns the localBlameManager instance, loading the
// embedded definitions on first use.
func getLocalBlameManager() *BlameManager {
	localBlameOnce.Do(func() {
		if err := InitLocalBlameManager(); err != nil {
			localBlameManager.BlameDefinitions = map[types.ErrorCode]Blame{}
		}
	})
	return localBlameManager
}

// initLocalBlames decodes the embedded definitions.
func initLocalBlames() ([]BlameDefinition, error) {
	var localBlames []BlameDefinition
	if err := json.Unmarshal(embeddedBlameData, &localBlames); err != nil {
		return nil, fmt.Errorf("failed to unmarshal local blame definition file: %w", err)
	}
	return localBlames, nil
}

// InitLocalBlameManager (re)loads the embedded definitions into the local manager.
func InitLocalBlameManager() error {
	blameDefinitions, err := initLocalBlames()
	if err != nil {
		helpers.Println(constant.ERROR, "Error initialising local blame definitions: ", err)
		return err
	}
	localBlameManager.BlameDefinitions = buildDefinitions(blameDefinitions)
	return nil
}

// InternalServerError is an internal server error.
func InternalServerError(cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorInternalServerError, WithCauses(cause))
}

// Directory Errors
// DirectoryLoadError is returned when the company directory cannot be fetched or parsed.
func DirectoryLoadError(source string, cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorDirectoryLoad,
		WithField("source", source),
		WithCauses(cause),
	)
}

// DirectoryPending is returned while the directory is still loading.
func DirectoryPending() Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorDirectoryPending)
}

// InvalidSourceError is an error when the directory source kind is unknown.
func InvalidSourceError(source string) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorInvalidSource, WithField("source", source))
}

// Resolver Errors
// UnlistedCompany is returned when the user picked the "not listed" option.
func UnlistedCompany() Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorCompanyUnlisted)
}

// CompanyNotFound is returned when the company is absent or has no email on file.
func CompanyNotFound(company string) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorCompanyNotFound, WithField("company", company))
}

// Compose Errors
// ClipboardWriteRefused is returned when a copy is attempted on a field still holding a placeholder.
func ClipboardWriteRefused(field string) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorClipboardWriteRefused, WithField("field", field))
}

// DraftBuildFailed is returned when the .eml draft cannot be rendered.
func DraftBuildFailed(cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorDraftBuildFailed, WithCauses(cause))
}

// Application Errors
// RequestBodyInvalid is returned when a request body cannot be bound.
func RequestBodyInvalid(cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorRequestBodyInvalid, WithCauses(cause))
}

// MissingParameterError is returned when a required request parameter is absent.
func MissingParameterError(parameter string) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorMissingParameter, WithField("parameter", parameter))
}

// RouteNotFound is returned for requests that match no route.
func RouteNotFound() Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorRouteNotFound)
}

// ConfigLoadFailure is returned when configuration cannot be read.
func ConfigLoadFailure(path string, cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorConfigLoadFailure,
		WithField("path", path),
		WithCauses(cause),
	)
}

// ServerStartFailed is returned when the HTTP server cannot listen.
func ServerStartFailed(address string, cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorServerStartFailed,
		WithField("address", address),
		WithCauses(cause),
	)
}

// File Errors
// FileNotFoundError is an error when the file is not found.
func FileNotFoundError(path string, cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorFileUnavailable,
		WithField("path", path),
		WithCauses(cause),
	)
}

// Bucket Errors
// BucketDownloadError is an error when an object cannot be fetched.
func BucketDownloadError(bucket, key string, cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorBucketDownloadFailure,
		WithFields(map[string]any{"bucket": bucket, "key": key}),
		WithCauses(cause),
	)
}

// BucketCredentialError is an error when the bucket credential fails.
func BucketCredentialError(cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorBucketCredentialFail, WithCauses(cause))
}

// Codec Errors
// MarshalError is an error when encoding fails.
func MarshalError(codec types.CodecType, cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorMarshalFailed,
		WithField("codec", codec.String()),
		WithCauses(cause),
	)
}

// UnMarshalError is an error when decoding fails.
func UnMarshalError(codec types.CodecType, cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorUnmarshalFailed,
		WithField("codec", codec.String()),
		WithCauses(cause),
	)
}

// HTTP client Errors
// URLValidationFailed is an error when a URL cannot be parsed.
func URLValidationFailed(url string, cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorURLValidationFailed,
		WithField("url", url),
		WithCauses(cause),
	)
}

// CreateHTTPRequestFailed is an error when an outbound request fails.
func CreateHTTPRequestFailed(cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorCreateHTTPRequestFailed, WithCauses(cause))
}

// UnexpectedResponseStatus is an error when a remote server answers with a non 2xx status.
func UnexpectedResponseStatus(status int) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorUnexpectedResponseStatus,
		WithField("status", fmt.Sprintf("%d %s", status, http.StatusText(status))),
	)
}
