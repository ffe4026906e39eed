package blame

import (
	"github.com/undeniable-app/undeniable/utils/types"
)

const (
	ReasonCodeNameSpace = "UNDN"
	ReasonCodeBase      = 100000
)

// Error identifiers raised by the application
const (
	ErrorInternalServerError      types.ErrorCode = "error-internal-server-error"
	ErrorDirectoryLoad            types.ErrorCode = "error-directory-load"
	ErrorDirectoryPending         types.ErrorCode = "error-directory-pending"
	ErrorCompanyUnlisted          types.ErrorCode = "error-company-unlisted"
	ErrorCompanyNotFound          types.ErrorCode = "error-company-not-found"
	ErrorClipboardWriteRefused    types.ErrorCode = "error-clipboard-write-refused"
	ErrorRequestBodyInvalid       types.ErrorCode = "error-request-body-invalid"
	ErrorConfigLoadFailure        types.ErrorCode = "error-config-load-failure"
	ErrorServerStartFailed        types.ErrorCode = "error-server-start-failed"
	ErrorFileUnavailable          types.ErrorCode = "error-file-unavailable"
	ErrorBucketDownloadFailure    types.ErrorCode = "error-bucket-download-failure"
	ErrorBucketCredentialFail     types.ErrorCode = "error-bucket-credential-failure" // #nosec G101
	ErrorMarshalFailed            types.ErrorCode = "error-marshal-failed"
	ErrorUnmarshalFailed          types.ErrorCode = "error-unmarshal-failed"
	ErrorURLValidationFailed      types.ErrorCode = "error-url-validation-failed"
	ErrorCreateHTTPRequestFailed  types.ErrorCode = "error-create-http-request-failed"
	ErrorUnexpectedResponseStatus types.ErrorCode = "error-unexpected-response-status"
	ErrorInvalidSource            types.ErrorCode = "error-source-invalid"
	ErrorDraftBuildFailed         types.ErrorCode = "error-draft-build-failed"
	ErrorMissingParameter         types.ErrorCode = "error-missing-parameter"
	ErrorRouteNotFound            types.ErrorCode = "error-route-not-found"
)
