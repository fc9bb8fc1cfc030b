package errors

import "strings"

// ErrorCode is a string identifier for a specific failure condition.
// Codes are prefixed with the module that owns them so that a bare code in a
// log line is enough to locate the failing stage of the pipeline.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Sentinel codes used by helpers rather than by any one module.
const (
	CodeOK      ErrorCode = "OK"
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Common error codes
const (
	ErrCodeInternal      ErrorCode = "COMMON_001"
	ErrCodeInvalidParam  ErrorCode = "COMMON_002"
	ErrCodeValidation    ErrorCode = "COMMON_003"
	ErrCodeNotFound      ErrorCode = "COMMON_004"
	ErrCodeSerialization ErrorCode = "COMMON_005"
)

// Corpus module error codes
const (
	// ErrCodeMissingInput marks an absent corpus root, source folder, or
	// workflow file.  Missing source folders are recoverable: the loader
	// skips them and continues.
	ErrCodeMissingInput ErrorCode = "CORPUS_001"

	// ErrCodeMalformedFilename marks a workflow file whose name does not
	// carry a parseable disease segment.  The file is excluded from the
	// corpus; the load itself continues.
	ErrCodeMalformedFilename ErrorCode = "CORPUS_002"

	// ErrCodeUnreadableFile marks a workflow file that exists but could not
	// be read.
	ErrCodeUnreadableFile ErrorCode = "CORPUS_003"
)

// Analysis module error codes
const (
	// ErrCodeDegenerateCorpus marks a disease with fewer than two sources,
	// for which no pairwise comparison is defined.
	ErrCodeDegenerateCorpus ErrorCode = "ANALYSIS_001"

	// ErrCodeEmptyVocabulary marks a document set that yields no terms after
	// tokenization and stopword filtering.
	ErrCodeEmptyVocabulary ErrorCode = "ANALYSIS_002"

	// ErrCodeDimensionMismatch marks vectors of unequal length handed to a
	// similarity computation.
	ErrCodeDimensionMismatch ErrorCode = "ANALYSIS_003"
)

// Report module error codes
const (
	ErrCodeReportEncode ErrorCode = "REPORT_001"
	ErrCodeReportWrite  ErrorCode = "REPORT_002"
)

// Config module error codes
const (
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_001"
	ErrCodeConfigNotFound ErrorCode = "CONFIG_002"
)

// ErrorCodeMessage maps each ErrorCode to its default human-readable message.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:      "internal error",
	ErrCodeInvalidParam:  "invalid parameter",
	ErrCodeValidation:    "validation failed",
	ErrCodeNotFound:      "resource not found",
	ErrCodeSerialization: "serialization failed",

	ErrCodeMissingInput:      "input path not found",
	ErrCodeMalformedFilename: "malformed workflow filename",
	ErrCodeUnreadableFile:    "workflow file unreadable",

	ErrCodeDegenerateCorpus:  "disease has fewer than two sources",
	ErrCodeEmptyVocabulary:   "no terms survived tokenization",
	ErrCodeDimensionMismatch: "vector dimensions do not match",

	ErrCodeReportEncode: "failed to encode report",
	ErrCodeReportWrite:  "failed to write report",

	ErrCodeConfigInvalid:  "invalid configuration",
	ErrCodeConfigNotFound: "configuration file not found",
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// ModuleForCode returns the module prefix of an ErrorCode ("CORPUS",
// "ANALYSIS", ...).  Codes without a prefix report "UNKNOWN".
func ModuleForCode(code ErrorCode) string {
	parts := strings.SplitN(string(code), "_", 2)
	if len(parts) == 2 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
