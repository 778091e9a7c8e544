package errors

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeTimeout            ErrorCode = "COMMON_004"
	ErrCodeValidation         ErrorCode = "COMMON_005"
	ErrCodeSerialization      ErrorCode = "COMMON_006"
	ErrCodeDatabaseError      ErrorCode = "COMMON_007"
	ErrCodeCacheError         ErrorCode = "COMMON_008"
	ErrCodeExternalService    ErrorCode = "COMMON_009"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_010"
)

// Molecule / chemistry error codes
const (
	ErrCodeInvalidSMILES        ErrorCode = "MOL_001"
	ErrCodeStructureUnresolved  ErrorCode = "MOL_002"
	ErrCodeFeaturizationFailed  ErrorCode = "MOL_003"
	ErrCodeDescriptorFailed     ErrorCode = "MOL_004"
	ErrCodePharmacophoreFailed  ErrorCode = "MOL_005"
	ErrCodeCatalogUnavailable   ErrorCode = "MOL_006"
)

// Target error codes
const (
	ErrCodeTargetUnresolved ErrorCode = "TGT_001"
)

// Upload / file-parsing error codes
const (
	ErrCodeUnsupportedFormat ErrorCode = "UPL_001"
	ErrCodeMissingColumn     ErrorCode = "UPL_002"
	ErrCodeEmptyUpload       ErrorCode = "UPL_003"
)

// AI / inference error codes
const (
	ErrCodeModelNotLoaded     ErrorCode = "AI_001"
	ErrCodeInferenceFailed    ErrorCode = "AI_002"
	ErrCodeModelUnavailable   ErrorCode = "AI_003"
	ErrCodeNarrativeOffline   ErrorCode = "AI_004"
	ErrCodeNarrativeMalformed ErrorCode = "AI_005"
)

// CodeOK is the zero-value code returned by GetCode for a nil error.
const CodeOK = ErrorCode("OK")

// CodeUnknown is returned by GetCode when no AppError is present in the chain.
const CodeUnknown = ErrorCode("UNKNOWN")
