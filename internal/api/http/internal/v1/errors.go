package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	UserAlreadyExistsCode           = 1001
	UserAlreadyExistsMessage        = "user already exists"
	UserNotFoundCode                = 1002
	UserNotFoundMessage             = "user not found"
	InvalidCredentialsCode          = 1005
	InvalidCredentialsMessage       = "invalid email or password"
	PasswordRejectedCode            = 1006
	PasswordRejectedMessage         = "password does not meet the requirements"
	VerificationCodeNotFoundCode    = 1007
	VerificationCodeNotFoundMessage = "verification code not found"
	VerificationCodeInvalidCode     = 1008
	VerificationCodeInvalidMessage  = "verification code is invalid"
	VerificationCodeExpiredCode     = 1009
	VerificationCodeExpiredMessage  = "verification code expired"
	TooManyAttemptsCode             = 1010
	TooManyAttemptsMessage          = "too many verification attempts"
	AlreadyVerifiedCode             = 1011
	AlreadyVerifiedMessage          = "email already verified"
	ResendCooldownCode              = 1012
	ResendCooldownMessage           = "please wait before requesting another code"
	ResetTokenInvalidCode           = 1013
	ResetTokenInvalidMessage        = "password reset link is invalid or expired"
	UnauthorizedCode                = 1014
	UnauthorizedMessage             = "unauthorized"

	SessionNotFoundCode          = 2001
	SessionNotFoundMessage       = "signup session not found or expired"
	TooManySessionsCode          = 2002
	TooManySessionsMessage       = "signup is busy, try again later"
	SubmissionInProgressCode     = 2003
	SubmissionInProgressMessage  = "submission in progress"
	RegistrationCompletedCode    = 2004
	RegistrationCompletedMessage = "registration already completed"
	NotTerminalStepCode          = 2005
	NotTerminalStepMessage       = "submit is only allowed from the last step"
	UnknownFieldCode             = 2006
	UnknownFieldMessage          = "unknown field"
	AccountCreationFailedCode    = 2008
	AccountCreationFailedMessage = "account creation failed"

	UnknownUploadEndpointCode    = 3001
	UnknownUploadEndpointMessage = "unknown upload endpoint"
	FileTooLargeCode             = 3002
	FileTooLargeMessage          = "file is too large"
	UnsupportedFileTypeCode      = 3003
	UnsupportedFileTypeMessage   = "file type is not allowed"
	EmptyFileCode                = 3004
	EmptyFileMessage             = "file is empty"
	MissingFileCode              = 3005
	MissingFileMessage           = "multipart field file is required"

	AddressUnavailableCode    = 4001
	AddressUnavailableMessage = "address data is temporarily unavailable"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "Validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

var errorMessages = map[ErrorCode]ErrorMessage{
	UserAlreadyExistsCode:        UserAlreadyExistsMessage,
	UserNotFoundCode:             UserNotFoundMessage,
	InvalidCredentialsCode:       InvalidCredentialsMessage,
	PasswordRejectedCode:         PasswordRejectedMessage,
	VerificationCodeNotFoundCode: VerificationCodeNotFoundMessage,
	VerificationCodeInvalidCode:  VerificationCodeInvalidMessage,
	VerificationCodeExpiredCode:  VerificationCodeExpiredMessage,
	TooManyAttemptsCode:          TooManyAttemptsMessage,
	AlreadyVerifiedCode:          AlreadyVerifiedMessage,
	ResendCooldownCode:           ResendCooldownMessage,
	ResetTokenInvalidCode:        ResetTokenInvalidMessage,
	UnauthorizedCode:             UnauthorizedMessage,

	SessionNotFoundCode:       SessionNotFoundMessage,
	TooManySessionsCode:       TooManySessionsMessage,
	SubmissionInProgressCode:  SubmissionInProgressMessage,
	RegistrationCompletedCode: RegistrationCompletedMessage,
	NotTerminalStepCode:       NotTerminalStepMessage,
	UnknownFieldCode:          UnknownFieldMessage,
	AccountCreationFailedCode: AccountCreationFailedMessage,

	UnknownUploadEndpointCode: UnknownUploadEndpointMessage,
	FileTooLargeCode:          FileTooLargeMessage,
	UnsupportedFileTypeCode:   UnsupportedFileTypeMessage,
	EmptyFileCode:             EmptyFileMessage,
	MissingFileCode:           MissingFileMessage,

	AddressUnavailableCode: AddressUnavailableMessage,
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	msg, ok := errorMessages[code]
	if !ok {
		return &ErrorStruct{ErrorCode: UnknownErrorCode, ErrorMessage: UnknownErrorMessage}
	}
	return &ErrorStruct{ErrorCode: code, ErrorMessage: msg}
}
