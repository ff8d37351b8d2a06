package v1

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/service"
	"github.com/pharmahub/backend/internal/storage"
	"github.com/pharmahub/backend/internal/wizard"
	"github.com/pharmahub/backend/pkg/logger"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

func internalErrorResponse(c *gin.Context, msg string, err error) {
	logger.Error(msg, zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, getErrorStruct(UnknownErrorCode))
}

func validationErrorResponse(c *gin.Context, err error) {
	response := ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response.Errors = out
	} else {
		response.Errors = []ValidationError{{FieldKey: "body", ErrorMessage: "Malformed request body"}}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %v characters", value)
	case "max":
		return fmt.Sprintf("Must be at most %v characters", value)
	case "password":
		return "Password must be at least 8 characters and contain an uppercase letter, a lowercase letter, a number and a special character"
	}
	return tag
}

func fieldErrorList(errs wizard.FieldErrors) []ValidationError {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]ValidationError, len(keys))
	for i, k := range keys {
		out[i] = ValidationError{FieldKey: k, ErrorMessage: errs[k]}
	}
	return out
}

// signupErrorStruct carries the wizard state next to the error so the client
// can re-render without a second request.
type signupErrorStruct struct {
	ErrorCode    ErrorCode         `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors,omitempty"`
	State        *wizard.State     `json:"state,omitempty"`
}

// signupErrorResponse maps wizard, account and upload failures to a status
// and an error body.
func signupErrorResponse(c *gin.Context, err error, st *wizard.State) {
	if st != nil && st.Status == "" {
		st = nil
	}

	status := http.StatusInternalServerError
	body := signupErrorStruct{State: st}
	setCode := func(s int, code ErrorCode) {
		status = s
		e := getErrorStruct(code)
		body.ErrorCode, body.ErrorMessage = e.ErrorCode, string(e.ErrorMessage)
	}

	var (
		fieldErrs  wizard.FieldErrors
		valueErr   *wizard.ValueError
		accountErr *domain.AccountCreationError
	)
	switch {
	case errors.As(err, &fieldErrs):
		status = http.StatusUnprocessableEntity
		body.ErrorCode, body.ErrorMessage = ValidationErrorCode, ValidationErrorMessage
		body.Errors = fieldErrorList(fieldErrs)
	case errors.As(err, &valueErr):
		status = http.StatusBadRequest
		body.ErrorCode, body.ErrorMessage = ValidationErrorCode, ValidationErrorMessage
		body.Errors = []ValidationError{{FieldKey: valueErr.Field, ErrorMessage: valueErr.Message}}
	case errors.As(err, &accountErr):
		status = http.StatusUnprocessableEntity
		body.ErrorCode, body.ErrorMessage = AccountCreationFailedCode, accountErr.Message
		if accountErr.Field != "" {
			body.Errors = []ValidationError{{FieldKey: accountErr.Field, ErrorMessage: accountErr.Message}}
		}
	case errors.Is(err, wizard.ErrSessionNotFound):
		setCode(http.StatusNotFound, SessionNotFoundCode)
	case errors.Is(err, wizard.ErrTooManySessions):
		setCode(http.StatusServiceUnavailable, TooManySessionsCode)
	case errors.Is(err, wizard.ErrSubmitting):
		setCode(http.StatusConflict, SubmissionInProgressCode)
	case errors.Is(err, wizard.ErrCompleted):
		setCode(http.StatusConflict, RegistrationCompletedCode)
	case errors.Is(err, wizard.ErrNotTerminalStep):
		setCode(http.StatusConflict, NotTerminalStepCode)
	case errors.Is(err, wizard.ErrUnknownField):
		setCode(http.StatusBadRequest, UnknownFieldCode)
	case errors.Is(err, wizard.ErrAddressLookup):
		setCode(http.StatusServiceUnavailable, AddressUnavailableCode)
	case errors.Is(err, service.ErrUnknownUploadEndpoint), errors.Is(err, storage.ErrUnknownEndpoint):
		setCode(http.StatusNotFound, UnknownUploadEndpointCode)
	case errors.Is(err, storage.ErrFileTooLarge):
		setCode(http.StatusRequestEntityTooLarge, FileTooLargeCode)
	case errors.Is(err, storage.ErrUnsupportedType):
		setCode(http.StatusUnsupportedMediaType, UnsupportedFileTypeCode)
	case errors.Is(err, storage.ErrEmptyFile):
		setCode(http.StatusBadRequest, EmptyFileCode)
	default:
		logger.Error("signup request failed", zap.Error(err))
		setCode(http.StatusInternalServerError, UnknownErrorCode)
	}

	c.AbortWithStatusJSON(status, body)
}

// identityErrorResponse maps identity service errors.
func identityErrorResponse(c *gin.Context, msg string, err error) {
	switch {
	case domain.IsAuthError(err):
		errorResponse(c, http.StatusUnauthorized, InvalidCredentialsCode)
	case errors.Is(err, service.ErrEmailTaken):
		errorResponse(c, http.StatusConflict, UserAlreadyExistsCode)
	case errors.Is(err, service.ErrUserNotFound):
		errorResponse(c, http.StatusNotFound, UserNotFoundCode)
	case errors.Is(err, service.ErrPasswordRejected):
		errorResponse(c, http.StatusBadRequest, PasswordRejectedCode)
	case errors.Is(err, service.ErrVerificationCodeNotFound):
		errorResponse(c, http.StatusNotFound, VerificationCodeNotFoundCode)
	case errors.Is(err, service.ErrVerificationCodeInvalid):
		errorResponse(c, http.StatusBadRequest, VerificationCodeInvalidCode)
	case errors.Is(err, service.ErrVerificationCodeExpired):
		errorResponse(c, http.StatusGone, VerificationCodeExpiredCode)
	case errors.Is(err, service.ErrTooManyAttempts):
		errorResponse(c, http.StatusTooManyRequests, TooManyAttemptsCode)
	case errors.Is(err, service.ErrAlreadyVerified):
		errorResponse(c, http.StatusConflict, AlreadyVerifiedCode)
	case errors.Is(err, service.ErrResendCooldown):
		errorResponse(c, http.StatusTooManyRequests, ResendCooldownCode)
	case errors.Is(err, service.ErrResetTokenInvalid):
		errorResponse(c, http.StatusBadRequest, ResetTokenInvalidCode)
	default:
		internalErrorResponse(c, msg, err)
	}
}
