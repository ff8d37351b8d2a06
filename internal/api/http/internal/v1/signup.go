package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/storage"
	"github.com/pharmahub/backend/internal/wizard"
)

func (h *Handler) initSignupRoutes(api *gin.RouterGroup) {
	signup := api.Group("/signup")
	{
		signup.GET("/steps", h.getSignupSteps)
		signup.POST("/password-strength", h.passwordStrength)
		signup.GET("/subdomain", h.checkSubdomain)

		sessions := signup.Group("/sessions")
		sessions.POST("", h.openSignupSession)
		sessions.GET("/:id", h.getSignupSession)
		sessions.DELETE("/:id", h.discardSignupSession)
		sessions.PATCH("/:id/fields", h.setSignupFields)
		sessions.POST("/:id/advance", h.advanceSignup)
		sessions.POST("/:id/retreat", h.retreatSignup)
		sessions.POST("/:id/submit", h.submitSignup)
		sessions.POST("/:id/uploads/:endpoint", h.uploadSignupFile)
	}
}

type signupSessionResponse struct {
	SessionID uuid.UUID     `json:"session_id"`
	Steps     []wizard.Step `json:"steps,omitempty"`
	State     wizard.State  `json:"state"`
}

type setFieldsRequest struct {
	Fields map[string]interface{} `json:"fields" binding:"required"`
}

type passwordStrengthRequest struct {
	Password string `json:"password"`
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, SessionNotFoundCode)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Get Signup Steps
// @Tags Signup
// @Description Ordered step table with the fields each step gates
// @ModuleID getSignupSteps
// @Produce  json
// @Success 200 {array} wizard.Step
// @Router /signup/steps [get]
func (h *Handler) getSignupSteps(c *gin.Context) {
	c.JSON(http.StatusOK, wizard.Steps())
}

// @Summary Password Strength
// @Tags Signup
// @Description Display-only strength meter for a candidate password
// @ModuleID passwordStrength
// @Accept  json
// @Produce  json
// @Param input body passwordStrengthRequest true "Password"
// @Success 200 {object} wizard.Strength
// @Failure 400 {object} ValidationErrorStruct
// @Router /signup/password-strength [post]
func (h *Handler) passwordStrength(c *gin.Context) {
	var req passwordStrengthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard.PasswordStrength(req.Password))
}

// @Summary Check Subdomain
// @Tags Signup
// @Description Derives a subdomain from a business name and reports whether it is free
// @ModuleID checkSubdomain
// @Produce  json
// @Param name query string true "Business name or subdomain"
// @Success 200 {object} service.SubdomainCheck
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /signup/subdomain [get]
func (h *Handler) checkSubdomain(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
			ErrorCode:    ValidationErrorCode,
			ErrorMessage: ValidationErrorMessage,
			Errors:       []ValidationError{{FieldKey: "name", ErrorMessage: msgForTag("required", "")}},
		})
		return
	}

	res, err := h.services.Signup.CheckSubdomain(c.Request.Context(), name)
	if err != nil {
		internalErrorResponse(c, "check subdomain failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Open Signup Session
// @Tags Signup
// @Description Starts a registration wizard on the account step
// @ModuleID openSignupSession
// @Produce  json
// @Success 201 {object} signupSessionResponse
// @Failure 503 {object} ErrorStruct
// @Router /signup/sessions [post]
func (h *Handler) openSignupSession(c *gin.Context) {
	id, st, err := h.services.Signup.Open(c.Request.Context())
	if err != nil {
		signupErrorResponse(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, signupSessionResponse{SessionID: id, Steps: wizard.Steps(), State: st})
}

// @Summary Get Signup Session
// @Tags Signup
// @Description Current step, form snapshot without secrets, field errors and password strength
// @ModuleID getSignupSession
// @Produce  json
// @Param id path string true "Session ID"
// @Success 200 {object} signupSessionResponse
// @Failure 404 {object} ErrorStruct
// @Router /signup/sessions/{id} [get]
func (h *Handler) getSignupSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	st, err := h.services.Signup.State(id)
	if err != nil {
		signupErrorResponse(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, signupSessionResponse{SessionID: id, State: st})
}

// @Summary Discard Signup Session
// @Tags Signup
// @ModuleID discardSignupSession
// @Param id path string true "Session ID"
// @Success 204
// @Router /signup/sessions/{id} [delete]
func (h *Handler) discardSignupSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	h.services.Signup.Discard(id)
	c.Status(http.StatusNoContent)
}

// @Summary Set Signup Fields
// @Tags Signup
// @Description Applies field edits. Derived values (subdomain, address cascade) settle before the response.
// @ModuleID setSignupFields
// @Accept  json
// @Produce  json
// @Param id path string true "Session ID"
// @Param input body setFieldsRequest true "Field path to value"
// @Success 200 {object} signupSessionResponse
// @Failure 400 {object} signupErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} signupErrorStruct
// @Router /signup/sessions/{id}/fields [patch]
func (h *Handler) setSignupFields(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req setFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	st, err := h.services.Signup.SetFields(c.Request.Context(), id, req.Fields)
	h.signupResult(c, id, st, err)
}

// @Summary Advance Signup
// @Tags Signup
// @Description Validates the current step and moves forward when it passes
// @ModuleID advanceSignup
// @Produce  json
// @Param id path string true "Session ID"
// @Success 200 {object} signupSessionResponse
// @Failure 404 {object} ErrorStruct
// @Failure 422 {object} signupErrorStruct
// @Router /signup/sessions/{id}/advance [post]
func (h *Handler) advanceSignup(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	st, err := h.services.Signup.Advance(id)
	h.signupResult(c, id, st, err)
}

// @Summary Retreat Signup
// @Tags Signup
// @Description Moves one step back without validation
// @ModuleID retreatSignup
// @Produce  json
// @Param id path string true "Session ID"
// @Success 200 {object} signupSessionResponse
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} signupErrorStruct
// @Router /signup/sessions/{id}/retreat [post]
func (h *Handler) retreatSignup(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	st, err := h.services.Signup.Retreat(id)
	h.signupResult(c, id, st, err)
}

// @Summary Submit Signup
// @Tags Signup
// @Description Validates the whole form and creates the account with its pharmacy profile
// @ModuleID submitSignup
// @Produce  json
// @Param id path string true "Session ID"
// @Success 200 {object} signupSessionResponse
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} signupErrorStruct
// @Failure 422 {object} signupErrorStruct
// @Router /signup/sessions/{id}/submit [post]
func (h *Handler) submitSignup(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	st, err := h.services.Signup.Submit(c.Request.Context(), id)
	h.signupResult(c, id, st, err)
}

// @Summary Upload Signup File
// @Tags Signup
// @Description Stores a business logo or license document and sets its URL on the form
// @ModuleID uploadSignupFile
// @Accept  multipart/form-data
// @Produce  json
// @Param id path string true "Session ID"
// @Param endpoint path string true "businessLogo or licenseDocument"
// @Param file formData file true "File"
// @Success 200 {object} signupSessionResponse
// @Failure 400 {object} signupErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 413 {object} signupErrorStruct
// @Failure 415 {object} signupErrorStruct
// @Router /signup/sessions/{id}/uploads/{endpoint} [post]
func (h *Handler) uploadSignupFile(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, MissingFileCode)
		return
	}
	f, err := header.Open()
	if err != nil {
		internalErrorResponse(c, "open multipart file failed", err)
		return
	}
	defer f.Close()

	st, err := h.services.Signup.Upload(c.Request.Context(), id, domain.UploadEndpoint(c.Param("endpoint")), storage.File{
		Name:   header.Filename,
		Reader: f,
	})
	h.signupResult(c, id, st, err)
}

func (h *Handler) signupResult(c *gin.Context, id uuid.UUID, st wizard.State, err error) {
	if err != nil {
		signupErrorResponse(c, err, &st)
		return
	}
	c.JSON(http.StatusOK, signupSessionResponse{SessionID: id, State: st})
}
