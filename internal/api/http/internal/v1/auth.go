package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pharmahub/backend/internal/service"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
		auth.POST("/password/reset-request", h.requestPasswordReset)
		auth.POST("/password/reset", h.resetPassword)
		auth.PUT("/password", h.userIdentityMiddleware, h.updatePassword)
		auth.GET("/me", h.userIdentityMiddleware, h.me)
		auth.POST("/verification/resend", h.resendVerification)
		auth.POST("/verification/confirm", h.confirmVerification)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userAuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken uuid.UUID `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type emailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,password"`
}

type updatePasswordRequest struct {
	Password string `json:"password" binding:"required,password"`
}

type confirmVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,min=4,max=10"`
}

// @Summary User Login
// @Tags Auth
// @ModuleID login
// @Accept  json
// @Produce  json
// @Param input body loginRequest true "Credentials"
// @Success 200 {object} userAuthResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	session, err := h.services.Identities.Login(c.Request.Context(), service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
	})
	if err != nil {
		identityErrorResponse(c, "login failed", err)
		return
	}

	c.JSON(http.StatusOK, userAuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    int64(session.AccessTTL.Seconds()),
	})
}

// @Summary User Logout
// @Tags Auth
// @ModuleID logout
// @Accept  json
// @Param input body logoutRequest true "Refresh token"
// @Success 204
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	var req logoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Identities.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		identityErrorResponse(c, "logout failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Request Password Reset
// @Tags Auth
// @Description Always accepted; a link is mailed when the address belongs to a user
// @ModuleID requestPasswordReset
// @Accept  json
// @Param input body emailRequest true "Email"
// @Success 202
// @Failure 400 {object} ValidationErrorStruct
// @Router /auth/password/reset-request [post]
func (h *Handler) requestPasswordReset(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	_ = h.services.Identities.RequestPasswordReset(c.Request.Context(), req.Email)
	c.Status(http.StatusAccepted)
}

// @Summary Reset Password
// @Tags Auth
// @ModuleID resetPassword
// @Accept  json
// @Param input body resetPasswordRequest true "Reset token and new password"
// @Success 204
// @Failure 400 {object} ErrorStruct
// @Router /auth/password/reset [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Identities.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		identityErrorResponse(c, "reset password failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update Password
// @Tags Auth
// @ModuleID updatePassword
// @Accept  json
// @Param input body updatePasswordRequest true "New password"
// @Success 204
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Security UserAuth
// @Router /auth/password [put]
func (h *Handler) updatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	user, ok := getUser(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode)
		return
	}

	if err := h.services.Identities.UpdatePassword(c.Request.Context(), user.ID, req.Password); err != nil {
		identityErrorResponse(c, "update password failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current User
// @Tags Auth
// @ModuleID me
// @Produce  json
// @Success 200 {object} domain.UserIdentity
// @Failure 401 {object} ErrorStruct
// @Security UserAuth
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	user, ok := getUser(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Resend Verification Code
// @Tags Auth
// @ModuleID resendVerification
// @Accept  json
// @Param input body emailRequest true "Email"
// @Success 202
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 429 {object} ErrorStruct
// @Router /auth/verification/resend [post]
func (h *Handler) resendVerification(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Identities.ResendVerification(c.Request.Context(), req.Email); err != nil {
		identityErrorResponse(c, "resend verification failed", err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Confirm Email
// @Tags Auth
// @ModuleID confirmVerification
// @Accept  json
// @Param input body confirmVerificationRequest true "Email and code"
// @Success 204
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 410 {object} ErrorStruct
// @Failure 429 {object} ErrorStruct
// @Router /auth/verification/confirm [post]
func (h *Handler) confirmVerification(c *gin.Context) {
	var req confirmVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Identities.VerifyEmail(c.Request.Context(), req.Email, req.Code); err != nil {
		identityErrorResponse(c, "verify email failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
