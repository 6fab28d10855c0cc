package http

import (
	"errors"
	"net/http"

	"blogpress/internal/entity"
	"blogpress/internal/usecase"
	"blogpress/pkg/logger"
	"blogpress/pkg/session"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authUseCase  usecase.AuthUseCase
	logger       *logger.Logger
	secureCookie bool
}

func NewAdminHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger, secureCookie bool) *AdminHandler {
	return &AdminHandler{
		authUseCase:  authUseCase,
		logger:       logger,
		secureCookie: secureCookie,
	}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminMessageResponse struct {
	Message string         `json:"message"`
	Admin   *AdminResponse `json:"admin"`
}

type CheckAuthResponse struct {
	Admin *AdminResponse `json:"admin"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Signup godoc
// @Summary      Register an admin
// @Description  Create an admin account with name, email and password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup data"
// @Success      201  {object}  AdminMessageResponse
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/signup [post]
func (h *AdminHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	admin, err := h.authUseCase.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if abortWithValidation(c, err) {
			return
		}
		if errors.Is(err, entity.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create admin"})
		return
	}

	c.JSON(http.StatusCreated, AdminMessageResponse{
		Message: "Admin created successfully",
		Admin:   toAdminResponse(admin),
	})
}

// Login godoc
// @Summary      Log in an admin
// @Description  Verify credentials and set the adminId session cookie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  AdminMessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	admin, token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	session.SetCookie(c.Writer, token, h.secureCookie)
	h.logger.Info("Admin %s logged in", admin.ID)

	c.JSON(http.StatusOK, AdminMessageResponse{
		Message: "Login successful",
		Admin:   toAdminResponse(admin),
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Clear the session cookie
// @Tags         admin
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	session.ClearCookie(c.Writer, h.secureCookie)
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// CheckAuth godoc
// @Summary      Current admin
// @Description  Resolve the session cookie to the logged-in admin
// @Tags         admin
// @Produce      json
// @Success      200  {object}  CheckAuthResponse
// @Failure      401  {object}  CheckAuthResponse
// @Router       /admin/check-auth [get]
func (h *AdminHandler) CheckAuth(c *gin.Context) {
	admin, err := h.authUseCase.ResolveSession(c.Request.Context(), session.TokenFrom(c.Request))
	if err != nil {
		if !errors.Is(err, entity.ErrUnauthorized) {
			h.logger.Error("Failed to check auth: %v", err)
		}
		c.JSON(http.StatusUnauthorized, CheckAuthResponse{Admin: nil})
		return
	}

	c.JSON(http.StatusOK, CheckAuthResponse{Admin: toAdminResponse(admin)})
}
