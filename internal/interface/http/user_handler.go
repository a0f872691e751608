package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/savelife-bd/savelife-server/internal/application"
	"github.com/savelife-bd/savelife-server/internal/domain/entity"
	"github.com/savelife-bd/savelife-server/internal/interface/middleware"
	"github.com/savelife-bd/savelife-server/pkg/response"
	"github.com/savelife-bd/savelife-server/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required"`
	District   string `json:"district"`
	Upzila     string `json:"upzila"`
	BloodGroup string `json:"bloodGroup"`
	PhotoURL   string `json:"photoURL"`
}

// Register creates a profile. Public: registration happens right after the
// identity provider signs the user up, before any token round-trip.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:      req.Email,
		Name:       req.Name,
		District:   req.District,
		Upzila:     req.Upzila,
		BloodGroup: req.BloodGroup,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, u, "user registered", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, users, "users", nil)
}

// MyProfile returns the caller's own profile by the verified email.
func (h *UserHandler) MyProfile(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmailKey)
	u, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "profile", nil)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	u, err := h.Svc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

// UpdateProfile applies the whitelisted profile fields to the addressed
// user. Requires authentication only; see the user module for the policy
// note on privilege.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req entity.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.UpdateProfile(c.Request.Context(), c.Param("email"), req); err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"updated": true}, "profile updated", nil)
}

// UpdateStatus sets a user's status from query params {email,status}.
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	email := c.Query("email")
	status := c.Query("status")
	if email == "" || status == "" {
		response.Error[any](c, http.StatusBadRequest, "email and status are required", nil)
		return
	}
	if err := h.Svc.UpdateStatus(c.Request.Context(), email, status); err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"updated": true}, "status updated", nil)
}

// UpdateRole sets a user's role from query params {email,role}.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	email := c.Query("email")
	role := c.Query("role")
	if email == "" || role == "" {
		response.Error[any](c, http.StatusBadRequest, "email and role are required", nil)
		return
	}
	if err := h.Svc.UpdateRole(c.Request.Context(), email, role); err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"updated": true}, "role updated", nil)
}

// UploadPhoto accepts a multipart "photo" file, stores it in GCS and
// persists the public URL on the caller's profile.
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmailKey)
	file, err := c.FormFile("photo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "photo file is required", nil)
		return
	}
	f, err := file.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable photo file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadPhoto(c.Request.Context(), email, file.Filename, file.Header.Get("Content-Type"), f)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"photoURL": url}, "photo uploaded", nil)
}
