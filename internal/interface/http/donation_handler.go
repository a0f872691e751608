package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/savelife-bd/savelife-server/internal/application"
	"github.com/savelife-bd/savelife-server/internal/interface/middleware"
	"github.com/savelife-bd/savelife-server/pkg/response"
	"github.com/savelife-bd/savelife-server/pkg/validation"
)

type DonationHandler struct {
	Svc    *application.DonationService
	Logger *logrus.Logger
}

func NewDonationHandler(svc *application.DonationService, logger *logrus.Logger) *DonationHandler {
	return &DonationHandler{Svc: svc, Logger: logger}
}

type createDonationRequest struct {
	RequesterName  string `json:"requesterName" binding:"required"`
	RecipientName  string `json:"recipientName" binding:"required"`
	DistrictName   string `json:"districtName" binding:"required"`
	Upzila         string `json:"upzila"`
	HospitalName   string `json:"hospitalName"`
	FullAddress    string `json:"fullAddress"`
	BloodGroup     string `json:"bloodGroup" binding:"required"`
	DonationDate   string `json:"donationDate" binding:"required"`
	DonationTime   string `json:"donationTime"`
	RequestMessage string `json:"requestMessage"`
}

// Create inserts a donation request owned by the verified caller. The
// requester email always comes from the token, never from the body.
func (h *DonationHandler) Create(c *gin.Context) {
	var req createDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	email := c.GetString(middleware.CtxUserEmailKey)
	d, err := h.Svc.Create(c.Request.Context(), email, application.CreateDonationInput{
		RequesterName:  req.RequesterName,
		RecipientName:  req.RecipientName,
		DistrictName:   req.DistrictName,
		Upzila:         req.Upzila,
		HospitalName:   req.HospitalName,
		FullAddress:    req.FullAddress,
		BloodGroup:     req.BloodGroup,
		DonationDate:   req.DonationDate,
		DonationTime:   req.DonationTime,
		RequestMessage: req.RequestMessage,
	})
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, d, "request created", nil)
}

// MyRequests returns the caller's paginated requests plus the total for the
// same filter.
func (h *DonationHandler) MyRequests(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmailKey)
	size, page := pageParams(c)
	res, err := h.Svc.MyRequests(c.Request.Context(), email, size, page)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res, "my requests", nil)
}

func (h *DonationHandler) MyRecentRequests(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmailKey)
	items, err := h.Svc.RecentRequests(c.Request.Context(), email)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "recent requests", nil)
}

// AllRequests is role-scoped: donors only ever see their own requests.
func (h *DonationHandler) AllRequests(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmailKey)
	size, page := pageParams(c)
	res, err := h.Svc.AllRequests(c.Request.Context(), email, c.Query("status"), size, page)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res, "requests", nil)
}

func (h *DonationHandler) AllPendingRequests(c *gin.Context) {
	items, err := h.Svc.PendingRequests(c.Request.Context())
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "pending requests", nil)
}

func (h *DonationHandler) Details(c *gin.Context) {
	d, err := h.Svc.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, d, "donation details", nil)
}

// Search filters by whichever of bloodGroup/district/upzila are supplied;
// omitted params do not constrain the result.
func (h *DonationHandler) Search(c *gin.Context) {
	items, err := h.Svc.Search(c.Request.Context(),
		c.Query("bloodGroup"), c.Query("district"), c.Query("upzila"))
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "search results", nil)
}

type confirmDonationRequest struct {
	DonationStatus string `json:"donationStatus" binding:"required"`
}

// Confirm moves a request to a new donation status.
func (h *DonationHandler) Confirm(c *gin.Context) {
	var req confirmDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ConfirmStatus(c.Request.Context(), c.Param("id"), req.DonationStatus); err != nil {
		renderError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"updated": true}, "donation status updated", nil)
}

// pageParams reads size/page with sane defaults; page is zero-indexed.
func pageParams(c *gin.Context) (size, page int) {
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}
	return size, page
}
