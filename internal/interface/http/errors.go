package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
	"github.com/savelife-bd/savelife-server/internal/domain/repository"
	"github.com/savelife-bd/savelife-server/pkg/response"
)

// renderError maps domain errors onto the HTTP taxonomy: invalid ids and
// enum values are the caller's fault (400), missing resources are 404, and
// everything else is a store or oracle failure surfaced as 502 with a
// generic message so internals never leak.
func renderError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		response.Error[any](c, http.StatusBadRequest, "invalid identifier", nil)
	case errors.Is(err, entity.ErrInvalidRole),
		errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, entity.ErrInvalidDonationStatus):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, repository.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("store operation failed")
		}
		response.Error[any](c, http.StatusBadGateway, "service unavailable", nil)
	}
}
