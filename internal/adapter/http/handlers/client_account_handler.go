package handlers

import (
	"errors"
	"net/http"

	request "studioops/internal/adapter/http/dto/request"
	response "studioops/internal/adapter/http/dto/response"
	"studioops/internal/usecase"
	"studioops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidClientAccountPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_ACCOUNT_INPUT", "Invalid client account payload", http.StatusBadRequest)

// ClientAccountHandler handles portal client account reads and storage
// accounting.
type ClientAccountHandler struct {
	usecase usecase.IClientAccountUseCase
}

func NewClientAccountHandler(uc usecase.IClientAccountUseCase) *ClientAccountHandler {
	return &ClientAccountHandler{usecase: uc}
}

func (h *ClientAccountHandler) GetClientAccount(c *gin.Context) {
	account, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapClientAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClientAccount(account))
}

func (h *ClientAccountHandler) RecordStorageUsed(c *gin.Context) {
	var payload request.RecordStorageRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.StorageUsedGB == nil {
		c.JSON(errInvalidClientAccountPayload.HTTPStatus, errInvalidClientAccountPayload.ToHTTPError())
		return
	}

	account, err := h.usecase.RecordStorageUsed(c.Request.Context(), c.Param("id"), *payload.StorageUsedGB)
	if err != nil {
		appErr := mapClientAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClientAccount(account))
}

func mapClientAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientAccountID), errors.Is(err, usecase.ErrInvalidStorageAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientAccountNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_ACCOUNT_NOT_FOUND", "Client account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageLimitExceeded):
		return pkg.NewDomainErrorSimple("STORAGE_LIMIT_EXCEEDED", "Storage limit exceeded", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
