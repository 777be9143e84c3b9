package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/localscan/explorer/api"
	"github.com/localscan/explorer/internal/common"
)

type SaveABIRequest struct {
	ABI  json.RawMessage `json:"abi" swaggertype:"array,object"`
	Name string          `json:"name"`
}

// @Summary Get contract metadata
// @Description Retrieve the stored ABI and display name of a verified contract
// @Tags storage
// @Produce json
// @Param address path string true "Contract address"
// @Success 200 {object} common.ContractMetadata
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /api/storage/abis/{address} [get]
func (h *Handler) GetABI(c *gin.Context) {
	address := c.Param("address")
	record, err := h.store.Get(c.Request.Context(), address)
	if err != nil {
		handleError(c, err, "Error reading contract metadata")
		return
	}
	if record == nil {
		api.NotFoundErrorHandler(c, fmt.Errorf("no ABI stored for %s", common.NormalizeAddress(address)))
		return
	}
	c.JSON(http.StatusOK, record)
}

// @Summary Save contract metadata
// @Description Store an ABI and display name for a contract, replacing any previous record
// @Tags storage
// @Accept json
// @Produce json
// @Param address path string true "Contract address"
// @Param body body SaveABIRequest true "ABI and display name"
// @Success 200 {object} api.SuccessResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /api/storage/abis/{address} [post]
func (h *Handler) SaveABI(c *gin.Context) {
	var req SaveABIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestErrorHandler(c, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if len(req.ABI) == 0 || string(req.ABI) == "null" {
		api.BadRequestErrorHandler(c, errors.New("abi is required"))
		return
	}
	if err := h.store.Save(c.Request.Context(), c.Param("address"), req.ABI, req.Name); err != nil {
		handleError(c, err, "Error saving contract metadata")
		return
	}
	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}

// @Summary List verified contracts
// @Description Retrieve every stored contract metadata record
// @Tags storage
// @Produce json
// @Success 200 {array} common.ContractMetadata
// @Failure 500 {object} api.Error
// @Router /api/storage/contracts/verified [get]
func (h *Handler) GetVerifiedContracts(c *gin.Context) {
	records, err := h.store.ListVerified(c.Request.Context())
	if err != nil {
		handleError(c, err, "Error listing contract metadata")
		return
	}
	c.JSON(http.StatusOK, records)
}

// @Summary Clear contract metadata
// @Description Delete every stored contract metadata record
// @Tags storage
// @Produce json
// @Success 200 {object} api.SuccessResponse
// @Failure 500 {object} api.Error
// @Router /api/storage/clear [post]
func (h *Handler) ClearStorage(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		handleError(c, err, "Error clearing contract metadata")
		return
	}
	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}
