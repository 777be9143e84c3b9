package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/localscan/explorer/api"
)

// @Summary Get latest blocks
// @Description Retrieve the most recent blocks, highest first, without their transactions
// @Tags blocks
// @Produce json
// @Security BasicAuth
// @Param limit query int false "Number of blocks" default(10)
// @Success 200 {object} api.QueryResponse{data=[]common.Block}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /api/blocks [get]
func (h *Handler) GetBlocks(c *gin.Context) {
	params, ok := h.parsePagination(c)
	if !ok {
		return
	}
	blocks, err := h.explorer.LatestBlocks(c.Request.Context(), params.Limit)
	if err != nil {
		handleError(c, err, "Error fetching latest blocks")
		return
	}
	sendJSONResponse(c, api.QueryResponse{
		Meta: api.Meta{ChainId: h.chainId, Page: 1, Limit: params.Limit, TotalItems: len(blocks), TotalPages: 1},
		Data: blocks,
	})
}

// @Summary Get block
// @Description Retrieve a block with its transactions
// @Tags blocks
// @Produce json
// @Security BasicAuth
// @Param number path string true "Block number, decimal or 0x-prefixed hex"
// @Success 200 {object} api.QueryResponse{data=common.Block}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /api/blocks/{number} [get]
func (h *Handler) GetBlock(c *gin.Context) {
	number, err := api.ParseBlockNumber(c.Param("number"))
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	block, err := h.explorer.Block(c.Request.Context(), number)
	if err != nil {
		handleError(c, err, "Error fetching block")
		return
	}
	sendJSONResponse(c, api.QueryResponse{Meta: api.Meta{ChainId: h.chainId}, Data: block})
}
