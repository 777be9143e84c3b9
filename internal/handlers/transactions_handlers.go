package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/localscan/explorer/api"
	"github.com/localscan/explorer/internal/common"
)

// @Summary Get transactions of an address
// @Description Retrieve the transactions sent or received by an address within the recent block window, newest first
// @Tags transactions
// @Produce json
// @Security BasicAuth
// @Param address path string true "Account or contract address"
// @Param page query int false "Page number for pagination" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Success 200 {object} api.QueryResponse{data=[]explorer.EnrichedTransaction}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /api/address/{address}/transactions [get]
func (h *Handler) GetAddressTransactions(c *gin.Context) {
	params, ok := h.parsePagination(c)
	if !ok {
		return
	}
	address, err := common.ValidateAddress(c.Param("address"))
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	page, err := h.explorer.AddressTransactions(c.Request.Context(), address, params.Page, params.Limit)
	if err != nil {
		handleError(c, err, "Error scanning address transactions")
		return
	}
	meta := pageMeta(page, h.chainId)
	meta.Address = address
	sendJSONResponse(c, api.QueryResponse{Meta: meta, Data: page.Items})
}

// @Summary Get recent transactions
// @Description Retrieve every transaction within the recent block window, newest first
// @Tags transactions
// @Produce json
// @Security BasicAuth
// @Param page query int false "Page number for pagination" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Success 200 {object} api.QueryResponse{data=[]explorer.EnrichedTransaction}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /api/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	params, ok := h.parsePagination(c)
	if !ok {
		return
	}
	page, err := h.explorer.AllTransactions(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		handleError(c, err, "Error scanning transactions")
		return
	}
	sendJSONResponse(c, api.QueryResponse{Meta: pageMeta(page, h.chainId), Data: page.Items})
}

// @Summary Get transaction detail
// @Description Retrieve a transaction with its receipt, resolved method, decoded call and decoded events
// @Tags transactions
// @Produce json
// @Security BasicAuth
// @Param hash path string true "Transaction hash"
// @Success 200 {object} api.QueryResponse{data=explorer.TransactionDetail}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /api/tx/{hash} [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	hash, err := api.ValidateTransactionHash(c.Param("hash"))
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	detail, err := h.explorer.TransactionDetail(c.Request.Context(), hash)
	if err != nil {
		handleError(c, err, "Error fetching transaction detail")
		return
	}
	sendJSONResponse(c, api.QueryResponse{Meta: api.Meta{ChainId: h.chainId}, Data: detail})
}

// @Summary Label call data
// @Description Label raw call data with the well-known selector table, without any contract metadata
// @Tags transactions
// @Produce json
// @Param input path string true "0x-prefixed call data"
// @Success 200 {object} api.QueryResponse{data=string}
// @Router /api/method/{input} [get]
func (h *Handler) GetMethodLabel(c *gin.Context) {
	sendJSONResponse(c, api.QueryResponse{Meta: api.Meta{ChainId: h.chainId}, Data: h.explorer.MethodLabel(c.Param("input"))})
}
