package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/localscan/explorer/api"
	"github.com/localscan/explorer/internal/common"
	"github.com/localscan/explorer/internal/explorer"
	"github.com/localscan/explorer/internal/rpc"
	"github.com/localscan/explorer/internal/storage"
	"github.com/rs/zerolog/log"
)

// Handler serves the explorer API. The explorer service may be nil, in which case only the storage
// API is registered.
type Handler struct {
	explorer        *explorer.Service
	store           storage.IMetadataStorage
	chainId         uint64
	defaultPageSize int
	maxPageSize     int
}

type HandlerOption func(*Handler)

func WithPageSizes(defaultPageSize, maxPageSize int) HandlerOption {
	return func(h *Handler) {
		if defaultPageSize > 0 {
			h.defaultPageSize = defaultPageSize
		}
		if maxPageSize > 0 {
			h.maxPageSize = maxPageSize
		}
	}
}

func WithChainId(chainId uint64) HandlerOption {
	return func(h *Handler) {
		h.chainId = chainId
	}
}

func NewHandler(service *explorer.Service, store storage.IMetadataStorage, opts ...HandlerOption) *Handler {
	h := &Handler{
		explorer:        service,
		store:           store,
		defaultPageSize: 10,
		maxPageSize:     100,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) RegisterStorageRoutes(r gin.IRouter) {
	storageGroup := r.Group("/api/storage")
	{
		storageGroup.GET("/abis/:address", h.GetABI)
		storageGroup.POST("/abis/:address", h.SaveABI)
		storageGroup.GET("/contracts/verified", h.GetVerifiedContracts)
		storageGroup.POST("/clear", h.ClearStorage)
	}
}

func (h *Handler) RegisterExplorerRoutes(r gin.IRouter) {
	root := r.Group("/api")
	{
		root.GET("/blocks", h.GetBlocks)
		root.GET("/blocks/:number", h.GetBlock)
		root.GET("/transactions", h.GetTransactions)
		root.GET("/address/:address/transactions", h.GetAddressTransactions)
		root.GET("/tx/:hash", h.GetTransaction)
		root.GET("/method/:input", h.GetMethodLabel)
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	h.RegisterStorageRoutes(r)
	if h.explorer != nil {
		h.RegisterExplorerRoutes(r)
	}
}

func (h *Handler) parsePagination(c *gin.Context) (api.QueryParams, bool) {
	params, err := api.ParseQueryParams(c.Request)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return params, false
	}
	params, err = api.NormalizePagination(params, h.defaultPageSize, h.maxPageSize)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return params, false
	}
	return params, true
}

// handleError maps domain errors to HTTP statuses. Anything unrecognized is logged and hidden.
func handleError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, common.ErrInvalidAddress), errors.Is(err, common.ErrInvalidABI):
		api.BadRequestErrorHandler(c, err)
	case errors.Is(err, rpc.ErrBlockNotFound), errors.Is(err, rpc.ErrTransactionNotFound):
		api.NotFoundErrorHandler(c, err)
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(msg)
		api.InternalErrorHandler(c)
	}
}

func sendJSONResponse(c *gin.Context, response interface{}) {
	c.JSON(http.StatusOK, response)
}

func pageMeta[T any](page common.Page[T], chainId uint64) api.Meta {
	return api.Meta{
		ChainId:    chainId,
		Page:       page.CurrentPage,
		Limit:      page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		HasNext:    page.HasNextPage,
		HasPrev:    page.HasPrevPage,
	}
}
