package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"
)

type Error struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	SupportId string `json:"support_id"`
}

// QueryParams are the pagination parameters shared by every list endpoint.
type QueryParams struct {
	Page  int `schema:"page"`
	Limit int `schema:"limit"`
}

type Meta struct {
	ChainId    uint64 `json:"chain_id"`
	Address    string `json:"address,omitempty"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalItems int    `json:"total_items"`
	TotalPages int    `json:"total_pages"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
}

type QueryResponse struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data,omitempty"`
}

// SuccessResponse is returned by write endpoints of the storage API.
type SuccessResponse struct {
	Success bool `json:"success"`
}

func writeError(c *gin.Context, message string, code int) {
	resp := Error{
		Code:      code,
		Message:   message,
		SupportId: c.GetHeader("X-Request-Id"),
	}
	c.AbortWithStatusJSON(code, resp)
}

var (
	BadRequestErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadRequest)
	}
	NotFoundErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusNotFound)
	}
	InternalErrorHandler = func(c *gin.Context) {
		writeError(c, "An unexpected error occurred.", http.StatusInternalServerError)
	}
	UnauthorizedErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusUnauthorized)
	}
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

func ParseQueryParams(r *http.Request) (QueryParams, error) {
	var params QueryParams
	if err := queryDecoder.Decode(&params, r.URL.Query()); err != nil {
		log.Debug().Err(err).Msg("Error parsing query params")
		var multi schema.MultiError
		if errors.As(err, &multi) {
			for field := range multi {
				return QueryParams{}, errors.New("invalid query parameter: " + field)
			}
		}
		return QueryParams{}, err
	}
	return params, nil
}
