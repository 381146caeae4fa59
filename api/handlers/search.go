package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devutils/toolbelt/logger"
	"github.com/devutils/toolbelt/services/search"
	"github.com/devutils/toolbelt/validation"
)

type SearchRequest struct {
	Query    string `form:"query" json:"query" validate:"valid_query,max=200"`
	Limit    int    `form:"limit" json:"limit" validate:"min=0,max=100"`
	Type     string `form:"type" json:"type" validate:"valid_type"`
	Category string `form:"category" json:"category" validate:"valid_slug"`
}

type SearchResponse struct {
	Results []search.Result `json:"results"`
	Total   int             `json:"total"`
}

func SetupSearch(router gin.IRouter, logger logger.Logger, engine *search.Engine, validator *validation.Validator) {
	router.GET("/search", handleSearch(engine, logger, validator))
}

func handleSearch(engine *search.Engine, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			c.Abort()
			WriteError(c, http.StatusUnprocessableEntity, CodeValidationError, "failed to extract request parameters", nil)
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			c.Abort()
			WriteError(c, http.StatusNotAcceptable, CodeValidationError, err.Error(), nil)
			return
		}

		results := engine.Search(request.Query, search.Options{
			Limit:    request.Limit,
			Category: request.Category,
			Type:     search.Type(request.Type),
		})

		WriteSuccess(c, http.StatusOK, SearchResponse{
			Results: results,
			Total:   len(results),
		})
	}
}
