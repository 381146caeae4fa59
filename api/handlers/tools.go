package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devutils/toolbelt/logger"
	"github.com/devutils/toolbelt/registry"
	"github.com/devutils/toolbelt/validation"
)

// ToolResponse is the JSON projection of a registry tool; the transform
// function itself never leaves the process.
type ToolResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
}

type ListToolsRequest struct {
	Category string `form:"category" json:"category" validate:"valid_slug"`
}

type RunToolRequest struct {
	Input string `json:"input"`
}

type RunToolResponse struct {
	Slug   string `json:"slug"`
	Output string `json:"output"`
}

func SetupTools(router gin.IRouter, logger logger.Logger, reg *registry.Registry, validator *validation.Validator) {
	router.GET("/tools", handleListTools(reg, logger, validator))
	router.GET("/tools/:slug", handleGetTool(reg))
	router.POST("/tools/:slug", handleRunTool(reg, logger))
}

func handleListTools(reg *registry.Registry, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := ListToolsRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from list tools request", "err", err.Error())
			c.Abort()
			WriteError(c, http.StatusUnprocessableEntity, CodeValidationError, "failed to extract request parameters", nil)
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate list tools request", "err", err.Error())
			c.Abort()
			WriteError(c, http.StatusNotAcceptable, CodeValidationError, err.Error(), nil)
			return
		}

		tools := reg.Tools()
		if request.Category != "" {
			category, ok := reg.CategoryBySlug(request.Category)
			if !ok {
				c.Abort()
				WriteError(c, http.StatusNotFound, CodeNotFound, "unknown category: "+request.Category, nil)
				return
			}
			tools = reg.ToolsByCategory(category.ID)
		}

		WriteSuccess(c, http.StatusOK, toToolResponses(tools))
	}
}

func handleGetTool(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		tool, ok := reg.ToolBySlug(slug)
		if !ok {
			c.Abort()
			WriteError(c, http.StatusNotFound, CodeNotFound, "unknown tool: "+slug, nil)
			return
		}

		WriteSuccess(c, http.StatusOK, toToolResponse(tool))
	}
}

func handleRunTool(reg *registry.Registry, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		tool, ok := reg.ToolBySlug(slug)
		if !ok {
			c.Abort()
			WriteError(c, http.StatusNotFound, CodeNotFound, "unknown tool: "+slug, nil)
			return
		}

		request := RunToolRequest{}
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.Warn("could not extract input from run tool request", "err", err.Error())
			c.Abort()
			WriteError(c, http.StatusUnprocessableEntity, CodeValidationError, "failed to extract request body parameters", nil)
			return
		}

		output, err := tool.Fn(request.Input)
		if err != nil {
			logger.Warn("transform failed", "tool", slug, "err", err.Error())
			c.Abort()
			WriteError(c, http.StatusBadRequest, CodeTransformError, err.Error(), nil)
			return
		}

		WriteSuccess(c, http.StatusOK, RunToolResponse{
			Slug:   slug,
			Output: output,
		})
	}
}

func toToolResponse(tool registry.Tool) ToolResponse {
	return ToolResponse{
		ID:          tool.ID,
		Name:        tool.Name,
		Slug:        tool.Slug,
		Description: tool.Description,
		Category:    tool.CategoryID,
		Keywords:    tool.Keywords,
	}
}

func toToolResponses(tools []registry.Tool) []ToolResponse {
	responses := make([]ToolResponse, 0, len(tools))
	for _, tool := range tools {
		responses = append(responses, toToolResponse(tool))
	}
	return responses
}
