package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devutils/toolbelt/registry"
)

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ToolCount   int    `json:"toolCount"`
}

func SetupCategories(router gin.IRouter, reg *registry.Registry) {
	router.GET("/categories", handleListCategories(reg))
	router.GET("/categories/:slug/tools", handleCategoryTools(reg))
}

func handleListCategories(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := reg.Categories()
		responses := make([]CategoryResponse, 0, len(categories))
		for _, category := range categories {
			responses = append(responses, CategoryResponse{
				ID:          category.ID,
				Name:        category.Name,
				Slug:        category.Slug,
				Description: category.Description,
				Icon:        category.Icon,
				ToolCount:   len(reg.ToolsByCategory(category.ID)),
			})
		}

		WriteSuccess(c, http.StatusOK, responses)
	}
}

func handleCategoryTools(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		category, ok := reg.CategoryBySlug(slug)
		if !ok {
			c.Abort()
			WriteError(c, http.StatusNotFound, CodeNotFound, "unknown category: "+slug, nil)
			return
		}

		WriteSuccess(c, http.StatusOK, toToolResponses(reg.ToolsByCategory(category.ID)))
	}
}
