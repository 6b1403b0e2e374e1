package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/LSkevi/PieTracker/internal/middleware"
	"github.com/LSkevi/PieTracker/internal/service"
	"github.com/LSkevi/PieTracker/internal/util"

	"github.com/gin-gonic/gin"
)

// CategoryHandler exposes per-user category CRUD.
type CategoryHandler struct {
	Categories *service.CategoryService
}

func NewCategoryHandler(cs *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{Categories: cs}
}

type addCategoryReq struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	names, err := h.Categories.List(middleware.UserID(c))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load categories")
		return
	}
	util.Success(c, names)
}

func (h *CategoryHandler) Colors(c *gin.Context) {
	colors, err := h.Categories.Colors(middleware.UserID(c))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load categories")
		return
	}
	util.Success(c, colors)
}

func (h *CategoryHandler) Add(c *gin.Context) {
	var req addCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category name is required")
		return
	}

	err := h.Categories.Add(middleware.UserID(c), req.Name, req.Color)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalid):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid category name")
		return
	case errors.Is(err, service.ErrConflict):
		util.Error(c, http.StatusConflict, util.CodeConflict, "category already exists")
		return
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save category")
		return
	}

	color := req.Color
	if color == "" {
		color = service.DefaultColor
	}
	util.Success(c, gin.H{
		"message":  fmt.Sprintf("Category '%s' added successfully", req.Name),
		"category": req.Name,
		"color":    color,
	})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	name := c.Param("name")

	deleted, err := h.Categories.Delete(middleware.UserID(c), name)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrForbidden):
		util.Error(c, http.StatusForbidden, util.CodeForbidden, "cannot delete a default category")
		return
	case errors.Is(err, service.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
		return
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete category")
		return
	}

	util.Success(c, gin.H{
		"message": fmt.Sprintf("Category '%s' deleted successfully. %d associated expenses were also removed.", name, deleted),
	})
}
