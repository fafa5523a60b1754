package controllers

import (
	"errors"
	"strconv"

	"github.com/MarcoT95/static/pkg/resp"
	"github.com/MarcoT95/static/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Svc *services.CategoryService
}

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: svc}
}

// GET /categories
func (cc *CategoryController) List(c *gin.Context) {
	cats, err := cc.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /categories/:id
func (cc *CategoryController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	cat, err := cc.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// POST /categories (admin)
func (cc *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := cc.Svc.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /categories/:id (admin)
func (cc *CategoryController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := cc.Svc.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id (admin)
func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	if err := cc.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
