package controllers

import (
	"errors"
	"strconv"

	"github.com/MarcoT95/static/pkg/resp"
	"github.com/MarcoT95/static/services"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Svc *services.ProductService
}

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{Svc: svc}
}

// GET /products?categoryId=&featured=
func (pc *ProductController) List(c *gin.Context) {
	var categoryID uint
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		categoryID = uint(id)
	}

	var featured *bool
	if v := c.Query("featured"); v != "" {
		f := v == "true" || v == "1"
		featured = &f
	}

	products, err := pc.Svc.List(categoryID, featured)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/:id
func (pc *ProductController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	p, err := pc.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /products/slug/:slug
func (pc *ProductController) DetailBySlug(c *gin.Context) {
	p, err := pc.Svc.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /products (admin)
func (pc *ProductController) Create(c *gin.Context) {
	var req services.CreateProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price < 0 {
		resp.BadRequest(c, "price must be >= 0")
		return
	}

	p, err := pc.Svc.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /products/:id (admin)
func (pc *ProductController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	var req services.UpdateProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price != nil && *req.Price < 0 {
		resp.BadRequest(c, "price must be >= 0")
		return
	}

	p, err := pc.Svc.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /products/:id (admin), soft delete
func (pc *ProductController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	if err := pc.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
