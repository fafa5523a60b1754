package controllers

import (
	"strconv"

	"github.com/MarcoT95/static/pkg/resp"
	"github.com/MarcoT95/static/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

// GET /admin/users returns every user with order count and total spent
func (ac *AdminController) Users(c *gin.Context) {
	rows, err := ac.Svc.ListUsers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /admin/users/:id/orders
func (ac *AdminController) UserOrders(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	orders, err := ac.Svc.UserOrders(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
