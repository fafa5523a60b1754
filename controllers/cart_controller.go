package controllers

import (
	"errors"
	"strconv"

	"github.com/MarcoT95/static/pkg/resp"
	"github.com/MarcoT95/static/services"
	"github.com/MarcoT95/static/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	cart, err := cc.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := cc.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// PUT /cart/items/:productId
func (cc *CartController) UpdateItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	var req services.UpdateCartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := cc.Svc.UpdateItem(utils.CurrentUserID(c), uint(productID), req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/items/:productId
func (cc *CartController) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	cart, err := cc.Svc.RemoveItem(utils.CurrentUserID(c), uint(productID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	cart, err := cc.Svc.Clear(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}
