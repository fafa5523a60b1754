package controllers

import (
	"errors"
	"strconv"

	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/pkg/resp"
	"github.com/MarcoT95/static/services"
	"github.com/MarcoT95/static/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

func orderCreateError(c *gin.Context, err error) {
	var invalid *services.InvalidProductsError
	switch {
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidOrderLines),
		errors.As(err, &invalid):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		orderCreateError(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /orders/draft creates a pending order with a checkout-form snapshot
func (oc *OrderController) CreateDraft(c *gin.Context) {
	var req services.DraftOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.CreateDraft(utils.CurrentUserID(c), &req)
	if err != nil {
		orderCreateError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

type updateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PUT /orders/:id/status (admin)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrBadStatus), errors.Is(err, services.ErrInvalidTransition):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}

type saveDocumentsReq struct {
	Documents []services.DocumentIn `json:"documents"`
}

// POST /orders/:id/documents
func (oc *OrderController) SaveDocuments(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req saveDocumentsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	docs, err := oc.Svc.SaveDocuments(utils.CurrentUserID(c), uint(id), req.Documents)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrNoDocuments), errors.Is(err, services.ErrInvalidDocuments):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, docs)
}

// GET /orders/:id/documents/:type
func (oc *OrderController) GetDocument(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	doc, err := oc.Svc.GetDocument(utils.CurrentUserID(c), uint(id), c.Param("type"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadDocumentType):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrDocumentNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, doc)
}
