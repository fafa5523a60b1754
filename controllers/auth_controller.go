package controllers

import (
	"errors"

	"github.com/MarcoT95/static/pkg/resp"
	"github.com/MarcoT95/static/services"
	"github.com/MarcoT95/static/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := a.Svc.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req services.LoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := a.Svc.Login(&req)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, out)
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	out, err := a.Svc.GetMe(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "user not found")
		return
	}
	resp.OK(c, out)
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req services.UpdateProfileIn
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// distinguish "paymentMethods absent" from "paymentMethods: []"
	var raw map[string]any
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err == nil {
		_, req.PaymentMethodsSet = raw["paymentMethods"]
	}

	out, err := a.Svc.UpdateProfile(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			resp.Unauthorized(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, out)
}

// PATCH /auth/me/password
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req services.ChangePasswordIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Svc.ChangePassword(utils.CurrentUserID(c), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			resp.Unauthorized(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			resp.Unauthorized(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"success": true})
}
