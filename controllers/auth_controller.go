package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Azimiwizard/App-1/pkg/resp"
	"github.com/Azimiwizard/App-1/services"
	"github.com/Azimiwizard/App-1/utils"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/logout — sessions are bearer tokens; the client drops the
// token and the server just acknowledges.
func (h *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	user, err := h.Svc.GetProfile(ident.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.UpdateProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.UpdateProfile(c.Request.Context(), ident.UserID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /auth/claim-admin
func (h *AuthController) ClaimAdmin(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req struct {
		AdminCode string `json:"adminCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ClaimAdmin(ident.UserID, req.AdminCode); err != nil {
		resp.Error(c, err)
		return
	}
	// New privileges take effect on the next login token.
	resp.OK(c, gin.H{"message": "admin privileges granted, please log in again"})
}
