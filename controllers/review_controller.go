package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Azimiwizard/App-1/pkg/resp"
	"github.com/Azimiwizard/App-1/services"
	"github.com/Azimiwizard/App-1/utils"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /dishes/:id/reviews
func (h *ReviewController) Create(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	dishID, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	var req services.ReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := h.Svc.Create(ident.UserID, dishID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, review)
}
