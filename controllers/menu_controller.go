package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Azimiwizard/App-1/pkg/resp"
	"github.com/Azimiwizard/App-1/services"
)

type MenuController struct{ Svc *services.DishService }

func NewMenuController(s *services.DishService) *MenuController { return &MenuController{Svc: s} }

// GET /menu
func (h *MenuController) Menu(c *gin.Context) {
	sections, err := h.Svc.Menu()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, sections)
}

// GET /dishes/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	dish, reviews, err := h.Svc.Detail(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"dish": dish, "reviews": reviews})
}

func paramID(c *gin.Context, name string) (uint, error) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id64), err
}
