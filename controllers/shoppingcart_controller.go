package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amjudson/react-redmango-api/pkg/resp"
	"github.com/amjudson/react-redmango-api/services"
)

type ShoppingCartController struct {
	Svc *services.CartService
}

func NewShoppingCartController(svc *services.CartService) *ShoppingCartController {
	return &ShoppingCartController{Svc: svc}
}

// GET /api/shoppingcart/:userId
func (s *ShoppingCartController) Get(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID <= 0 {
		resp.BadRequest(c, "Invalid User Id")
		return
	}

	cart, err := s.Svc.Get(uint(userID))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, cart)
}

// POST /api/shoppingcart?userId=&menuItemId=&updateQuantityBy=
func (s *ShoppingCartController) AddOrUpdate(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil || userID <= 0 {
		resp.BadRequest(c, "Invalid User Id")
		return
	}
	menuItemID, err := strconv.Atoi(c.Query("menuItemId"))
	if err != nil || menuItemID <= 0 {
		resp.BadRequest(c, "Invalid Menu Item Request")
		return
	}
	delta, err := strconv.Atoi(c.Query("updateQuantityBy"))
	if err != nil {
		resp.BadRequest(c, "Invalid Quantity")
		return
	}

	if err := s.Svc.AddOrUpdate(uint(userID), uint(menuItemID), delta); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMenuItem):
			resp.BadRequest(c, "Invalid Menu Item Request")
		case errors.Is(err, services.ErrInvalidQuantity):
			resp.BadRequest(c, "Invalid Quantity")
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}

	resp.OK(c, gin.H{"message": "Cart added or updated successfully"})
}
