package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amjudson/react-redmango-api/entity"
	"github.com/amjudson/react-redmango-api/pkg/resp"
	"github.com/amjudson/react-redmango-api/services"
	"github.com/amjudson/react-redmango-api/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /api/order?userId=
func (o *OrderController) List(c *gin.Context) {
	var userID uint
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			resp.BadRequest(c, "Invalid User Id")
			return
		}
		userID = uint(id)
	}

	// Non-admins only ever see their own orders.
	if utils.CurrentRole(c) != entity.RoleAdmin {
		userID = utils.CurrentUserID(c)
	}

	headers, err := o.Svc.List(userID)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, headers)
}

// GET /api/order/:id
func (o *OrderController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "Invalid Order Id")
		return
	}

	header, err := o.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, header)
}

// POST /api/order
func (o *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	header, err := o.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, header)
}

// PUT /api/order/:id
func (o *OrderController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "Invalid Order Id")
		return
	}

	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := o.Svc.UpdateHeader(uint(id), &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.NoContent(c)
}
