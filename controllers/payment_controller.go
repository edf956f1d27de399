package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amjudson/react-redmango-api/pkg/resp"
	"github.com/amjudson/react-redmango-api/services"
)

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// POST /api/payment?userId=
func (p *PaymentController) MakePayment(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil || userID <= 0 {
		resp.BadRequest(c, "Invalid User Id")
		return
	}

	cart, err := p.Svc.CreateIntent(c.Request.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, "Empty Cart")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, cart)
}
