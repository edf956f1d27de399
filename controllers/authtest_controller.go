package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/amjudson/react-redmango-api/pkg/resp"
)

// AuthTestController exposes two smoke-test endpoints for checking tokens
// and role enforcement from a client.
type AuthTestController struct{}

func NewAuthTestController() *AuthTestController { return &AuthTestController{} }

// GET /api/authtest (any authenticated user)
func (a *AuthTestController) Get(c *gin.Context) {
	resp.OK(c, "You are authenticated!")
}

// GET /api/authtest/:value (admin only)
func (a *AuthTestController) GetAdmin(c *gin.Context) {
	resp.OK(c, "You are authorized with the Admin role!")
}
