package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/amjudson/react-redmango-api/pkg/resp"
	"github.com/amjudson/react-redmango-api/services"
)

type RegisterRequest struct {
	Username string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.BadRequest(c, "Invalid username or password")
		return
	}

	resp.OK(c, gin.H{
		"email": user.Email,
		"token": token,
	})
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Username, req.Password, req.Name, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			resp.BadRequest(c, "User already exists")
			return
		}
		resp.BadRequest(c, "User creation failed for "+req.Username, err.Error())
		return
	}

	resp.OK(c, gin.H{"userId": user.ID})
}
