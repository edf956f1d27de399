package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amjudson/react-redmango-api/pkg/resp"
	"github.com/amjudson/react-redmango-api/services"
)

type MenuItemForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	SpecialTag  string  `form:"specialTag"`
	Category    string  `form:"category"`
	Price       float64 `form:"price" binding:"required,gt=0"`
}

type MenuItemController struct {
	Svc *services.MenuService
}

func NewMenuItemController(svc *services.MenuService) *MenuItemController {
	return &MenuItemController{Svc: svc}
}

// GET /api/menuitem
func (m *MenuItemController) List(c *gin.Context) {
	items, err := m.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menuitem/:id
func (m *MenuItemController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, fmt.Sprintf("Invalid Id: %s", c.Param("id")))
		return
	}

	item, err := m.Svc.Get(uint(id))
	if err != nil {
		// Missing menu items are reported as a bad request, matching the
		// public API contract.
		resp.BadRequest(c, fmt.Sprintf("Menu Item '%d' not found", id))
		return
	}
	resp.OK(c, item)
}

// POST /api/menuitem (multipart)
func (m *MenuItemController) Create(c *gin.Context) {
	var form MenuItemForm
	if err := c.ShouldBind(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fh, err := c.FormFile("file")
	if err != nil || fh.Size == 0 {
		resp.BadRequest(c, "Image file is required")
		return
	}
	file, err := fh.Open()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	defer file.Close()

	item, err := m.Svc.Create(c.Request.Context(), menuItemIn(form), services.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

// PUT /api/menuitem/:id (multipart, file optional)
func (m *MenuItemController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, fmt.Sprintf("Invalid Id: %s", c.Param("id")))
		return
	}

	var form MenuItemForm
	if err := c.ShouldBind(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var img *services.ImageUpload
	if fh, err := c.FormFile("file"); err == nil && fh.Size > 0 {
		file, err := fh.Open()
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		defer file.Close()
		img = &services.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        file,
		}
	}

	if err := m.Svc.Update(c.Request.Context(), uint(id), menuItemIn(form), img); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Menu Item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.NoContent(c)
}

// DELETE /api/menuitem/:id
func (m *MenuItemController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, fmt.Sprintf("Invalid Id: %s", c.Param("id")))
		return
	}

	if err := m.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, fmt.Sprintf("Menu Item '%d' not found", id))
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.NoContent(c)
}

func menuItemIn(form MenuItemForm) services.MenuItemIn {
	return services.MenuItemIn{
		Name:        form.Name,
		Description: form.Description,
		SpecialTag:  form.SpecialTag,
		Category:    form.Category,
		Price:       form.Price,
	}
}
