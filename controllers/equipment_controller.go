package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"equipment-rental-backend/app"
	"equipment-rental-backend/models"
	"equipment-rental-backend/service"
)

type EquipmentController struct {
	Catalog *service.Catalog
}

func NewEquipmentController(catalog *service.Catalog) *EquipmentController {
	return &EquipmentController{Catalog: catalog}
}

func (ec *EquipmentController) Create(c *gin.Context) {
	var in struct {
		Name           string                 `json:"name" binding:"required"`
		Brand          string                 `json:"brand" binding:"required"`
		Model          string                 `json:"model" binding:"required"`
		Type           models.EquipmentType   `json:"type" binding:"required"`
		DailyRate      float64                `json:"dailyRate"`
		Status         models.EquipmentStatus `json:"status"`
		Description    string                 `json:"description"`
		Specifications string                 `json:"specifications"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	item, err := ec.Catalog.Create(c.Request.Context(), service.EquipmentInput{
		Name:           in.Name,
		Brand:          in.Brand,
		Model:          in.Model,
		Type:           in.Type,
		DailyRate:      in.DailyRate,
		Status:         in.Status,
		Description:    in.Description,
		Specifications: in.Specifications,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// List returns all equipment; ?status= narrows to one availability state.
func (ec *EquipmentController) List(c *gin.Context) {
	items, err := ec.Catalog.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if status := c.Query("status"); status != "" {
		filtered := make([]models.Equipment, 0, len(items))
		for _, it := range items {
			if it.Status == models.EquipmentStatus(status) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	c.JSON(http.StatusOK, app.H{"items": items})
}

func (ec *EquipmentController) Get(c *gin.Context) {
	item, err := ec.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ec *EquipmentController) Update(c *gin.Context) {
	var in struct {
		Name           *string                 `json:"name"`
		Brand          *string                 `json:"brand"`
		Model          *string                 `json:"model"`
		Type           *models.EquipmentType   `json:"type"`
		DailyRate      *float64                `json:"dailyRate"`
		Status         *models.EquipmentStatus `json:"status"`
		Description    *string                 `json:"description"`
		Specifications *string                 `json:"specifications"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	item, err := ec.Catalog.Update(c.Request.Context(), c.Param("id"), service.EquipmentUpdate{
		Name:           in.Name,
		Brand:          in.Brand,
		Model:          in.Model,
		Type:           in.Type,
		DailyRate:      in.DailyRate,
		Status:         in.Status,
		Description:    in.Description,
		Specifications: in.Specifications,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ec *EquipmentController) Delete(c *gin.Context) {
	if err := ec.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
