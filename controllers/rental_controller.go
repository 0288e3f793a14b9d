package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"equipment-rental-backend/app"
	"equipment-rental-backend/service"
)

type RentalController struct {
	Ledger *service.Ledger
}

func NewRentalController(ledger *service.Ledger) *RentalController {
	return &RentalController{Ledger: ledger}
}

func (rc *RentalController) Create(c *gin.Context) {
	var in struct {
		EquipmentID string `json:"equipmentId" binding:"required"`
		ClientName  string `json:"clientName" binding:"required"`
		ClientEmail string `json:"clientEmail" binding:"required"`
		ClientPhone string `json:"clientPhone" binding:"required"`
		StartDate   string `json:"startDate" binding:"required"`
		EndDate     string `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	rental, err := rc.Ledger.Start(c.Request.Context(), service.StartRentalInput{
		EquipmentID: in.EquipmentID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// Quote prices a prospective rental without committing anything, so the
// frontend can show a live total while the form is edited.
func (rc *RentalController) Quote(c *gin.Context) {
	q, err := rc.Ledger.Quote(
		c.Request.Context(),
		c.Query("equipmentId"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// List returns active rentals with ?status=active, the full history otherwise.
func (rc *RentalController) List(c *gin.Context) {
	var (
		rentals any
		err     error
	)
	if c.Query("status") == "active" {
		rentals, err = rc.Ledger.ListActive(c.Request.Context())
	} else {
		rentals, err = rc.Ledger.ListAll(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"items": rentals})
}

func (rc *RentalController) Complete(c *gin.Context) {
	rental, err := rc.Ledger.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rental)
}

func (rc *RentalController) Cancel(c *gin.Context) {
	rental, err := rc.Ledger.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rental)
}

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, app.H{"error": ve.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": "not found"})
	case errors.Is(err, service.ErrEquipmentConflict):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}
