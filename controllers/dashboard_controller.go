package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"equipment-rental-backend/service"
)

type DashboardController struct {
	Ledger *service.Ledger
}

func NewDashboardController(ledger *service.Ledger) *DashboardController {
	return &DashboardController{Ledger: ledger}
}

func (dc *DashboardController) Summary(c *gin.Context) {
	s, err := dc.Ledger.Summarize(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
