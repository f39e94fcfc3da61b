package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order-service/services"
	"github.com/yeremiapane/table-order-service/utils"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(service *services.TableService) *TableController {
	return &TableController{Service: service}
}

// OpenSession -> membuka sesi baru untuk meja (customer duduk)
func (tc *TableController) OpenSession(c *gin.Context) {
	tableNr, ok := tableNrParam(c)
	if !ok {
		return
	}

	var req struct {
		Customers uint8 `json:"customers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session, err := tc.Service.OpenSession(c.Request.Context(), tableNr, req.Customers)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Session %d opened at table #%d (customers=%d)", session.ID, tableNr, session.Customers)
	utils.RespondJSON(c, http.StatusCreated, "Session created", session)
}

// GetActiveSessions -> semua sesi aktif di seluruh meja
func (tc *TableController) GetActiveSessions(c *gin.Context) {
	sessions, err := tc.Service.ActiveSessions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of active sessions", sessions)
}

// GetTableSessions -> riwayat sesi satu meja (aktif dan selesai)
func (tc *TableController) GetTableSessions(c *gin.Context) {
	tableNr, ok := tableNrParam(c)
	if !ok {
		return
	}

	sessions, err := tc.Service.TableSessions(c.Request.Context(), tableNr)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of table sessions", sessions)
}

func (tc *TableController) GetActiveSession(c *gin.Context) {
	tableNr, ok := tableNrParam(c)
	if !ok {
		return
	}

	session, err := tc.Service.ActiveSession(c.Request.Context(), tableNr)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active session", session)
}

// EndSession -> customer selesai, sesi meja ditutup
func (tc *TableController) EndSession(c *gin.Context) {
	tableNr, ok := tableNrParam(c)
	if !ok {
		return
	}

	ended, err := tc.Service.EndSession(c.Request.Context(), tableNr)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !ended {
		utils.RespondError(c, http.StatusConflict, ErrDeleteFailed)
		return
	}

	utils.InfoLogger.Printf("Session at table #%d ended", tableNr)
	utils.RespondJSON(c, http.StatusOK, "success", nil)
}
