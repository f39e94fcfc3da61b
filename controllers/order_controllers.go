package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order-service/services"
	"github.com/yeremiapane/table-order-service/utils"
)

type OrderController struct {
	Service *services.TableService
}

func NewOrderController(service *services.TableService) *OrderController {
	return &OrderController{Service: service}
}

// CreateOrder -> buat order di sesi aktif meja. Sesi diambil dari nomor
// meja, bukan dari body request.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	tableNr, ok := tableNrParam(c)
	if !ok {
		return
	}

	type ItemReq struct {
		ItemID uint `json:"item_id"`
		Amount uint `json:"amount"`
	}
	type ReqBody struct {
		OrderItems []ItemReq `json:"order_items"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	lines := make([]services.OrderLine, 0, len(body.OrderItems))
	for _, item := range body.OrderItems {
		lines = append(lines, services.OrderLine{ItemID: item.ItemID, Amount: item.Amount})
	}

	order, err := oc.Service.CreateOrder(c.Request.Context(), tableNr, lines)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created at table #%d with %d items", order.ID, tableNr, len(order.OrderItems))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrders -> list orders sesi aktif beserta items
func (oc *OrderController) GetOrders(c *gin.Context) {
	tableNr, ok := tableNrParam(c)
	if !ok {
		return
	}

	orders, err := oc.Service.ListOrders(c.Request.Context(), tableNr)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail 1 order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	tableNr, ok := tableNrParam(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.Service.GetOrder(c.Request.Context(), tableNr, orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	tableNr, ok := tableNrParam(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "order_id")
	if !ok {
		return
	}

	deleted, err := oc.Service.DeleteOrder(c.Request.Context(), tableNr, orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrDeleteFailed)
		return
	}

	utils.InfoLogger.Printf("Order %d at table #%d deleted", orderID, tableNr)
	utils.RespondJSON(c, http.StatusOK, "success", nil)
}

// DeleteOrderItem -> hapus satu item dari order
func (oc *OrderController) DeleteOrderItem(c *gin.Context) {
	tableNr, ok := tableNrParam(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "order_id")
	if !ok {
		return
	}
	itemID, ok := idParam(c, "item_id")
	if !ok {
		return
	}

	deleted, err := oc.Service.DeleteOrderItem(c.Request.Context(), tableNr, orderID, itemID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrDeleteFailed)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "success", nil)
}
