package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order-service/services"
	"github.com/yeremiapane/table-order-service/utils"
)

type ItemController struct {
	Service *services.TableService
}

func NewItemController(service *services.TableService) *ItemController {
	return &ItemController{Service: service}
}

// GetAllItems -> seluruh item katalog
func (ic *ItemController) GetAllItems(c *gin.Context) {
	items, err := ic.Service.ListItems(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of items", items)
}

// GetItemByID -> detail 1 item
func (ic *ItemController) GetItemByID(c *gin.Context) {
	id, ok := idParam(c, "item_id")
	if !ok {
		return
	}

	item, err := ic.Service.GetItem(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item detail", item)
}
