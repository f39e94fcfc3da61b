package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/table-order-service/models"
)

func createOrder(t *testing.T, r *gin.Engine, tableNr int, items []gin.H) models.Order {
	t.Helper()

	w, resp := doRequest(t, r, http.MethodPost, fmt.Sprintf("/tables/%d/orders", tableNr), gin.H{"order_items": items})
	require.Equal(t, http.StatusCreated, w.Code, resp.Message)
	assert.Equal(t, "Order created", resp.Message)

	var order models.Order
	decodeData(t, resp, &order)
	return order
}

func TestCreateAndGetOrder(t *testing.T) {
	r, _ := setupRouter(t)
	doRequest(t, r, http.MethodPost, "/tables/18", gin.H{"customers": 6})

	order := createOrder(t, r, 18, []gin.H{
		{"item_id": 2, "amount": 4},
		{"item_id": 5, "amount": 2},
	})
	assert.NotZero(t, order.ID)
	assert.False(t, order.Timestamp.IsZero())

	w, resp := doRequest(t, r, http.MethodGet, fmt.Sprintf("/tables/18/orders/%d", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	decodeData(t, resp, &got)
	assert.Equal(t, order.ID, got.ID)
	assert.ElementsMatch(t, []models.OrderItem{
		{ItemID: 2, Amount: 4},
		{ItemID: 5, Amount: 2},
	}, got.OrderItems)

	w, resp = doRequest(t, r, http.MethodGet, "/tables/18/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	decodeData(t, resp, &orders)
	if assert.Len(t, orders, 1) {
		assert.Len(t, orders[0].OrderItems, 2)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	r, _ := setupRouter(t)
	doRequest(t, r, http.MethodPost, "/tables/4", gin.H{"customers": 2})

	w, _ := doRequest(t, r, http.MethodPost, "/tables/4/orders", gin.H{
		"order_items": []gin.H{{"item_id": 1, "amount": 0}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/tables/4/orders", gin.H{
		"order_items": []gin.H{{"item_id": -1, "amount": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// empty orders are allowed
	order := createOrder(t, r, 4, []gin.H{})
	assert.Empty(t, order.OrderItems)
}

func TestOrdersRequireActiveSession(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPost, "/tables/9/orders", gin.H{"order_items": []gin.H{{"item_id": 1, "amount": 1}}}},
		{http.MethodGet, "/tables/9/orders", nil},
		{http.MethodGet, "/tables/9/orders/1", nil},
		{http.MethodDelete, "/tables/9/orders/1", nil},
		{http.MethodDelete, "/tables/9/orders/1/1", nil},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w, resp := doRequest(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "no active session for table #9", resp.Message)
		})
	}
}

func TestDeleteOrder(t *testing.T) {
	r, _ := setupRouter(t)
	doRequest(t, r, http.MethodPost, "/tables/5", gin.H{"customers": 2})
	doRequest(t, r, http.MethodPost, "/tables/6", gin.H{"customers": 2})

	order := createOrder(t, r, 5, []gin.H{{"item_id": 1, "amount": 2}})
	path := fmt.Sprintf("/tables/5/orders/%d", order.ID)

	// another table cannot reach the order
	w, resp := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/tables/6/orders/%d", order.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "failed", resp.Message)

	w, resp = doRequest(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Message)

	w, _ = doRequest(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = doRequest(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "failed", resp.Message)
}

func TestDeleteOrderItem(t *testing.T) {
	r, _ := setupRouter(t)
	doRequest(t, r, http.MethodPost, "/tables/7", gin.H{"customers": 3})

	order := createOrder(t, r, 7, []gin.H{
		{"item_id": 1, "amount": 1},
		{"item_id": 3, "amount": 2},
	})

	w, resp := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/tables/7/orders/%d/3", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Message)

	w, resp = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/tables/7/orders/%d/3", order.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "failed", resp.Message)

	w, resp = doRequest(t, r, http.MethodGet, fmt.Sprintf("/tables/7/orders/%d", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var got models.Order
	decodeData(t, resp, &got)
	assert.Equal(t, []models.OrderItem{{ItemID: 1, Amount: 1}}, got.OrderItems)

	w, _ = doRequest(t, r, http.MethodDelete, "/tables/7/orders/x/3", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
