package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/table-order-service/models"
)

func TestOpenSession(t *testing.T) {
	r, _ := setupRouter(t)

	w, resp := doRequest(t, r, http.MethodPost, "/tables/16", map[string]int{"customers": 6})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Session created", resp.Message)

	var session models.TableSession
	decodeData(t, resp, &session)
	assert.Equal(t, uint8(16), session.TableNr)
	assert.Equal(t, uint8(6), session.Customers)
	assert.True(t, session.Active)
	assert.Nil(t, session.SessionEnd)

	// a second session on the same table is rejected
	w, resp = doRequest(t, r, http.MethodPost, "/tables/16", map[string]int{"customers": 2})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Status)
	assert.Equal(t, "active session already exists for table #16", resp.Message)
}

func TestOpenSessionValidation(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		name string
		path string
		body interface{}
	}{
		{"table out of range", "/tables/256", map[string]int{"customers": 2}},
		{"table not a number", "/tables/abc", map[string]int{"customers": 2}},
		{"missing customers", "/tables/1", map[string]int{}},
		{"zero customers", "/tables/1", map[string]int{"customers": 0}},
		{"too many customers", "/tables/1", map[string]int{"customers": 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doRequest(t, r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, resp.Status)
		})
	}
}

func TestSessionEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	doRequest(t, r, http.MethodPost, "/tables/3", map[string]int{"customers": 2})
	doRequest(t, r, http.MethodPost, "/tables/1", map[string]int{"customers": 4})

	w, resp := doRequest(t, r, http.MethodGet, "/tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var active []models.TableSession
	decodeData(t, resp, &active)
	if assert.Len(t, active, 2) {
		assert.Equal(t, uint8(1), active[0].TableNr)
		assert.Equal(t, uint8(3), active[1].TableNr)
	}

	w, resp = doRequest(t, r, http.MethodGet, "/tables/3/active", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var current models.TableSession
	decodeData(t, resp, &current)
	assert.Equal(t, uint8(3), current.TableNr)

	w, resp = doRequest(t, r, http.MethodDelete, "/tables/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Message)

	w, resp = doRequest(t, r, http.MethodGet, "/tables/3/active", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no active session for table #3", resp.Message)

	w, _ = doRequest(t, r, http.MethodDelete, "/tables/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// history keeps the ended session
	doRequest(t, r, http.MethodPost, "/tables/3", map[string]int{"customers": 5})
	w, resp = doRequest(t, r, http.MethodGet, "/tables/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var history []models.TableSession
	decodeData(t, resp, &history)
	if assert.Len(t, history, 2) {
		assert.False(t, history[0].Active)
		assert.NotNil(t, history[0].SessionEnd)
		assert.True(t, history[1].Active)
	}
}
