package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invdto "github.com/fekuna/gasops-dashboard-service/internal/inventory/dto"
	"github.com/fekuna/gasops-dashboard-service/internal/model"
	salesdto "github.com/fekuna/gasops-dashboard-service/internal/sales/dto"
	"github.com/fekuna/gasops-dashboard-service/pkg/logger"
)

type fakeInventoryUC struct {
	summaries []model.InventorySummary
	movements []model.Movement
	recorded  *model.Movement

	summaryErr error
	recordErr  error
}

func (f *fakeInventoryUC) Summary(ctx context.Context, day time.Time) ([]model.InventorySummary, error) {
	return f.summaries, f.summaryErr
}

func (f *fakeInventoryUC) RecentMovements(ctx context.Context, day time.Time, limit int) ([]model.Movement, error) {
	return f.movements, nil
}

func (f *fakeInventoryUC) RecordMovement(ctx context.Context, input *invdto.RecordMovementInput) (*model.Movement, error) {
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	return f.recorded, nil
}

type fakeSalesUC struct {
	sales []model.Sale
}

func (f *fakeSalesUC) RecordSale(ctx context.Context, input *salesdto.RecordSaleInput) (*model.Sale, error) {
	return nil, errors.New("not used")
}

func (f *fakeSalesUC) RecentSales(ctx context.Context, day time.Time, limit int) ([]model.Sale, error) {
	return f.sales, nil
}

func newApp(invUC *fakeInventoryUC, salesUC *fakeSalesUC) *fiber.App {
	app := fiber.New()
	h := NewInventoryHandler(invUC, salesUC, logger.NewNop())
	app.Get("/api/dashboard", h.Dashboard)
	app.Post("/api/movements", h.RecordMovement)
	return app
}

func TestDashboardResponseShape(t *testing.T) {
	t.Parallel()

	invUC := &fakeInventoryUC{
		summaries: []model.InventorySummary{
			{Size: "11kg", TotalTanks: 100, FullTanks: 90, EmptyTanks: 10},
			{Size: "2.7kg", TotalTanks: 40, FullTanks: 4, OutForDelivery: 6, EmptyTanks: 30},
		},
		movements: []model.Movement{{ID: "m1", Type: model.MovementSale, TankSize: "11kg", Quantity: 1}},
	}
	salesUC := &fakeSalesUC{sales: []model.Sale{{ID: "s1", TankSize: "11kg", Quantity: 1, Amount: 12.5}}}
	app := newApp(invUC, salesUC)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?date=2026-03-10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Inventory []struct {
			Size           string  `json:"size"`
			FullTanks      int     `json:"full_tanks"`
			FillPercentage float64 `json:"fill_percentage"`
			LowStock       bool    `json:"low_stock"`
		} `json:"inventory"`
		Totals struct {
			TotalTanks int `json:"total_tanks"`
			FullTanks  int `json:"full_tanks"`
		} `json:"totals"`
		Movements []model.Movement `json:"movements"`
		Sales     []model.Sale     `json:"sales"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	require.Len(t, body.Inventory, 2)
	assert.Equal(t, 90.0, body.Inventory[0].FillPercentage)
	assert.False(t, body.Inventory[0].LowStock)
	assert.Equal(t, 10.0, body.Inventory[1].FillPercentage)
	assert.True(t, body.Inventory[1].LowStock)

	assert.Equal(t, 140, body.Totals.TotalTanks)
	assert.Equal(t, 94, body.Totals.FullTanks)
	require.Len(t, body.Movements, 1)
	require.Len(t, body.Sales, 1)
}

func TestDashboardStoreFailure(t *testing.T) {
	t.Parallel()

	invUC := &fakeInventoryUC{summaryErr: errors.New("db down")}
	app := newApp(invUC, &fakeSalesUC{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, string(raw))
}

func TestDashboardRejectsBadDate(t *testing.T) {
	t.Parallel()

	app := newApp(&fakeInventoryUC{}, &fakeSalesUC{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard?date=10-03-2026", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecordMovementSuccessEnvelope(t *testing.T) {
	t.Parallel()

	invUC := &fakeInventoryUC{
		recorded: &model.Movement{ID: "m1", Type: model.MovementAddStock, TankSize: "5kg", Quantity: 15},
	}
	app := newApp(invUC, &fakeSalesUC{})

	payload, _ := json.Marshal(invdto.RecordMovementInput{
		Type: "add_stock", TankSize: "5kg", Quantity: 15,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/movements", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool           `json:"success"`
		Data    model.Movement `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body.Success)
	assert.Equal(t, "m1", body.Data.ID)
}

func TestRecordMovementValidationRejected(t *testing.T) {
	t.Parallel()

	invUC := &fakeInventoryUC{recordErr: model.ErrInvalidQuantity}
	app := newApp(invUC, &fakeSalesUC{})

	payload, _ := json.Marshal(invdto.RecordMovementInput{Type: "sale", TankSize: "11kg"})
	req := httptest.NewRequest(http.MethodPost, "/api/movements", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
}

func TestRecordMovementStoreFailure(t *testing.T) {
	t.Parallel()

	invUC := &fakeInventoryUC{recordErr: model.ErrStore}
	app := newApp(invUC, &fakeSalesUC{})

	payload, _ := json.Marshal(invdto.RecordMovementInput{Type: "sale", TankSize: "11kg", Quantity: 1})
	req := httptest.NewRequest(http.MethodPost, "/api/movements", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
