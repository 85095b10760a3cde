package http

import (
	"context"
	stdhttp "net/http"
	"strings"
	"testing"

	"shopadmin-backend/internal/adapter/source"
	domain "shopadmin-backend/internal/domain/order"
	"shopadmin-backend/internal/testutil/ordermock"
	"shopadmin-backend/internal/usecase/ordersync"

	"github.com/rs/zerolog"
)

func TestSyncOrder_Synced(t *testing.T) {
	e := newEchoWithValidator()

	orders := &ordermock.Repo{
		GetByOrderNumberFn: func(ctx context.Context, orderNumber string) (*domain.Order, error) {
			return &domain.Order{OrderNumber: orderNumber, Status: "PROCESSING"}, nil
		},
		UpsertFn: func(ctx context.Context, o *domain.Order) error { return nil },
	}
	src := &ordermock.Source{
		FetchOrderStatusFn: func(ctx context.Context, orderNumber string) (string, error) {
			return "SHIPPED", nil
		},
	}
	h := NewOrderHandler(ordersync.NewUsecase(orders, src), zerolog.Nop())

	c, rec := newTestContext(e, stdhttp.MethodPost, "/orders/ORD-1001/sync", nil)
	c.SetParamNames("order_number")
	c.SetParamValues("ORD-1001")

	if err := h.SyncOrder(c); err != nil {
		t.Fatalf("SyncOrder error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var report ordersync.Report
	decodeEnvelope(t, rec, &report)
	if report["ORD-1001"] != ordersync.OutcomeSynced {
		t.Fatalf("report = %+v, want synced", report)
	}
}

func TestSyncOrder_NumberTooLong(t *testing.T) {
	e := newEchoWithValidator()
	h := NewOrderHandler(ordersync.NewUsecase(&ordermock.Repo{}, &ordermock.Source{
		FetchOrderStatusFn: func(ctx context.Context, orderNumber string) (string, error) {
			t.Fatal("source must not be called for an invalid order number")
			return "", nil
		},
	}), zerolog.Nop())

	long := strings.Repeat("x", 51)
	c, rec := newTestContext(e, stdhttp.MethodPost, "/orders/"+long+"/sync", nil)
	c.SetParamNames("order_number")
	c.SetParamValues(long)

	if err := h.SyncOrder(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body=%s", rec.Code, rec.Body.String())
	}
}

func TestSyncOrder_SourceMissReportedNotThrown(t *testing.T) {
	e := newEchoWithValidator()

	src := &ordermock.Source{
		FetchOrderStatusFn: func(ctx context.Context, orderNumber string) (string, error) {
			return "", domain.ErrSourceNotFound
		},
	}
	h := NewOrderHandler(ordersync.NewUsecase(&ordermock.Repo{}, src), zerolog.Nop())

	c, rec := newTestContext(e, stdhttp.MethodPost, "/orders/ORD-404/sync", nil)
	c.SetParamNames("order_number")
	c.SetParamValues("ORD-404")

	if err := h.SyncOrder(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var report ordersync.Report
	decodeEnvelope(t, rec, &report)
	if report["ORD-404"] != ordersync.OutcomeNotFoundSource {
		t.Fatalf("report = %+v, want not_found_at_source", report)
	}
}

func TestSyncAll_GatewayErrorMapsTo502(t *testing.T) {
	e := newEchoWithValidator()

	src := &ordermock.Source{
		FetchAllOrderStatusesFn: func(ctx context.Context) (map[string]string, error) {
			return nil, &source.GatewayError{StatusCode: 503}
		},
	}
	h := NewOrderHandler(ordersync.NewUsecase(&ordermock.Repo{}, src), zerolog.Nop())

	c, rec := newTestContext(e, stdhttp.MethodPost, "/orders/sync", nil)

	if err := h.SyncAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadGateway {
		t.Fatalf("status = %d, want 502; body=%s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec, nil)
	if env.Success {
		t.Fatal("success = true on gateway failure")
	}
	if !strings.Contains(env.Error, "upstream") {
		t.Fatalf("error = %q, want upstream message", env.Error)
	}
}

func TestSyncAll_Report(t *testing.T) {
	e := newEchoWithValidator()

	orders := &ordermock.Repo{
		ListAllFn: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{
				{OrderNumber: "ORD-1", Status: "PAID"},
				{OrderNumber: "ORD-2", Status: "PAID"},
			}, nil
		},
		UpsertFn: func(ctx context.Context, o *domain.Order) error { return nil },
	}
	src := &ordermock.Source{
		FetchAllOrderStatusesFn: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{
				"ORD-1": "PAID",    // unchanged
				"ORD-2": "SHIPPED", // drifted
				"ORD-3": "PAID",    // source-only
			}, nil
		},
	}
	h := NewOrderHandler(ordersync.NewUsecase(orders, src), zerolog.Nop())

	c, rec := newTestContext(e, stdhttp.MethodPost, "/orders/sync", nil)
	if err := h.SyncAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var report ordersync.Report
	decodeEnvelope(t, rec, &report)
	want := ordersync.Report{
		"ORD-1": ordersync.OutcomeUnchanged,
		"ORD-2": ordersync.OutcomeSynced,
		"ORD-3": ordersync.OutcomeCreated,
	}
	for num, outcome := range want {
		if report[num] != outcome {
			t.Fatalf("report[%s] = %q, want %q (full: %+v)", num, report[num], outcome, report)
		}
	}
}

func TestOrderSummary(t *testing.T) {
	e := newEchoWithValidator()

	orders := &ordermock.Repo{
		CountByStatusFn: func(ctx context.Context) (map[string]int64, error) {
			return map[string]int64{"PAID": 4, "SHIPPED": 2}, nil
		},
	}
	h := NewOrderHandler(ordersync.NewUsecase(orders, &ordermock.Source{}), zerolog.Nop())

	c, rec := newTestContext(e, stdhttp.MethodGet, "/orders/summary", nil)
	if err := h.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var s ordersync.Summary
	decodeEnvelope(t, rec, &s)
	if s.TotalOrders != 6 {
		t.Fatalf("totalOrders = %d, want 6", s.TotalOrders)
	}
	if s.CountByStatus["PAID"] != 4 || s.CountByStatus["SHIPPED"] != 2 {
		t.Fatalf("countByStatus = %+v", s.CountByStatus)
	}
}
