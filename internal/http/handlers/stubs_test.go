package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"truck-dispatch/internal/domain"
)

type stubDriverUsecase struct {
	createFn       func(ctx context.Context, name, license string) (*domain.Driver, error)
	getFn          func(ctx context.Context, id string) (*domain.Driver, error)
	updateStatusFn func(ctx context.Context, id string, status domain.DriverStatus) (*domain.Driver, error)
}

func (s *stubDriverUsecase) Create(ctx context.Context, name, license string) (*domain.Driver, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, name, license)
}

func (s *stubDriverUsecase) Get(ctx context.Context, id string) (*domain.Driver, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, id)
}

func (s *stubDriverUsecase) UpdateStatus(ctx context.Context, id string, status domain.DriverStatus) (*domain.Driver, error) {
	if s.updateStatusFn == nil {
		panic("UpdateStatus not expected in this test")
	}
	return s.updateStatusFn(ctx, id, status)
}

type stubLoadUsecase struct {
	createFn  func(ctx context.Context, origin, destination, cargoType string) (*domain.Load, error)
	findAllFn func(ctx context.Context) ([]domain.Load, error)
	getFn     func(ctx context.Context, id string) (*domain.Load, error)
	updateFn  func(ctx context.Context, id string, u domain.PartialLoadUpdate) (*domain.Load, error)
}

func (s *stubLoadUsecase) Create(ctx context.Context, origin, destination, cargoType string) (*domain.Load, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, origin, destination, cargoType)
}

func (s *stubLoadUsecase) FindAll(ctx context.Context) ([]domain.Load, error) {
	if s.findAllFn == nil {
		panic("FindAll not expected in this test")
	}
	return s.findAllFn(ctx)
}

func (s *stubLoadUsecase) Get(ctx context.Context, id string) (*domain.Load, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, id)
}

func (s *stubLoadUsecase) Update(ctx context.Context, id string, u domain.PartialLoadUpdate) (*domain.Load, error) {
	if s.updateFn == nil {
		panic("Update not expected in this test")
	}
	return s.updateFn(ctx, id, u)
}

type stubAssignmentUsecase struct {
	createFn       func(ctx context.Context, driverID, loadID string) (*domain.Assignment, error)
	findByIDFn     func(ctx context.Context, id string) (*domain.Assignment, error)
	updateStatusFn func(ctx context.Context, id string, status domain.AssignmentStatus) (*domain.Assignment, error)
}

func (s *stubAssignmentUsecase) Create(ctx context.Context, driverID, loadID string) (*domain.Assignment, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, driverID, loadID)
}

func (s *stubAssignmentUsecase) FindByID(ctx context.Context, id string) (*domain.Assignment, error) {
	if s.findByIDFn == nil {
		panic("FindByID not expected in this test")
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubAssignmentUsecase) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.AssignmentStatus,
) (*domain.Assignment, error) {
	if s.updateStatusFn == nil {
		panic("UpdateStatus not expected in this test")
	}
	return s.updateStatusFn(ctx, id, status)
}

// newRequest builds a request with an optional JSON body and chi URL params.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if len(params) == 0 {
		return req
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
