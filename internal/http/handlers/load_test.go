package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truck-dispatch/internal/apperr"
	"truck-dispatch/internal/domain"
)

func TestLoadHandler_Create_Invalid(t *testing.T) {
	t.Parallel()

	uc := &stubLoadUsecase{
		createFn: func(context.Context, string, string, string) (*domain.Load, error) {
			return nil, apperr.New(apperr.ErrInvalid, "origin must be at least 3 characters")
		},
	}

	rr := httptest.NewRecorder()
	NewLoadHandler(nil, uc).Create(rr,
		newRequest(http.MethodPost, "/loads", `{"origin":"NY","destination":"LAX","cargoType":"Grain"}`, nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"origin must be at least 3 characters"}`, rr.Body.String())
}

func TestLoadHandler_List(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("0e7f2f5c-7d38-4f0a-9f3e-0d0f9f1b2c3d")
	uc := &stubLoadUsecase{
		findAllFn: func(context.Context) ([]domain.Load, error) {
			return []domain.Load{{
				ID: id, Origin: "NYC", Destination: "LA", CargoType: "Electronics",
				Status: domain.LoadPending, CreatedAt: fixedTime,
			}}, nil
		},
	}

	rr := httptest.NewRecorder()
	NewLoadHandler(nil, uc).List(rr, newRequest(http.MethodGet, "/loads", "", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{
        "id": "0e7f2f5c-7d38-4f0a-9f3e-0d0f9f1b2c3d",
        "origin": "NYC",
        "destination": "LA",
        "cargoType": "Electronics",
        "status": "PENDING",
        "createdAt": "2025-01-02T03:04:05Z"
    }]`, rr.Body.String())
}

func TestLoadHandler_List_Empty(t *testing.T) {
	t.Parallel()

	uc := &stubLoadUsecase{
		findAllFn: func(context.Context) ([]domain.Load, error) { return nil, nil },
	}

	rr := httptest.NewRecorder()
	NewLoadHandler(nil, uc).List(rr, newRequest(http.MethodGet, "/loads", "", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestLoadHandler_Update_PassesPartialFields(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	uc := &stubLoadUsecase{
		updateFn: func(_ context.Context, got string, u domain.PartialLoadUpdate) (*domain.Load, error) {
			require.Equal(t, id.String(), got)
			require.Nil(t, u.Origin)
			require.NotNil(t, u.Status)
			require.Equal(t, domain.LoadInTransit, *u.Status)
			return &domain.Load{ID: id, Status: *u.Status}, nil
		},
	}

	rr := httptest.NewRecorder()
	NewLoadHandler(nil, uc).Update(rr, newRequest(http.MethodPatch, "/loads/"+id.String(),
		`{"status":"IN_TRANSIT"}`, map[string]string{"id": id.String()}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"IN_TRANSIT"`)
}

func TestLoadHandler_GetByID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	uc := &stubLoadUsecase{
		getFn: func(_ context.Context, got string) (*domain.Load, error) {
			require.Equal(t, id.String(), got)
			return &domain.Load{ID: id, Origin: "NYC"}, nil
		},
	}

	rr := httptest.NewRecorder()
	NewLoadHandler(nil, uc).GetByID(rr, newRequest(http.MethodGet, "/loads/"+id.String(), "",
		map[string]string{"id": id.String()}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"origin":"NYC"`)
}
