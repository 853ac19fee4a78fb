package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-ordering/internal/menu"
	"voice-ordering/internal/middleware"
	"voice-ordering/pkg/log"
)

type stubUseCase struct {
	snap menu.Snapshot
	err  error
}

func (s stubUseCase) ListDinners(context.Context) ([]menu.Dinner, error) { return s.snap.Dinners, s.err }
func (s stubUseCase) ListStyles(context.Context) ([]menu.Style, error)   { return s.snap.Styles, s.err }
func (s stubUseCase) ListMenuItems(_ context.Context, id string) ([]menu.MenuItem, error) {
	return s.snap.Items[id], s.err
}
func (s stubUseCase) Snapshot(context.Context) (menu.Snapshot, error) { return s.snap, s.err }

func serve(uc menu.UseCase) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/menu"), New(log.NewNop(), uc), middleware.New(log.NewNop(), middleware.Config{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil))
	return w
}

func TestGet(t *testing.T) {
	w := serve(stubUseCase{snap: menu.Snapshot{
		Dinners: []menu.Dinner{{ID: "1", Name: "French Dinner", BasePrice: 48000}},
		Styles:  []menu.Style{{ID: "s1", Name: "simple"}},
		Items:   map[string][]menu.MenuItem{"1": {{ID: "10", Name: "Coffee", DefaultQuantity: 1, BasePrice: 3000}}},
	}})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data menuResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Dinners, 1)
	assert.Equal(t, "French Dinner", body.Data.Dinners[0].Name)
	assert.Equal(t, []string{}, body.Data.Dinners[0].AllowedStyles)
	require.Len(t, body.Data.Dinners[0].Items, 1)
	assert.Equal(t, 3000.0, body.Data.Dinners[0].Items[0].UnitPrice)
	assert.Len(t, body.Data.Styles, 1)
}

func TestGetCatalogUnavailable(t *testing.T) {
	w := serve(stubUseCase{err: fmt.Errorf("%w: boom", menu.ErrCatalogUnavailable)})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
