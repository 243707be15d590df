package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
)

const testCategoryID = "cat-ropa"

// newTestRouter monta el router real sobre el catálogo en memoria.
func newTestRouter(t *testing.T) (*fiber.App, *catalogStore) {
	t.Helper()
	s := newCatalogStore()
	s.categories[testCategoryID] = entity.GoodCategory{ID: testCategoryID, Title: "Ropa"}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo{s}),
		GoodUC:     usecase.NewGoodUseCase(goodRepo{s}, categoryRepo{s}, catalogTx{s}),
		JWTSecret:  testJWTSecret,
	})
	return app, s
}

func call(t *testing.T, app *fiber.App, method, path, auth string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func newGoodBody() map[string]any {
	return map[string]any{
		"name":            "Camisa",
		"description":     "Algodón",
		"price":           "25.50",
		"categoryId":      testCategoryID,
		"uploaded_images": []string{"a.png", "b.png", "c.png"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Bienes
// ──────────────────────────────────────────────────────────────────────────────

func TestGoods_LecturaAnonima(t *testing.T) {
	app, _ := newTestRouter(t)

	resp, body := call(t, app, http.MethodGet, "/api/goods", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "items")
}

func TestGoods_CrearSoloVendedor(t *testing.T) {
	app, s := newTestRouter(t)

	resp, _ := call(t, app, http.MethodPost, "/api/goods", "", newGoodBody())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := call(t, app, http.MethodPost, "/api/goods", customerToken(t), newGoodBody())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body["code"])
	assert.Empty(t, s.goods)
}

func TestGoods_CrearConImagenesYSellerDelToken(t *testing.T) {
	app, s := newTestRouter(t)
	in := newGoodBody()
	in["sellerId"] = testOtherID

	resp, body := call(t, app, http.MethodPost, "/api/goods", sellerToken(t), in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, testUserID, body["sellerId"], "sellerId del cliente se ignora")
	assert.Equal(t, testCategoryID, body["categoryId"])
	images, ok := body["images"].([]any)
	require.True(t, ok)
	assert.Len(t, images, 3)
	assert.Len(t, s.images, 3)
}

func TestGoods_CategoriaInexistente400(t *testing.T) {
	app, s := newTestRouter(t)
	in := newGoodBody()
	in["categoryId"] = "no-existe"

	resp, body := call(t, app, http.MethodPost, "/api/goods", sellerToken(t), in)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, `Invalid pk "no-existe" - object does not exist.`, fields["categoryId"])
	assert.Empty(t, s.goods)
	assert.Empty(t, s.images)
}

func TestGoods_ActualizarSoloDueno(t *testing.T) {
	app, _ := newTestRouter(t)
	resp, created := call(t, app, http.MethodPost, "/api/goods", sellerToken(t), newGoodBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	path := "/api/goods/" + created["id"].(string)

	update := newGoodBody()
	update["name"] = "Camisa azul"

	otherSeller := bearer(t, pkgjwtIdentity(testOtherID, entity.RoleSeller))
	resp, _ = call(t, app, http.MethodPut, path, otherSeller, update)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPut, path, "", update)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := call(t, app, http.MethodPut, path, sellerToken(t), update)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Camisa azul", body["name"])

	resp, _ = call(t, app, http.MethodDelete, path, staffToken(t), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories_EscrituraSoloStaff(t *testing.T) {
	app, _ := newTestRouter(t)
	in := dto.GoodCategoryRequest{Title: "Camisas", ParentID: strPtr(testCategoryID)}

	resp, _ := call(t, app, http.MethodPost, "/api/categories", sellerToken(t), in)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := call(t, app, http.MethodPost, "/api/categories", staffToken(t), in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, testCategoryID, body["parentId"])

	resp, root := call(t, app, http.MethodGet, "/api/categories/"+testCategoryID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, root, "parentId")
	assert.Nil(t, root["parentId"], "una raíz serializa parentId como null")
}

func strPtr(s string) *string { return &s }
