package api

import (
	"net/http"
	"strconv"
	"testing"
)

func createTestProduct(t *testing.T, ts *TestServer, title, slug string) ProductResponse {
	t.Helper()

	rec, req := MakeRequest(t, http.MethodPost, "/api/admin/products", CreateProductRequest{
		Title: title,
		Slug:  slug,
	})
	ts.HandleCreateProduct(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Failed to create product: %d %s", rec.Code, rec.Body.String())
	}

	var resp ProductResponse
	DecodeJSON(t, rec, &resp)
	return resp
}

func createTestProductCategory(t *testing.T, ts *TestServer, name, slug string) CategoryResponse {
	t.Helper()

	rec, req := MakeParamRequest(t, http.MethodPost, "/api/admin/categories/product",
		CreateCategoryRequest{Name: name, Slug: slug},
		map[string]string{"family": "product"})
	ts.HandleCreateCategory(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Failed to create category: %d %s", rec.Code, rec.Body.String())
	}

	var resp CategoryResponse
	DecodeJSON(t, rec, &resp)
	return resp
}

func TestProductHandlers(t *testing.T) {
	ts := NewTestServer(t, "api_products")

	t.Run("CreateAndGet", func(t *testing.T) {
		created := createTestProduct(t, ts, "Widget", "widget")

		rec, req := MakeParamRequest(t, http.MethodGet, "/api/products/widget", nil,
			map[string]string{"slug": "widget"})
		ts.HandleGetProduct(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var resp ProductResponse
		DecodeJSON(t, rec, &resp)
		if resp.ID != created.ID {
			t.Errorf("Got product %d, want %d", resp.ID, created.ID)
		}
	})

	t.Run("DuplicateSlugConflicts", func(t *testing.T) {
		rec, req := MakeRequest(t, http.MethodPost, "/api/admin/products", CreateProductRequest{
			Title: "Widget again",
			Slug:  "widget",
		})
		ts.HandleCreateProduct(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusConflict)
	})

	t.Run("SetCategoriesAndPrimary", func(t *testing.T) {
		a := createTestProductCategory(t, ts, "Alpha", "alpha")
		b := createTestProductCategory(t, ts, "Beta", "beta")
		c := createTestProductCategory(t, ts, "Gamma", "gamma")
		p := createTestProduct(t, ts, "Gadget", "gadget")
		idParam := map[string]string{"id": strconv.FormatInt(p.ID, 10)}

		rec, req := MakeParamRequest(t, http.MethodPut, "/api/admin/products/categories",
			SetEntityCategoriesRequest{CategoryIDs: []int64{a.ID, b.ID}}, idParam)
		ts.HandleSetProductCategories(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var resp EntityCategoriesResponse
		DecodeJSON(t, rec, &resp)
		if resp.PrimaryCategoryID == nil || *resp.PrimaryCategoryID != a.ID {
			t.Errorf("Primary = %v, want %d", resp.PrimaryCategoryID, a.ID)
		}

		// Replacing the set moves the dangling primary to the first new id
		rec, req = MakeParamRequest(t, http.MethodPut, "/api/admin/products/categories",
			SetEntityCategoriesRequest{CategoryIDs: []int64{b.ID, c.ID}}, idParam)
		ts.HandleSetProductCategories(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		DecodeJSON(t, rec, &resp)
		if resp.PrimaryCategoryID == nil || *resp.PrimaryCategoryID != b.ID {
			t.Errorf("Primary after replace = %v, want %d", resp.PrimaryCategoryID, b.ID)
		}
		if len(resp.CategoryIDs) != 2 {
			t.Errorf("Category ids = %v, want 2 entries", resp.CategoryIDs)
		}

		// Explicit primary must be a current link
		rec, req = MakeParamRequest(t, http.MethodPut, "/api/admin/products/primary-category",
			SetPrimaryCategoryRequest{CategoryID: c.ID}, idParam)
		ts.HandleSetProductPrimaryCategory(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		rec, req = MakeParamRequest(t, http.MethodPut, "/api/admin/products/primary-category",
			SetPrimaryCategoryRequest{CategoryID: a.ID}, idParam)
		ts.HandleSetProductPrimaryCategory(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusConflict)
	})

	t.Run("CategoryFilterKeepsCuratedOrder", func(t *testing.T) {
		cat := createTestProductCategory(t, ts, "Featured", "featured")
		p1 := createTestProduct(t, ts, "First", "first")
		p2 := createTestProduct(t, ts, "Second", "second")

		for _, p := range []ProductResponse{p1, p2} {
			rec, req := MakeParamRequest(t, http.MethodPut, "/api/admin/products/categories",
				SetEntityCategoriesRequest{CategoryIDs: []int64{cat.ID}},
				map[string]string{"id": strconv.FormatInt(p.ID, 10)})
			ts.HandleSetProductCategories(rec, req)
			AssertStatusCode(t, rec.Code, http.StatusOK)
		}

		// Curate the listing: second before first
		rec, req := MakeParamRequest(t, http.MethodPut, "/api/admin/categories/product/entities/reorder",
			ReorderCategoryEntitiesRequest{EntityIDs: []int64{p2.ID, p1.ID}},
			map[string]string{"family": "product", "id": strconv.FormatInt(cat.ID, 10)})
		ts.HandleReorderCategoryEntities(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		rec, req = MakeRequest(t, http.MethodGet, "/api/products?category=featured", nil)
		ts.HandleListProducts(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var listing []ProductResponse
		DecodeJSON(t, rec, &listing)
		if len(listing) != 2 {
			t.Fatalf("Listing has %d products, want 2", len(listing))
		}
		if listing[0].ID != p2.ID || listing[1].ID != p1.ID {
			t.Errorf("Listing order = [%d %d], want [%d %d]", listing[0].ID, listing[1].ID, p2.ID, p1.ID)
		}
	})

	t.Run("UnknownCategoryFilter", func(t *testing.T) {
		rec, req := MakeRequest(t, http.MethodGet, "/api/products?category=nope", nil)
		ts.HandleListProducts(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusNotFound)
	})

	t.Run("GetSurfacesCategoryLoadFailure", func(t *testing.T) {
		// Own database so breaking the link table cannot leak into the
		// shared server above.
		broken := NewTestServer(t, "api_products_broken_links")
		createTestProduct(t, broken, "Gadget", "gadget")

		if _, err := broken.DB.Exec("DROP TABLE category_links"); err != nil {
			t.Fatalf("Failed to drop link table: %v", err)
		}

		rec, req := MakeParamRequest(t, http.MethodGet, "/api/products/gadget", nil,
			map[string]string{"slug": "gadget"})
		broken.HandleGetProduct(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusInternalServerError)

		var resp ErrorResponse
		DecodeJSON(t, rec, &resp)
		if resp.Code != "internal_error" {
			t.Errorf("Got error code %q, want internal_error", resp.Code)
		}
	})

	t.Run("DeleteProduct", func(t *testing.T) {
		p := createTestProduct(t, ts, "Doomed", "doomed")

		rec, req := MakeParamRequest(t, http.MethodDelete, "/api/admin/products/del", nil,
			map[string]string{"id": strconv.FormatInt(p.ID, 10)})
		ts.HandleDeleteProduct(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		rec, req = MakeParamRequest(t, http.MethodGet, "/api/products/doomed", nil,
			map[string]string{"slug": "doomed"})
		ts.HandleGetProduct(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusNotFound)
	})
}
