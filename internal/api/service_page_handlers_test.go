package api

import (
	"net/http"
	"strconv"
	"testing"
)

func TestServicePageHandlers(t *testing.T) {
	ts := NewTestServer(t, "api_servicepages")

	rec, req := MakeRequest(t, http.MethodPost, "/api/admin/service-pages", CreateServicePageRequest{
		Title: "Consulting",
		Slug:  "consulting",
	})
	ts.HandleCreateServicePage(rec, req)
	AssertStatusCode(t, rec.Code, http.StatusCreated)

	var page ServicePageResponse
	DecodeJSON(t, rec, &page)
	if page.Page != "service-consulting" {
		t.Errorf("Block namespace = %q, want service-consulting", page.Page)
	}
	idParam := map[string]string{"id": strconv.FormatInt(page.ID, 10)}

	// Give the page some blocks
	createTestSection(t, ts, page.Page, "hero", "Consulting")
	createTestSection(t, ts, page.Page, "services", "What we do")

	t.Run("AppearsInPageList", func(t *testing.T) {
		rec, req := MakeRequest(t, http.MethodGet, "/api/pages", nil)
		ts.HandleListPages(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var pages []struct {
			Page       string `json:"page"`
			BlockCount int    `json:"block_count"`
		}
		DecodeJSON(t, rec, &pages)

		found := false
		for _, p := range pages {
			if p.Page == "service-consulting" {
				found = true
				if p.BlockCount != 2 {
					t.Errorf("Block count = %d, want 2", p.BlockCount)
				}
			}
		}
		if !found {
			t.Error("Service page namespace missing from page list")
		}
	})

	t.Run("SlugRenameMigratesBlocks", func(t *testing.T) {
		slug := "advisory"
		rec, req := MakeParamRequest(t, http.MethodPatch, "/api/admin/service-pages/upd",
			UpdateServicePageRequest{Slug: &slug}, idParam)
		ts.HandleUpdateServicePage(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var updated ServicePageResponse
		DecodeJSON(t, rec, &updated)
		if updated.Page != "service-advisory" {
			t.Errorf("Namespace after rename = %q, want service-advisory", updated.Page)
		}

		if got := listTestSections(t, ts, "service-advisory"); len(got) != 2 {
			t.Errorf("New namespace has %d blocks, want 2", len(got))
		}
		if got := listTestSections(t, ts, "service-consulting"); len(got) != 0 {
			t.Errorf("Old namespace still has %d blocks", len(got))
		}
	})

	t.Run("DuplicateSlugConflicts", func(t *testing.T) {
		rec, req := MakeRequest(t, http.MethodPost, "/api/admin/service-pages", CreateServicePageRequest{
			Title: "Advisory again",
			Slug:  "advisory",
		})
		ts.HandleCreateServicePage(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusConflict)
	})

	t.Run("DeleteCascadesBlocks", func(t *testing.T) {
		rec, req := MakeParamRequest(t, http.MethodDelete, "/api/admin/service-pages/del", nil, idParam)
		ts.HandleDeleteServicePage(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		if got := listTestSections(t, ts, "service-advisory"); len(got) != 0 {
			t.Errorf("Deleted service page still has %d blocks", len(got))
		}

		rec, req = MakeParamRequest(t, http.MethodGet, "/api/service-pages/advisory", nil,
			map[string]string{"slug": "advisory"})
		ts.HandleGetServicePage(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusNotFound)
	})
}
