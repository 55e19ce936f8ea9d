package api

import (
	"net/http"
	"strconv"
	"testing"
)

func createTestSection(t *testing.T, ts *TestServer, page, sectionType, title string) SectionResponse {
	t.Helper()

	rec, req := MakeRequest(t, http.MethodPost, "/api/admin/sections", CreateSectionRequest{
		Page:        page,
		SectionType: sectionType,
		Title:       title,
	})
	ts.HandleCreateSection(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Failed to create section: %d %s", rec.Code, rec.Body.String())
	}

	var resp SectionResponse
	DecodeJSON(t, rec, &resp)
	return resp
}

func TestSectionHandlers(t *testing.T) {
	ts := NewTestServer(t, "api_sections")

	t.Run("CreateSection", func(t *testing.T) {
		created := createTestSection(t, ts, "home", "hero", "Welcome")
		if created.Position != 0 {
			t.Errorf("First block position = %d, want 0", created.Position)
		}
		if !created.Active {
			t.Error("New block should default to active")
		}

		second := createTestSection(t, ts, "home", "about", "About us")
		if second.Position != 1 {
			t.Errorf("Second block position = %d, want 1", second.Position)
		}
	})

	t.Run("CreateSectionUnknownType", func(t *testing.T) {
		rec, req := MakeRequest(t, http.MethodPost, "/api/admin/sections", CreateSectionRequest{
			Page:        "home",
			SectionType: "carousel-3000",
		})
		ts.HandleCreateSection(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusBadRequest)

		var errResp ErrorResponse
		DecodeJSON(t, rec, &errResp)
		if errResp.Code != "invalid_input" {
			t.Errorf("Error code = %q, want invalid_input", errResp.Code)
		}
	})

	t.Run("UpdateSection", func(t *testing.T) {
		created := createTestSection(t, ts, "about", "hero", "Old title")

		title := "New title"
		active := false
		rec, req := MakeParamRequest(t, http.MethodPatch, "/api/admin/sections/1", UpdateSectionRequest{
			Title:  &title,
			Active: &active,
		}, map[string]string{"id": strconv.FormatInt(created.ID, 10)})
		ts.HandleUpdateSection(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var resp SectionResponse
		DecodeJSON(t, rec, &resp)
		if resp.Title != "New title" {
			t.Errorf("Title = %q, want %q", resp.Title, "New title")
		}
		if resp.Active {
			t.Error("Block should be inactive after update")
		}
		if resp.Position != created.Position {
			t.Errorf("Update changed position: %d -> %d", created.Position, resp.Position)
		}
	})

	t.Run("PublicListSkipsInactive", func(t *testing.T) {
		hidden := createTestSection(t, ts, "contact", "hero", "Hidden")
		createTestSection(t, ts, "contact", "contact", "Visible")

		active := false
		rec, req := MakeParamRequest(t, http.MethodPatch, "/", UpdateSectionRequest{Active: &active},
			map[string]string{"id": strconv.FormatInt(hidden.ID, 10)})
		ts.HandleUpdateSection(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		rec, req = MakeParamRequest(t, http.MethodGet, "/api/pages/contact/sections", nil,
			map[string]string{"page": "contact"})
		ts.HandleListPageSections(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var public []SectionResponse
		DecodeJSON(t, rec, &public)
		for _, b := range public {
			if b.ID == hidden.ID {
				t.Error("Inactive block leaked into the public listing")
			}
		}

		rec, req = MakeParamRequest(t, http.MethodGet, "/api/admin/pages/contact/sections", nil,
			map[string]string{"page": "contact"})
		ts.HandleAdminListPageSections(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var admin []SectionResponse
		DecodeJSON(t, rec, &admin)
		if len(admin) != len(public)+1 {
			t.Errorf("Admin listing has %d blocks, public %d; want admin = public+1", len(admin), len(public))
		}
	})

	t.Run("ReorderSections", func(t *testing.T) {
		a := createTestSection(t, ts, "services", "hero", "A")
		b := createTestSection(t, ts, "services", "services", "B")
		c := createTestSection(t, ts, "services", "cta", "C")

		rec, req := MakeParamRequest(t, http.MethodPut, "/api/admin/pages/services/sections/reorder",
			ReorderSectionsRequest{IDs: []int64{c.ID, a.ID, b.ID}},
			map[string]string{"page": "services"})
		ts.HandleReorderSections(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var resp []SectionResponse
		DecodeJSON(t, rec, &resp)
		want := []int64{c.ID, a.ID, b.ID}
		for i, blk := range resp {
			if blk.ID != want[i] {
				t.Errorf("Position %d holds block %d, want %d", i, blk.ID, want[i])
			}
			if blk.Position != i {
				t.Errorf("Block %d position = %d, want %d", blk.ID, blk.Position, i)
			}
		}
	})

	t.Run("ReorderRejectsPartialList", func(t *testing.T) {
		blocks := listTestSections(t, ts, "services")
		rec, req := MakeParamRequest(t, http.MethodPut, "/api/admin/pages/services/sections/reorder",
			ReorderSectionsRequest{IDs: blocks[:1]},
			map[string]string{"page": "services"})
		ts.HandleReorderSections(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("MoveSection", func(t *testing.T) {
		src := createTestSection(t, ts, "move-src", "hero", "Mover")
		createTestSection(t, ts, "move-src", "about", "Stays")

		rec, req := MakeParamRequest(t, http.MethodPut, "/api/admin/sections/move",
			MoveSectionRequest{TargetPage: "move-dst"},
			map[string]string{"id": strconv.FormatInt(src.ID, 10)})
		ts.HandleMoveSection(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var moved SectionResponse
		DecodeJSON(t, rec, &moved)
		if moved.Page != "move-dst" {
			t.Errorf("Moved block page = %q, want move-dst", moved.Page)
		}
		if moved.Position != 0 {
			t.Errorf("Block moved to empty page got position %d, want 0", moved.Position)
		}

		// Source page closed its gap
		remaining := listTestSections(t, ts, "move-src")
		if len(remaining) != 1 {
			t.Fatalf("Source page has %d blocks, want 1", len(remaining))
		}
	})

	t.Run("MoveToSamePageRejected", func(t *testing.T) {
		blk := createTestSection(t, ts, "move-same", "hero", "Stuck")
		rec, req := MakeParamRequest(t, http.MethodPut, "/api/admin/sections/move",
			MoveSectionRequest{TargetPage: "move-same"},
			map[string]string{"id": strconv.FormatInt(blk.ID, 10)})
		ts.HandleMoveSection(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("BulkMoveToTop", func(t *testing.T) {
		a := createTestSection(t, ts, "bulk", "hero", "A")
		b := createTestSection(t, ts, "bulk", "about", "B")
		c := createTestSection(t, ts, "bulk", "cta", "C")
		d := createTestSection(t, ts, "bulk", "faq", "D")

		rec, req := MakeParamRequest(t, http.MethodPut, "/api/admin/pages/bulk/sections/bulk-move",
			BulkMoveSectionsRequest{IDs: []int64{b.ID, d.ID}, Edge: "top"},
			map[string]string{"page": "bulk"})
		ts.HandleBulkMoveSections(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var resp []SectionResponse
		DecodeJSON(t, rec, &resp)
		want := []int64{b.ID, d.ID, a.ID, c.ID}
		for i, blk := range resp {
			if blk.ID != want[i] {
				t.Errorf("Position %d holds block %d, want %d", i, blk.ID, want[i])
			}
		}
	})

	t.Run("BulkMoveBadEdge", func(t *testing.T) {
		rec, req := MakeParamRequest(t, http.MethodPut, "/api/admin/pages/bulk/sections/bulk-move",
			BulkMoveSectionsRequest{IDs: []int64{1}, Edge: "middle"},
			map[string]string{"page": "bulk"})
		ts.HandleBulkMoveSections(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("DeleteSectionClosesGap", func(t *testing.T) {
		a := createTestSection(t, ts, "del", "hero", "A")
		b := createTestSection(t, ts, "del", "about", "B")
		c := createTestSection(t, ts, "del", "cta", "C")
		_ = a

		rec, req := MakeParamRequest(t, http.MethodDelete, "/api/admin/sections/del", nil,
			map[string]string{"id": strconv.FormatInt(b.ID, 10)})
		ts.HandleDeleteSection(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		blocks := listTestSections(t, ts, "del")
		if len(blocks) != 2 {
			t.Fatalf("Page has %d blocks after delete, want 2", len(blocks))
		}
		if blocks[1] != c.ID {
			t.Errorf("Last block = %d, want %d", blocks[1], c.ID)
		}
	})

	t.Run("InitializeDefaults", func(t *testing.T) {
		rec, req := MakeParamRequest(t, http.MethodPost, "/api/admin/pages/fresh/init",
			InitSectionsRequest{Template: "home"},
			map[string]string{"page": "fresh"})
		ts.HandleInitializeSections(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusCreated)

		var resp []SectionResponse
		DecodeJSON(t, rec, &resp)
		if len(resp) == 0 {
			t.Fatal("Template seeded no blocks")
		}
		for i, blk := range resp {
			if blk.Position != i {
				t.Errorf("Seeded block %d has position %d, want %d", blk.ID, blk.Position, i)
			}
		}

		// Second init on the now non-empty page conflicts
		rec, req = MakeParamRequest(t, http.MethodPost, "/api/admin/pages/fresh/init",
			InitSectionsRequest{Template: "home"},
			map[string]string{"page": "fresh"})
		ts.HandleInitializeSections(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusConflict)
	})

	t.Run("ListSectionTypes", func(t *testing.T) {
		rec, req := MakeRequest(t, http.MethodGet, "/api/admin/section-types", nil)
		ts.HandleListSectionTypes(rec, req)
		AssertStatusCode(t, rec.Code, http.StatusOK)

		var types []struct {
			Type  string `json:"type"`
			Shape string `json:"shape"`
		}
		DecodeJSON(t, rec, &types)
		if len(types) == 0 {
			t.Fatal("Registry reported no section types")
		}
	})
}

// listTestSections returns a page's block ids in admin (display) order
func listTestSections(t *testing.T, ts *TestServer, page string) []int64 {
	t.Helper()

	rec, req := MakeParamRequest(t, http.MethodGet, "/api/admin/pages/"+page+"/sections", nil,
		map[string]string{"page": page})
	ts.HandleAdminListPageSections(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Failed to list sections: %d %s", rec.Code, rec.Body.String())
	}

	var resp []SectionResponse
	DecodeJSON(t, rec, &resp)
	ids := make([]int64, 0, len(resp))
	for _, b := range resp {
		ids = append(ids, b.ID)
	}
	return ids
}
