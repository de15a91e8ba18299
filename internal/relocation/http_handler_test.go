package relocation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"membership-portal/internal/auth"
)

func postRelocate(t *testing.T, handler http.Handler, body, actor string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/members/relocate", strings.NewReader(body))
	if actor != "" {
		req.Header.Set("X-Actor-ID", actor)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) relocateResponse {
	t.Helper()
	var resp relocateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v\nRaw: %s", err, rec.Body.String())
	}
	return resp
}

func TestHandlerRelocateSuccess(t *testing.T) {
	db := newFakeDB()
	db.seedOrdinaryMember(42, "TAX-001")
	handler := auth.Middleware(NewHTTPHandler(NewService(db)))

	rec := postRelocate(t, handler, `{"sourceId":42,"sourceVariant":"ordinary","targetVariant":"associate"}`, "admin-7")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if !resp.Success || resp.NewRootID == nil || *resp.NewRootID != 101 || resp.NewVariant != "associate" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name  string
		seed  func(*fakeDB)
		body  string
		actor string
		want  int
	}{
		{
			name:  "same variant",
			body:  `{"sourceId":42,"sourceVariant":"ordinary","targetVariant":"ordinary"}`,
			actor: "admin-7",
			want:  http.StatusBadRequest,
		},
		{
			name:  "unknown variant",
			body:  `{"sourceId":42,"sourceVariant":"ordinary","targetVariant":"honorary"}`,
			actor: "admin-7",
			want:  http.StatusBadRequest,
		},
		{
			name:  "missing actor header",
			body:  `{"sourceId":42,"sourceVariant":"ordinary","targetVariant":"associate"}`,
			actor: "",
			want:  http.StatusBadRequest,
		},
		{
			name:  "missing source",
			body:  `{"sourceId":999,"sourceVariant":"ordinary","targetVariant":"associate"}`,
			actor: "admin-7",
			want:  http.StatusNotFound,
		},
		{
			name: "conflict",
			seed: func(db *fakeDB) {
				db.seedOrdinaryMember(42, "TAX-001")
				db.tables["associate_member"] = append(db.tables["associate_member"], map[string]any{
					"id": int64(7), "tax_id": "TAX-001", "company_name": "Other Co.",
				})
			},
			body:  `{"sourceId":42,"sourceVariant":"ordinary","targetVariant":"associate"}`,
			actor: "admin-7",
			want:  http.StatusConflict,
		},
		{
			name: "internal failure",
			seed: func(db *fakeDB) {
				db.seedOrdinaryMember(42, "TAX-001")
				db.failAudit = true
			},
			body:  `{"sourceId":42,"sourceVariant":"ordinary","targetVariant":"associate"}`,
			actor: "admin-7",
			want:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newFakeDB()
			if tc.seed != nil {
				tc.seed(db)
			}
			handler := auth.Middleware(NewHTTPHandler(NewService(db)))

			rec := postRelocate(t, handler, tc.body, tc.actor)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
			resp := decodeResponse(t, rec)
			if resp.Success {
				t.Fatal("failure responses must not report success")
			}
			if resp.Message == "" {
				t.Fatal("failure responses must carry a message")
			}
			if tc.want == http.StatusInternalServerError && strings.Contains(resp.Message, "forced") {
				t.Fatal("internal error details must not leak to the caller")
			}
		})
	}
}

func TestHandlerRejectsNonPost(t *testing.T) {
	handler := NewHTTPHandler(NewService(newFakeDB()))
	req := httptest.NewRequest(http.MethodGet, "/api/members/relocate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
