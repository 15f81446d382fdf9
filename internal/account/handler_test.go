package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/storage/object/local"
)

func purgeRouter(t *testing.T, ownerID string) (*gin.Engine, *resumes.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resumeSvc := &resumes.Service{
		Repo: resumes.NewMemoryRepo(),
		Assets: &resumes.AssetManager{
			Store:     local.New(t.TempDir()),
			BaseURL:   "http://localhost:8080",
			MountPath: "uploads",
		},
	}
	handler := NewHandler(NewService(resumeSvc))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", ownerID)
		c.Next()
	})
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router, resumeSvc
}

func titled(s string) *string { return &s }

func TestPurgeDeletesAllOwnedResumes(t *testing.T) {
	router, resumeSvc := purgeRouter(t, "user-1")
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		if _, err := resumeSvc.Create(ctx, "user-1", resumes.Patch{Title: titled(title)}); err != nil {
			t.Fatalf("create resume: %v", err)
		}
	}
	other, err := resumeSvc.Create(ctx, "user-2", resumes.Patch{Title: titled("Untouched")})
	if err != nil {
		t.Fatalf("create other-owner resume: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/account", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var result PurgeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.DeletedResumes != 3 {
		t.Fatalf("expected 3 deleted resumes, got %d", result.DeletedResumes)
	}

	remaining, err := resumeSvc.ListByOwner(ctx, "user-1")
	if err != nil {
		t.Fatalf("list after purge: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no resumes left, got %d", len(remaining))
	}

	// Another account's data is untouched.
	if _, err := resumeSvc.Get(ctx, other.ID, "user-2"); err != nil {
		t.Fatalf("expected other owner's resume to survive: %v", err)
	}
}

func TestPurgeOnEmptyAccountIsFine(t *testing.T) {
	router, _ := purgeRouter(t, "user-1")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/account", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var result PurgeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.DeletedResumes != 0 {
		t.Fatalf("expected 0 deleted resumes, got %d", result.DeletedResumes)
	}
}
