package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/models/dtos"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gormlib.DB {
	t.Helper()

	conn, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return conn
}

func setupImagesRouter(t *testing.T) (*chi.Mux, *repositories.ImagePicRepository) {
	t.Helper()

	repo := repositories.NewImagePicRepository(setupTestDB(t))
	cache := common.NewCacheService(60, 600)

	r := chi.NewRouter()
	r.Get("/api/v1/images", ListImagesHandler(repo, cache))
	r.Get("/api/v1/images/{id}", GetImageHandler(repo))
	r.Post("/api/v1/images", CreateImageHandler(repo, cache))
	return r, repo
}

func seedImage(t *testing.T, repo *repositories.ImagePicRepository) *gormModels.ImagePic {
	t.Helper()

	img := &gormModels.ImagePic{
		GUID:        uuid.MustParse("44444444-4444-4444-4444-444444444444"),
		ImgCode:     "IMG001",
		UserID:      1,
		Platform:    1,
		FileExt:     "jpg",
		FileName:    "logbook-page.jpg",
		ImgUpload:   true,
		ImgDownload: false,
	}
	if err := repo.Create(context.Background(), img); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return img
}

func TestListImagesHandler_FieldSelection(t *testing.T) {
	router, repo := setupImagesRouter(t)
	seedImage(t, repo)

	req := httptest.NewRequest("GET", "/api/v1/images?fields=id,file_name", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != "ok" {
		t.Fatalf("expected status ok, got %s", response.Status)
	}

	items, ok := response.Data.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 item, got %v", response.Data)
	}

	item, _ := items[0].(map[string]any)
	if item["file_name"] != "logbook-page.jpg" {
		t.Errorf("file_name = %v", item["file_name"])
	}
	if _, present := item["guid"]; present {
		t.Error("unselected field guid leaked into response")
	}
	if len(item) != 2 {
		t.Errorf("expected exactly 2 fields, got %v", item)
	}
}

func TestListImagesHandler_UnknownFieldRejected(t *testing.T) {
	router, _ := setupImagesRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/images?fields=id,bogus", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestGetImageHandler_NotFound(t *testing.T) {
	router, _ := setupImagesRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/images/9999", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestCreateImageHandler(t *testing.T) {
	router, repo := setupImagesRouter(t)

	body, _ := json.Marshal(dtos.ImageRequest{
		ImgCode:   "IMG002",
		UserID:    2,
		Platform:  1,
		FileExt:   "png",
		FileName:  "chart.png",
		ImgUpload: true,
	})

	req := httptest.NewRequest("POST", "/api/v1/images", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	images, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(images) != 1 || images[0].FileName != "chart.png" {
		t.Fatalf("image not persisted: %+v", images)
	}
	if images[0].GUID == uuid.Nil {
		t.Error("created image should receive a generated guid")
	}
}

func TestCreateImageHandler_MissingImgCode(t *testing.T) {
	router, _ := setupImagesRouter(t)

	req := httptest.NewRequest("POST", "/api/v1/images", bytes.NewReader([]byte(`{"file_name":"x.jpg"}`)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}
