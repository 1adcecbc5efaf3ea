package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/models/dtos"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

const imageListCacheKey = "images:all"

// imageFields maps the public field names the ?fields= selector accepts to
// extractors over the stored record. Selection happens at response-build
// time, never in SQL.
var imageFields = map[string]func(*gormModels.ImagePic) any{
	"id":           func(i *gormModels.ImagePic) any { return i.ID },
	"guid":         func(i *gormModels.ImagePic) any { return i.GUID.String() },
	"img_code":     func(i *gormModels.ImagePic) any { return i.ImgCode },
	"user_id":      func(i *gormModels.ImagePic) any { return i.UserID },
	"platform":     func(i *gormModels.ImagePic) any { return i.Platform },
	"modified":     func(i *gormModels.ImagePic) any { return i.Modified },
	"file_ext":     func(i *gormModels.ImagePic) any { return i.FileExt },
	"file_name":    func(i *gormModels.ImagePic) any { return i.FileName },
	"link_code":    func(i *gormModels.ImagePic) any { return i.LinkCode },
	"img_upload":   func(i *gormModels.ImagePic) any { return i.ImgUpload },
	"img_download": func(i *gormModels.ImagePic) any { return i.ImgDownload },
	"record_modified": func(i *gormModels.ImagePic) any {
		return i.RecordModified
	},
}

// projectImage renders one record with only the requested fields. An empty
// selection means every field.
func projectImage(img *gormModels.ImagePic, fields []string) map[string]any {
	out := make(map[string]any)
	if len(fields) == 0 {
		for name, get := range imageFields {
			out[name] = get(img)
		}
		return out
	}
	for _, name := range fields {
		if get, ok := imageFields[name]; ok {
			out[name] = get(img)
		}
	}
	return out
}

// parseFieldsParam splits and validates the ?fields= selector. Unknown field
// names are rejected so typos fail loudly instead of silently dropping data.
func parseFieldsParam(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(strings.ToLower(p))
		if name == "" {
			continue
		}
		if _, ok := imageFields[name]; !ok {
			return nil, errors.New("unknown field: " + name)
		}
		fields = append(fields, name)
	}
	return fields, nil
}

// ListImagesHandler godoc
// @Summary      List image records
// @Description  Returns every image record, optionally projected to a subset of fields.
// @Tags         Images
// @Produce      json
// @Param        fields  query    string  false  "Comma-separated field selection"
// @Success      200     {object} dtos.APIResponse
// @Failure      400,500 {object} dtos.APIResponse
// @Router       /api/v1/images [get]
func ListImagesHandler(repo *repositories.ImagePicRepository, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		fields, err := parseFieldsParam(r.URL.Query().Get("fields"))
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid fields parameter", http.StatusBadRequest)
			return
		}

		cached, err := cache.GetOrSet(imageListCacheKey, 30*time.Second, func() (any, error) {
			return repo.ListAll(r.Context())
		})
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list images")
			return
		}

		// A redis hit comes back as generic JSON, not the typed slice; fall
		// through to the store in that case rather than re-shaping it.
		images, ok := cached.([]gormModels.ImagePic)
		if !ok {
			images, err = repo.ListAll(r.Context())
			if err != nil {
				common.RespondError(w, initTime, err, "Failed to list images")
				return
			}
		}

		payload := make([]map[string]any, 0, len(images))
		for i := range images {
			payload = append(payload, projectImage(&images[i], fields))
		}

		common.RespondSuccess(w, initTime, "Images retrieved", payload)
	}
}

// GetImageHandler godoc
// @Summary      Get one image record
// @Tags         Images
// @Produce      json
// @Param        id       path     int     true   "Image ID"
// @Param        fields   query    string  false  "Comma-separated field selection"
// @Success      200      {object} dtos.APIResponse
// @Failure      400,404  {object} dtos.APIResponse
// @Router       /api/v1/images/{id} [get]
func GetImageHandler(repo *repositories.ImagePicRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid image id", http.StatusBadRequest)
			return
		}

		fields, err := parseFieldsParam(r.URL.Query().Get("fields"))
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid fields parameter", http.StatusBadRequest)
			return
		}

		img, err := repo.FindByID(r.Context(), uint(id))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch image")
			return
		}
		if img == nil {
			common.RespondError(w, initTime, nil, "Image not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Image retrieved", projectImage(img, fields))
	}
}

// TransferredImagesHandler godoc
// @Summary      List fully transferred images
// @Description  Returns images that have been both uploaded and downloaded.
// @Tags         Images
// @Produce      json
// @Success      200 {object} dtos.APIResponse
// @Router       /api/v1/images/uploaded-and-downloaded [get]
func TransferredImagesHandler(repo *repositories.ImagePicRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		images, err := repo.FindUploadedAndDownloaded(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list images")
			return
		}

		payload := make([]map[string]any, 0, len(images))
		for i := range images {
			payload = append(payload, projectImage(&images[i], nil))
		}

		common.RespondSuccess(w, initTime, "Images retrieved", payload)
	}
}

// RecentImagesHandler godoc
// @Summary      List recently modified images
// @Tags         Images
// @Produce      json
// @Param        days    query    int     false  "Lookback window in days"  default(30)
// @Success      200     {object} dtos.APIResponse
// @Failure      400     {object} dtos.APIResponse
// @Router       /api/v1/images/recent [get]
func RecentImagesHandler(repo *repositories.ImagePicRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		days := 30
		if qs := r.URL.Query().Get("days"); qs != "" {
			d, err := strconv.Atoi(qs)
			if err != nil || d <= 0 {
				common.RespondError(w, initTime, err, "Invalid days parameter", http.StatusBadRequest)
				return
			}
			days = d
		}

		images, err := repo.FindRecentlyModified(r.Context(), days)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list images")
			return
		}

		payload := make([]map[string]any, 0, len(images))
		for i := range images {
			payload = append(payload, projectImage(&images[i], nil))
		}

		common.RespondSuccess(w, initTime, "Images retrieved", payload)
	}
}

// CreateImageHandler godoc
// @Summary      Create an image record
// @Tags         Images
// @Accept       json
// @Produce      json
// @Param        body    body     dtos.ImageRequest  true  "Image payload"
// @Success      201     {object} dtos.APIResponse
// @Failure      400,500 {object} dtos.APIResponse
// @Router       /api/v1/images [post]
func CreateImageHandler(repo *repositories.ImagePicRepository, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.ImgCode == "" {
			common.RespondError(w, initTime, nil, "img_code is required", http.StatusBadRequest)
			return
		}

		img, err := imageFromRequest(&req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid guid", http.StatusBadRequest)
			return
		}
		img.RecordModified = time.Now().Unix()

		if err := repo.Create(r.Context(), img); err != nil {
			common.RespondError(w, initTime, err, "Failed to create image")
			return
		}
		cache.Delete(imageListCacheKey)

		common.RespondSuccess(w, initTime, "Image created", projectImage(img, nil), http.StatusCreated)
	}
}

// UpdateImageHandler godoc
// @Summary      Update an image record
// @Tags         Images
// @Accept       json
// @Produce      json
// @Param        id      path     int                true  "Image ID"
// @Param        body    body     dtos.ImageRequest  true  "Image payload"
// @Success      200     {object} dtos.APIResponse
// @Failure      400,404 {object} dtos.APIResponse
// @Router       /api/v1/images/{id} [put]
func UpdateImageHandler(repo *repositories.ImagePicRepository, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid image id", http.StatusBadRequest)
			return
		}

		existing, err := repo.FindByID(r.Context(), uint(id))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch image")
			return
		}
		if existing == nil {
			common.RespondError(w, initTime, nil, "Image not found", http.StatusNotFound)
			return
		}

		var req dtos.ImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		img, err := imageFromRequest(&req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid guid", http.StatusBadRequest)
			return
		}
		img.ID = existing.ID
		if img.GUID == uuid.Nil {
			img.GUID = existing.GUID
		}
		if img.ImgCode == "" {
			img.ImgCode = existing.ImgCode
		}
		img.RecordModified = time.Now().Unix()

		if err := repo.Update(r.Context(), img); err != nil {
			common.RespondError(w, initTime, err, "Failed to update image")
			return
		}
		cache.Delete(imageListCacheKey)

		common.RespondSuccess(w, initTime, "Image updated", projectImage(img, nil))
	}
}

func imageFromRequest(req *dtos.ImageRequest) (*gormModels.ImagePic, error) {
	img := &gormModels.ImagePic{
		ImgCode:     req.ImgCode,
		UserID:      req.UserID,
		Platform:    req.Platform,
		FileExt:     req.FileExt,
		FileName:    req.FileName,
		LinkCode:    req.LinkCode,
		ImgUpload:   req.ImgUpload,
		ImgDownload: req.ImgDownload,
	}

	if req.GUID != "" {
		guid, err := uuid.Parse(req.GUID)
		if err != nil {
			return nil, err
		}
		img.GUID = guid
	}

	return img, nil
}
