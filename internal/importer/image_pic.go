package importer

import (
	"context"
	"fmt"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	gormModels "apexive/pilotlog/internal/models/gorm"
)

type imagePicMeta struct {
	ImgCode        string           `json:"ImgCode"`
	FileExt        string           `json:"FileExt"`
	FileName       string           `json:"FileName"`
	LinkCode       string           `json:"LinkCode"`
	ImgUpload      common.LooseBool `json:"Img_Upload"`
	ImgDownload    common.LooseBool `json:"Img_Download"`
	RecordModified common.LooseInt  `json:"Record_Modified"`
}

type imagePicImporter struct {
	images *repositories.ImagePicRepository
}

func (i *imagePicImporter) Import(ctx context.Context, rec *RawRecord) (Outcome, error) {
	guid, ok := ParseGUID(rec.GUID)
	if !ok {
		logging.Warn("Invalid or missing GUID", "table", "imagepic", "guid", rec.GUID)
		return OutcomeSkipped, nil
	}

	var meta imagePicMeta
	if err := rec.DecodeMeta(&meta); err != nil {
		return OutcomeSkipped, fmt.Errorf("malformed imagepic meta: %w", err)
	}

	// ImgCode is half of the merge key; a record without it cannot merge.
	if meta.ImgCode == "" {
		logging.Warn("Image record missing ImgCode", "guid", guid)
		return OutcomeSkipped, nil
	}

	img := &gormModels.ImagePic{
		GUID:           guid,
		ImgCode:        meta.ImgCode,
		UserID:         rec.UserID,
		Platform:       rec.Platform,
		Modified:       rec.Modified,
		FileExt:        meta.FileExt,
		FileName:       meta.FileName,
		LinkCode:       meta.LinkCode,
		ImgUpload:      bool(meta.ImgUpload),
		ImgDownload:    bool(meta.ImgDownload),
		RecordModified: int64(meta.RecordModified),
	}

	created, err := i.images.Upsert(ctx, img)
	if err != nil {
		return OutcomeSkipped, err
	}

	if created {
		logging.Info("Created new ImagePic", "guid", guid, "img_code", img.ImgCode)
		return OutcomeCreated, nil
	}
	logging.Info("Updated ImagePic", "guid", guid, "img_code", img.ImgCode)
	return OutcomeUpdated, nil
}
