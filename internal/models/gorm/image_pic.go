package gorm

import "github.com/google/uuid"

// ImagePic is an image attachment record. One GUID can carry several images,
// so the merge key is the (guid, img_code) pair.
type ImagePic struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID     uuid.UUID `gorm:"column:guid;type:uuid;index:idx_image_pics_key,unique;not null"`
	ImgCode  string    `gorm:"column:img_code;type:varchar(100);index:idx_image_pics_key,unique;not null"`
	UserID   int       `gorm:"column:user_id;not null"`
	Platform int       `gorm:"column:platform;not null"`
	Modified int64     `gorm:"column:modified;not null"`

	FileExt     string `gorm:"column:file_ext;type:varchar(20)"`
	FileName    string `gorm:"column:file_name;type:varchar(255)"`
	LinkCode    string `gorm:"column:link_code;type:varchar(100)"`
	ImgUpload   bool   `gorm:"column:img_upload"`
	ImgDownload bool   `gorm:"column:img_download"`

	RecordModified int64 `gorm:"column:record_modified"`
}

// TableName specifies the table name for GORM
func (ImagePic) TableName() string {
	return "image_pics"
}
