package dtos

// APIResponse is the standard envelope returned by every HTTP endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// ImportSummaryResponse reports the outcome of one import run.
type ImportSummaryResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
	Unknown int `json:"unknown_tables"`
}

// TableCount is one row of the stats endpoint.
type TableCount struct {
	Table string `json:"table" db:"table_name"`
	Rows  int64  `json:"rows" db:"row_count"`
}

// ServiceStatus reports one dependency's health.
type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// HealthCheckResponse is the /healthCheck payload.
type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Services map[string]ServiceStatus `json:"services"`
}

// ImageRequest is the write payload for the image REST endpoints.
type ImageRequest struct {
	GUID        string `json:"guid,omitempty"`
	ImgCode     string `json:"img_code"`
	UserID      int    `json:"user_id"`
	Platform    int    `json:"platform"`
	FileExt     string `json:"file_ext"`
	FileName    string `json:"file_name"`
	LinkCode    string `json:"link_code"`
	ImgUpload   bool   `json:"img_upload"`
	ImgDownload bool   `json:"img_download"`
}
