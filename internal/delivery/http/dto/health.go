package dto

type HealthResponse struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
