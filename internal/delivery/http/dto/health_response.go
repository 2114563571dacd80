package dto

type HealthResponse struct {
	App         string `json:"app"`
	Environment string `json:"environment"`
	Cache       string `json:"cache"`
}
