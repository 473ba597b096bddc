package dto

import "jobmatch/internal/domain/recommendation"

type RecommendationsResponse struct {
	Count int                             `json:"count"`
	Items []recommendation.Recommendation `json:"items"`
}
