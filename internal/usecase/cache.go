package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"jobmatch/internal/domain/matching"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Cache is the JSON cache the usecases read through. Implementations must
// treat an unreachable backend as a miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

func RecommendationsCacheKey(candidateID uuid.UUID, limit int) string {
	return fmt.Sprintf("recs:%s:%d", candidateID, limit)
}

func recommendationsCachePattern(candidateID uuid.UUID) string {
	return fmt.Sprintf("recs:%s:*", candidateID)
}

// MatchCacheKey embeds a fingerprint of the scored inputs so an edited
// profile or posting never reads a result computed from older data.
func MatchCacheKey(candidateID, jobID uuid.UUID, fingerprint string) string {
	return fmt.Sprintf("match:%s:%s:%s", candidateID, jobID, fingerprint)
}

func matchCachePattern(candidateID, jobID uuid.UUID) string {
	return fmt.Sprintf("match:%s:%s:*", candidateID, jobID)
}

// MatchFingerprint hashes the JSON form of both scoring inputs.
func MatchFingerprint(profile matching.CandidateMatchProfile, job matching.JobMatchRequirements) (string, error) {
	b, err := json.Marshal(struct {
		Profile matching.CandidateMatchProfile `json:"profile"`
		Job     matching.JobMatchRequirements  `json:"job"`
	}{profile, job})
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16), nil
}
