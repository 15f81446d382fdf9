package account

import (
	"context"
	"errors"
	"strings"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/telemetry"
)

// Service removes everything an account owns: every résumé record and the
// asset files behind them.
type Service struct {
	Resumes *resumes.Service
}

type PurgeResult struct {
	DeletedResumes int `json:"deletedResumes"`
}

func NewService(resumeSvc *resumes.Service) *Service {
	return &Service{Resumes: resumeSvc}
}

// Purge deletes the owner's résumés one by one through the lifecycle
// service, so each delete runs the same asset cleanup a single delete would.
// A résumé that fails to delete is logged and skipped; the rest still go.
func (s *Service) Purge(ctx context.Context, ownerID string) (PurgeResult, error) {
	if s == nil || s.Resumes == nil {
		return PurgeResult{}, errors.New("account service not configured")
	}
	if strings.TrimSpace(ownerID) == "" {
		return PurgeResult{}, errors.New("owner id is required")
	}

	items, err := s.Resumes.ListByOwner(ctx, ownerID)
	if err != nil {
		return PurgeResult{}, err
	}

	deleted := 0
	for _, r := range items {
		if err := s.Resumes.Delete(ctx, r.ID, ownerID); err != nil {
			telemetry.Error("account.purge.resume_failed", map[string]any{
				"resume_id": r.ID,
				"err":       err.Error(),
			})
			continue
		}
		deleted++
	}

	telemetry.Info("account.purged", map[string]any{
		"deleted_resumes": deleted,
		"total_resumes":   len(items),
	})
	return PurgeResult{DeletedResumes: deleted}, nil
}
