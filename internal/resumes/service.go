package resumes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// Service is the résumé lifecycle façade. Every operation takes the owner
// explicitly; nothing is read from ambient state.
type Service struct {
	Repo   Repo
	Assets *AssetManager
}

// Create builds the default-shaped document, applies the caller's top-level
// overrides, and persists it.
func (s *Service) Create(ctx context.Context, ownerID string, overrides Patch) (Resume, error) {
	title := ""
	if overrides.Title != nil {
		title = strings.TrimSpace(*overrides.Title)
	}
	if title == "" {
		return Resume{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	res := NewDefault(ownerID, title)
	overrides.Title = nil
	overrides.apply(&res)

	now := time.Now().UTC()
	res.ID = uuid.NewString()
	res.CreatedAt = now
	res.UpdatedAt = now

	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, storeErr("create resume", err)
	}
	metrics.IncResumeCreated()
	return res, nil
}

// ListByOwner returns the owner's résumés, most recently updated first.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	out, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeErr("list resumes", err)
	}
	return out, nil
}

// Get fetches a single résumé through the owner-scoped lookup.
func (s *Service) Get(ctx context.Context, id, ownerID string) (Resume, error) {
	res, err := s.Repo.GetOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, storeErr("get resume", err)
	}
	return res, nil
}

// Update merges the patch's top-level keys into the stored document and
// persists the whole document. Concurrent updates race last-write-wins.
func (s *Service) Update(ctx context.Context, id, ownerID string, patch Patch) (Resume, error) {
	res, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return Resume{}, err
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return Resume{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}

	patch.apply(&res)
	res.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, res); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, storeErr("update resume", err)
	}
	return res, nil
}

// Delete removes both asset files best-effort, then the record. A file that
// cannot be removed is logged and orphaned, never a reason to keep the
// document.
func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	res, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}

	s.Assets.Cleanup(ctx, &res, SlotThumbnail)
	s.Assets.Cleanup(ctx, &res, SlotProfileImage)

	if err := s.Repo.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return storeErr("delete resume", err)
	}
	metrics.IncResumeDeleted()
	telemetry.Info("resume.deleted", map[string]any{"resume_id": id})
	return nil
}

// UploadImages replaces one or both image slots and persists the document
// once. Every slot is validated before the first store write, so a rejected
// slot never leaves another slot half-replaced with an unpersisted URL.
func (s *Service) UploadImages(ctx context.Context, id, ownerID string, thumbnail, profileImage *ImageUpload) (Resume, error) {
	if thumbnail == nil && profileImage == nil {
		return Resume{}, ErrNoFiles
	}
	for _, up := range []*ImageUpload{thumbnail, profileImage} {
		if up == nil {
			continue
		}
		if err := ValidateImageType(up.ContentType); err != nil {
			return Resume{}, err
		}
	}

	res, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return Resume{}, err
	}

	if thumbnail != nil {
		if _, err := s.Assets.Replace(ctx, &res, SlotThumbnail, *thumbnail); err != nil {
			return Resume{}, err
		}
	}
	if profileImage != nil {
		if _, err := s.Assets.Replace(ctx, &res, SlotProfileImage, *profileImage); err != nil {
			return Resume{}, err
		}
	}

	res.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, res); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Resume{}, ErrNotFound
		}
		// The new files are already stored; no compensating delete. A
		// re-upload recovers the reference.
		return Resume{}, storeErr("persist image urls", err)
	}
	metrics.IncImagesUploaded()
	return res, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
