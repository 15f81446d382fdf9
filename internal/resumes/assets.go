package resumes

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
)

// Slot is one of the two image attachment points on a résumé.
type Slot string

const (
	SlotThumbnail    Slot = "thumbnail"
	SlotProfileImage Slot = "profileImage"
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

// ImageUpload is an incoming image file for one slot.
type ImageUpload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

// AssetManager replaces slot images so a document's URL never references a
// file that was not stored first. Stored names are server-generated (uuid
// plus the sanitized original extension), so client names can neither
// collide nor traverse.
type AssetManager struct {
	Store     object.ObjectStore
	BaseURL   string
	MountPath string
}

// ValidateImageType checks the declared content type against the allow-list.
func ValidateImageType(contentType string) error {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if _, ok := allowedImageTypes[ct]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, ct)
	}
	return nil
}

// Replace stores the new file, cleans up the slot's previous file
// best-effort, and sets the slot URL on the in-memory document. The caller
// persists the document afterwards. Nothing is mutated when validation or
// the store write fails.
func (m *AssetManager) Replace(ctx context.Context, doc *Resume, slot Slot, up ImageUpload) (string, error) {
	if err := ValidateImageType(up.ContentType); err != nil {
		return "", err
	}
	contentType := strings.ToLower(strings.TrimSpace(up.ContentType))

	storedName := storedFileName(up.FileName)
	if _, err := m.Store.Save(ctx, storedName, contentType, up.Reader); err != nil {
		return "", fmt.Errorf("%w: save image: %v", ErrStoreUnavailable, err)
	}

	// The new file exists from here on; an unremovable old file leaves an
	// orphan, never a dangling reference.
	if old := slotURL(doc, slot); old != "" {
		m.deleteByURL(ctx, old, slot)
	}

	publicURL := m.PublicURL(storedName)
	setSlotURL(doc, slot, publicURL)
	return publicURL, nil
}

// Cleanup removes the slot's backing file if one is referenced. Failures are
// logged and swallowed; missing files are a no-op.
func (m *AssetManager) Cleanup(ctx context.Context, doc *Resume, slot Slot) {
	if old := slotURL(doc, slot); old != "" {
		m.deleteByURL(ctx, old, slot)
	}
}

// PublicURL builds the externally visible URL for a stored file name.
func (m *AssetManager) PublicURL(fileName string) string {
	base := strings.TrimRight(m.BaseURL, "/")
	mount := strings.Trim(m.MountPath, "/")
	return base + "/" + mount + "/" + fileName
}

func (m *AssetManager) deleteByURL(ctx context.Context, rawURL string, slot Slot) {
	fileName := fileNameFromURL(rawURL)
	if fileName == "" {
		return
	}
	if err := m.Store.Delete(ctx, fileName); err != nil {
		telemetry.Error("assets.cleanup.failed", map[string]any{
			"slot": string(slot),
			"file": fileName,
			"err":  err.Error(),
		})
	}
}

func slotURL(doc *Resume, slot Slot) string {
	if slot == SlotProfileImage {
		return doc.ProfileInfo.ProfileImageURL
	}
	return doc.ThumbnailURL
}

func setSlotURL(doc *Resume, slot Slot, url string) {
	if slot == SlotProfileImage {
		doc.ProfileInfo.ProfileImageURL = url
		return
	}
	doc.ThumbnailURL = url
}

func storedFileName(original string) string {
	return uuid.NewString() + util.SafeExtension(original)
}

func fileNameFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
