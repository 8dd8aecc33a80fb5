package project

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/atelier-works/projects-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// maxImageBytes caps the approximate decoded size of inline images.
	// The boundary is inclusive.
	maxImageBytes = 5 * 1024 * 1024

	defaultMimeType   = "image/jpeg"
	defaultBase64Name = "imagen.jpg"
	defaultURLName    = "Imagen desde URL"
)

// normalizeImage validates one raw image payload and produces its canonical
// stored form. The payload's kind is inferred from field presence: data wins
// over url. Validation is stateless and per-image; sibling invariants are the
// caller's concern.
func normalizeImage(dto *ImagePayloadDTO) (models.Image, error) {
	switch {
	case dto.Data != nil:
		return normalizeBase64Image(dto)
	case dto.URL != nil:
		return normalizeURLImage(dto)
	default:
		return models.Image{}, models.NewValidationError("image must supply either inline data or a url")
	}
}

func normalizeBase64Image(dto *ImagePayloadDTO) (models.Image, error) {
	data := strings.TrimSpace(*dto.Data)
	if data == "" {
		return models.Image{}, models.NewValidationError("image data must not be empty")
	}

	// Strip a data:<mime>;base64,<payload> envelope, keeping the declared
	// mime type and the raw payload.
	var declaredMime string
	if rest, ok := strings.CutPrefix(data, "data:"); ok {
		if mime, payload, found := strings.Cut(rest, ";base64,"); found {
			declaredMime = strings.TrimSpace(mime)
			data = payload
		}
	}

	mimeType := declaredMime
	if mimeType == "" {
		mimeType = strings.TrimSpace(dto.MimeType)
	}
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return models.Image{}, models.NewValidationError(fmt.Sprintf("mime type %q is not an image", mimeType))
	}

	// Approximate decoded size of the base64 payload.
	size := int64(len(data)) * 3 / 4
	if size > maxImageBytes {
		return models.Image{}, models.NewValidationError("image exceeds maximum allowed size")
	}

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		name = defaultBase64Name
	}

	return models.Image{
		ID:        primitive.NewObjectID(),
		Kind:      models.ImageKindBase64,
		Name:      name,
		Data:      data,
		MimeType:  mimeType,
		Size:      size,
		IsPrimary: dto.IsPrimary,
	}, nil
}

func normalizeURLImage(dto *ImagePayloadDTO) (models.Image, error) {
	raw := strings.TrimSpace(*dto.URL)
	if raw == "" {
		return models.Image{}, models.NewValidationError("image url must not be empty")
	}

	parsed, err := url.ParseRequestURI(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return models.Image{}, models.NewValidationError("invalid URL")
	}

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		name = defaultURLName
	}

	return models.Image{
		ID:        primitive.NewObjectID(),
		Kind:      models.ImageKindURL,
		Name:      name,
		URL:       raw,
		IsPrimary: dto.IsPrimary,
	}, nil
}
