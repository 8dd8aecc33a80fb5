package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageKind discriminates the two storage representations of an image.
type ImageKind string

const (
	ImageKindURL    ImageKind = "url"
	ImageKindBase64 ImageKind = "base64"
)

// legacyImageName labels images synthesized from the deprecated single-URL field.
const legacyImageName = "Imagen legacy"

// Image is one entry of a project's image sequence. Exactly one of URL and
// Data is populated, consistent with Kind.
type Image struct {
	ID        primitive.ObjectID `json:"id"                  bson:"_id"`
	Kind      ImageKind          `json:"kind"                bson:"kind"`
	Name      string             `json:"name,omitempty"      bson:"name,omitempty"`
	URL       string             `json:"url,omitempty"       bson:"url,omitempty"`
	MimeType  string             `json:"mime_type,omitempty" bson:"mimeType,omitempty"`
	Data      string             `json:"data,omitempty"      bson:"data,omitempty"`
	Size      int64              `json:"size,omitempty"      bson:"size,omitempty"`
	IsPrimary bool               `json:"is_primary"          bson:"isPrimary"`
}

// ResolveKind returns the explicit kind, falling back to field presence for
// records stored before the discriminant existed.
func (i *Image) ResolveKind() ImageKind {
	if i.Kind != "" {
		return i.Kind
	}
	if i.Data != "" {
		return ImageKindBase64
	}
	return ImageKindURL
}

func (i *Image) validate() error {
	if i.URL != "" && i.Data != "" {
		return NewValidationError("an image cannot have both a url and inline data")
	}
	switch i.ResolveKind() {
	case ImageKindBase64:
		if i.Data == "" {
			return NewValidationError("base64-kind images require the data field")
		}
	default:
		if i.URL == "" {
			return NewValidationError("url-kind images require the url field")
		}
	}
	return nil
}

// ImageView is the read-side presentation of an image with its kind resolved.
// Legacy entries have no id.
type ImageView struct {
	ID        *primitive.ObjectID `json:"id,omitempty"`
	Kind      ImageKind           `json:"kind"`
	Name      string              `json:"name,omitempty"`
	URL       string              `json:"url,omitempty"`
	MimeType  string              `json:"mime_type,omitempty"`
	Data      string              `json:"data,omitempty"`
	Size      int64               `json:"size,omitempty"`
	IsPrimary bool                `json:"is_primary"`
}

// View converts a stored image into its read-side presentation.
func (i Image) View() ImageView {
	id := i.ID
	return ImageView{
		ID:        &id,
		Kind:      i.ResolveKind(),
		Name:      i.Name,
		URL:       i.URL,
		MimeType:  i.MimeType,
		Data:      i.Data,
		Size:      i.Size,
		IsPrimary: i.IsPrimary,
	}
}

// ImageStats summarizes a project's image collection.
type ImageStats struct {
	Total     int  `json:"total"`
	Base64    int  `json:"base64"`
	URL       int  `json:"url"`
	HasLegacy bool `json:"has_legacy"`
}
