package project

import (
	"errors"

	"github.com/atelier-works/projects-api/internal/models"
)

var (
	errProjectNotFound = errors.New("project not found")
	errImageNotFound   = errors.New("image not found")
)

// ImagePayloadDTO is one raw image payload. Pointers distinguish an absent
// field from an empty one, which drives kind inference.
type ImagePayloadDTO struct {
	Name      string  `json:"name"`
	URL       *string `json:"url"`
	Data      *string `json:"data"`
	MimeType  string  `json:"mime_type"`
	IsPrimary bool    `json:"is_primary"`
}

type CreateProjectDTO struct {
	Title    string `json:"title"    binding:"required"`
	Location string `json:"location" binding:"required"`
	Category string `json:"category" binding:"required"`
	Client   string `json:"client"   binding:"required"`
	Status   string `json:"status"`

	Duration         string `json:"duration"`
	Area             string `json:"area"`
	Team             string `json:"team"`
	ShortDescription string `json:"short_description"`
	FullDescription  string `json:"full_description"`
	Challenges       string `json:"challenges"`
	Solutions        string `json:"solutions"`
	Results          string `json:"results"`
	ProductsUsed     string `json:"products_used"`

	Images []ImagePayloadDTO `json:"images"`
}

type UpdateProjectDTO struct {
	Title    *string `json:"title"`
	Location *string `json:"location"`
	Category *string `json:"category"`
	Client   *string `json:"client"`
	Status   *string `json:"status"`

	Duration         *string `json:"duration"`
	Area             *string `json:"area"`
	Team             *string `json:"team"`
	ShortDescription *string `json:"short_description"`
	FullDescription  *string `json:"full_description"`
	Challenges       *string `json:"challenges"`
	Solutions        *string `json:"solutions"`
	Results          *string `json:"results"`
	ProductsUsed     *string `json:"products_used"`

	// A non-nil Images replaces the whole sequence.
	Images []ImagePayloadDTO `json:"images"`
}

// projectResponse is the stored record plus the derived read-side views,
// recomputed on every read.
type projectResponse struct {
	*models.Project
	PrimaryImage *models.ImageView  `json:"primary_image"`
	AllImages    []models.ImageView `json:"all_images"`
	ImageStats   models.ImageStats  `json:"image_stats"`
}

func toResponse(p *models.Project) projectResponse {
	if p.Images == nil {
		p.Images = []models.Image{}
	}
	return projectResponse{
		Project:      p,
		PrimaryImage: p.PrimaryImage(),
		AllImages:    p.AllImages(),
		ImageStats:   p.ImageStats(),
	}
}

func toResponses(items []models.Project) []projectResponse {
	out := make([]projectResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	return out
}
