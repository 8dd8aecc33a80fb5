package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
	StatusPending    ProjectStatus = "Pending"
	StatusCancelled  ProjectStatus = "Cancelled"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// Project is the root entity: a managed project record with its embedded
// image sequence.
type Project struct {
	ID       primitive.ObjectID `json:"id"       bson:"_id,omitempty"`
	Title    string             `json:"title"    bson:"title"`
	Location string             `json:"location" bson:"location"`
	Category string             `json:"category" bson:"category"`
	Client   string             `json:"client"   bson:"client"`
	Status   ProjectStatus      `json:"status"   bson:"status"`
	Created  time.Time          `json:"created"  bson:"created"`

	Duration         string `json:"duration,omitempty"          bson:"duration,omitempty"`
	Area             string `json:"area,omitempty"              bson:"area,omitempty"`
	Team             string `json:"team,omitempty"              bson:"team,omitempty"`
	ShortDescription string `json:"short_description,omitempty" bson:"shortDescription,omitempty"`
	FullDescription  string `json:"full_description,omitempty"  bson:"fullDescription,omitempty"`
	Challenges       string `json:"challenges,omitempty"        bson:"challenges,omitempty"`
	Solutions        string `json:"solutions,omitempty"         bson:"solutions,omitempty"`
	Results          string `json:"results,omitempty"           bson:"results,omitempty"`
	ProductsUsed     string `json:"products_used,omitempty"     bson:"productsUsed,omitempty"`

	// LegacyImageURL predates the image sequence. Read-only for new writes.
	LegacyImageURL string  `json:"legacy_image_url,omitempty" bson:"legacyImageUrl,omitempty"`
	Images         []Image `json:"images"                     bson:"images"`
}

// Normalize trims text fields and applies the status default.
func (p *Project) Normalize() {
	for _, f := range []*string{
		&p.Title, &p.Location, &p.Category, &p.Client,
		&p.Duration, &p.Area, &p.Team,
		&p.ShortDescription, &p.FullDescription,
		&p.Challenges, &p.Solutions, &p.Results, &p.ProductsUsed,
		&p.LegacyImageURL,
	} {
		*f = strings.TrimSpace(*f)
	}
	if p.Status == "" {
		p.Status = StatusInProgress
	}
}

// Validate checks required fields, the status enumeration, and every embedded
// image's cross-field invariants.
func (p *Project) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"location", p.Location},
		{"category", p.Category},
		{"client", p.Client},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return NewValidationError(f.name + " is required")
		}
	}
	if !p.Status.IsValid() {
		return NewValidationError(fmt.Sprintf("invalid status %q", p.Status))
	}
	for i := range p.Images {
		if err := p.Images[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// PrimaryImage returns the image flagged primary, else the first image, else
// the legacy reference as a url-kind view, else nil. Computed per read, never
// persisted.
func (p *Project) PrimaryImage() *ImageView {
	if len(p.Images) > 0 {
		img := p.Images[0]
		for i := range p.Images {
			if p.Images[i].IsPrimary {
				img = p.Images[i]
				break
			}
		}
		v := img.View()
		return &v
	}
	if p.LegacyImageURL != "" {
		return &ImageView{Kind: ImageKindURL, URL: p.LegacyImageURL, Name: legacyImageName}
	}
	return nil
}

// AllImages merges the image sequence with the legacy reference. The legacy
// entry appears only when the sequence is empty, and is presented as primary.
func (p *Project) AllImages() []ImageView {
	views := make([]ImageView, 0, len(p.Images)+1)
	for i := range p.Images {
		views = append(views, p.Images[i].View())
	}
	if len(views) == 0 && p.LegacyImageURL != "" {
		views = append(views, ImageView{
			Kind:      ImageKindURL,
			URL:       p.LegacyImageURL,
			Name:      legacyImageName,
			IsPrimary: true,
		})
	}
	return views
}

// ImageStats counts the image sequence by resolved kind.
func (p *Project) ImageStats() ImageStats {
	stats := ImageStats{Total: len(p.Images), HasLegacy: p.LegacyImageURL != ""}
	for i := range p.Images {
		switch p.Images[i].ResolveKind() {
		case ImageKindBase64:
			stats.Base64++
		default:
			stats.URL++
		}
	}
	return stats
}
