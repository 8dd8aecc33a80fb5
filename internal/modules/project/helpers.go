package project

import (
	"github.com/atelier-works/projects-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fromCreateDTO builds an unvalidated project entity from a creation payload.
// Every embedded image is normalized independently.
func fromCreateDTO(dto *CreateProjectDTO) (*models.Project, error) {
	p := &models.Project{
		Title:            dto.Title,
		Location:         dto.Location,
		Category:         dto.Category,
		Client:           dto.Client,
		Status:           models.ProjectStatus(dto.Status),
		Duration:         dto.Duration,
		Area:             dto.Area,
		Team:             dto.Team,
		ShortDescription: dto.ShortDescription,
		FullDescription:  dto.FullDescription,
		Challenges:       dto.Challenges,
		Solutions:        dto.Solutions,
		Results:          dto.Results,
		ProductsUsed:     dto.ProductsUsed,
		Images:           []models.Image{},
	}
	for i := range dto.Images {
		img, err := normalizeImage(&dto.Images[i])
		if err != nil {
			return nil, err
		}
		p.Images = append(p.Images, img)
	}
	return p, nil
}

// applyUpdate overwrites the fields present in the partial payload. A non-nil
// image list replaces the whole sequence, each entry normalized. No
// single-primary enforcement happens on full replacement; that is accepted
// behavior of the bulk path.
func applyUpdate(p *models.Project, dto *UpdateProjectDTO) error {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&p.Title, dto.Title)
	setString(&p.Location, dto.Location)
	setString(&p.Category, dto.Category)
	setString(&p.Client, dto.Client)
	setString(&p.Duration, dto.Duration)
	setString(&p.Area, dto.Area)
	setString(&p.Team, dto.Team)
	setString(&p.ShortDescription, dto.ShortDescription)
	setString(&p.FullDescription, dto.FullDescription)
	setString(&p.Challenges, dto.Challenges)
	setString(&p.Solutions, dto.Solutions)
	setString(&p.Results, dto.Results)
	setString(&p.ProductsUsed, dto.ProductsUsed)
	if dto.Status != nil {
		p.Status = models.ProjectStatus(*dto.Status)
	}
	if dto.Images != nil {
		images := make([]models.Image, 0, len(dto.Images))
		for i := range dto.Images {
			img, err := normalizeImage(&dto.Images[i])
			if err != nil {
				return err
			}
			images = append(images, img)
		}
		p.Images = images
	}
	return nil
}

// appendImage adds one image to the sequence. A new primary clears the flag
// on every sibling so at most one image stays primary.
func appendImage(p *models.Project, img models.Image) {
	if img.IsPrimary {
		for i := range p.Images {
			p.Images[i].IsPrimary = false
		}
	}
	p.Images = append(p.Images, img)
}

// removeImage splices the image with the given id out of the sequence,
// preserving order. Reports false when the id is malformed or unmatched.
func removeImage(p *models.Project, imageID string) (models.Image, bool) {
	oid, err := primitive.ObjectIDFromHex(imageID)
	if err != nil {
		return models.Image{}, false
	}
	for i := range p.Images {
		if p.Images[i].ID == oid {
			removed := p.Images[i]
			p.Images = append(p.Images[:i], p.Images[i+1:]...)
			return removed, true
		}
	}
	return models.Image{}, false
}
