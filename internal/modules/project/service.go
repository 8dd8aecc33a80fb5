package project

import (
	"context"
	"errors"
	"time"

	"github.com/atelier-works/projects-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionName is the single document collection backing project records.
const collectionName = "projects"

type Service struct {
	col *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{col: db.Collection(collectionName)}
}

// List returns all projects, newest first.
func (s *Service) List(ctx context.Context) ([]models.Project, error) {
	return s.find(ctx, bson.M{})
}

// FilterByStatus returns projects with an exact status match, newest first.
// No matches is an empty collection, not an error.
func (s *Service) FilterByStatus(ctx context.Context, status string) ([]models.Project, error) {
	return s.find(ctx, bson.M{"status": status})
}

// FilterByCategory returns projects with an exact category match, newest first.
func (s *Service) FilterByCategory(ctx context.Context, category string) ([]models.Project, error) {
	return s.find(ctx, bson.M{"category": category})
}

func (s *Service) find(ctx context.Context, filter bson.M) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	items := []models.Project{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches one project. An id that does not resolve to an existing
// record — malformed hex included — is errProjectNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errProjectNotFound
	}
	var p models.Project
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create validates and persists a new project record.
func (s *Service) Create(ctx context.Context, dto *CreateProjectDTO) (*models.Project, error) {
	p, err := fromCreateDTO(dto)
	if err != nil {
		return nil, err
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.ID = primitive.NewObjectID()
	p.Created = time.Now().UTC()
	if _, err := s.col.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update merges the partial payload into the stored document, re-validates,
// and replaces the whole document. Concurrent updates race last-write-wins at
// the document level; the store provides no optimistic concurrency control.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateProjectDTO) (*models.Project, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyUpdate(p, dto); err != nil {
		return nil, err
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.replace(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the record entirely, embedded images included.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errProjectNotFound
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errProjectNotFound
	}
	return nil
}

// AppendImage normalizes one image payload and appends it to the project's
// sequence. When the new image is primary, every sibling's flag is cleared
// first; both happen in a single document replacement.
func (s *Service) AppendImage(ctx context.Context, id string, dto *ImagePayloadDTO) (*models.Project, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	img, err := normalizeImage(dto)
	if err != nil {
		return nil, err
	}
	appendImage(p, img)
	if err := s.replace(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveImage deletes one image from the project's sequence by id and reports
// the removed image's kind. An empty sequence or an unmatched id is
// errImageNotFound.
func (s *Service) RemoveImage(ctx context.Context, id, imageID string) (*models.Project, models.ImageKind, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if len(p.Images) == 0 {
		return nil, "", errImageNotFound
	}
	removed, ok := removeImage(p, imageID)
	if !ok {
		return nil, "", errImageNotFound
	}
	if err := s.replace(ctx, p); err != nil {
		return nil, "", err
	}
	return p, removed.ResolveKind(), nil
}

func (s *Service) replace(ctx context.Context, p *models.Project) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errProjectNotFound
	}
	return nil
}
