package project

import (
	"testing"

	"github.com/atelier-works/projects-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func urlImage(name string, primary bool) models.Image {
	return models.Image{
		ID:        primitive.NewObjectID(),
		Kind:      models.ImageKindURL,
		Name:      name,
		URL:       "https://example.com/" + name,
		IsPrimary: primary,
	}
}

func TestAppendImage(t *testing.T) {
	t.Run("new primary clears sibling flags", func(t *testing.T) {
		p := &models.Project{Images: []models.Image{
			urlImage("a", true),
			urlImage("b", false),
		}}
		appendImage(p, urlImage("c", true))

		require.Len(t, p.Images, 3)
		primaries := 0
		for _, img := range p.Images {
			if img.IsPrimary {
				primaries++
			}
		}
		assert.Equal(t, 1, primaries)
		assert.True(t, p.Images[2].IsPrimary)
	})

	t.Run("non-primary append keeps the existing primary", func(t *testing.T) {
		p := &models.Project{Images: []models.Image{urlImage("a", true)}}
		appendImage(p, urlImage("b", false))

		assert.True(t, p.Images[0].IsPrimary)
		assert.False(t, p.Images[1].IsPrimary)
	})
}

func TestRemoveImage(t *testing.T) {
	a, b, c := urlImage("a", false), urlImage("b", true), urlImage("c", false)
	newProject := func() *models.Project {
		return &models.Project{Images: []models.Image{a, b, c}}
	}

	t.Run("removes by id preserving order", func(t *testing.T) {
		p := newProject()
		removed, ok := removeImage(p, b.ID.Hex())
		require.True(t, ok)
		assert.Equal(t, b.ID, removed.ID)
		require.Len(t, p.Images, 2)
		assert.Equal(t, a.ID, p.Images[0].ID)
		assert.Equal(t, c.ID, p.Images[1].ID)
	})

	t.Run("unmatched id reports false", func(t *testing.T) {
		p := newProject()
		_, ok := removeImage(p, primitive.NewObjectID().Hex())
		assert.False(t, ok)
		assert.Len(t, p.Images, 3)
	})

	t.Run("malformed id reports false", func(t *testing.T) {
		p := newProject()
		_, ok := removeImage(p, "not-an-object-id")
		assert.False(t, ok)
	})
}

func TestFromCreateDTO(t *testing.T) {
	t.Run("normalizes embedded images", func(t *testing.T) {
		dto := &CreateProjectDTO{
			Title: "Casa Norte", Location: "Madrid", Category: "Residential", Client: "ACME",
			Images: []ImagePayloadDTO{
				{URL: strPtr("https://example.com/a.jpg"), IsPrimary: true},
				{Data: strPtr("aGVsbG8=")},
			},
		}
		p, err := fromCreateDTO(dto)
		require.NoError(t, err)
		require.Len(t, p.Images, 2)
		assert.Equal(t, models.ImageKindURL, p.Images[0].Kind)
		assert.Equal(t, models.ImageKindBase64, p.Images[1].Kind)
	})

	t.Run("invalid image rejects the whole payload", func(t *testing.T) {
		dto := &CreateProjectDTO{
			Title: "Casa Norte", Location: "Madrid", Category: "Residential", Client: "ACME",
			Images: []ImagePayloadDTO{{URL: strPtr("no scheme")}},
		}
		_, err := fromCreateDTO(dto)
		require.Error(t, err)
		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestApplyUpdate(t *testing.T) {
	base := func() *models.Project {
		return &models.Project{
			Title: "Casa Norte", Location: "Madrid", Category: "Residential",
			Client: "ACME", Status: models.StatusInProgress,
			Images: []models.Image{urlImage("a", true)},
		}
	}

	t.Run("present fields overwrite, absent fields stay", func(t *testing.T) {
		p := base()
		err := applyUpdate(p, &UpdateProjectDTO{
			Title:  strPtr("Casa Sur"),
			Status: strPtr(string(models.StatusCompleted)),
		})
		require.NoError(t, err)
		assert.Equal(t, "Casa Sur", p.Title)
		assert.Equal(t, models.StatusCompleted, p.Status)
		assert.Equal(t, "Madrid", p.Location)
		assert.Len(t, p.Images, 1)
	})

	t.Run("non-nil image list replaces the sequence", func(t *testing.T) {
		p := base()
		err := applyUpdate(p, &UpdateProjectDTO{
			Images: []ImagePayloadDTO{
				{Data: strPtr("aGVsbG8=")},
				{URL: strPtr("https://example.com/b.jpg")},
			},
		})
		require.NoError(t, err)
		require.Len(t, p.Images, 2)
		assert.Equal(t, models.ImageKindBase64, p.Images[0].Kind)
	})

	t.Run("multiple primaries survive a bulk replace", func(t *testing.T) {
		// The single-primary invariant is enforced only on the append path.
		p := base()
		err := applyUpdate(p, &UpdateProjectDTO{
			Images: []ImagePayloadDTO{
				{URL: strPtr("https://example.com/a.jpg"), IsPrimary: true},
				{URL: strPtr("https://example.com/b.jpg"), IsPrimary: true},
			},
		})
		require.NoError(t, err)
		assert.True(t, p.Images[0].IsPrimary)
		assert.True(t, p.Images[1].IsPrimary)
	})

	t.Run("invalid replacement image fails", func(t *testing.T) {
		p := base()
		err := applyUpdate(p, &UpdateProjectDTO{Images: []ImagePayloadDTO{{}}})
		require.Error(t, err)
	})
}
