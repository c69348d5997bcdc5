package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ArowuTest/community-center-backend/internal/content"
	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories/memory"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpdateSectionCreatesNestedDocument(t *testing.T) {
	svc, repo, pub := newContentService(t)
	ctx := context.Background()

	cfg := models.SectionConfig{Enabled: boolPtr(false), Data: map[string]interface{}{"title": "Open House"}}
	res := svc.UpdateSection(ctx, "home", "hero", cfg)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, []string{"home"}, pub.Published())

	doc := svc.Get(ctx, "home")
	require.NotNil(t, doc)
	assert.Equal(t, "home", doc.PageName)

	d := content.FromModel(doc)
	assert.Equal(t, content.ShapeNested, d.Shape)
	if diff := cmp.Diff(cfg, d.Section("hero")); diff != "" {
		t.Errorf("section round trip mismatch (-want +got):\n%s", diff)
	}

	// A second write updates the same row.
	res = svc.UpdateSection(ctx, "home", "welcome", models.SectionConfig{Data: map[string]interface{}{"title": "Hi"}})
	require.True(t, res.Success)
	assert.Equal(t, 1, repo.Len())
}

func TestUpdateSectionPreservesSiblings(t *testing.T) {
	hero := map[string]interface{}{
		"enabled": true,
		"data": map[string]interface{}{
			"title":      "Welcome",
			"hero-image": "hero.jpg",
			"items":      []interface{}{"a", map[string]interface{}{"text": "b"}},
		},
	}

	tests := []struct {
		name  string
		doc   *models.ContentDocument
		shape content.Shape
	}{
		{
			name: "flat",
			doc: &models.ContentDocument{Data: map[string]interface{}{
				"page": "about", "hero": hero, "mission": map[string]interface{}{"enabled": true},
			}},
			shape: content.ShapeFlat,
		},
		{
			name: "nested",
			doc: &models.ContentDocument{PageName: "about", Data: map[string]interface{}{
				"data": map[string]interface{}{"hero": hero, "mission": map[string]interface{}{"enabled": true}},
			}},
			shape: content.ShapeNested,
		},
		{
			name: "flat single section, id only in column",
			doc: &models.ContentDocument{PageName: "about", Data: map[string]interface{}{
				"hero": hero,
			}},
			shape: content.ShapeFlat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newContentService(t)
			repo.Seed(tt.doc)
			ctx := context.Background()

			next := models.SectionConfig{Enabled: boolPtr(false), Data: map[string]interface{}{"body": "New"}}
			res := svc.UpdateSection(ctx, "about", "mission", next)
			require.True(t, res.Success, res.Error)
			assert.Equal(t, 1, repo.Len())

			d := content.FromModel(svc.Get(ctx, "about"))
			assert.Equal(t, tt.shape, d.Shape)
			if diff := cmp.Diff(content.ParseSection(hero), d.Section("hero")); diff != "" {
				t.Errorf("sibling section changed (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(next, d.Section("mission")); diff != "" {
				t.Errorf("updated section mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateSectionValidation(t *testing.T) {
	svc, repo, pub := newContentService(t)
	res := svc.UpdateSection(context.Background(), "home", " ", models.SectionConfig{})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, models.ErrValidation.Error())
	assert.Zero(t, repo.Len())
	assert.Empty(t, pub.Published())
}

func TestStoreFailureIsAbsorbed(t *testing.T) {
	svc, repo, pub := newContentService(t)
	repo.Err = errors.New("connection refused")
	ctx := context.Background()

	assert.Nil(t, svc.Get(ctx, "home"))
	assert.Nil(t, svc.List(ctx))

	res := svc.UpdateSection(ctx, "home", "hero", models.SectionConfig{})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "connection refused")

	repo.Err = nil
	assert.Zero(t, repo.Len(), "a failed read must not fall through to an insert")
	assert.Empty(t, pub.Published())
}

func TestTransientErrorsAreRetried(t *testing.T) {
	flaky := &flakyRepo{ContentRepository: memory.NewContentRepository(), fails: 2, err: context.DeadlineExceeded}
	flaky.Seed(&models.ContentDocument{PageName: "home", Data: map[string]interface{}{"page": "home"}})
	svc := NewContentService(flaky, nil, fastRetry, zap.NewNop())

	doc := svc.Get(context.Background(), "home")
	require.NotNil(t, doc)
	assert.Equal(t, 3, flaky.Calls())
}

func TestRetryGivesUpAfterAttempts(t *testing.T) {
	flaky := &flakyRepo{ContentRepository: memory.NewContentRepository(), fails: 10, err: context.DeadlineExceeded}
	svc := NewContentService(flaky, nil, fastRetry, zap.NewNop())

	assert.Nil(t, svc.Get(context.Background(), "home"))
	assert.Equal(t, 3, flaky.Calls())
}

func TestPermanentErrorsAreNotRetried(t *testing.T) {
	flaky := &flakyRepo{ContentRepository: memory.NewContentRepository(), fails: 10, err: errors.New("auth failed")}
	svc := NewContentService(flaky, nil, fastRetry, zap.NewNop())

	assert.Nil(t, svc.Get(context.Background(), "home"))
	assert.Equal(t, 1, flaky.Calls())
}

func TestRemoveSectionFieldIsIdempotent(t *testing.T) {
	svc, repo, pub := newContentService(t)
	repo.Seed(&models.ContentDocument{PageName: "home", Data: map[string]interface{}{
		"page": "home",
		"data": map[string]interface{}{
			"hero": map[string]interface{}{
				"data": map[string]interface{}{"hero-image": "gone.jpg", "heroImage": "gone.jpg", "title": "Hi"},
			},
		},
	}})
	ctx := context.Background()

	res := svc.RemoveSectionField(ctx, "home", "hero", "hero-image")
	require.True(t, res.Success, res.Error)
	assert.Equal(t, []string{"home"}, pub.Published())

	data := content.FromModel(svc.Get(ctx, "home")).Section("hero").Data
	assert.Equal(t, map[string]interface{}{"title": "Hi"}, data)

	res = svc.RemoveSectionField(ctx, "home", "hero", "hero-image")
	assert.True(t, res.Success)
	assert.Len(t, pub.Published(), 1, "no write when the field is already gone")

	res = svc.RemoveSectionField(ctx, "donate", "hero", "hero-image")
	assert.True(t, res.Success)
	assert.Equal(t, 1, repo.Len(), "no document is created for an absent page")
}

func TestSetRootField(t *testing.T) {
	svc, _, _ := newContentService(t)
	ctx := context.Background()

	require.True(t, svc.SetRootField(ctx, "donate", "visibility", false).Success)
	v, ok := content.FromModel(svc.Get(ctx, "donate")).Field("visibility")
	require.True(t, ok)
	assert.Equal(t, false, v)

	assert.False(t, svc.SetRootField(ctx, "donate", "", true).Success)
}
