package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.ContentRepository = (*ContentRepository)(nil)

// ContentRepository implements repositories.ContentRepository
type ContentRepository struct {
	collection *mongo.Collection
}

// NewContentRepository creates a new ContentRepository over the named collection
func NewContentRepository(db *mongo.Database, collection string) *ContentRepository {
	return &ContentRepository{
		collection: db.Collection(collection),
	}
}

// EnsureIndexes creates the lookup indexes for both page identifier locations
func (r *ContentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "page_name", Value: 1}}},
		{Keys: bson.D{{Key: "data.page", Value: 1}}},
	})
	return err
}

// FindByPage finds the most recently updated document for page.
func (r *ContentRepository) FindByPage(ctx context.Context, page string) (*models.ContentDocument, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"page_name": page},
		bson.M{"data.page": page},
	}}
	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	var doc models.ContentDocument
	err := r.collection.FindOne(ctx, filter, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find content for page %s: %w", page, err)
	}
	doc.Data = plainMap(doc.Data)
	return &doc, nil
}

// Insert creates a new document
func (r *ContentRepository) Insert(ctx context.Context, doc *models.ContentDocument) error {
	now := time.Now().UTC()
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = now
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Replace overwrites an existing document by ID
func (r *ContentRepository) Replace(ctx context.Context, doc *models.ContentDocument) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// FindAll returns every document sorted by page name
func (r *ContentRepository) FindAll(ctx context.Context) ([]*models.ContentDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "page_name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*models.ContentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		d.Data = plainMap(d.Data)
	}
	if docs == nil {
		docs = []*models.ContentDocument{}
	}
	return docs, nil
}

// plainMap converts driver container types (primitive.M, primitive.D,
// primitive.A) into plain maps and slices so the content layer can type
// switch on map[string]interface{} and []interface{} only.
func plainMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.M:
		return plainMap(t)
	case map[string]interface{}:
		return plainMap(t)
	case primitive.D:
		return plainMap(t.Map())
	case primitive.A:
		return plainSlice(t)
	case []interface{}:
		return plainSlice(t)
	case primitive.DateTime:
		return t.Time().UTC()
	default:
		return v
	}
}

func plainSlice(s []interface{}) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = plainValue(v)
	}
	return out
}
