package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voicebridge/server/domain/entities"
	"github.com/voicebridge/server/domain/repositories"
)

// OutcomeRepository persists pipeline invocation traces in MongoDB.
type OutcomeRepository struct {
	collection *mongo.Collection
}

// NewOutcomeRepository creates a MongoDB outcome repository
func NewOutcomeRepository(db *mongo.Database) repositories.OutcomeRepository {
	return &OutcomeRepository{
		collection: db.Collection("outcomes"),
	}
}

// outcomeDoc is the stored shape of an entities.OutcomeRecord. Keeping the
// bson mapping here leaves the domain entity free of driver types.
type outcomeDoc struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	RequestID             string             `bson:"request_id"`
	ContentHash           string             `bson:"content_hash"`
	Success               bool               `bson:"success"`
	OriginalText          string             `bson:"original_text,omitempty"`
	TranslatedText        string             `bson:"translated_text,omitempty"`
	DetectedLanguage      string             `bson:"detected_language,omitempty"`
	TargetLanguage        string             `bson:"target_language,omitempty"`
	ErrorMessage          string             `bson:"error_message,omitempty"`
	RequiresRetry         bool               `bson:"requires_retry"`
	HallucinationDetected bool               `bson:"hallucination_detected"`
	CreatedAt             time.Time          `bson:"created_at"`
}

func (d *outcomeDoc) toRecord() *entities.OutcomeRecord {
	return &entities.OutcomeRecord{
		ID:                    d.ID.Hex(),
		RequestID:             d.RequestID,
		ContentHash:           d.ContentHash,
		Success:               d.Success,
		OriginalText:          d.OriginalText,
		TranslatedText:        d.TranslatedText,
		DetectedLanguage:      d.DetectedLanguage,
		TargetLanguage:        d.TargetLanguage,
		ErrorMessage:          d.ErrorMessage,
		RequiresRetry:         d.RequiresRetry,
		HallucinationDetected: d.HallucinationDetected,
		CreatedAt:             d.CreatedAt,
	}
}

// Record implements repositories.OutcomeRepository
func (r *OutcomeRepository) Record(ctx context.Context, rec *entities.OutcomeRecord) error {
	if rec == nil {
		return errors.New("record cannot be nil")
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	doc := outcomeDoc{
		RequestID:             rec.RequestID,
		ContentHash:           rec.ContentHash,
		Success:               rec.Success,
		OriginalText:          rec.OriginalText,
		TranslatedText:        rec.TranslatedText,
		DetectedLanguage:      rec.DetectedLanguage,
		TargetLanguage:        rec.TargetLanguage,
		ErrorMessage:          rec.ErrorMessage,
		RequiresRetry:         rec.RequiresRetry,
		HallucinationDetected: rec.HallucinationDetected,
		CreatedAt:             rec.CreatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid.Hex()
	}

	return nil
}

// ListRecent implements repositories.OutcomeRepository
func (r *OutcomeRepository) ListRecent(ctx context.Context, limit int) ([]*entities.OutcomeRecord, error) {
	if limit < 1 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list outcomes: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*entities.OutcomeRecord
	for cursor.Next(ctx) {
		var doc outcomeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode outcome: %w", err)
		}
		records = append(records, doc.toRecord())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while listing outcomes: %w", err)
	}

	return records, nil
}
