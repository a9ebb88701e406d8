package repository

import (
	"context"

	"wellness-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ModerationRepository struct {
	Contributions *mongo.Collection
	Feedback      *mongo.Collection
}

func NewModerationRepository(db *mongo.Database) *ModerationRepository {
	return &ModerationRepository{
		Contributions: db.Collection("contributions"),
		Feedback:      db.Collection("feedback"),
	}
}

func (r *ModerationRepository) CreateContribution(ctx context.Context, c *models.Contribution) error {
	res, err := r.Contributions.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}

func (r *ModerationRepository) ListContributions(ctx context.Context, status string) ([]models.Contribution, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Contributions.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.Contribution
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ModerationRepository) UpdateContributionStatus(ctx context.Context, id, status string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Contributions.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"status": status}})
	return err
}

func (r *ModerationRepository) DeleteContribution(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Contributions.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

func (r *ModerationRepository) CreateFeedback(ctx context.Context, f *models.UserFeedback) error {
	res, err := r.Feedback.InsertOne(ctx, f)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		f.ID = oid.Hex()
	}
	return nil
}

func (r *ModerationRepository) ListFeedback(ctx context.Context) ([]models.UserFeedback, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Feedback.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.UserFeedback
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
