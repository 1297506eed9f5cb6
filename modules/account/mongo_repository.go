package account

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the MongoDB collection holding account records.
const CollectionName = "accounts"

var _ Repository = (*MongoRepository)(nil)

// MongoRepository stores account records in a MongoDB collection.
// Every query is scoped by user_id.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the (user_id, created_at) index used by FindByUser.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: 1},
		},
	})
	return err
}

func (r *MongoRepository) Insert(ctx context.Context, rec Record) error {
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Join(ErrAlreadyExists, err)
		}
		return err
	}
	return nil
}

// FindByUser returns the user's records oldest first.
func (r *MongoRepository) FindByUser(ctx context.Context, userID string) ([]Record, error) {
	cur, err := r.coll.Find(ctx,
		bson.D{{Key: "user_id", Value: userID}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, userID, id string) (Record, error) {
	var rec Record
	if err := findErr(r.coll.FindOne(ctx, ownerFilter(userID, id)).Decode(&rec)); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (r *MongoRepository) Delete(ctx context.Context, userID, id string) error {
	return deleteErr(r.coll.DeleteOne(ctx, ownerFilter(userID, id)))
}

// findErr maps a missing document to ErrNotFound.
func findErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// deleteErr maps a delete that matched nothing to ErrNotFound.
func deleteErr(res *mongo.DeleteResult, err error) error {
	if err != nil {
		return err
	}
	if res == nil || res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func ownerFilter(userID, id string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "user_id", Value: userID},
	}
}
