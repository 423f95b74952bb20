package verification

import (
	"context"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FacialDataMongoRepository struct {
	Collection *mongo.Collection
}

func NewFacialDataMongoRepository(db *mongo.Client, dbName string) contracts.FacialDataRepository {
	return &FacialDataMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFacialData),
	}
}

func (r *FacialDataMongoRepository) AppendObject(ctx context.Context, doctorID, objectName string, updatedAt time.Time) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": doctorID},
		bson.M{
			"$push": bson.M{"objectNames": objectName},
			"$set":  bson.M{"updatedAt": updatedAt},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
