package profiles

import (
	"context"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DoctorProfileMongoRepository stores profiles under the doctor's user id.
type DoctorProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorProfileMongoRepository(db *mongo.Client, dbName string) contracts.DoctorProfileRepository {
	return &DoctorProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctorProfiles),
	}
}

func (r *DoctorProfileMongoRepository) Create(ctx context.Context, profile *models.DoctorProfile) error {
	_, err := r.Collection.InsertOne(ctx, profile)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *DoctorProfileMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.DoctorProfile, error) {
	var profile models.DoctorProfile
	err := r.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	if profile.Documents == nil {
		profile.Documents = map[string]models.DocumentRef{}
	}
	return &profile, nil
}

func (r *DoctorProfileMongoRepository) UpdateFields(ctx context.Context, doctorID string, fields map[string]interface{}) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": doctorID},
		bson.M{"$set": bson.M(fields)},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
