package shiftcontracts

import (
	"context"
	"fmt"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContractMongoRepository struct {
	Collection *mongo.Collection
}

func NewContractMongoRepository(db *mongo.Client, dbName string) *ContractMongoRepository {
	return &ContractMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionContracts),
	}
}

var _ contracts.ContractRepository = (*ContractMongoRepository)(nil)

var shiftOrder = bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}

// EnsureIndexes allows at most one contract per proposal.
func (r *ContractMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "proposalId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "status", Value: 1}, {Key: "date", Value: 1}},
		},
	})
	return err
}

func (r *ContractMongoRepository) Create(ctx context.Context, contract *models.Contract) (string, error) {
	result, err := r.Collection.InsertOne(ctx, contract)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(fmt.Errorf("unexpected inserted id %v", result.InsertedID))
	}
	return objectID.Hex(), nil
}

func (r *ContractMongoRepository) FindByID(ctx context.Context, contractID string) (*models.Contract, error) {
	objectID, err := primitive.ObjectIDFromHex(contractID)
	if err != nil {
		// a malformed id cannot name a stored document
		return nil, nil
	}

	var contract models.Contract
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&contract)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &contract, nil
}

func (r *ContractMongoRepository) FindByDoctorID(ctx context.Context, doctorID, status string) ([]models.Contract, error) {
	filter := bson.M{"doctorId": doctorID}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter)
}

func (r *ContractMongoRepository) FindDueForReminder(ctx context.Context, dates []string) ([]models.Contract, error) {
	return r.find(ctx, bson.M{
		"status":     constvars.ContractStatusUpcoming,
		"attendance": constvars.AttendanceAwaitingCheckIn,
		"date":       bson.M{"$in": dates},
		"remindedAt": bson.M{"$exists": false},
	})
}

func (r *ContractMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Contract, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(shiftOrder))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.Contract, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

// ApplyTransition reports false when the stored contract is no longer in the
// transition's source state, or belongs to another doctor.
func (r *ContractMongoRepository) ApplyTransition(ctx context.Context, contractID, doctorID string, transition contracts.ContractTransition) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(contractID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":        objectID,
		"doctorId":   doctorID,
		"status":     transition.FromStatus,
		"attendance": transition.FromAttendance,
	}
	set := bson.M{
		"status":     transition.ToStatus,
		"attendance": transition.ToAttendance,
		"updatedAt":  transition.UpdatedAt,
	}
	if transition.CheckInTime != nil {
		set["checkInTime"] = *transition.CheckInTime
	}
	if transition.CheckOutTime != nil {
		set["checkOutTime"] = *transition.CheckOutTime
	}
	if transition.CanceledAt != nil {
		set["canceledAt"] = *transition.CanceledAt
	}

	result, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *ContractMongoRepository) MarkReminded(ctx context.Context, contractID string, remindedAt time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(contractID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"remindedAt": remindedAt, "updatedAt": remindedAt}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
