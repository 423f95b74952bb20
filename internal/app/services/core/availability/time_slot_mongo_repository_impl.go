package availability

import (
	"context"
	"fmt"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TimeSlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewTimeSlotMongoRepository(db *mongo.Client, dbName string) contracts.TimeSlotRepository {
	return &TimeSlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTimeSlots),
	}
}

var slotOrder = bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}}

func (r *TimeSlotMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.TimeSlot, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID})
}

func (r *TimeSlotMongoRepository) FindByDoctorIDAndDates(ctx context.Context, doctorID string, dates []string) ([]models.TimeSlot, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID, "date": bson.M{"$in": dates}})
}

func (r *TimeSlotMongoRepository) find(ctx context.Context, filter bson.M) ([]models.TimeSlot, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(slotOrder))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	slots := make([]models.TimeSlot, 0)
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *TimeSlotMongoRepository) FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		// a malformed id cannot name a stored document
		return nil, nil
	}

	var slot models.TimeSlot
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *TimeSlotMongoRepository) CountByDoctorID(ctx context.Context, doctorID string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *TimeSlotMongoRepository) InsertMany(ctx context.Context, slots []models.TimeSlot) ([]string, error) {
	documents := make([]interface{}, len(slots))
	for i := range slots {
		documents[i] = slots[i]
	}

	result, err := r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	ids := make([]string, len(result.InsertedIDs))
	for i, insertedID := range result.InsertedIDs {
		objectID, ok := insertedID.(primitive.ObjectID)
		if !ok {
			return nil, exceptions.ErrMongoDBInsertDocument(fmt.Errorf("unexpected inserted id %v", insertedID))
		}
		ids[i] = objectID.Hex()
	}
	return ids, nil
}

func (r *TimeSlotMongoRepository) Update(ctx context.Context, slot *models.TimeSlot) error {
	objectID, err := primitive.ObjectIDFromHex(slot.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "doctorId": slot.DoctorID}
	update := bson.M{"$set": bson.M{
		"startTime":   slot.StartTime,
		"endTime":     slot.EndTime,
		"specialties": slot.Specialties,
		"updatedAt":   slot.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// DeleteByID reports false when no slot with that id belongs to doctorID.
func (r *TimeSlotMongoRepository) DeleteByID(ctx context.Context, doctorID, slotID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "doctorId": doctorID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
