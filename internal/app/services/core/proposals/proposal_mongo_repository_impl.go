package proposals

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

type ProposalMongoRepository struct {
	Collection *mongo.Collection
}

func NewProposalMongoRepository(db *mongo.Client, dbName string) contracts.ProposalRepository {
	return &ProposalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProposals),
	}
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

func (r *ProposalMongoRepository) Create(ctx context.Context, proposal *models.Proposal) (string, error) {
	result, err := r.Collection.InsertOne(ctx, proposal)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(fmt.Errorf("unexpected inserted id %v", result.InsertedID))
	}
	return objectID.Hex(), nil
}

func (r *ProposalMongoRepository) FindByID(ctx context.Context, proposalID string) (*models.Proposal, error) {
	objectID, err := primitive.ObjectIDFromHex(proposalID)
	if err != nil {
		// a malformed id cannot name a stored document
		return nil, nil
	}

	var proposal models.Proposal
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&proposal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &proposal, nil
}

func (r *ProposalMongoRepository) FindByDoctorID(ctx context.Context, doctorID, status string) ([]models.Proposal, error) {
	filter := bson.M{"doctorId": doctorID}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter)
}

func (r *ProposalMongoRepository) FindByHospitalID(ctx context.Context, hospitalID, status string) ([]models.Proposal, error) {
	filter := bson.M{"hospitalId": hospitalID}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter)
}

func (r *ProposalMongoRepository) FindPendingForDoctor(ctx context.Context, doctorID string, specialties []string) ([]models.Proposal, error) {
	filter := bson.M{
		"status":    constvars.ProposalStatusPending,
		"specialty": bson.M{"$in": specialties},
		"$or":       assignableTo(doctorID),
	}
	return r.find(ctx, filter)
}

func (r *ProposalMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Proposal, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	proposals := make([]models.Proposal, 0)
	if err := cursor.All(ctx, &proposals); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return proposals, nil
}

// Respond only matches a pending proposal that is unassigned or already
// assigned to doctorID, so two doctors cannot both win the same proposal.
func (r *ProposalMongoRepository) Respond(ctx context.Context, proposalID, doctorID, status string, respondedAt time.Time) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(proposalID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":    objectID,
		"status": constvars.ProposalStatusPending,
		"$or":    assignableTo(doctorID),
	}
	update := bson.M{"$set": bson.M{
		"status":      status,
		"doctorId":    doctorID,
		"respondedAt": respondedAt,
		"updatedAt":   respondedAt,
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func assignableTo(doctorID string) bson.A {
	return bson.A{
		bson.M{"doctorId": doctorID},
		bson.M{"doctorId": bson.M{"$exists": false}},
		bson.M{"doctorId": ""},
	}
}
