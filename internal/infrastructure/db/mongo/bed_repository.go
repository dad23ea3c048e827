package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

const bedsCollection = "beds"

type BedRepository struct {
	coll *mongo.Collection
}

func NewBedRepository(db *mongo.Database) *BedRepository {
	return &BedRepository{coll: db.Collection(bedsCollection)}
}

type mongoBed struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BedNumber  string             `bson:"bed_number"`
	Room       string             `bson:"room"`
	IsOccupied bool               `bson:"is_occupied"`
	PatientID  string             `bson:"patient_id,omitempty"`
	HospitalID string             `bson:"hospital_id,omitempty"`
	Active     bool               `bson:"active"`
	Deleted    bool               `bson:"deleted"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (mb *mongoBed) toDomain() *domain.Bed {
	return &domain.Bed{
		ID:         mb.ID.Hex(),
		BedNumber:  mb.BedNumber,
		Room:       mb.Room,
		IsOccupied: mb.IsOccupied,
		PatientID:  mb.PatientID,
		HospitalID: mb.HospitalID,
		Lifecycle:  domain.Lifecycle{Active: mb.Active, Deleted: mb.Deleted},
		CreatedAt:  mb.CreatedAt,
		UpdatedAt:  mb.UpdatedAt,
	}
}

func (r *BedRepository) Create(ctx context.Context, b *domain.Bed) (*domain.Bed, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBed{
		BedNumber:  b.BedNumber,
		Room:       b.Room,
		IsOccupied: b.IsOccupied,
		PatientID:  b.PatientID,
		HospitalID: b.HospitalID,
		Active:     b.Lifecycle.Active,
		Deleted:    b.Lifecycle.Deleted,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert bed: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *BedRepository) FindByID(ctx context.Context, id string) (*domain.Bed, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBed
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find bed: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *BedRepository) ListUsable(ctx context.Context) ([]domain.Bed, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"active": true, "deleted": false})
	if err != nil {
		return nil, fmt.Errorf("list beds: %w", err)
	}
	defer cur.Close(ctx)

	var beds []domain.Bed
	for cur.Next(ctx) {
		var mb mongoBed
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode bed: %w", err)
		}
		beds = append(beds, *mb.toDomain())
	}
	return beds, cur.Err()
}

func (r *BedRepository) Update(ctx context.Context, id string, in ports.UpdateBedInput) (*domain.Bed, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Room != nil {
		set["room"] = *in.Room
	}
	if in.IsOccupied != nil {
		set["is_occupied"] = *in.IsOccupied
	}
	if in.PatientID != nil {
		set["patient_id"] = *in.PatientID
	}
	if in.HospitalID != nil {
		set["hospital_id"] = *in.HospitalID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mb mongoBed
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mb)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update bed: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *BedRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"deleted":    true,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("soft-delete bed: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
