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

const hospitalsCollection = "hospitals"

type HospitalRepository struct {
	coll *mongo.Collection
}

func NewHospitalRepository(db *mongo.Database) *HospitalRepository {
	return &HospitalRepository{coll: db.Collection(hospitalsCollection)}
}

type mongoHospital struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Address       domain.Address     `bson:"address"`
	SpecializedIn []string           `bson:"specialized_in,omitempty"`
	ContactNumber string             `bson:"contact_number,omitempty"`
	FacilityIDs   []string           `bson:"facility_ids,omitempty"`
	DoctorIDs     []string           `bson:"doctor_ids,omitempty"`
	BedIDs        []string           `bson:"bed_ids,omitempty"`
	Active        bool               `bson:"active"`
	Deleted       bool               `bson:"deleted"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (mh *mongoHospital) toDomain() *domain.Hospital {
	return &domain.Hospital{
		ID:            mh.ID.Hex(),
		Name:          mh.Name,
		Address:       mh.Address,
		SpecializedIn: mh.SpecializedIn,
		ContactNumber: mh.ContactNumber,
		FacilityIDs:   mh.FacilityIDs,
		DoctorIDs:     mh.DoctorIDs,
		BedIDs:        mh.BedIDs,
		Lifecycle:     domain.Lifecycle{Active: mh.Active, Deleted: mh.Deleted},
		CreatedAt:     mh.CreatedAt,
		UpdatedAt:     mh.UpdatedAt,
	}
}

func (r *HospitalRepository) Create(ctx context.Context, h *domain.Hospital) (*domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoHospital{
		Name:          h.Name,
		Address:       h.Address,
		SpecializedIn: h.SpecializedIn,
		ContactNumber: h.ContactNumber,
		Active:        h.Lifecycle.Active,
		Deleted:       h.Lifecycle.Deleted,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert hospital: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *HospitalRepository) FindByID(ctx context.Context, id string) (*domain.Hospital, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mh mongoHospital
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mh); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find hospital: %w", err)
	}
	return mh.toDomain(), nil
}

func (r *HospitalRepository) ListUsable(ctx context.Context) ([]domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"active": true, "deleted": false})
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer cur.Close(ctx)

	var hospitals []domain.Hospital
	for cur.Next(ctx) {
		var mh mongoHospital
		if err := cur.Decode(&mh); err != nil {
			return nil, fmt.Errorf("decode hospital: %w", err)
		}
		hospitals = append(hospitals, *mh.toDomain())
	}
	return hospitals, cur.Err()
}

func (r *HospitalRepository) Update(ctx context.Context, id string, in ports.UpdateHospitalInput) (*domain.Hospital, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Address != nil {
		set["address"] = *in.Address
	}
	if in.SpecializedIn != nil {
		set["specialized_in"] = *in.SpecializedIn
	}
	if in.ContactNumber != nil {
		set["contact_number"] = *in.ContactNumber
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mh mongoHospital
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mh)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update hospital: %w", err)
	}
	return mh.toDomain(), nil
}

func (r *HospitalRepository) SoftDelete(ctx context.Context, id string) error {
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
		return fmt.Errorf("soft-delete hospital: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
