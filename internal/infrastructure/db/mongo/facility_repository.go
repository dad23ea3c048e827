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

const facilitiesCollection = "facilities"

type FacilityRepository struct {
	coll *mongo.Collection
}

func NewFacilityRepository(db *mongo.Database) *FacilityRepository {
	return &FacilityRepository{coll: db.Collection(facilitiesCollection)}
}

type mongoFacility struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Address   domain.Address     `bson:"address"`
	Type      int                `bson:"type"`
	Active    bool               `bson:"active"`
	Deleted   bool               `bson:"deleted"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mf *mongoFacility) toDomain() *domain.Facility {
	return &domain.Facility{
		ID:        mf.ID.Hex(),
		Name:      mf.Name,
		Address:   mf.Address,
		Type:      domain.FacilityType(mf.Type),
		Lifecycle: domain.Lifecycle{Active: mf.Active, Deleted: mf.Deleted},
		CreatedAt: mf.CreatedAt,
		UpdatedAt: mf.UpdatedAt,
	}
}

func (r *FacilityRepository) Create(ctx context.Context, f *domain.Facility) (*domain.Facility, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoFacility{
		Name:      f.Name,
		Address:   f.Address,
		Type:      int(f.Type),
		Active:    f.Lifecycle.Active,
		Deleted:   f.Lifecycle.Deleted,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert facility: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *FacilityRepository) FindByID(ctx context.Context, id string) (*domain.Facility, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mf mongoFacility
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mf); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find facility: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *FacilityRepository) ListUsable(ctx context.Context) ([]domain.Facility, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"active": true, "deleted": false})
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer cur.Close(ctx)

	var facilities []domain.Facility
	for cur.Next(ctx) {
		var mf mongoFacility
		if err := cur.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode facility: %w", err)
		}
		facilities = append(facilities, *mf.toDomain())
	}
	return facilities, cur.Err()
}

func (r *FacilityRepository) Update(ctx context.Context, id string, in ports.UpdateFacilityInput) (*domain.Facility, error) {
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
	if in.Type != nil {
		set["type"] = int(*in.Type)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mf mongoFacility
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mf)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update facility: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *FacilityRepository) SoftDelete(ctx context.Context, id string) error {
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
		return fmt.Errorf("soft-delete facility: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
