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

const doctorsCollection = "doctors"

type DoctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *DoctorRepository {
	return &DoctorRepository{coll: db.Collection(doctorsCollection)}
}

type mongoDoctor struct {
	ID                primitive.ObjectID        `bson:"_id,omitempty"`
	UserID            string                    `bson:"user_id"`
	Salary            float64                   `bson:"salary"`
	Qualification     string                    `bson:"qualification"`
	ExperienceInYears int                       `bson:"experience_in_years"`
	HospitalIDs       []string                  `bson:"hospital_ids,omitempty"`
	Gender            string                    `bson:"gender"`
	Availability      []domain.AvailabilitySlot `bson:"availability,omitempty"`
	Active            bool                      `bson:"active"`
	Deleted           bool                      `bson:"deleted"`
	CreatedAt         time.Time                 `bson:"created_at"`
	UpdatedAt         time.Time                 `bson:"updated_at"`
}

func (md *mongoDoctor) toDomain() *domain.Doctor {
	return &domain.Doctor{
		ID:                md.ID.Hex(),
		UserID:            md.UserID,
		Salary:            md.Salary,
		Qualification:     md.Qualification,
		ExperienceInYears: md.ExperienceInYears,
		HospitalIDs:       md.HospitalIDs,
		Gender:            md.Gender,
		Availability:      md.Availability,
		Lifecycle:         domain.Lifecycle{Active: md.Active, Deleted: md.Deleted},
		CreatedAt:         md.CreatedAt,
		UpdatedAt:         md.UpdatedAt,
	}
}

func (r *DoctorRepository) Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoDoctor{
		UserID:            d.UserID,
		Salary:            d.Salary,
		Qualification:     d.Qualification,
		ExperienceInYears: d.ExperienceInYears,
		HospitalIDs:       d.HospitalIDs,
		Gender:            d.Gender,
		Availability:      d.Availability,
		Active:            d.Lifecycle.Active,
		Deleted:           d.Lifecycle.Deleted,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *DoctorRepository) FindByID(ctx context.Context, id string) (*domain.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var md mongoDoctor
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return md.toDomain(), nil
}

func (r *DoctorRepository) ListUsable(ctx context.Context) ([]domain.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"active": true, "deleted": false})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer cur.Close(ctx)

	var doctors []domain.Doctor
	for cur.Next(ctx) {
		var md mongoDoctor
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode doctor: %w", err)
		}
		doctors = append(doctors, *md.toDomain())
	}
	return doctors, cur.Err()
}

func (r *DoctorRepository) Update(ctx context.Context, id string, in ports.UpdateDoctorInput) (*domain.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Salary != nil {
		set["salary"] = *in.Salary
	}
	if in.Qualification != nil {
		set["qualification"] = *in.Qualification
	}
	if in.ExperienceInYears != nil {
		set["experience_in_years"] = *in.ExperienceInYears
	}
	if in.HospitalIDs != nil {
		set["hospital_ids"] = *in.HospitalIDs
	}
	if in.Gender != nil {
		set["gender"] = *in.Gender
	}
	if in.Availability != nil {
		set["availability"] = *in.Availability
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var md mongoDoctor
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&md)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return md.toDomain(), nil
}

func (r *DoctorRepository) SoftDelete(ctx context.Context, id string) error {
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
		return fmt.Errorf("soft-delete doctor: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
