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

const patientsCollection = "patients"

type PatientRepository struct {
	coll *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{coll: db.Collection(patientsCollection)}
}

type mongoPatient struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	UserID           string             `bson:"user_id"`
	Age              int                `bson:"age"`
	BloodGroup       string             `bson:"blood_group"`
	MedicalHistory   string             `bson:"medical_history"`
	Allergies        []string           `bson:"allergies,omitempty"`
	HospitalID       string             `bson:"hospital_id,omitempty"`
	EmergencyContact string             `bson:"emergency_contact,omitempty"`
	CurrentCondition string             `bson:"current_condition,omitempty"`
	Gender           string             `bson:"gender"`
	AssignedDoctorID string             `bson:"assigned_doctor_id,omitempty"`
	Active           bool               `bson:"active"`
	Deleted          bool               `bson:"deleted"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (mp *mongoPatient) toDomain() *domain.Patient {
	return &domain.Patient{
		ID:               mp.ID.Hex(),
		UserID:           mp.UserID,
		Age:              mp.Age,
		BloodGroup:       mp.BloodGroup,
		MedicalHistory:   mp.MedicalHistory,
		Allergies:        mp.Allergies,
		HospitalID:       mp.HospitalID,
		EmergencyContact: mp.EmergencyContact,
		CurrentCondition: mp.CurrentCondition,
		Gender:           mp.Gender,
		AssignedDoctorID: mp.AssignedDoctorID,
		Lifecycle:        domain.Lifecycle{Active: mp.Active, Deleted: mp.Deleted},
		CreatedAt:        mp.CreatedAt,
		UpdatedAt:        mp.UpdatedAt,
	}
}

func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPatient{
		UserID:           p.UserID,
		Age:              p.Age,
		BloodGroup:       p.BloodGroup,
		MedicalHistory:   p.MedicalHistory,
		Allergies:        p.Allergies,
		HospitalID:       p.HospitalID,
		EmergencyContact: p.EmergencyContact,
		CurrentCondition: p.CurrentCondition,
		Gender:           p.Gender,
		AssignedDoctorID: p.AssignedDoctorID,
		Active:           p.Lifecycle.Active,
		Deleted:          p.Lifecycle.Deleted,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id string) (*domain.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPatient
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PatientRepository) ListUsable(ctx context.Context) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"active": true, "deleted": false})
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer cur.Close(ctx)

	var patients []domain.Patient
	for cur.Next(ctx) {
		var mp mongoPatient
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode patient: %w", err)
		}
		patients = append(patients, *mp.toDomain())
	}
	return patients, cur.Err()
}

func (r *PatientRepository) Update(ctx context.Context, id string, in ports.UpdatePatientInput) (*domain.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Age != nil {
		set["age"] = *in.Age
	}
	if in.BloodGroup != nil {
		set["blood_group"] = *in.BloodGroup
	}
	if in.MedicalHistory != nil {
		set["medical_history"] = *in.MedicalHistory
	}
	if in.Allergies != nil {
		set["allergies"] = *in.Allergies
	}
	if in.HospitalID != nil {
		set["hospital_id"] = *in.HospitalID
	}
	if in.EmergencyContact != nil {
		set["emergency_contact"] = *in.EmergencyContact
	}
	if in.CurrentCondition != nil {
		set["current_condition"] = *in.CurrentCondition
	}
	if in.AssignedDoctorID != nil {
		set["assigned_doctor_id"] = *in.AssignedDoctorID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mp mongoPatient
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PatientRepository) SoftDelete(ctx context.Context, id string) error {
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
		return fmt.Errorf("soft-delete patient: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
