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
)

const healthRecordsCollection = "health_records"

type HealthRecordRepository struct {
	coll *mongo.Collection
}

func NewHealthRecordRepository(db *mongo.Database) *HealthRecordRepository {
	return &HealthRecordRepository{coll: db.Collection(healthRecordsCollection)}
}

type mongoHealthRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	PatientID    string             `bson:"patient_id"`
	DoctorID     string             `bson:"doctor_id,omitempty"`
	FacilityID   string             `bson:"facility_id"`
	ReportedByID string             `bson:"reported_by_id"`
	Data         map[string]any     `bson:"data"`
	DateOfReport time.Time          `bson:"date_of_report"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (mr *mongoHealthRecord) toDomain() *domain.HealthRecord {
	return &domain.HealthRecord{
		ID:           mr.ID.Hex(),
		PatientID:    mr.PatientID,
		DoctorID:     mr.DoctorID,
		FacilityID:   mr.FacilityID,
		ReportedByID: mr.ReportedByID,
		Data:         mr.Data,
		DateOfReport: mr.DateOfReport,
		Status:       domain.ReportStatus(mr.Status),
		CreatedAt:    mr.CreatedAt,
	}
}

func (r *HealthRecordRepository) Create(ctx context.Context, rec *domain.HealthRecord) (*domain.HealthRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoHealthRecord{
		PatientID:    rec.PatientID,
		DoctorID:     rec.DoctorID,
		FacilityID:   rec.FacilityID,
		ReportedByID: rec.ReportedByID,
		Data:         rec.Data,
		DateOfReport: rec.DateOfReport,
		Status:       string(rec.Status),
		CreatedAt:    rec.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert health record: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *HealthRecordRepository) FindByID(ctx context.Context, id string) (*domain.HealthRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoHealthRecord
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find health record: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *HealthRecordRepository) ListByPatient(ctx context.Context, patientID string) ([]domain.HealthRecord, error) {
	return r.list(ctx, bson.M{"patient_id": patientID})
}

func (r *HealthRecordRepository) List(ctx context.Context) ([]domain.HealthRecord, error) {
	return r.list(ctx, bson.M{})
}

func (r *HealthRecordRepository) list(ctx context.Context, filter bson.M) ([]domain.HealthRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date_of_report", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	defer cur.Close(ctx)

	var records []domain.HealthRecord
	for cur.Next(ctx) {
		var mr mongoHealthRecord
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode health record: %w", err)
		}
		records = append(records, *mr.toDomain())
	}
	return records, cur.Err()
}
