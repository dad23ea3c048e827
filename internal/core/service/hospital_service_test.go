package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type stubHospitalRepo struct {
	hospitals map[string]*domain.Hospital
	seq       int
}

func newStubHospitalRepo() *stubHospitalRepo {
	return &stubHospitalRepo{hospitals: make(map[string]*domain.Hospital)}
}

func (r *stubHospitalRepo) Create(_ context.Context, h *domain.Hospital) (*domain.Hospital, error) {
	r.seq++
	copy := *h
	copy.ID = "hos_" + strconv.Itoa(r.seq)
	r.hospitals[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubHospitalRepo) FindByID(_ context.Context, id string) (*domain.Hospital, error) {
	h, ok := r.hospitals[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := *h
	return &copy, nil
}

func (r *stubHospitalRepo) ListUsable(_ context.Context) ([]domain.Hospital, error) {
	var out []domain.Hospital
	for _, h := range r.hospitals {
		if h.Lifecycle.Usable() {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *stubHospitalRepo) Update(_ context.Context, id string, in ports.UpdateHospitalInput) (*domain.Hospital, error) {
	h, ok := r.hospitals[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		h.Name = *in.Name
	}
	if in.Address != nil {
		h.Address = *in.Address
	}
	if in.SpecializedIn != nil {
		h.SpecializedIn = *in.SpecializedIn
	}
	if in.ContactNumber != nil {
		h.ContactNumber = *in.ContactNumber
	}
	copy := *h
	return &copy, nil
}

func (r *stubHospitalRepo) SoftDelete(_ context.Context, id string) error {
	h, ok := r.hospitals[id]
	if !ok {
		return domain.ErrNotFound
	}
	h.Lifecycle.Deleted = true
	return nil
}

func createHospitalInput() ports.CreateHospitalInput {
	return ports.CreateHospitalInput{
		Name:          "Central Hospital",
		Address:       domain.Address{State: "Yucatan", City: "Merida", Pincode: "97000"},
		SpecializedIn: []string{"cardiology"},
		ContactNumber: "5550009999",
	}
}

func TestHospitalService_Create(t *testing.T) {
	svc := NewHospitalService(newStubHospitalRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), createHospitalInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !created.Lifecycle.Usable() {
		t.Fatalf("expected new hospital to be usable")
	}
}

func TestHospitalService_Create_MissingAddress(t *testing.T) {
	svc := NewHospitalService(newStubHospitalRepo(), zerolog.Nop())

	in := createHospitalInput()
	in.Address.City = ""
	if _, err := svc.Create(context.Background(), in); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestHospitalService_DeleteHidesFromList(t *testing.T) {
	repo := newStubHospitalRepo()
	svc := NewHospitalService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), createHospitalInput())

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected soft-deleted hospital hidden, got %d entries", len(listed))
	}

	// the record itself still exists
	if _, ok := repo.hospitals[created.ID]; !ok {
		t.Fatalf("soft delete must not remove the record")
	}
}

func TestHospitalService_Update(t *testing.T) {
	svc := NewHospitalService(newStubHospitalRepo(), zerolog.Nop())
	created, _ := svc.Create(context.Background(), createHospitalInput())

	name := "Renamed Hospital"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateHospitalInput{Name: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("expected name updated, got %q", updated.Name)
	}
	if updated.ContactNumber != created.ContactNumber {
		t.Fatalf("untouched field changed: %q", updated.ContactNumber)
	}
}
