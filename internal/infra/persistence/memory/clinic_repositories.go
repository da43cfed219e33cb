package memory

import (
	"context"
	"sort"
	"sync"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"

	"github.com/google/uuid"
)

// Store bundles the in-memory patient, appointment and record repositories
// behind a single mutex so the transaction manager can hand out factory-bound
// views the way the GORM implementation does.
type Store struct {
	mu           sync.Mutex
	patients     map[uuid.UUID]*entity.Patient
	appointments map[uuid.UUID]*entity.Appointment
	records      map[uuid.UUID]*entity.MedicalRecord
}

// NewStore creates an empty in-memory clinic store.
func NewStore() *Store {
	return &Store{
		patients:     make(map[uuid.UUID]*entity.Patient),
		appointments: make(map[uuid.UUID]*entity.Appointment),
		records:      make(map[uuid.UUID]*entity.MedicalRecord),
	}
}

// Execute implements repository.TransactionManager. The in-memory store has
// no rollback; it exists to exercise usecase logic, not transactional
// semantics.
func (s *Store) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

// PatientRepo implements repository.RepositoryFactory.
func (s *Store) PatientRepo() repository.PatientRepository { return &patientRepo{s} }

// AppointmentRepo implements repository.RepositoryFactory.
func (s *Store) AppointmentRepo() repository.AppointmentRepository { return &appointmentRepo{s} }

// RecordRepo implements repository.RepositoryFactory.
func (s *Store) RecordRepo() repository.RecordRepository { return &recordRepo{s} }

type patientRepo struct{ store *Store }

func (r *patientRepo) List(_ context.Context) ([]*entity.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	patients := make([]*entity.Patient, 0, len(r.store.patients))
	for _, p := range r.store.patients {
		patient := *p
		patients = append(patients, &patient)
	}

	return patients, nil
}

func (r *patientRepo) Create(_ context.Context, patient *entity.Patient) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	patient.ID = uuid.New()
	stored := *patient
	r.store.patients[patient.ID] = &stored

	return nil
}

func (r *patientRepo) Update(_ context.Context, patient *entity.Patient) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.patients[patient.ID]; !exists {
		return repository.ErrPatientNotFound
	}
	stored := *patient
	r.store.patients[patient.ID] = &stored

	return nil
}

func (r *patientRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.patients[id]; !exists {
		return repository.ErrPatientNotFound
	}
	delete(r.store.patients, id)

	return nil
}

type appointmentRepo struct{ store *Store }

func (r *appointmentRepo) List(_ context.Context) ([]*entity.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointments := make([]*entity.Appointment, 0, len(r.store.appointments))
	for _, a := range r.store.appointments {
		appointment := *a
		appointments = append(appointments, &appointment)
	}
	// Newest first, matching the postgres implementation.
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].Date.After(appointments[j].Date)
	})

	return appointments, nil
}

func (r *appointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointment.ID = uuid.New()
	stored := *appointment
	r.store.appointments[appointment.ID] = &stored

	return nil
}

func (r *appointmentRepo) DeleteByPatient(_ context.Context, patientID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, a := range r.store.appointments {
		if a.PatientID == patientID {
			delete(r.store.appointments, id)
		}
	}

	return nil
}

type recordRepo struct{ store *Store }

func (r *recordRepo) List(_ context.Context) ([]*entity.MedicalRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records := make([]*entity.MedicalRecord, 0, len(r.store.records))
	for _, rec := range r.store.records {
		record := *rec
		records = append(records, &record)
	}

	return records, nil
}

func (r *recordRepo) Create(_ context.Context, record *entity.MedicalRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record.ID = uuid.New()
	stored := *record
	r.store.records[record.ID] = &stored

	return nil
}

func (r *recordRepo) DeleteByPatient(_ context.Context, patientID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, rec := range r.store.records {
		if rec.PatientID == patientID {
			delete(r.store.records, id)
		}
	}

	return nil
}
