package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"go-clinic-directory/internal/domain/entity"
	domainRepo "go-clinic-directory/internal/domain/repository"
)

// CatalogSeed is the startup payload for the catalog. It can come from the
// built-in default data or from a JSON file with the same field set.
type CatalogSeed struct {
	Doctors   []entity.Doctor   `json:"doctors"`
	Hospitals []entity.Hospital `json:"hospitals"`
}

type catalogRepository struct {
	doctors   []entity.Doctor
	hospitals []entity.Hospital
	doctorIdx map[string]int
	hospIdx   map[string]int
}

// NewCatalogRepository builds an in-memory catalog from the seed after
// validating its invariants: unique identifiers, every doctor's specialty
// is a member of the closed specialty set, and every doctor's hospital_id
// references a seeded hospital.
func NewCatalogRepository(seed CatalogSeed) (domainRepo.CatalogRepository, error) {
	repo := &catalogRepository{
		doctors:   seed.Doctors,
		hospitals: seed.Hospitals,
		doctorIdx: make(map[string]int, len(seed.Doctors)),
		hospIdx:   make(map[string]int, len(seed.Hospitals)),
	}

	for i, h := range seed.Hospitals {
		if h.ID == "" {
			return nil, fmt.Errorf("hospital at index %d has an empty id", i)
		}
		if _, exists := repo.hospIdx[h.ID]; exists {
			return nil, fmt.Errorf("duplicate hospital id %q", h.ID)
		}
		repo.hospIdx[h.ID] = i
	}

	for i, d := range seed.Doctors {
		if d.ID == "" {
			return nil, fmt.Errorf("doctor at index %d has an empty id", i)
		}
		if _, exists := repo.doctorIdx[d.ID]; exists {
			return nil, fmt.Errorf("duplicate doctor id %q", d.ID)
		}
		if !d.Specialty.IsValid() {
			return nil, fmt.Errorf("doctor %q has unknown specialty %q", d.ID, d.Specialty)
		}
		if _, exists := repo.hospIdx[d.HospitalID]; !exists {
			return nil, fmt.Errorf("doctor %q references unknown hospital %q", d.ID, d.HospitalID)
		}
		repo.doctorIdx[d.ID] = i
	}

	return repo, nil
}

// LoadCatalogSeed reads a catalog seed from a JSON file. An empty path
// returns the built-in default seed.
func LoadCatalogSeed(path string) (CatalogSeed, error) {
	if path == "" {
		return DefaultCatalogSeed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return CatalogSeed{}, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var seed CatalogSeed
	if err := json.Unmarshal(data, &seed); err != nil {
		return CatalogSeed{}, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return seed, nil
}

func (r *catalogRepository) Doctors() []entity.Doctor {
	return r.doctors
}

func (r *catalogRepository) Hospitals() []entity.Hospital {
	return r.hospitals
}

func (r *catalogRepository) Specialties() []entity.Specialty {
	return entity.AllSpecialties()
}

func (r *catalogRepository) FindDoctorByID(id string) (*entity.Doctor, bool) {
	i, ok := r.doctorIdx[id]
	if !ok {
		return nil, false
	}
	return &r.doctors[i], true
}

func (r *catalogRepository) FindHospitalByID(id string) (*entity.Hospital, bool) {
	i, ok := r.hospIdx[id]
	if !ok {
		return nil, false
	}
	return &r.hospitals[i], true
}
