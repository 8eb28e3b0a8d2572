package repository

import (
	"os"
	"path/filepath"
	"testing"

	"go-clinic-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogRepository_DefaultSeed(t *testing.T) {
	repo, err := NewCatalogRepository(DefaultCatalogSeed())
	require.NoError(t, err)

	assert.Len(t, repo.Doctors(), 4)
	assert.Len(t, repo.Hospitals(), 3)
	assert.Len(t, repo.Specialties(), 8)
}

func TestCatalogRepository_FindByID(t *testing.T) {
	repo, err := NewCatalogRepository(DefaultCatalogSeed())
	require.NoError(t, err)

	doctor, ok := repo.FindDoctorByID("d1")
	require.True(t, ok)
	assert.Equal(t, "Dr. Mahfuzur Rahman", doctor.Name)
	assert.Equal(t, entity.SpecialtyCardiology, doctor.Specialty)

	hospital, ok := repo.FindHospitalByID("h2")
	require.True(t, ok)
	assert.Equal(t, "Ibn Sina Hospital Sylhet", hospital.Name)

	_, ok = repo.FindDoctorByID("zzz")
	assert.False(t, ok)

	_, ok = repo.FindHospitalByID("zzz")
	assert.False(t, ok)
}

func TestNewCatalogRepository_SeedValidation(t *testing.T) {
	hospital := entity.Hospital{ID: "h1", Name: "City Hospital"}

	tests := []struct {
		name string
		seed CatalogSeed
	}{
		{
			name: "duplicate hospital id",
			seed: CatalogSeed{Hospitals: []entity.Hospital{hospital, hospital}},
		},
		{
			name: "empty hospital id",
			seed: CatalogSeed{Hospitals: []entity.Hospital{{Name: "Nameless"}}},
		},
		{
			name: "duplicate doctor id",
			seed: CatalogSeed{
				Hospitals: []entity.Hospital{hospital},
				Doctors: []entity.Doctor{
					{ID: "d1", Specialty: entity.SpecialtyCardiology, HospitalID: "h1"},
					{ID: "d1", Specialty: entity.SpecialtyNeurology, HospitalID: "h1"},
				},
			},
		},
		{
			name: "unknown specialty",
			seed: CatalogSeed{
				Hospitals: []entity.Hospital{hospital},
				Doctors:   []entity.Doctor{{ID: "d1", Specialty: "Telepathy", HospitalID: "h1"}},
			},
		},
		{
			name: "dangling hospital reference",
			seed: CatalogSeed{
				Hospitals: []entity.Hospital{hospital},
				Doctors:   []entity.Doctor{{ID: "d1", Specialty: entity.SpecialtyCardiology, HospitalID: "h9"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogRepository(tt.seed)
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogSeed_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"hospitals": [{"id": "h1", "name": "City Hospital", "location": "Uptown"}],
		"doctors": [{"id": "d1", "name": "Dr. A", "specialty": "Cardiology", "hospital_id": "h1"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	seed, err := LoadCatalogSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Doctors, 1)
	require.Len(t, seed.Hospitals, 1)
	assert.Equal(t, "Dr. A", seed.Doctors[0].Name)

	repo, err := NewCatalogRepository(seed)
	require.NoError(t, err)
	_, ok := repo.FindDoctorByID("d1")
	assert.True(t, ok)
}

func TestLoadCatalogSeed_EmptyPathUsesDefault(t *testing.T) {
	seed, err := LoadCatalogSeed("")
	require.NoError(t, err)
	assert.Len(t, seed.Doctors, 4)
}

func TestLoadCatalogSeed_Errors(t *testing.T) {
	_, err := LoadCatalogSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = LoadCatalogSeed(path)
	assert.Error(t, err)
}
