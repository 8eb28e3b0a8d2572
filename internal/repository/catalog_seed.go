package repository

import (
	"go-clinic-directory/internal/domain/entity"
)

// DefaultCatalogSeed returns the built-in directory data for the Sylhet
// clinic network, used when no CATALOG_FILE is configured.
func DefaultCatalogSeed() CatalogSeed {
	return CatalogSeed{
		Hospitals: []entity.Hospital{
			{
				ID:       "h1",
				Name:     "Sylhet MAG Osmani Medical College",
				Address:  "Kajir Bazar Rd, Sylhet 3100",
				Location: "Zindabazar",
				Services: []string{"Emergency", "Surgery", "Diagnostic Center", "Pharmacy"},
				Contact:  "0821-713200",
				Rating:   4.5,
			},
			{
				ID:       "h2",
				Name:     "Ibn Sina Hospital Sylhet",
				Address:  "Subhanighat, Sylhet",
				Location: "Subhanighat",
				Services: []string{"ICU", "Dialysis", "Maternity", "Pathology"},
				Contact:  "0821-724321",
				Rating:   4.7,
			},
			{
				ID:       "h3",
				Name:     "Mount Adora Hospital",
				Address:  "Akhalia, Sylhet-Sunamganj Road",
				Location: "Akhalia",
				Services: []string{"Orthopedics", "Dental Care", "Optical Center"},
				Contact:  "0821-721234",
				Rating:   4.8,
			},
		},
		Doctors: []entity.Doctor{
			{
				ID:           "d1",
				Name:         "Dr. Mahfuzur Rahman",
				Specialty:    entity.SpecialtyCardiology,
				HospitalID:   "h1",
				HospitalName: "Sylhet MAG Osmani Medical College",
				Rating:       4.8,
				Fee:          800,
				Availability: []string{"Mon", "Wed", "Fri"},
				Bio:          "Senior consultant with 15 years of experience in interventional cardiology.",
				Contact:      "01711-XXXXXX",
			},
			{
				ID:           "d2",
				Name:         "Dr. Syeda Nusrat Jahan",
				Specialty:    entity.SpecialtyPediatrics,
				HospitalID:   "h2",
				HospitalName: "Ibn Sina Hospital Sylhet",
				Rating:       4.9,
				Fee:          600,
				Availability: []string{"Sat", "Sun", "Tue"},
				Bio:          "Specialist in child health and neonatology.",
				Contact:      "01712-XXXXXX",
			},
			{
				ID:           "d3",
				Name:         "Dr. Ahmed Tanveer",
				Specialty:    entity.SpecialtyNeurology,
				HospitalID:   "h1",
				HospitalName: "Sylhet MAG Osmani Medical College",
				Rating:       4.7,
				Fee:          1000,
				Availability: []string{"Mon", "Tue", "Thu"},
				Bio:          "Expert in neurodegenerative disorders and stroke management.",
				Contact:      "01713-XXXXXX",
			},
			{
				ID:           "d4",
				Name:         "Dr. Fahmida Sultana",
				Specialty:    entity.SpecialtyGynecology,
				HospitalID:   "h3",
				HospitalName: "Mount Adora Hospital",
				Rating:       4.6,
				Fee:          700,
				Availability: []string{"Wed", "Thu", "Fri"},
				Bio:          "Specialized in maternal-fetal medicine and reproductive health.",
				Contact:      "01714-XXXXXX",
			},
		},
	}
}
