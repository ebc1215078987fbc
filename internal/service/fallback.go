package service

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarhub/internal/model"
)

// fallbackCatalogue is served in degraded mode. IDs are fixed so detail
// links built from a degraded listing stay stable.
var fallbackCatalogue = []model.Scholarship{
	{
		ID:                  mustObjectID("65a1f0000000000000000001"),
		ScholarshipName:     "Global Excellence Scholarship",
		UniversityName:      "University of Oxford",
		UniversityCountry:   "United Kingdom",
		UniversityCity:      "Oxford",
		UniversityWorldRank: 3,
		SubjectCategory:     "Engineering",
		ScholarshipCategory: "Full fund",
		Degree:              "Masters",
		TuitionFees:         0,
		ApplicationFees:     50,
		ServiceCharge:       15,
		ApplicationDeadline: "2026-12-31",
		Description:         "Covers tuition and living costs for outstanding international students.",
		Rating:              4.8,
		CreatedAt:           time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:                  mustObjectID("65a1f0000000000000000002"),
		ScholarshipName:     "Future Leaders Grant",
		UniversityName:      "University of Toronto",
		UniversityCountry:   "Canada",
		UniversityCity:      "Toronto",
		UniversityWorldRank: 21,
		SubjectCategory:     "Doctor",
		ScholarshipCategory: "Partial",
		Degree:              "Bachelor",
		TuitionFees:         12000,
		ApplicationFees:     30,
		ServiceCharge:       10,
		ApplicationDeadline: "2026-11-15",
		Description:         "Partial tuition support for first-year undergraduates.",
		Rating:              4.5,
		CreatedAt:           time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:                  mustObjectID("65a1f0000000000000000003"),
		ScholarshipName:     "Asia Pacific Research Fellowship",
		UniversityName:      "National University of Singapore",
		UniversityCountry:   "Singapore",
		UniversityCity:      "Singapore",
		UniversityWorldRank: 8,
		SubjectCategory:     "Agriculture",
		ScholarshipCategory: "Full fund",
		Degree:              "Masters",
		ApplicationFees:     30,
		ServiceCharge:       12,
		ApplicationDeadline: "2027-01-20",
		Description:         "Research stipend and full tuition waiver.",
		Rating:              4.6,
		CreatedAt:           time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:                  mustObjectID("65a1f0000000000000000004"),
		ScholarshipName:     "Nordic Talent Award",
		UniversityName:      "KTH Royal Institute of Technology",
		UniversityCountry:   "Sweden",
		UniversityCity:      "Stockholm",
		UniversityWorldRank: 73,
		SubjectCategory:     "Engineering",
		ScholarshipCategory: "Self-fund",
		Degree:              "Diploma",
		TuitionFees:         8000,
		ApplicationFees:     20,
		ServiceCharge:       5,
		ApplicationDeadline: "2026-10-30",
		Description:         "Application support and mentoring for self-funded students.",
		Rating:              4.1,
		CreatedAt:           time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:                  mustObjectID("65a1f0000000000000000005"),
		ScholarshipName:     "Pacific Medical Scholarship",
		UniversityName:      "University of Melbourne",
		UniversityCountry:   "Australia",
		UniversityCity:      "Melbourne",
		UniversityWorldRank: 14,
		SubjectCategory:     "Doctor",
		ScholarshipCategory: "Full fund",
		Degree:              "Masters",
		ApplicationFees:     75,
		ServiceCharge:       20,
		ApplicationDeadline: "2027-02-28",
		Description:         "Full funding for graduate medical programs.",
		Rating:              4.7,
		CreatedAt:           time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:                  mustObjectID("65a1f0000000000000000006"),
		ScholarshipName:     "Alpine Sciences Bursary",
		UniversityName:      "ETH Zurich",
		UniversityCountry:   "Switzerland",
		UniversityCity:      "Zurich",
		UniversityWorldRank: 7,
		SubjectCategory:     "Agriculture",
		ScholarshipCategory: "Partial",
		Degree:              "Bachelor",
		TuitionFees:         1500,
		ApplicationFees:     40,
		ServiceCharge:       10,
		ApplicationDeadline: "2026-12-01",
		Description:         "Bursary for undergraduate study in the natural sciences.",
		Rating:              4.4,
		CreatedAt:           time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:                  mustObjectID("65a1f0000000000000000007"),
		ScholarshipName:     "Bay Area Innovators Fund",
		UniversityName:      "Stanford University",
		UniversityCountry:   "United States",
		UniversityCity:      "Stanford",
		UniversityWorldRank: 5,
		SubjectCategory:     "Engineering",
		ScholarshipCategory: "Partial",
		Degree:              "Masters",
		TuitionFees:         30000,
		ApplicationFees:     90,
		ServiceCharge:       25,
		ApplicationDeadline: "2026-12-15",
		Description:         "Partial tuition for graduate engineering entrepreneurs.",
		Rating:              4.9,
		CreatedAt:           time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
	},
}

// FallbackScholarships returns a copy of the degraded-mode catalogue.
func FallbackScholarships() []model.Scholarship {
	out := make([]model.Scholarship, len(fallbackCatalogue))
	copy(out, fallbackCatalogue)
	return out
}

func fallbackByID(id primitive.ObjectID) (model.Scholarship, bool) {
	for _, s := range fallbackCatalogue {
		if s.ID == id {
			return s, true
		}
	}
	return model.Scholarship{}, false
}

func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}
