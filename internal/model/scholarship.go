package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scholarship is a funding offer listed on the site.
type Scholarship struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ScholarshipName     string             `bson:"scholarshipName" json:"scholarshipName"`
	UniversityName      string             `bson:"universityName" json:"universityName"`
	UniversityImage     string             `bson:"universityImage,omitempty" json:"universityImage,omitempty"`
	UniversityCountry   string             `bson:"universityCountry" json:"universityCountry"`
	UniversityCity      string             `bson:"universityCity" json:"universityCity"`
	UniversityWorldRank int                `bson:"universityWorldRank,omitempty" json:"universityWorldRank,omitempty"`
	SubjectCategory     string             `bson:"subjectCategory" json:"subjectCategory"`
	ScholarshipCategory string             `bson:"scholarshipCategory" json:"scholarshipCategory"`
	Degree              string             `bson:"degree" json:"degree"`
	TuitionFees         float64            `bson:"tuitionFees,omitempty" json:"tuitionFees,omitempty"`
	ApplicationFees     float64            `bson:"applicationFees" json:"applicationFees"`
	ServiceCharge       float64            `bson:"serviceCharge" json:"serviceCharge"`
	ApplicationDeadline string             `bson:"applicationDeadline" json:"applicationDeadline"`
	Description         string             `bson:"description,omitempty" json:"description,omitempty"`
	Rating              float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	PostedUserEmail     string             `bson:"postedUserEmail,omitempty" json:"postedUserEmail,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
}

// ScholarshipDetail is a scholarship with its reviews joined in.
type ScholarshipDetail struct {
	Scholarship `bson:",inline"`
	Reviews     []Review `bson:"reviews" json:"reviews"`
}
