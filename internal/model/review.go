package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's rating of a scholarship. PostID holds the scholarship id
// as a hex string; documents that stored an ObjectID are matched as well.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PostID        interface{}        `bson:"postId" json:"postId"`
	ReviewerName  string             `bson:"reviewerName,omitempty" json:"reviewerName,omitempty"`
	ReviewerEmail string             `bson:"reviewerEmail,omitempty" json:"reviewerEmail,omitempty"`
	Comment       string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Rating        float64            `bson:"rating" json:"rating"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
