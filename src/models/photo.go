package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhotoMetadata describes one image stored in the GridFS bucket.
type PhotoMetadata struct {
	Name        string `bson:"name" json:"name"`
	ContentType string `bson:"contentType" json:"contentType"`
	Size        int64  `bson:"size" json:"size"`
	GridFSID    string `bson:"gridFSId" json:"gridFSId"`
}

// PhotoFolder groups the photos uploaded with one media-buying submission.
type PhotoFolder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FolderKey string             `bson:"folderKey" json:"folderKey"`
	UserType  string             `bson:"userType" json:"userType"`
	FullName  string             `bson:"fullName" json:"fullName"`
	Telegram  string             `bson:"telegram" json:"telegram"`
	Timestamp string             `bson:"timestamp" json:"timestamp"`
	Photos    []PhotoMetadata    `bson:"photos" json:"photos"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PhotoOwner is the applicant identity a folder is created for.
type PhotoOwner struct {
	FullName  string
	Telegram  string
	Timestamp string
}
