package entity

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationRequest is a plea for blood posted by a registered user.
// RequesterEmail is denormalized from the verified identity at creation
// time and is not enforced against the users collection.
type DonationRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterName  string             `bson:"requesterName" json:"requesterName"`
	RequesterEmail string             `bson:"requesterEmail" json:"requesterEmail"`
	RecipientName  string             `bson:"recipientName" json:"recipientName"`
	DistrictName   string             `bson:"districtName" json:"districtName"`
	Upzila         string             `bson:"upzila" json:"upzila"`
	HospitalName   string             `bson:"hospitalName" json:"hospitalName"`
	FullAddress    string             `bson:"fullAddress" json:"fullAddress"`
	BloodGroup     string             `bson:"bloodGroup" json:"bloodGroup"`
	DonationDate   string             `bson:"donationDate" json:"donationDate"`
	DonationTime   string             `bson:"donationTime" json:"donationTime"`
	RequestMessage string             `bson:"requestMessage" json:"requestMessage"`
	DonationStatus DonationStatus     `bson:"donationStatus" json:"donationStatus"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

type DonationStatus string

const (
	DonationPending    DonationStatus = "Pending"
	DonationInProgress DonationStatus = "InProgress"
	DonationDone       DonationStatus = "Done"
	DonationCancelled  DonationStatus = "Cancelled"
)

var ErrInvalidDonationStatus = errors.New("invalid donation status")

func ParseDonationStatus(s string) (DonationStatus, error) {
	switch DonationStatus(s) {
	case DonationPending, DonationInProgress, DonationDone, DonationCancelled:
		return DonationStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDonationStatus, s)
}
