package models

import "strconv"

// UserType selects the role variant of a submission.
type UserType string

const (
	UserTypeMediaBuying UserType = "mediaBuying"
	UserTypeAdvertiser  UserType = "advertiser"
	UserTypeServiceRep  UserType = "serviceRep"
	UserTypeOther       UserType = "other"
)

func (u UserType) Valid() bool {
	switch u {
	case UserTypeMediaBuying, UserTypeAdvertiser, UserTypeServiceRep, UserTypeOther:
		return true
	}
	return false
}

// Lead is one role-specific submission record. Row returns cells in the exact
// column order of the role's sheet.
type Lead interface {
	Role() UserType
	UniqueValue() string
	Row() []string
}

type MediaBuyingLead struct {
	FullName       string `json:"fullName"`
	Telegram       string `json:"telegram"`
	TeamName       string `json:"teamName"`
	Niche          string `json:"niche"`
	Vertical       string `json:"vertical"`
	TrafficSources string `json:"trafficSources"`
	PhotosLink     string `json:"photosLink"`
	PhotosCount    int    `json:"photosCount"`
	Timestamp      string `json:"timestamp"`
}

func (l MediaBuyingLead) Role() UserType      { return UserTypeMediaBuying }
func (l MediaBuyingLead) UniqueValue() string { return l.Telegram }
func (l MediaBuyingLead) Row() []string {
	return []string{
		string(UserTypeMediaBuying),
		l.FullName,
		l.Telegram,
		l.TeamName,
		l.Niche,
		l.Vertical,
		l.TrafficSources,
		l.PhotosLink,
		strconv.Itoa(l.PhotosCount),
		l.Timestamp,
	}
}

type AdvertiserLead struct {
	Brand       string `json:"brand"`
	Geolocation string `json:"geolocation"`
	Contacts    string `json:"contacts"`
	Timestamp   string `json:"timestamp"`
}

func (l AdvertiserLead) Role() UserType      { return UserTypeAdvertiser }
func (l AdvertiserLead) UniqueValue() string { return l.Contacts }
func (l AdvertiserLead) Row() []string {
	return []string{string(UserTypeAdvertiser), l.Brand, l.Geolocation, l.Contacts, l.Timestamp}
}

type ServiceRepLead struct {
	Service   string `json:"service"`
	Contacts  string `json:"contacts"`
	Terms     string `json:"terms"`
	Timestamp string `json:"timestamp"`
}

func (l ServiceRepLead) Role() UserType      { return UserTypeServiceRep }
func (l ServiceRepLead) UniqueValue() string { return l.Contacts }
func (l ServiceRepLead) Row() []string {
	return []string{string(UserTypeServiceRep), l.Service, l.Contacts, l.Terms, l.Timestamp}
}

type OtherLead struct {
	FullName    string `json:"fullName"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

func (l OtherLead) Role() UserType      { return UserTypeOther }
func (l OtherLead) UniqueValue() string { return l.FullName }
func (l OtherLead) Row() []string {
	return []string{string(UserTypeOther), l.FullName, l.Description, l.Timestamp}
}
