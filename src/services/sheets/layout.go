package sheets

import "Backend-Masons-Leads/src/models"

// layout pins each role to its sheet, the range rows are appended to and the
// single column the duplicate check scans.
type layout struct {
	Sheet       string
	AppendRange string
	UniqueRange string
}

var layouts = map[models.UserType]layout{
	models.UserTypeMediaBuying: {Sheet: "Team", AppendRange: "Team!A:J", UniqueRange: "Team!C:C"},
	models.UserTypeAdvertiser:  {Sheet: "Advertiser", AppendRange: "Advertiser!A:E", UniqueRange: "Advertiser!D:D"},
	models.UserTypeServiceRep:  {Sheet: "ServiceRep", AppendRange: "ServiceRep!A:E", UniqueRange: "ServiceRep!C:C"},
	models.UserTypeOther:       {Sheet: "Other", AppendRange: "Other!A:D", UniqueRange: "Other!B:B"},
}

func layoutFor(role models.UserType) (layout, bool) {
	l, ok := layouts[role]
	return l, ok
}
