package models

type AgencyCode string

const (
	AgencyLocalAuthority AgencyCode = "local_authority"
	AgencyHMRC           AgencyCode = "hmrc"
	AgencyDWP            AgencyCode = "dwp"
	AgencyOfsted         AgencyCode = "ofsted"
	AgencyCustom         AgencyCode = "custom"
)

// FixedAgencies are notified of every enforcement action, in this order.
var FixedAgencies = []AgencyCode{AgencyLocalAuthority, AgencyHMRC, AgencyDWP, AgencyOfsted}

var agencyHumanName = map[AgencyCode]string{
	AgencyLocalAuthority: "Local Authority",
	AgencyHMRC:           "HMRC",
	AgencyDWP:            "DWP",
	AgencyOfsted:         "Ofsted",
	AgencyCustom:         "Custom recipient",
}

var agencyDetail = map[AgencyCode]string{
	AgencyLocalAuthority: "Local authority designated officer / early years team",
	AgencyHMRC:           "Tax-Free Childcare and childcare account compliance",
	AgencyDWP:            "Universal Credit childcare costs",
	AgencyOfsted:         "Regulator of childminder agencies",
}

func (a AgencyCode) ToHuman() string {
	if human, exist := agencyHumanName[a]; exist {
		return human
	}
	return string(a)
}

func (a AgencyCode) Detail() string {
	return agencyDetail[a]
}

// RecipientStatus is the in-session state of one dispatch recipient.
type RecipientStatus string

const (
	RecipientPending RecipientStatus = "pending"
	RecipientSent    RecipientStatus = "sent"
	RecipientError   RecipientStatus = "error"
)

// NotificationStatus is the durable state of a notification row.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// names of the external notification functions
const (
	FnSendEnforcementNotification = "send-enforcement-notification"
	FnSendKnownToOfstedEmail      = "send-known-to-ofsted-email"
	FnSendDbsRequestEmail         = "send-dbs-request-email"
	FnSendEmployeeEmail           = "send-employee-email"
)
