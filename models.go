package quoteit

import (
	"time"

	"github.com/google/uuid"
)

// Storage namespace identifiers. The session and library keys are versioned
// per app; the profile key is shared across ToolStack modules.
const (
	AppID      = "quoteit"
	AppVersion = "v1"

	KeySession = "toolstack." + AppID + "." + AppVersion
	KeyProfile = "toolstack.profile.v1"
	KeyLibrary = "toolstack." + AppID + ".library." + AppVersion
)

// Wizard steps, in order.
const (
	StepRequest = 0
	StepVendors = 1
	StepRFQs    = 2
	StepQuotes  = 3
	StepPack    = 4

	StepCount = 5
)

// Contact methods for a vendor within the current request.
const (
	ContactNone    = "none"
	ContactEmail   = "email"
	ContactPhone   = "phone"
	ContactMeeting = "meeting"
	ContactPortal  = "portal"
	ContactOther   = "other"
)

// ContactMethods lists the allowed contactMethod values.
var ContactMethods = []string{ContactNone, ContactEmail, ContactPhone, ContactMeeting, ContactPortal, ContactOther}

// Payment terms recorded on a quote. Empty string means unset.
const (
	PaymentUnset     = ""
	PaymentCash      = "Cash"
	PaymentAccount   = "Account"
	PaymentInvoice30 = "Invoice-30"
)

// PaymentTermsValues lists the allowed paymentTerms values.
var PaymentTermsValues = []string{PaymentUnset, PaymentCash, PaymentAccount, PaymentInvoice30}

// DefaultCountry is the locale tag new vendor records start with.
const DefaultCountry = "DE"

// RequestRecord is the active procurement request. EstimatedCost is kept in
// its entered form; use ToNumber to coerce (unparsable values count as absent).
type RequestRecord struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	Brand         string `json:"brand"`
	Reference     string `json:"reference"`
	NeededBy      string `json:"neededBy"`
	DeliveryTo    string `json:"deliveryTo"`
	Spec          string `json:"spec"`
	Notes         string `json:"notes"`
	EstimatedCost string `json:"estimatedCost"`
}

// VendorRecord is a prospective supplier attached to the current request.
type VendorRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Website       string   `json:"website"`
	Notes         string   `json:"notes"`
	Tags          []string `json:"tags"`
	Category      string   `json:"category"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	Inactive      bool     `json:"inactive"`
	ContactMethod string   `json:"contactMethod"`
}

// QuoteRecord is one vendor's response. Amount is kept in its entered form;
// at most one quote exists per vendor.
type QuoteRecord struct {
	VendorID     string `json:"vendorId"`
	Amount       string `json:"amount"`
	LeadTime     string `json:"leadTime"`
	Validity     string `json:"validity"`
	PaymentTerms string `json:"paymentTerms"`
	Proof        string `json:"proof"`
	Notes        string `json:"notes"`
}

// ComplianceRecord is the final decision record.
type ComplianceRecord struct {
	SelectedVendorID string `json:"selectedVendorId"`
	Justification    string `json:"justification"`
}

// IncludeFlags selects the request-for-quote checklist bullets.
type IncludeFlags struct {
	LeadTime bool `json:"leadTime"`
	Validity bool `json:"validity"`
	Delivery bool `json:"delivery"`
	Payment  bool `json:"payment"`
}

// RFQSettings configures the generated RFQ subject and body.
type RFQSettings struct {
	SubjectPrefix string       `json:"subjectPrefix"`
	Greeting      string       `json:"greeting"`
	Closing       string       `json:"closing"`
	Include       IncludeFlags `json:"include"`
	PaymentLine   string       `json:"paymentLine"`
	SignatureName string       `json:"signatureName"`
}

// Meta identifies a stored session document.
type Meta struct {
	AppID     string `json:"appId"`
	Version   string `json:"version"`
	UpdatedAt string `json:"updatedAt"`
}

// UIState is the presentation state persisted with the session.
type UIState struct {
	Step int `json:"step"`
}

// Session is the wizard aggregate: one request, its vendors, the RFQ
// settings, the quotes received and the compliance decision.
type Session struct {
	Meta       Meta             `json:"meta"`
	UI         UIState          `json:"ui"`
	Request    RequestRecord    `json:"request"`
	Vendors    []VendorRecord   `json:"vendors"`
	RFQ        RFQSettings      `json:"rfq"`
	Quotes     []QuoteRecord    `json:"quotes"`
	Compliance ComplianceRecord `json:"compliance"`
}

// Profile is the cross-module sender identity.
type Profile struct {
	Org      string `json:"org"`
	User     string `json:"user"`
	Language string `json:"language"`
}

// VendorLibraryEntry is a vendor persisted independently of any request for
// reuse. Same shape as VendorRecord minus the per-request contact method.
type VendorLibraryEntry struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Website   string   `json:"website"`
	Notes     string   `json:"notes"`
	Tags      []string `json:"tags"`
	Category  string   `json:"category"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Inactive  bool     `json:"inactive"`
	UpdatedAt string   `json:"updatedAt"`
}

// NewID returns an opaque unique token for a new record.
func NewID() string {
	return uuid.New().String()
}

// NewVendor returns a blank active vendor slot.
func NewVendor() VendorRecord {
	return VendorRecord{
		ID:            NewID(),
		Country:       DefaultCountry,
		ContactMethod: ContactNone,
	}
}

// DefaultRFQSettings returns the RFQ template defaults.
func DefaultRFQSettings() RFQSettings {
	return RFQSettings{
		SubjectPrefix: "RFQ",
		Greeting:      "Dear",
		Closing:       "Kind regards",
		Include:       IncludeFlags{LeadTime: true, Validity: true, Delivery: true, Payment: true},
		PaymentLine:   "Please include payment terms.",
	}
}

// DefaultProfile returns the profile used when nothing is stored.
func DefaultProfile() Profile {
	return Profile{Org: "ToolStack", Language: "EN"}
}

// NewSession returns a fresh wizard session: step 0, empty request, one blank
// vendor slot per conservatively required quote.
func NewSession() Session {
	n := RequiredQuoteCount(nil)
	vendors := make([]VendorRecord, 0, n)
	for i := 0; i < n; i++ {
		vendors = append(vendors, NewVendor())
	}
	return Session{
		Meta:    Meta{AppID: AppID, Version: AppVersion, UpdatedAt: nowStamp()},
		Vendors: vendors,
		RFQ:     DefaultRFQSettings(),
		Quotes:  []QuoteRecord{},
	}
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
