package provider

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrPhoneRequired      = errors.New("a valid phone number is required")
	ErrGovernmentIDFormat = errors.New("government id must be 8 to 20 letters or digits")
	ErrAgreementRequired  = errors.New("the provider agreement must be signed")
	ErrSignatureRequired  = errors.New("signature is required")
	ErrIDProofRequired    = errors.New("an id proof upload is required")
	ErrInvalidPayout      = errors.New("payout details need account name, number and IFSC")
)

var (
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	govIDRegex = regexp.MustCompile(`^[A-Z0-9]{8,20}$`)
	ifscRegex  = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	acctRegex  = regexp.MustCompile(`^[0-9]{9,18}$`)
)

type PayoutDetails struct {
	AccountName   string
	AccountNumber string
	IFSC          string
}

func NewPayoutDetails(name, number, ifsc string) (*PayoutDetails, error) {
	name = strings.TrimSpace(name)
	number = strings.TrimSpace(number)
	ifsc = strings.ToUpper(strings.TrimSpace(ifsc))
	if name == "" && number == "" && ifsc == "" {
		return nil, nil
	}
	if name == "" || !acctRegex.MatchString(number) || !ifscRegex.MatchString(ifsc) {
		return nil, ErrInvalidPayout
	}
	return &PayoutDetails{AccountName: name, AccountNumber: number, IFSC: ifsc}, nil
}

// Application is a verification request as submitted by a would-be provider.
type Application struct {
	UserID          string
	Name            string
	Email           string
	Phone           string
	GovernmentID    string
	IDProofURL      string
	AgreementSigned bool
	Signature       string
	Location        string
	Payout          *PayoutDetails
}

// NormalizedGovernmentID upper-cases and strips spaces before validation.
func NormalizedGovernmentID(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

func (a Application) Validate() error {
	if !phoneRegex.MatchString(strings.ReplaceAll(strings.TrimSpace(a.Phone), " ", "")) {
		return ErrPhoneRequired
	}
	if !govIDRegex.MatchString(NormalizedGovernmentID(a.GovernmentID)) {
		return ErrGovernmentIDFormat
	}
	if !a.AgreementSigned {
		return ErrAgreementRequired
	}
	if strings.TrimSpace(a.Signature) == "" {
		return ErrSignatureRequired
	}
	if strings.TrimSpace(a.IDProofURL) == "" {
		return ErrIDProofRequired
	}
	return nil
}

// Profile is a verified provider. The government id is only kept hashed.
type Profile struct {
	userID           string
	name             string
	email            string
	phone            string
	governmentIDHash string
	governmentIDLast string
	idProofURL       string
	agreementSigned  bool
	signature        string
	location         string
	verified         bool
	payout           *PayoutDetails
	createdAt        time.Time
	updatedAt        time.Time
}

// NewProfile expects the government id already hashed by the caller.
func NewProfile(a Application, governmentIDHash, governmentIDLast4 string, now time.Time) (*Profile, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &Profile{
		userID:           a.UserID,
		name:             strings.TrimSpace(a.Name),
		email:            strings.TrimSpace(a.Email),
		phone:            strings.ReplaceAll(strings.TrimSpace(a.Phone), " ", ""),
		governmentIDHash: governmentIDHash,
		governmentIDLast: governmentIDLast4,
		idProofURL:       a.IDProofURL,
		agreementSigned:  true,
		signature:        strings.TrimSpace(a.Signature),
		location:         strings.TrimSpace(a.Location),
		verified:         true,
		payout:           a.Payout,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

type Record struct {
	UserID            string
	Name              string
	Email             string
	Phone             string
	GovernmentIDHash  string
	GovernmentIDLast4 string
	IDProofURL        string
	AgreementSigned   bool
	Signature         string
	Location          string
	Verified          bool
	Payout            *PayoutDetails
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func Reconstruct(r Record) *Profile {
	return &Profile{
		userID:           r.UserID,
		name:             r.Name,
		email:            r.Email,
		phone:            r.Phone,
		governmentIDHash: r.GovernmentIDHash,
		governmentIDLast: r.GovernmentIDLast4,
		idProofURL:       r.IDProofURL,
		agreementSigned:  r.AgreementSigned,
		signature:        r.Signature,
		location:         r.Location,
		verified:         r.Verified,
		payout:           r.Payout,
		createdAt:        r.CreatedAt,
		updatedAt:        r.UpdatedAt,
	}
}

func (p *Profile) Record() Record {
	return Record{
		UserID:            p.userID,
		Name:              p.name,
		Email:             p.email,
		Phone:             p.phone,
		GovernmentIDHash:  p.governmentIDHash,
		GovernmentIDLast4: p.governmentIDLast,
		IDProofURL:        p.idProofURL,
		AgreementSigned:   p.agreementSigned,
		Signature:         p.signature,
		Location:          p.location,
		Verified:          p.verified,
		Payout:            p.payout,
		CreatedAt:         p.createdAt,
		UpdatedAt:         p.updatedAt,
	}
}

func (p *Profile) UserID() string         { return p.userID }
func (p *Profile) Name() string           { return p.name }
func (p *Profile) Email() string          { return p.email }
func (p *Profile) Verified() bool         { return p.verified }
func (p *Profile) Payout() *PayoutDetails { return p.payout }
func (p *Profile) HasPayoutDetails() bool { return p.payout != nil }
