package checkout

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrMissingName       = errors.New("recipient name required")
	ErrMissingStreet     = errors.New("street address required")
	ErrMissingCity       = errors.New("city required")
	ErrMissingPostalCode = errors.New("postal code required")
	ErrInvalidPhone      = errors.New("phone number must be at least 6 characters")
)

// DeliveryInfo is the validated delivery form. Notes are optional; every
// other field must be non-empty and the phone at least 6 characters.
type DeliveryInfo struct {
	name       string
	street     string
	city       string
	postalCode string
	phone      string
	notes      string
}

func NewDeliveryInfo(name, street, city, postalCode, phone, notes string) (DeliveryInfo, error) {
	name = strings.TrimSpace(name)
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	postalCode = strings.TrimSpace(postalCode)
	phone = strings.TrimSpace(phone)

	switch {
	case name == "":
		return DeliveryInfo{}, ErrMissingName
	case street == "":
		return DeliveryInfo{}, ErrMissingStreet
	case city == "":
		return DeliveryInfo{}, ErrMissingCity
	case postalCode == "":
		return DeliveryInfo{}, ErrMissingPostalCode
	case phone == "" || utf8.RuneCountInString(phone) < 6:
		return DeliveryInfo{}, ErrInvalidPhone
	}

	return DeliveryInfo{
		name:       name,
		street:     street,
		city:       city,
		postalCode: postalCode,
		phone:      phone,
		notes:      strings.TrimSpace(notes),
	}, nil
}

func (d DeliveryInfo) Name() string       { return d.name }
func (d DeliveryInfo) Street() string     { return d.street }
func (d DeliveryInfo) City() string       { return d.city }
func (d DeliveryInfo) PostalCode() string { return d.postalCode }
func (d DeliveryInfo) Phone() string      { return d.phone }
func (d DeliveryInfo) Notes() string      { return d.notes }
func (d DeliveryInfo) IsZero() bool       { return d == DeliveryInfo{} }
