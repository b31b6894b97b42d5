package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Person represents a single person record
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IDCard    string    `json:"id_card"`
	Lat       *float64  `json:"lat,omitempty"`
	Long      *float64  `json:"long,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location is the public projection of a person's coordinates, without the internal ID
type Location struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat,omitempty"`
	Long *float64 `json:"long,omitempty"`
}

// CreatePersonRequest is the body accepted when creating a person
type CreatePersonRequest struct {
	Name   string   `json:"name" validate:"required"`
	IDCard string   `json:"id_card" validate:"required"`
	Lat    *float64 `json:"lat" validate:"omitempty,latitude"`
	Long   *float64 `json:"long" validate:"omitempty,longitude"`
}

// UpdatePersonRequest is a partial update; nil fields are left untouched.
// An explicit JSON null for lat or long sets ClearLat or ClearLong instead.
type UpdatePersonRequest struct {
	Name   *string  `json:"name"`
	IDCard *string  `json:"id_card"`
	Lat    *float64 `json:"lat" validate:"omitempty,latitude"`
	Long   *float64 `json:"long" validate:"omitempty,longitude"`

	ClearLat  bool `json:"-"`
	ClearLong bool `json:"-"`
}

// UnmarshalJSON decodes the body and records which fields were sent as null
func (r *UpdatePersonRequest) UnmarshalJSON(data []byte) error {
	type fields UpdatePersonRequest
	var body fields
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = UpdatePersonRequest(body)
	r.ClearLat = isNull(raw["lat"])
	r.ClearLong = isNull(raw["long"])

	// Required fields cannot be removed, a null is treated as blank
	if isNull(raw["name"]) {
		r.Name = new(string)
	}
	if isNull(raw["id_card"]) {
		r.IDCard = new(string)
	}

	return nil
}

func isNull(value json.RawMessage) bool {
	return value != nil && bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// NewPerson creates a new Person with a generated UUID
func NewPerson(req *CreatePersonRequest) *Person {
	return &Person{
		ID:     uuid.New().String(),
		Name:   req.Name,
		IDCard: req.IDCard,
		Lat:    req.Lat,
		Long:   req.Long,
	}
}

// Normalize trims surrounding whitespace from the text fields
func (r *CreatePersonRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.IDCard = strings.TrimSpace(r.IDCard)
}

func (r *CreatePersonRequest) Validate() error {
	return validateStruct(r)
}

// Normalize trims surrounding whitespace from the supplied text fields
func (r *UpdatePersonRequest) Normalize() {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
	}
	if r.IDCard != nil {
		idCard := strings.TrimSpace(*r.IDCard)
		r.IDCard = &idCard
	}
}

// Validate rejects blank required fields and out-of-range coordinates
func (r *UpdatePersonRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return &ValidationError{Field: "name", Message: "name must not be blank"}
	}
	if r.IDCard != nil && *r.IDCard == "" {
		return &ValidationError{Field: "id_card", Message: "id_card must not be blank"}
	}
	return validateStruct(r)
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdatePersonRequest) IsEmpty() bool {
	return r.Name == nil && r.IDCard == nil && r.Lat == nil && r.Long == nil && !r.ClearLat && !r.ClearLong
}

// PersonFilter holds the optional search filters; empty values impose no constraint
type PersonFilter struct {
	Name   string
	IDCard string
}

// NewPersonFilter builds a filter from raw query values
func NewPersonFilter(name, idCard string) PersonFilter {
	return PersonFilter{
		Name:   strings.TrimSpace(name),
		IDCard: strings.TrimSpace(idCard),
	}
}
