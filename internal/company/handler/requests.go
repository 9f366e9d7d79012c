package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	dErrors "github.com/avelineg/siren-search-widget-sub000/pkg/domain-errors"
)

// GeocodeBatchRequest is the HTTP request body for POST /geocode/batch.
type GeocodeBatchRequest struct {
	SessionKey     string                 `json:"session_key" validate:"max=128"`
	Establishments []EstablishmentRequest `json:"establishments" validate:"required,min=1,max=500,dive"`
}

type EstablishmentRequest struct {
	Siret     string   `json:"siret" validate:"required,numeric,len=14"`
	Name      string   `json:"name" validate:"max=256"`
	Address   string   `json:"address" validate:"max=512"`
	Latitude  *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
	Active    *bool    `json:"active"`
}

// Items converts the request into batch items. Establishments without an
// explicit active flag are treated as active.
func (r GeocodeBatchRequest) Items() []models.Establishment {
	items := make([]models.Establishment, 0, len(r.Establishments))
	for _, e := range r.Establishments {
		active := true
		if e.Active != nil {
			active = *e.Active
		}
		items = append(items, models.Establishment{
			Siret:     e.Siret,
			Name:      strings.TrimSpace(e.Name),
			Address:   strings.TrimSpace(e.Address),
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
			Active:    active,
		})
	}
	return items
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct reports the first failing field as a validation error.
func (h *Handler) validateStruct(req any) error {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
	}
	return dErrors.Wrap(err, dErrors.CodeValidation, "invalid request")
}

func decodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var req T
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid JSON body")
	}
	return req, nil
}
