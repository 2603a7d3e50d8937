package dto

import (
	"time"

	"github.com/poseidon-markets/refdata-service/internal/models"
)

// CurvePointDTO is the wire representation of a yield curve point.
// CreationDate is server-owned: the service stamps it on create and
// any client-supplied value is ignored.
type CurvePointDTO struct {
	ID              int64      `json:"id"`
	CurveID         *int16     `json:"curve_id" binding:"omitempty,gte=0,lte=255"`
	AsOfDate        *time.Time `json:"as_of_date"`
	Term            *float64   `json:"term" binding:"omitempty,gte=0"`
	CurvePointValue *float64   `json:"curve_point_value" binding:"omitempty,gte=0"`
	CreationDate    time.Time  `json:"creation_date"`
}

// ToModel maps the DTO onto a domain record, excluding the server-owned
// creation date.
func (d CurvePointDTO) ToModel() models.CurvePoint {
	return models.CurvePoint{
		ID:              d.ID,
		CurveID:         d.CurveID,
		AsOfDate:        d.AsOfDate,
		Term:            d.Term,
		CurvePointValue: d.CurvePointValue,
	}
}

// CurvePointFromModel maps a domain record to its wire representation.
func CurvePointFromModel(m models.CurvePoint) CurvePointDTO {
	return CurvePointDTO{
		ID:              m.ID,
		CurveID:         m.CurveID,
		AsOfDate:        m.AsOfDate,
		Term:            m.Term,
		CurvePointValue: m.CurvePointValue,
		CreationDate:    m.CreationDate,
	}
}
