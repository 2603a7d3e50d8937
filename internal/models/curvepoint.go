package models

import "time"

// CurvePoint represents a single point on a yield curve.
type CurvePoint struct {
	ID              int64      `json:"id" gorm:"primaryKey"`
	CurveID         *int16     `json:"curve_id" gorm:"column:curve_id;type:smallint"`
	AsOfDate        *time.Time `json:"as_of_date"`
	Term            *float64   `json:"term"`
	CurvePointValue *float64   `json:"curve_point_value"`
	CreationDate    time.Time  `json:"creation_date"`
}

// TableName returns the database table name for the CurvePoint model.
func (CurvePoint) TableName() string {
	return "curve_points"
}
