package models

// RuleName represents a configurable business rule definition.
type RuleName struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	JSON        string `json:"json" gorm:"column:json;not null"`
	Template    string `json:"template" gorm:"not null"`
	SQLStr      string `json:"sql_str" gorm:"column:sql_str;not null"`
	SQLPart     string `json:"sql_part" gorm:"column:sql_part;not null"`
}

// TableName returns the database table name for the RuleName model.
func (RuleName) TableName() string {
	return "rule_names"
}
