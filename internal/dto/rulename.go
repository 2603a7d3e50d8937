package dto

import "github.com/poseidon-markets/refdata-service/internal/models"

// RuleNameDTO is the wire representation of a business rule definition.
type RuleNameDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	JSON        string `json:"json" binding:"required"`
	Template    string `json:"template" binding:"required"`
	SQLStr      string `json:"sql_str" binding:"required"`
	SQLPart     string `json:"sql_part" binding:"required"`
}

// ToModel maps the DTO onto a domain record.
func (d RuleNameDTO) ToModel() models.RuleName {
	return models.RuleName{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		JSON:        d.JSON,
		Template:    d.Template,
		SQLStr:      d.SQLStr,
		SQLPart:     d.SQLPart,
	}
}

// RuleNameFromModel maps a domain record to its wire representation.
func RuleNameFromModel(m models.RuleName) RuleNameDTO {
	return RuleNameDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		JSON:        m.JSON,
		Template:    m.Template,
		SQLStr:      m.SQLStr,
		SQLPart:     m.SQLPart,
	}
}
