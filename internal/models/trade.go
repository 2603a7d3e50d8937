package models

import "time"

// Trade represents an executed or pending trade row.
type Trade struct {
	TradeID       int64      `json:"trade_id" gorm:"primaryKey;column:trade_id"`
	Account       string     `json:"account" gorm:"not null"`
	AccountType   string     `json:"account_type" gorm:"not null"`
	BuyQuantity   *float64   `json:"buy_quantity"`
	SellQuantity  *float64   `json:"sell_quantity"`
	BuyPrice      *float64   `json:"buy_price"`
	SellPrice     *float64   `json:"sell_price"`
	TradeDate     *time.Time `json:"trade_date"`
	TradeSecurity string     `json:"trade_security" gorm:"not null"`
	TradeStatus   string     `json:"trade_status" gorm:"not null"`
	Trader        string     `json:"trader" gorm:"not null"`
	Benchmark     string     `json:"benchmark" gorm:"not null"`
	Book          string     `json:"book" gorm:"not null"`
	CreationName  string     `json:"creation_name" gorm:"not null"`
	CreationDate  *time.Time `json:"creation_date"`
	RevisionName  string     `json:"revision_name" gorm:"not null"`
	RevisionDate  *time.Time `json:"revision_date"`
	DealName      string     `json:"deal_name" gorm:"not null"`
	DealType      string     `json:"deal_type" gorm:"not null"`
	SourceListID  string     `json:"source_list_id" gorm:"column:source_list_id;not null"`
	Side          string     `json:"side" gorm:"not null"`
}

// TableName returns the database table name for the Trade model.
func (Trade) TableName() string {
	return "trades"
}
