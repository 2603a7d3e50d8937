// Package models contains the persisted domain records for the refdata service.
package models

import "time"

// BidList represents a bid list row in the trading reference store.
type BidList struct {
	BidListID    int64      `json:"bid_list_id" gorm:"primaryKey;column:bid_list_id"`
	Account      string     `json:"account" gorm:"not null"`
	BidType      string     `json:"bid_type" gorm:"not null"`
	BidQuantity  *float64   `json:"bid_quantity"`
	AskQuantity  *float64   `json:"ask_quantity"`
	Bid          *float64   `json:"bid"`
	Ask          *float64   `json:"ask"`
	Benchmark    string     `json:"benchmark" gorm:"not null"`
	BidListDate  *time.Time `json:"bid_list_date"`
	Commentary   string     `json:"commentary" gorm:"size:255;not null"`
	BidSecurity  string     `json:"bid_security" gorm:"not null"`
	BidStatus    string     `json:"bid_status" gorm:"not null"`
	Trader       string     `json:"trader" gorm:"not null"`
	Book         string     `json:"book" gorm:"not null"`
	CreationName string     `json:"creation_name" gorm:"not null"`
	CreationDate *time.Time `json:"creation_date"`
	RevisionName string     `json:"revision_name" gorm:"not null"`
	RevisionDate *time.Time `json:"revision_date"`
	DealName     string     `json:"deal_name" gorm:"not null"`
	DealType     string     `json:"deal_type" gorm:"not null"`
	SourceListID string     `json:"source_list_id" gorm:"column:source_list_id;not null"`
	Side         string     `json:"side" gorm:"not null"`
}

// TableName returns the database table name for the BidList model.
func (BidList) TableName() string {
	return "bid_lists"
}
