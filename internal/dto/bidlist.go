// Package dto defines the externally-facing data shapes of the HTTP API
// and their mappings to the persisted models. The wire contract stays
// stable independently of the storage schema.
package dto

import (
	"time"

	"github.com/poseidon-markets/refdata-service/internal/models"
)

// BidListDTO is the wire representation of a bid list.
type BidListDTO struct {
	BidListID    int64      `json:"bid_list_id"`
	Account      string     `json:"account" binding:"required"`
	BidType      string     `json:"bid_type" binding:"required"`
	BidQuantity  *float64   `json:"bid_quantity" binding:"omitempty,gte=0"`
	AskQuantity  *float64   `json:"ask_quantity" binding:"omitempty,gte=0"`
	Bid          *float64   `json:"bid" binding:"omitempty,gte=0"`
	Ask          *float64   `json:"ask" binding:"omitempty,gte=0"`
	Benchmark    string     `json:"benchmark" binding:"required"`
	BidListDate  *time.Time `json:"bid_list_date"`
	Commentary   string     `json:"commentary" binding:"required,max=255"`
	BidSecurity  string     `json:"bid_security" binding:"required"`
	BidStatus    string     `json:"bid_status" binding:"required"`
	Trader       string     `json:"trader" binding:"required"`
	Book         string     `json:"book" binding:"required"`
	CreationName string     `json:"creation_name" binding:"required"`
	CreationDate *time.Time `json:"creation_date"`
	RevisionName string     `json:"revision_name" binding:"required"`
	RevisionDate *time.Time `json:"revision_date"`
	DealName     string     `json:"deal_name" binding:"required"`
	DealType     string     `json:"deal_type" binding:"required"`
	SourceListID string     `json:"source_list_id" binding:"required"`
	Side         string     `json:"side" binding:"required"`
}

// ToModel maps the DTO onto a domain record. The id is carried over so
// updates can overwrite in place; on create the store assigns it.
func (d BidListDTO) ToModel() models.BidList {
	return models.BidList{
		BidListID:    d.BidListID,
		Account:      d.Account,
		BidType:      d.BidType,
		BidQuantity:  d.BidQuantity,
		AskQuantity:  d.AskQuantity,
		Bid:          d.Bid,
		Ask:          d.Ask,
		Benchmark:    d.Benchmark,
		BidListDate:  d.BidListDate,
		Commentary:   d.Commentary,
		BidSecurity:  d.BidSecurity,
		BidStatus:    d.BidStatus,
		Trader:       d.Trader,
		Book:         d.Book,
		CreationName: d.CreationName,
		CreationDate: d.CreationDate,
		RevisionName: d.RevisionName,
		RevisionDate: d.RevisionDate,
		DealName:     d.DealName,
		DealType:     d.DealType,
		SourceListID: d.SourceListID,
		Side:         d.Side,
	}
}

// BidListFromModel maps a domain record to its wire representation.
func BidListFromModel(m models.BidList) BidListDTO {
	return BidListDTO{
		BidListID:    m.BidListID,
		Account:      m.Account,
		BidType:      m.BidType,
		BidQuantity:  m.BidQuantity,
		AskQuantity:  m.AskQuantity,
		Bid:          m.Bid,
		Ask:          m.Ask,
		Benchmark:    m.Benchmark,
		BidListDate:  m.BidListDate,
		Commentary:   m.Commentary,
		BidSecurity:  m.BidSecurity,
		BidStatus:    m.BidStatus,
		Trader:       m.Trader,
		Book:         m.Book,
		CreationName: m.CreationName,
		CreationDate: m.CreationDate,
		RevisionName: m.RevisionName,
		RevisionDate: m.RevisionDate,
		DealName:     m.DealName,
		DealType:     m.DealType,
		SourceListID: m.SourceListID,
		Side:         m.Side,
	}
}
