package dto

import (
	"time"

	"github.com/poseidon-markets/refdata-service/internal/models"
)

// TradeDTO is the wire representation of a trade.
type TradeDTO struct {
	TradeID       int64      `json:"trade_id"`
	Account       string     `json:"account" binding:"required"`
	AccountType   string     `json:"account_type" binding:"required"`
	BuyQuantity   *float64   `json:"buy_quantity" binding:"omitempty,gte=0"`
	SellQuantity  *float64   `json:"sell_quantity" binding:"omitempty,gte=0"`
	BuyPrice      *float64   `json:"buy_price" binding:"omitempty,gte=0"`
	SellPrice     *float64   `json:"sell_price" binding:"omitempty,gte=0"`
	TradeDate     *time.Time `json:"trade_date"`
	TradeSecurity string     `json:"trade_security" binding:"required"`
	TradeStatus   string     `json:"trade_status" binding:"required"`
	Trader        string     `json:"trader" binding:"required"`
	Benchmark     string     `json:"benchmark" binding:"required"`
	Book          string     `json:"book" binding:"required"`
	CreationName  string     `json:"creation_name" binding:"required"`
	CreationDate  *time.Time `json:"creation_date"`
	RevisionName  string     `json:"revision_name" binding:"required"`
	RevisionDate  *time.Time `json:"revision_date"`
	DealName      string     `json:"deal_name" binding:"required"`
	DealType      string     `json:"deal_type" binding:"required"`
	SourceListID  string     `json:"source_list_id" binding:"required"`
	Side          string     `json:"side" binding:"required"`
}

// ToModel maps the DTO onto a domain record.
func (d TradeDTO) ToModel() models.Trade {
	return models.Trade{
		TradeID:       d.TradeID,
		Account:       d.Account,
		AccountType:   d.AccountType,
		BuyQuantity:   d.BuyQuantity,
		SellQuantity:  d.SellQuantity,
		BuyPrice:      d.BuyPrice,
		SellPrice:     d.SellPrice,
		TradeDate:     d.TradeDate,
		TradeSecurity: d.TradeSecurity,
		TradeStatus:   d.TradeStatus,
		Trader:        d.Trader,
		Benchmark:     d.Benchmark,
		Book:          d.Book,
		CreationName:  d.CreationName,
		CreationDate:  d.CreationDate,
		RevisionName:  d.RevisionName,
		RevisionDate:  d.RevisionDate,
		DealName:      d.DealName,
		DealType:      d.DealType,
		SourceListID:  d.SourceListID,
		Side:          d.Side,
	}
}

// TradeFromModel maps a domain record to its wire representation.
func TradeFromModel(m models.Trade) TradeDTO {
	return TradeDTO{
		TradeID:       m.TradeID,
		Account:       m.Account,
		AccountType:   m.AccountType,
		BuyQuantity:   m.BuyQuantity,
		SellQuantity:  m.SellQuantity,
		BuyPrice:      m.BuyPrice,
		SellPrice:     m.SellPrice,
		TradeDate:     m.TradeDate,
		TradeSecurity: m.TradeSecurity,
		TradeStatus:   m.TradeStatus,
		Trader:        m.Trader,
		Benchmark:     m.Benchmark,
		Book:          m.Book,
		CreationName:  m.CreationName,
		CreationDate:  m.CreationDate,
		RevisionName:  m.RevisionName,
		RevisionDate:  m.RevisionDate,
		DealName:      m.DealName,
		DealType:      m.DealType,
		SourceListID:  m.SourceListID,
		Side:          m.Side,
	}
}
