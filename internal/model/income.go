// Package model defines the budgeting entities and derived summary types.
package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income is a single income source.
type Income struct {
	id     string
	source string
	amount decimal.Decimal
	notes  string
}

// NewIncome creates an income with a fresh ID.
func NewIncome(source string, amount decimal.Decimal, notes string) *Income {
	return RestoreIncome(uuid.NewString(), source, amount, notes)
}

// RestoreIncome rebuilds a persisted income, keeping its ID.
// An empty id is replaced with a fresh one.
func RestoreIncome(id, source string, amount decimal.Decimal, notes string) *Income {
	if id == "" {
		id = uuid.NewString()
	}
	return &Income{id: id, source: source, amount: amount, notes: notes}
}

func (i *Income) ID() string              { return i.id }
func (i *Income) Source() string          { return i.source }
func (i *Income) Amount() decimal.Decimal { return i.amount }
func (i *Income) Notes() string           { return i.notes }

func (i *Income) SetSource(source string)          { i.source = source }
func (i *Income) SetAmount(amount decimal.Decimal) { i.amount = amount }
func (i *Income) SetNotes(notes string)            { i.notes = notes }

// Clone returns an independent copy with the same ID.
func (i *Income) Clone() *Income {
	c := *i
	return &c
}
