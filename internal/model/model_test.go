package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestExpense_RemainingTracksSpent(t *testing.T) {
	e := NewExpense("Groceries", d("300"), "")
	assert.NotEmpty(t, e.ID())
	assert.True(t, d("300").Equal(e.Remaining()))

	e.AddSpent(d("120.50"))
	assert.True(t, d("179.50").Equal(e.Remaining()))
	assert.False(t, e.Overspent())

	e.AddSpent(d("200"))
	assert.True(t, d("-20.50").Equal(e.Remaining()))
	assert.True(t, e.Overspent())

	e.SetLimit(d("400"))
	assert.True(t, d("79.50").Equal(e.Remaining()))

	e.SetSpentDirectly(decimal.Zero)
	assert.True(t, d("400").Equal(e.Remaining()))
}

func TestSavings_MoreToGoTracksSaved(t *testing.T) {
	s := NewSavings("Holiday", d("1000"), "")
	assert.False(t, s.Reached())

	s.AddSaved(d("999.99"))
	assert.True(t, d("0.01").Equal(s.MoreToGo()))

	s.AddSaved(d("0.01"))
	assert.True(t, s.Reached())
	assert.True(t, s.MoreToGo().IsZero())

	s.SetGoal(d("500"))
	assert.True(t, d("-500").Equal(s.MoreToGo()))
	assert.True(t, s.Reached())
}

func TestRestore_KeepsOrGeneratesID(t *testing.T) {
	e := RestoreExpense("abc", "Rent", d("900"), d("900"), "")
	assert.Equal(t, "abc", e.ID())
	assert.True(t, e.Remaining().IsZero())

	s := RestoreSavings("", "Car", d("10"), d("2"), "")
	assert.NotEmpty(t, s.ID())
	assert.True(t, d("8").Equal(s.MoreToGo()))
}

func TestClone_IsIndependent(t *testing.T) {
	in := NewIncome("Salary", d("2500"), "monthly")
	c := in.Clone()
	c.SetAmount(d("1"))
	assert.Equal(t, in.ID(), c.ID())
	assert.True(t, d("2500").Equal(in.Amount()))

	e := NewExpense("Fuel", d("100"), "")
	ec := e.Clone()
	ec.AddSpent(d("40"))
	assert.True(t, e.Spent().IsZero())
	assert.True(t, d("60").Equal(ec.Remaining()))
}

func TestSummary_Helpers(t *testing.T) {
	s := Summary{
		NetBalance:        d("-5"),
		BudgetUtilization: 125,
		SavingsProgress:   50,
		Series: []Segment{
			{Label: "Spent", Value: d("10")},
			{Label: "Saved", Value: d("2.5")},
		},
	}
	assert.True(t, s.Overspent())
	assert.InDelta(t, 1.25, s.UtilizationRatio(), 1e-9)
	assert.InDelta(t, 0.5, s.ProgressRatio(), 1e-9)
	assert.True(t, d("12.5").Equal(s.SeriesTotal()))
}
