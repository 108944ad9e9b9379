package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpendSequence(t *testing.T) {
	l := newFunded(t, "1000")
	e, err := l.AddExpense("Food", "100", "")
	require.NoError(t, err)

	p, err := RecordSpend(e, "50")
	require.NoError(t, err)
	assert.True(t, p.Applied)
	assert.True(t, dec("50").Equal(e.Remaining()))

	p, err = RecordSpend(e, "80")
	require.NoError(t, err)
	assert.True(t, p.NeedsConfirmation)
	assert.False(t, p.Applied)
	assert.True(t, dec("30").Equal(p.Overage))
	assert.True(t, dec("50").Equal(p.Remaining))
	assert.True(t, dec("50").Equal(e.Spent()), "declining leaves spent unchanged")

	p = ConfirmSpend(e, p)
	assert.True(t, p.Applied)
	assert.True(t, dec("130").Equal(e.Spent()))
	assert.True(t, dec("-30").Equal(e.Remaining()))

	// Confirming twice does not double-apply.
	ConfirmSpend(e, p)
	assert.True(t, dec("130").Equal(e.Spent()))
}

func TestProposeSpend_DoesNotMutate(t *testing.T) {
	l := newFunded(t, "1000")
	e, err := l.AddExpense("Food", "100", "")
	require.NoError(t, err)

	p, err := ProposeSpend(e, "100")
	require.NoError(t, err)
	assert.False(t, p.NeedsConfirmation, "spending exactly the remainder needs no confirmation")
	assert.True(t, e.Spent().IsZero())
}

func TestSpend_RejectsBadAmounts(t *testing.T) {
	l := newFunded(t, "1000")
	e, err := l.AddExpense("Food", "100", "")
	require.NoError(t, err)

	for _, amt := range []string{"-1", "ten", ""} {
		_, err := RecordSpend(e, amt)
		assert.ErrorIs(t, err, ErrValidation, "amount %q", amt)
	}
	assert.True(t, e.Spent().IsZero())
}

func TestRemainingInvariant(t *testing.T) {
	l := newFunded(t, "1000")
	e, err := l.AddExpense("Food", "100", "")
	require.NoError(t, err)

	for _, amt := range []string{"10", "0", "33.33", "90", "0.01", "250"} {
		p, err := RecordSpend(e, amt)
		require.NoError(t, err)
		if p.NeedsConfirmation {
			ConfirmSpend(e, p)
		}
		assert.True(t, e.Limit().Sub(e.Spent()).Equal(e.Remaining()))
	}
}

func TestSave_ConfirmPolicy(t *testing.T) {
	l := newFunded(t, "1000")
	s, err := l.AddSavings("Trip", "300", "")
	require.NoError(t, err)

	p, err := l.RecordSave(s, "100")
	require.NoError(t, err)
	assert.True(t, p.Applied)
	assert.True(t, dec("200").Equal(s.MoreToGo()))

	p, err = l.RecordSave(s, "250")
	require.NoError(t, err)
	require.True(t, p.NeedsConfirmation)
	assert.True(t, dec("50").Equal(p.Overage))

	ConfirmSave(s, p)
	assert.True(t, dec("350").Equal(s.Saved()))
	assert.True(t, dec("-50").Equal(s.MoreToGo()))
	assert.True(t, s.Reached())
	assert.True(t, s.Goal().Sub(s.Saved()).Equal(s.MoreToGo()))
}

func TestSave_RejectPolicy(t *testing.T) {
	l := newFunded(t, "1000")
	l.SetPolicy(SavingsReject)
	s, err := l.AddSavings("Trip", "300", "")
	require.NoError(t, err)

	_, err = l.RecordSave(s, "300")
	require.NoError(t, err)

	_, err = l.RecordSave(s, "0.01")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverGoal)
	assert.True(t, IsUserError(err))
	assert.True(t, dec("300").Equal(s.Saved()))
}
