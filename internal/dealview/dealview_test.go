package dealview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookswap-client/internal/models"
)

func newDeal(status models.DealStatus) models.Deal {
	return models.Deal{
		ID:              10,
		SenderID:        1,
		RecipientID:     2,
		RecipientBookID: 5,
		Status:          status,
		Place:           "Центральная библиотека",
	}
}

func TestProjectRolesExclusive(t *testing.T) {
	deal := newDeal(models.DealStatusCreated)

	sender := Project(deal, 1)
	assert.True(t, sender.IsSender)
	assert.False(t, sender.IsRecipient)

	recipient := Project(deal, 2)
	assert.False(t, recipient.IsSender)
	assert.True(t, recipient.IsRecipient)

	third := Project(deal, 3)
	assert.False(t, third.IsSender)
	assert.False(t, third.IsRecipient)
}

func TestProjectCreatedAsSender(t *testing.T) {
	view := Project(newDeal(models.DealStatusCreated), 1)

	assert.True(t, view.CanCancel)
	assert.False(t, view.CanAccept)
	assert.False(t, view.CanReject)
	assert.False(t, view.CanComplete)
	assert.False(t, view.ContactVisible)
	assert.Empty(t, view.Contact)
}

func TestProjectCreatedAsRecipient(t *testing.T) {
	view := Project(newDeal(models.DealStatusCreated), 2)

	assert.True(t, view.CanAccept)
	assert.True(t, view.CanReject)
	assert.False(t, view.CanCancel)
	assert.False(t, view.CanComplete)
	assert.False(t, view.ContactVisible)
}

func TestProjectAgreedShowsCounterpartyContact(t *testing.T) {
	deal := newDeal(models.DealStatusAgreed)
	deal.SenderBookID = 7
	deal.SenderContact = "sender@example.com"
	deal.RecipientContact = "recipient@example.com"

	sender := Project(deal, 1)
	assert.True(t, sender.CanComplete)
	assert.False(t, sender.CanAccept)
	assert.False(t, sender.CanCancel)
	assert.True(t, sender.ContactVisible)
	assert.Equal(t, "recipient@example.com", sender.Contact)

	recipient := Project(deal, 2)
	assert.True(t, recipient.CanComplete)
	assert.True(t, recipient.ContactVisible)
	assert.Equal(t, "sender@example.com", recipient.Contact)
}

func TestProjectAgreedHidesContactFromThirdParty(t *testing.T) {
	deal := newDeal(models.DealStatusAgreed)
	deal.SenderContact = "sender@example.com"
	deal.RecipientContact = "recipient@example.com"

	view := Project(deal, 99)
	assert.False(t, view.CanComplete)
	assert.False(t, view.ContactVisible)
	assert.Empty(t, view.Contact)
}

func TestProjectTerminalStatusesDisableEverything(t *testing.T) {
	statuses := []models.DealStatus{
		models.DealStatusCompleted,
		models.DealStatusCancelled,
		models.DealStatusRejected,
	}

	for _, status := range statuses {
		deal := newDeal(status)
		deal.SenderContact = "sender@example.com"
		deal.RecipientContact = "recipient@example.com"

		for _, viewerID := range []int{1, 2, 3} {
			view := Project(deal, viewerID)
			assert.False(t, view.CanAccept, "status %s, viewer %d", status, viewerID)
			assert.False(t, view.CanReject, "status %s, viewer %d", status, viewerID)
			assert.False(t, view.CanCancel, "status %s, viewer %d", status, viewerID)
			assert.False(t, view.CanComplete, "status %s, viewer %d", status, viewerID)
			assert.False(t, view.ContactVisible, "status %s, viewer %d", status, viewerID)
			assert.Empty(t, view.Contact, "status %s, viewer %d", status, viewerID)
		}
	}
}

func TestProjectKeepsSummaryForEveryone(t *testing.T) {
	view := Project(newDeal(models.DealStatusCreated), 99)

	assert.Equal(t, models.DealStatusCreated, view.Status)
	assert.Equal(t, "Центральная библиотека", view.Place)
}

func TestValidateAccept(t *testing.T) {
	require.ErrorIs(t, ValidateAccept(0), ErrNoBookSelected)
	require.NoError(t, ValidateAccept(5))
}
