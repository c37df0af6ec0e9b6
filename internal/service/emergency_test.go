package service

import (
	"testing"
	"time"

	"mindlift/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactsOrderedByPriority(t *testing.T) {
	s := NewEmergencyService()
	contacts := s.Contacts()
	require.NotEmpty(t, contacts)
	for i := 1; i < len(contacts); i++ {
		assert.LessOrEqual(t, contacts[i-1].Priority, contacts[i].Priority)
	}
	for _, c := range contacts {
		assert.NotEmpty(t, c.Description, "contact %s has no description", c.ID)
	}
}

func TestResourcesAlphabetical(t *testing.T) {
	s := NewEmergencyService()
	resources := s.Resources()
	require.NotEmpty(t, resources)
	for i := 1; i < len(resources); i++ {
		assert.LessOrEqual(t, resources[i-1].Name, resources[i].Name)
	}
}

func TestContactFilters(t *testing.T) {
	s := NewEmergencyService()

	for _, c := range s.CrisisContacts() {
		assert.Equal(t, "crisis", c.Category)
	}
	for _, c := range s.ContactsByCategory("campus") {
		assert.Equal(t, "campus", c.Category)
	}
	for _, r := range s.WalkInResources() {
		assert.True(t, r.WalkInAvailable)
	}
}

func TestLogContactValidation(t *testing.T) {
	s := NewEmergencyService()

	_, err := s.LogContact("u1", "contact-1", "carrier-pigeon")
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = s.LogContact("u1", "", "call")
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = s.LogContact("u1", "contact-999", "call")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLogContactAcceptsBothNamespaces(t *testing.T) {
	s := NewEmergencyService()

	log, err := s.LogContact("u1", "contact-1", "call")
	require.NoError(t, err)
	assert.Equal(t, "contact-1", log.ContactID)

	// resource ids flow through the same logging path
	log, err = s.LogContact("u1", "resource-2", "chat")
	require.NoError(t, err)
	assert.Equal(t, "resource-2", log.ContactID)
}

func TestUserLogsNewestFirst(t *testing.T) {
	s := NewEmergencyService()
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	s.LogContact("u1", "contact-1", "call")
	s.LogContact("u1", "contact-2", "text")
	s.LogContact("u2", "contact-1", "call")

	logs := s.UserLogs("u1")
	require.Len(t, logs, 2)
	assert.Equal(t, "contact-2", logs[0].ContactID)
	assert.True(t, logs[0].Timestamp.After(logs[1].Timestamp))
}

func TestUpdateLogFollowUpFields(t *testing.T) {
	s := NewEmergencyService()
	log, err := s.LogContact("u1", "contact-1", "call")
	require.NoError(t, err)

	resolved := true
	notes := "spoke with counselor"
	updated := s.UpdateLog(log.ID, &resolved, &notes)
	require.NotNil(t, updated)
	assert.True(t, updated.Resolved)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, log.ContactID, updated.ContactID, "audit core unchanged")

	assert.Nil(t, s.UpdateLog("missing", &resolved, nil))
}

func TestStatsComputedFromCatalog(t *testing.T) {
	s := NewEmergencyService()
	stats := s.Stats()

	assert.Equal(t, 7, stats.TotalContacts)
	assert.Equal(t, 4, stats.CrisisContacts)
	assert.Equal(t, 5, stats.CampusResources)
	assert.Equal(t, 6, stats.Available247)
}
