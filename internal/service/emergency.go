package service

import (
	"sort"
	"sync"
	"time"

	"mindlift/internal/apperr"
	"mindlift/internal/model"

	"github.com/google/uuid"
)

var contactTypes = map[string]bool{"call": true, "text": true, "chat": true}

// EmergencyService serves the static crisis-contact and campus-resource
// catalogs and keeps an append-only per-user contact log. Contacts and
// resources share one id namespace so the log can reference either.
type EmergencyService struct {
	mu        sync.RWMutex
	contacts  map[string]*model.EmergencyContact
	resources map[string]*model.CampusResource
	logs      map[string]*model.EmergencyLog
	now       func() time.Time
}

func NewEmergencyService() *EmergencyService {
	s := &EmergencyService{
		contacts:  make(map[string]*model.EmergencyContact),
		resources: make(map[string]*model.CampusResource),
		logs:      make(map[string]*model.EmergencyLog),
		now:       time.Now,
	}
	for _, c := range seedContacts() {
		contact := c
		s.contacts[contact.ID] = &contact
	}
	for _, r := range seedResources() {
		resource := r
		s.resources[resource.ID] = &resource
	}
	return s
}

// Contacts returns all emergency contacts ordered by ascending priority.
func (s *EmergencyService) Contacts() []model.EmergencyContact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.EmergencyContact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func (s *EmergencyService) ContactsByCategory(category string) []model.EmergencyContact {
	var out []model.EmergencyContact
	for _, c := range s.Contacts() {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

func (s *EmergencyService) CrisisContacts() []model.EmergencyContact {
	return s.ContactsByCategory("crisis")
}

// Resources returns all campus resources in alphabetical order.
func (s *EmergencyService) Resources() []model.CampusResource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CampusResource, 0, len(s.resources))
	for _, r := range s.resources {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *EmergencyService) WalkInResources() []model.CampusResource {
	var out []model.CampusResource
	for _, r := range s.Resources() {
		if r.WalkInAvailable {
			out = append(out, r)
		}
	}
	return out
}

// LogContact appends an audit record for a contact (or resource) the user
// reached out to. The target id must exist in one of the catalogs.
func (s *EmergencyService) LogContact(userID, contactID, contactType string) (*model.EmergencyLog, error) {
	if contactID == "" || contactType == "" {
		return nil, apperr.Validation("contact id and type are required")
	}
	if !contactTypes[contactType] {
		return nil, apperr.Validation("contact type must be one of call, text, chat")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contacts[contactID] == nil && s.resources[contactID] == nil {
		return nil, apperr.NotFound("emergency contact")
	}

	log := &model.EmergencyLog{
		ID:          uuid.NewString(),
		UserID:      userID,
		ContactID:   contactID,
		ContactType: contactType,
		Timestamp:   s.now().UTC(),
	}
	s.logs[log.ID] = log
	cp := *log
	return &cp, nil
}

// UserLogs returns the user's contact log, newest first.
func (s *EmergencyService) UserLogs(userID string) []model.EmergencyLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.EmergencyLog{}
	for _, l := range s.logs {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

// UpdateLog sets follow-up fields on an existing log record. The audit core
// (who contacted what, when) stays immutable.
func (s *EmergencyService) UpdateLog(logID string, resolved *bool, notes *string) *model.EmergencyLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.logs[logID]
	if l == nil {
		return nil
	}
	if resolved != nil {
		l.Resolved = *resolved
	}
	if notes != nil {
		l.Notes = *notes
	}
	cp := *l
	return &cp
}

// Stats is computed fresh from the live catalogs on every call.
func (s *EmergencyService) Stats() model.EmergencyStats {
	contacts := s.Contacts()

	stats := model.EmergencyStats{
		TotalContacts:   len(contacts),
		CampusResources: len(s.Resources()),
	}
	for _, c := range contacts {
		if c.Category == "crisis" {
			stats.CrisisContacts++
		}
		if c.Available247 {
			stats.Available247++
		}
	}
	return stats
}
