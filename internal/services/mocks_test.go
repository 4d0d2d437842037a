package services

import (
	"time"

	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
)

// Func-field mocks: tests set only the calls they expect, anything else panics.

type mockProfileRepo struct {
	repositories.ProfileRepository

	findIndustryByUserID  func(userID string) (*models.IndustryProfile, error)
	findIndustryByID      func(id string) (*models.IndustryProfile, error)
	findCandidateByUserID func(userID string) (*models.CandidateProfile, error)
	findInstituteByUserID func(userID string) (*models.InstituteProfile, error)
	markIndustryVerified  func(id string, at time.Time) error
	updateIndustry        func(profile *models.IndustryProfile) error
}

func (m *mockProfileRepo) FindIndustryByUserID(userID string) (*models.IndustryProfile, error) {
	return m.findIndustryByUserID(userID)
}

func (m *mockProfileRepo) FindIndustryByID(id string) (*models.IndustryProfile, error) {
	return m.findIndustryByID(id)
}

func (m *mockProfileRepo) FindCandidateByUserID(userID string) (*models.CandidateProfile, error) {
	return m.findCandidateByUserID(userID)
}

func (m *mockProfileRepo) FindInstituteByUserID(userID string) (*models.InstituteProfile, error) {
	return m.findInstituteByUserID(userID)
}

func (m *mockProfileRepo) MarkIndustryVerified(id string, at time.Time) error {
	return m.markIndustryVerified(id, at)
}

func (m *mockProfileRepo) UpdateIndustry(profile *models.IndustryProfile) error {
	return m.updateIndustry(profile)
}

type mockOpportunityRepo struct {
	repositories.OpportunityRepository

	create                     func(opp *models.Opportunity) error
	findByID                   func(id string) (*models.Opportunity, error)
	setActive                  func(id string, active bool) error
	countByIndustryTypeBetween func(industryID string, t models.OpportunityType, from, to time.Time) (int64, error)
}

func (m *mockOpportunityRepo) Create(opp *models.Opportunity) error {
	return m.create(opp)
}

func (m *mockOpportunityRepo) FindByID(id string) (*models.Opportunity, error) {
	return m.findByID(id)
}

func (m *mockOpportunityRepo) SetActive(id string, active bool) error {
	return m.setActive(id, active)
}

func (m *mockOpportunityRepo) CountByIndustryTypeBetween(industryID string, t models.OpportunityType, from, to time.Time) (int64, error) {
	return m.countByIndustryTypeBetween(industryID, t, from, to)
}

type mockMessageRepo struct {
	repositories.MessageRepository

	create             func(msg *models.Message) error
	conversationExists func(a, b string) (bool, error)
	listPartners       func(userID string) ([]repositories.ConversationPartner, error)
}

func (m *mockMessageRepo) Create(msg *models.Message) error {
	return m.create(msg)
}

func (m *mockMessageRepo) ConversationExists(a, b string) (bool, error) {
	return m.conversationExists(a, b)
}

func (m *mockMessageRepo) ListPartners(userID string) ([]repositories.ConversationPartner, error) {
	return m.listPartners(userID)
}

type mockUserRepo struct {
	repositories.UserRepository

	findByID func(id string) (*models.User, error)
}

func (m *mockUserRepo) FindByID(id string) (*models.User, error) {
	return m.findByID(id)
}

type mockApplicationRepo struct {
	repositories.ApplicationRepository

	create          func(app *models.Application) error
	exists          func(opportunityID, candidateID string) (bool, error)
	findByID        func(id string) (*models.Application, error)
	updateStatus    func(id string, status models.ApplicationStatus) error
	listByCandidate func(candidateID string, limit, offset int) ([]models.Application, error)
}

func (m *mockApplicationRepo) Create(app *models.Application) error {
	return m.create(app)
}

func (m *mockApplicationRepo) Exists(opportunityID, candidateID string) (bool, error) {
	return m.exists(opportunityID, candidateID)
}

func (m *mockApplicationRepo) FindByID(id string) (*models.Application, error) {
	return m.findByID(id)
}

func (m *mockApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	return m.updateStatus(id, status)
}

func (m *mockApplicationRepo) ListByCandidate(candidateID string, limit, offset int) ([]models.Application, error) {
	return m.listByCandidate(candidateID, limit, offset)
}

type mockAuditRepo struct {
	repositories.AuditRepository

	entries []models.AuditLog
	fail    error
}

func (m *mockAuditRepo) Create(entry *models.AuditLog) error {
	if m.fail != nil {
		return m.fail
	}
	m.entries = append(m.entries, *entry)
	return nil
}

// recordingNotifier captures Notify calls; the reads fail loudly if used.
type recordingNotifier struct {
	NotificationService

	sent []sentNotification
}

type sentNotification struct {
	UserID string
	Type   string
	Title  string
	Body   string
	Data   map[string]interface{}
}

func (n *recordingNotifier) Notify(userID, notifType, title, body string, data map[string]interface{}) {
	n.sent = append(n.sent, sentNotification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
		Data:   data,
	})
}
