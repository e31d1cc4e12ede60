package outreach

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/domain/models"
)

// ContactAcknowledgement is shown to visitors once their message is stored.
const ContactAcknowledgement = "Thank you for reaching out. We'll get back to you soon."

// SiteInfo is the static copy of the public landing page.
type SiteInfo struct {
	Name         string                    `json:"name"`
	Headline     string                    `json:"headline"`
	Tagline      string                    `json:"tagline"`
	FundingIntro string                    `json:"funding_intro"`
	Causes       []models.DonationCategory `json:"causes"`
	ContactEmail string                    `json:"contact_email"`
	Phones       []string                  `json:"phones"`
}

var siteInfo = SiteInfo{
	Name:         "Lovely Home",
	Headline:     "We are here to hear",
	Tagline:      "Supporting individuals in homes and orphanages with care, compassion, and community. Join us in making a difference in their lives.",
	FundingIntro: "Your generous contributions help us provide better care, facilities, and opportunities for those in need.",
	ContactEmail: "lovelyhome010@gmail.com",
	Phones:       []string{"8438386610", "9080558409", "7539954582", "9600630208", "9360877990"},
}

// SiteInfo returns the landing page copy and contact details.
func (s *Service) SiteInfo() SiteInfo {
	info := siteInfo
	info.Phones = slices.Clone(siteInfo.Phones)
	info.Causes = slices.Clone(categories)
	return info
}

// ContactRequest is a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact stores the message in the inbox and alerts the coordinator.
func (s *Service) SubmitContact(ctx context.Context, req ContactRequest) (models.ContactMessage, error) {
	msg := s.inbox.Add(models.ContactMessage{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Subject:    strings.TrimSpace(req.Subject),
		Message:    strings.TrimSpace(req.Message),
		ReceivedAt: s.now().UTC(),
	})

	s.logger.Info("contact message received", zap.String("id", msg.ID), zap.String("subject", msg.Subject))
	s.notify(ctx, fmt.Sprintf("New message from %s <%s>: %s", msg.Name, msg.Email, msg.Subject))

	return msg, nil
}

// Inbox lists contact messages, oldest first.
func (s *Service) Inbox() []models.ContactMessage {
	return s.inbox.List()
}

// SessionRequest schedules a speaker session. Role and duration default when
// empty.
type SessionRequest struct {
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role"`
	Topic       string `json:"topic" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// AddSession validates and schedules a new session.
func (s *Service) AddSession(req SessionRequest) (models.SpeakerSession, error) {
	date, err := models.ParseDate(req.Date)
	if err != nil || date.IsZero() {
		return models.SpeakerSession{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	role, err := parseRole(req.Role)
	if err != nil {
		return models.SpeakerSession{}, err
	}

	duration := strings.TrimSpace(req.Duration)
	if duration == "" {
		duration = models.DefaultSessionDuration
	}
	if !slices.Contains(models.SessionDurations, duration) {
		return models.SpeakerSession{}, fmt.Errorf("%w: %q", ErrUnsupportedDuration, duration)
	}

	session := s.sessions.Add(models.SpeakerSession{
		Name:        strings.TrimSpace(req.Name),
		Role:        role,
		Topic:       strings.TrimSpace(req.Topic),
		Date:        date,
		Time:        strings.TrimSpace(req.Time),
		Duration:    duration,
		Description: strings.TrimSpace(req.Description),
	})

	s.logger.Info("session scheduled",
		zap.String("id", session.ID),
		zap.String("topic", session.Topic),
		zap.String("date", session.Date.String()))
	return session, nil
}

func parseRole(value string) (models.SpeakerRole, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return models.RoleMotivationalSpeaker, nil
	}
	for _, r := range models.SpeakerRoles {
		if strings.EqualFold(value, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedRole, value)
}

// Sessions lists scheduled sessions in the order they were added.
func (s *Service) Sessions() []models.SpeakerSession {
	return s.sessions.List()
}

// Schedule groups sessions by date, earliest first. Sessions on the same day
// keep their insertion order.
func (s *Service) Schedule() []models.ScheduleDay {
	sessions := s.sessions.List()
	slices.SortStableFunc(sessions, func(a, b models.SpeakerSession) int {
		return a.Date.Time().Compare(b.Date.Time())
	})

	var days []models.ScheduleDay
	for _, session := range sessions {
		if n := len(days); n > 0 && days[n-1].Date.Equal(session.Date) {
			days[n-1].Sessions = append(days[n-1].Sessions, session)
			continue
		}
		days = append(days, models.ScheduleDay{Date: session.Date, Sessions: []models.SpeakerSession{session}})
	}
	return days
}

// TalentRequest adds a resident to the showcase.
type TalentRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type" binding:"required"`
	Bio          string `json:"bio" binding:"required"`
	Achievements string `json:"achievements"`
}

// AddTalent appends a talent to the showcase.
func (s *Service) AddTalent(req TalentRequest) models.Talent {
	talent := s.talents.Add(models.Talent{
		Name:         strings.TrimSpace(req.Name),
		Type:         strings.TrimSpace(req.Type),
		Bio:          strings.TrimSpace(req.Bio),
		Achievements: strings.TrimSpace(req.Achievements),
	})
	s.logger.Info("talent added", zap.String("id", talent.ID), zap.String("name", talent.Name))
	return talent
}

// Talents lists the showcase in insertion order.
func (s *Service) Talents() []models.Talent {
	return s.talents.List()
}
