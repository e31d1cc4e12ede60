package models

import "time"

// SpeakerRole enumerates who leads a scheduled session.
type SpeakerRole string

const (
	RoleMotivationalSpeaker SpeakerRole = "Motivational Speaker"
	RoleMentor              SpeakerRole = "Mentor"
	RolePsychologist        SpeakerRole = "Psychologist"
	RoleCoach               SpeakerRole = "Coach"
	RoleOther               SpeakerRole = "Other"
)

// SpeakerRoles lists the roles offered by the schedule form.
var SpeakerRoles = []SpeakerRole{
	RoleMotivationalSpeaker,
	RoleMentor,
	RolePsychologist,
	RoleCoach,
	RoleOther,
}

// SessionDurations lists the durations offered by the schedule form.
var SessionDurations = []string{"30 min", "60 min", "90 min", "120 min"}

// DefaultSessionDuration is used when a session is added without one.
const DefaultSessionDuration = "60 min"

// SpeakerSession is a talk or workshop held for residents.
type SpeakerSession struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Role        SpeakerRole `json:"role"`
	Topic       string      `json:"topic"`
	Date        Date        `json:"date"`
	Time        string      `json:"time"`
	Duration    string      `json:"duration"`
	Description string      `json:"description"`
}

// ScheduleDay groups the sessions held on one date.
type ScheduleDay struct {
	Date     Date             `json:"date"`
	Sessions []SpeakerSession `json:"sessions"`
}

// Talent is a resident showcased on the public site.
type Talent struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Bio          string `json:"bio"`
	Achievements string `json:"achievements,omitempty"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Currency is a donation currency offered by the funding form.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// DonationCategory is a cause a donation can be directed to.
type DonationCategory struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// DonationReceipt acknowledges a simulated donation.
type DonationReceipt struct {
	Reference string    `json:"reference"`
	Amount    int       `json:"amount"`
	Currency  Currency  `json:"currency"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
