package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessage_Accepted(t *testing.T) {
	subject, body := StatusMessage(StatusUpdate{
		ApplicantName: "Ada",
		JobTitle:      "Backend Developer",
		Company:       "Acme",
		Status:        "accepted",
		ScheduleURL:   "https://jobs.example.com/schedule/abc",
	})

	assert.Contains(t, subject, "accepted")
	assert.Contains(t, body, "Hi Ada")
	assert.Contains(t, body, "has been accepted")
	assert.Contains(t, body, "https://jobs.example.com/schedule/abc")
}

func TestStatusMessage_Rejected(t *testing.T) {
	subject, body := StatusMessage(StatusUpdate{
		ApplicantName: "Ada",
		JobTitle:      "Backend Developer",
		Company:       "Acme",
		Status:        "rejected",
	})

	assert.Contains(t, subject, "Update on your application")
	assert.Contains(t, body, "not to move forward")
	assert.NotContains(t, body, "interview slot")
}

func TestStatusMessage_MissingName(t *testing.T) {
	_, body := StatusMessage(StatusUpdate{Status: "rejected"})
	assert.Contains(t, body, "Hi there")
}

func TestConfirmationMessage(t *testing.T) {
	at := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	subject, body := ConfirmationMessage(Confirmation{
		ApplicantName: "Ada",
		JobTitle:      "Backend Developer",
		Company:       "Acme",
		ScheduledAt:   at,
		Notes:         "Bring your laptop",
	})

	assert.Equal(t, "Interview Confirmation - Backend Developer at Acme", subject)
	assert.Contains(t, body, "Monday, September 14, 2026")
	assert.Contains(t, body, "10:00")
	assert.Contains(t, body, "Bring your laptop")
}

func TestSender_DisabledDropsSilently(t *testing.T) {
	s := NewSender(Config{})
	assert.False(t, s.Enabled())
	assert.NoError(t, s.Send("a@example.com", "subject", "body"))
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("from@example.com", "to@example.com", "Hello", "Body"))
	assert.Contains(t, msg, "From: from@example.com\r\n")
	assert.Contains(t, msg, "To: to@example.com\r\n")
	assert.Contains(t, msg, "Subject: Hello\r\n")
	assert.Contains(t, msg, "\r\n\r\nBody")
}
