package email

import (
	"fmt"
	"strings"
	"time"
)

// StatusUpdate carries everything the application-status mail needs.
type StatusUpdate struct {
	ApplicantName string
	JobTitle      string
	Company       string
	Status        string // accepted or rejected
	ScheduleURL   string // interview-booking link, accepted only
}

// StatusMessage builds the subject and body for an application decision.
func StatusMessage(u StatusUpdate) (subject, body string) {
	name := u.ApplicantName
	if name == "" {
		name = "there"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hi %s,\n\n", name))

	if u.Status == "accepted" {
		subject = fmt.Sprintf("You're accepted - %s at %s", u.JobTitle, u.Company)
		sb.WriteString(fmt.Sprintf("Good news! Your application for %s at %s has been accepted.\n\n",
			u.JobTitle, u.Company))
		if u.ScheduleURL != "" {
			sb.WriteString("Please pick an interview slot here:\n")
			sb.WriteString(u.ScheduleURL + "\n\n")
		}
	} else {
		subject = fmt.Sprintf("Update on your application - %s at %s", u.JobTitle, u.Company)
		sb.WriteString(fmt.Sprintf("Thank you for applying for %s at %s. "+
			"After careful consideration we have decided not to move forward with your application.\n\n",
			u.JobTitle, u.Company))
		sb.WriteString("We encourage you to apply for future openings that match your skills.\n\n")
	}

	sb.WriteString("Best regards,\n")
	sb.WriteString(u.Company + " Recruiting\n")
	return subject, sb.String()
}

// Confirmation carries everything the interview-confirmation mail needs.
type Confirmation struct {
	ApplicantName string
	JobTitle      string
	Company       string
	ScheduledAt   time.Time
	Notes         string
}

// ConfirmationMessage builds the subject and body for a booked interview.
func ConfirmationMessage(c Confirmation) (subject, body string) {
	subject = fmt.Sprintf("Interview Confirmation - %s at %s", c.JobTitle, c.Company)

	name := c.ApplicantName
	if name == "" {
		name = "there"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hi %s,\n\n", name))
	sb.WriteString("Your interview has been successfully scheduled!\n\n")
	sb.WriteString(fmt.Sprintf("Position: %s\n", c.JobTitle))
	sb.WriteString(fmt.Sprintf("Company: %s\n", c.Company))
	sb.WriteString(fmt.Sprintf("Date: %s\n", c.ScheduledAt.Format("Monday, January 2, 2006")))
	sb.WriteString(fmt.Sprintf("Time: %s\n", c.ScheduledAt.Format("15:04")))
	if c.Notes != "" {
		sb.WriteString(fmt.Sprintf("Notes: %s\n", c.Notes))
	}
	sb.WriteString("\nGood luck!\n")
	return subject, sb.String()
}
