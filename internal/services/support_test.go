package services

import (
	"errors"
	"testing"

	"github.com/lunaroak/driftfeed/backend/internal/models"
)

func TestFileReportDuplicateRejected(t *testing.T) {
	env := newTestEnv(t)
	reporter := env.createUser(t, "alice")
	author := env.createUser(t, "bob")
	post := env.createPost(t, author.ID, "sunset", "")

	req := models.CreateReportRequest{
		ReportedType: "post",
		ReportedID:   post.ID,
		Reason:       "spam",
	}
	if _, err := env.support.FileReport(reporter.ID, req); err != nil {
		t.Fatalf("first report: %v", err)
	}
	if _, err := env.support.FileReport(reporter.ID, req); !errors.Is(err, ErrDuplicateReport) {
		t.Fatalf("second report: got %v, want ErrDuplicateReport", err)
	}

	// A different reporter may still report the same content.
	if _, err := env.support.FileReport(author.ID, models.CreateReportRequest{
		ReportedType: "post", ReportedID: post.ID, Reason: "other",
	}); err != nil {
		t.Fatalf("other reporter: %v", err)
	}
}

func TestFileReportUnknownContent(t *testing.T) {
	env := newTestEnv(t)
	reporter := env.createUser(t, "alice")

	for _, reportedType := range []string{"post", "user", "comment"} {
		_, err := env.support.FileReport(reporter.ID, models.CreateReportRequest{
			ReportedType: reportedType,
			ReportedID:   9999,
			Reason:       "spam",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: got %v, want ErrNotFound", reportedType, err)
		}
	}
}

func TestTicketOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice")
	intruder := env.createUser(t, "bob")

	ticket, err := env.support.CreateTicket(owner.ID, models.CreateTicketRequest{
		Subject:  "upload fails",
		Message:  "cannot upload videos",
		Category: "bug",
	})
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	if ticket.Status != "open" || ticket.Priority != "medium" {
		t.Errorf("defaults: status=%s priority=%s, want open/medium", ticket.Status, ticket.Priority)
	}

	if _, err := env.support.GetTicket(ticket.ID, intruder.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("intruder view: got %v, want ErrUnauthorized", err)
	}
	if _, err := env.support.GetTicket(ticket.ID, owner.ID); err != nil {
		t.Fatalf("owner view: %v", err)
	}

	tickets, err := env.support.ListTickets(owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 1 {
		t.Errorf("owner sees %d tickets, want 1", len(tickets))
	}
	if tickets, _ := env.support.ListTickets(intruder.ID); len(tickets) != 0 {
		t.Errorf("intruder sees %d tickets, want 0", len(tickets))
	}
}
