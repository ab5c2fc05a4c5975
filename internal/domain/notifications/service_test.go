package notifications

import (
	"context"
	"errors"
	"testing"
)

type fakeStore struct {
	created []Notification
	email   string
	emailErr error
}

func (f *fakeStore) CreateNotification(_ context.Context, userID, ntype, title, body string) error {
	f.created = append(f.created, Notification{UserID: userID, Type: ntype, Title: title, Body: body})
	return nil
}

func (f *fakeStore) UserEmail(context.Context, string) (string, error) { return f.email, f.emailErr }
func (f *fakeStore) ListNotifications(context.Context, string, int, int) ([]Notification, error) {
	return nil, nil
}
func (f *fakeStore) CountUnread(context.Context, string) (int, error) { return 0, nil }
func (f *fakeStore) MarkRead(context.Context, string, string) error   { return nil }
func (f *fakeStore) MarkAllRead(context.Context, string) error        { return nil }

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(_ context.Context, _, to, _, _ string) error {
	f.sent = append(f.sent, to)
	return f.err
}

func TestNotifySendsEmailCopy(t *testing.T) {
	store := &fakeStore{email: "teacher@school.example"}
	mailer := &fakeMailer{}
	svc := New(store, mailer, "hr@school.example")

	if err := svc.Notify(context.Background(), "u1", TypeLeaveApproved, "Leave approved", "Your leave was approved."); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected 1 stored notification, got %d", len(store.created))
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "teacher@school.example" {
		t.Fatalf("expected email to teacher@school.example, got %v", mailer.sent)
	}
}

func TestNotifyWithoutMailerStillStores(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, nil, "")

	if err := svc.Notify(context.Background(), "u1", TypeReviewAssigned, "t", "b"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected stored notification")
	}
}

func TestNotifyEmailFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{email: "x@school.example"}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := New(store, mailer, "")

	if err := svc.Notify(context.Background(), "u1", TypeLeaveRejected, "t", "b"); err != nil {
		t.Fatalf("email failure should not fail Notify: %v", err)
	}
}

func TestNotifyEmailLookupFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{emailErr: errors.New("no row")}
	mailer := &fakeMailer{}
	svc := New(store, mailer, "")

	if err := svc.Notify(context.Background(), "u1", TypeLeaveSubmitted, "t", "b"); err != nil {
		t.Fatalf("lookup failure should not fail Notify: %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("no email should be sent when lookup fails")
	}
}
