package family

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	members []Member
	owner   string
	nextID  int
	fail    bool
}

func (f *fakeStore) OwnerName(ctx context.Context, employeeID string) (string, error) {
	if f.fail {
		return "", errors.New("store unavailable")
	}
	return f.owner, nil
}

func (f *fakeStore) ListMembers(ctx context.Context, employeeID string) ([]Member, error) {
	if f.fail {
		return nil, errors.New("store unavailable")
	}
	return f.members, nil
}

func (f *fakeStore) AddMember(ctx context.Context, employeeID string, member Member) (string, error) {
	f.nextID++
	member.ID = string(rune('0' + f.nextID))
	f.members = append(f.members, member)
	return member.ID, nil
}

func (f *fakeStore) UpdateMember(ctx context.Context, employeeID, memberID string, member Member) error {
	for i := range f.members {
		if f.members[i].ID == memberID {
			member.ID = memberID
			f.members[i] = member
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeStore) DeleteMember(ctx context.Context, employeeID, memberID string) error {
	for i := range f.members {
		if f.members[i].ID == memberID {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func testService(store *fakeStore) *Service {
	svc := NewService(store)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestAddRequiredFieldGate(t *testing.T) {
	store := &fakeStore{}
	svc := testService(store)

	_, issues, err := svc.Add(context.Background(), "e1", Member{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := map[string]bool{}
	for _, issue := range issues {
		fields[issue.Field] = true
	}
	if !fields["name"] || !fields["type"] {
		t.Fatalf("both name and type issues must be reported together, got %+v", issues)
	}
	if len(store.members) != 0 {
		t.Fatal("no write may be issued when validation fails")
	}
}

func TestSpouseCap(t *testing.T) {
	store := &fakeStore{members: []Member{{ID: "1", Type: TypeSpouse, Name: "Maria Reyes"}}}
	svc := testService(store)

	_, issues, err := svc.Add(context.Background(), "e1", Member{Type: TypeSpouse, Name: "Clara Santos"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 1 || issues[0].Reason != "Only one spouse can be added." {
		t.Fatalf("expected spouse cap issue, got %+v", issues)
	}
}

func TestParentCap(t *testing.T) {
	store := &fakeStore{members: []Member{
		{ID: "1", Type: TypeParent, Name: "Jose Reyes"},
		{ID: "2", Type: TypeParent, Name: "Lita Reyes"},
	}}
	svc := testService(store)

	_, issues, err := svc.Add(context.Background(), "e1", Member{Type: TypeParent, Name: "Pedro Reyes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 1 || issues[0].Reason != "Only two parents can be added." {
		t.Fatalf("expected parent cap issue, got %+v", issues)
	}
}

func TestChildrenUncapped(t *testing.T) {
	store := &fakeStore{members: []Member{
		{ID: "1", Type: TypeChild, Name: "Ana Reyes"},
		{ID: "2", Type: TypeChild, Name: "Bea Reyes"},
	}}
	svc := testService(store)

	id, issues, err := svc.Add(context.Background(), "e1", Member{Type: TypeChild, Name: "Carlo Reyes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("third child must be accepted, got %+v", issues)
	}
	if id == "" {
		t.Fatal("expected an assigned ID")
	}
}

func TestAddRejectsOwnName(t *testing.T) {
	store := &fakeStore{owner: "Ana Reyes"}
	svc := testService(store)

	_, issues, err := svc.Add(context.Background(), "e1", Member{Type: TypeSpouse, Name: "ana  reyes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 1 || issues[0].Field != "name" {
		t.Fatalf("expected own-name rejection, got %+v", issues)
	}
	if len(store.members) != 0 {
		t.Fatal("no write may be issued when validation fails")
	}

	// A different person with the same surname is fine.
	if _, issues, err := svc.Add(context.Background(), "e1", Member{Type: TypeSpouse, Name: "Maria Reyes"}); err != nil || len(issues) != 0 {
		t.Fatalf("distinct name must pass, got issues=%+v err=%v", issues, err)
	}
}

func TestUpdateRejectsOwnName(t *testing.T) {
	store := &fakeStore{
		owner:   "Ana Reyes",
		members: []Member{{ID: "1", Type: TypeChild, Name: "Bea Reyes"}},
	}
	svc := testService(store)

	issues, err := svc.Update(context.Background(), "e1", "1", Member{Type: TypeChild, Name: "Ana Reyes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 1 || issues[0].Field != "name" {
		t.Fatalf("expected own-name rejection, got %+v", issues)
	}
	if store.members[0].Name != "Bea Reyes" {
		t.Fatal("rejected update must not modify the stored member")
	}
}

func TestUpdateDoesNotCountSelf(t *testing.T) {
	store := &fakeStore{members: []Member{{ID: "1", Type: TypeSpouse, Name: "Maria Reyes"}}}
	svc := testService(store)

	// Renaming the existing spouse keeps the collection at one spouse.
	issues, err := svc.Update(context.Background(), "e1", "1", Member{Type: TypeSpouse, Name: "Maria Cruz"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("self-update must not trip the cap, got %+v", issues)
	}
}

func TestAddSurfacesStoreFailure(t *testing.T) {
	store := &fakeStore{fail: true}
	svc := testService(store)

	_, issues, err := svc.Add(context.Background(), "e1", Member{Type: TypeChild, Name: "Ana Reyes"})
	if err == nil {
		t.Fatal("expected store error to surface")
	}
	if issues != nil {
		t.Fatalf("store failure is not a validation issue: %+v", issues)
	}
}

func TestDeleteMissing(t *testing.T) {
	store := &fakeStore{}
	svc := testService(store)

	if err := svc.Delete(context.Background(), "e1", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
