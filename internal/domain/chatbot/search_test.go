package chatbot

import "testing"

func testEntries() []Entry {
	return []Entry{
		{ID: "1", Question: "How do I file a leave request?", Keywords: []string{"leave", "vacation", "absence"}, Active: true},
		{ID: "2", Question: "When is payday?", Keywords: []string{"salary", "payday", "payroll"}, Active: true},
		{ID: "3", Question: "How do I update my family members?", Keywords: []string{"family", "dependents", "spouse"}, Active: true},
		{ID: "4", Question: "Old leave policy", Keywords: []string{"leave"}, Active: false},
	}
}

func TestSearchRanksKeywordHitsFirst(t *testing.T) {
	got := Search(testEntries(), "how do I request vacation leave")
	if len(got) == 0 {
		t.Fatalf("expected matches, got none")
	}
	if got[0].Entry.ID != "1" {
		t.Fatalf("expected entry 1 first, got %s", got[0].Entry.ID)
	}
}

func TestSearchIgnoresInactiveEntries(t *testing.T) {
	for _, m := range Search(testEntries(), "leave") {
		if m.Entry.ID == "4" {
			t.Fatalf("inactive entry returned")
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	got := Search(testEntries(), "PAYDAY")
	if len(got) != 1 || got[0].Entry.ID != "2" {
		t.Fatalf("expected entry 2, got %+v", got)
	}
}

func TestSearchNoOverlapReturnsNothing(t *testing.T) {
	if got := Search(testEntries(), "unrelated gibberish"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	if got := Search(testEntries(), "   "); got != nil {
		t.Fatalf("expected nil for empty query")
	}
}
