package ldif

import (
	"reflect"
	"testing"
)

// TestEntryOrder tests that type order and value order are preserved.
func TestEntryOrder(t *testing.T) {
	entry := NewEntry()
	entry.Add("objectClass", []byte("top"))
	entry.Add("cn", []byte("Alice"))
	entry.Add("objectClass", []byte("person"))
	entry.Add("mail", []byte("alice@example.com"))

	wantTypes := []string{"objectClass", "cn", "mail"}
	if got := entry.Types(); !reflect.DeepEqual(got, wantTypes) {
		t.Errorf("Types() = %v, want %v", got, wantTypes)
	}

	wantValues := []string{"top", "person"}
	if got := entry.GetStrings("objectClass"); !reflect.DeepEqual(got, wantValues) {
		t.Errorf("GetStrings(objectClass) = %v, want %v", got, wantValues)
	}

	if entry.Len() != 3 {
		t.Errorf("Len() = %d, want 3", entry.Len())
	}
}

// TestEntryCaseSensitiveKeys tests that keys are not normalized.
func TestEntryCaseSensitiveKeys(t *testing.T) {
	entry := NewEntry()
	entry.Add("CN", []byte("Alice"))

	if entry.Has("cn") {
		t.Error("Has(cn) = true for entry with only CN")
	}
	if !entry.Has("CN") {
		t.Error("Has(CN) = false, want true")
	}
}

// TestEntryGetMissing tests lookups of absent attributes.
func TestEntryGetMissing(t *testing.T) {
	entry := NewEntry()

	if got := entry.Get("cn"); got != nil {
		t.Errorf("Get(cn) = %v, want nil", got)
	}
	if got := entry.GetStrings("cn"); got != nil {
		t.Errorf("GetStrings(cn) = %v, want nil", got)
	}
	if entry.Len() != 0 {
		t.Errorf("Len() = %d, want 0", entry.Len())
	}
}
