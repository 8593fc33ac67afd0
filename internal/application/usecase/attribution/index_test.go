// Package attribution resolves transaction customer snapshots to directory
// parties and aggregates per-party activity.
package attribution

import (
	"testing"

	"github.com/repairdesk/backend/internal/domain/entity"
)

func newCustomer(name, phone string) *entity.Party {
	return entity.NewParty(entity.PartyKindCustomer, name, phone, "", "", "")
}

func TestPartyIndex_Resolve(t *testing.T) {
	ali := newCustomer("Ali Veli", "05551112233")
	mehmet := newCustomer("Mehmet Can", "05559998877")
	ix := NewPartyIndex([]*entity.Party{ali, mehmet})

	t.Run("phone match wins over name match", func(t *testing.T) {
		got := ix.Resolve("Ali Veli", "05559998877")
		if got != mehmet {
			t.Errorf("expected Mehmet Can, got %v", got)
		}
	})

	t.Run("name match applies when the phone is unknown", func(t *testing.T) {
		got := ix.Resolve("Ali Veli", "05550000000")
		if got != ali {
			t.Errorf("expected Ali Veli, got %v", got)
		}
	})

	t.Run("phone formatting does not matter", func(t *testing.T) {
		got := ix.Resolve("", "0555 111 22 33")
		if got != ali {
			t.Errorf("expected Ali Veli, got %v", got)
		}
	})

	t.Run("name matching is case and whitespace insensitive", func(t *testing.T) {
		got := ix.Resolve("  ali veli ", "")
		if got != ali {
			t.Errorf("expected Ali Veli, got %v", got)
		}
	})

	t.Run("no match returns nil", func(t *testing.T) {
		if got := ix.Resolve("Unknown Walkin", "05550000001"); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("empty snapshots resolve to nothing", func(t *testing.T) {
		if got := ix.Resolve("", ""); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestPartyIndex_Collisions(t *testing.T) {
	first := newCustomer("Ali Veli", "05551112233")
	second := newCustomer("Ali Veli", "05551112233")
	ix := NewPartyIndex([]*entity.Party{first, second})

	t.Run("first registered party wins a name collision", func(t *testing.T) {
		if got := ix.Resolve("Ali Veli", ""); got != first {
			t.Errorf("expected the first registered party, got %v", got)
		}
	})

	t.Run("first registered party wins a phone collision", func(t *testing.T) {
		if got := ix.Resolve("", "05551112233"); got != first {
			t.Errorf("expected the first registered party, got %v", got)
		}
	})
}

func TestPartyIndex_BlankKeysAreNotIndexed(t *testing.T) {
	anonymous := newCustomer("   ", "")
	named := newCustomer("Ali Veli", "")
	ix := NewPartyIndex([]*entity.Party{anonymous, named})

	if got := ix.Resolve("", ""); got != nil {
		t.Errorf("expected blank snapshot to resolve to nothing, got %v", got)
	}
	if got := ix.Resolve("Ali Veli", ""); got != named {
		t.Errorf("expected Ali Veli, got %v", got)
	}
}
