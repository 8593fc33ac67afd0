// Package attribution resolves transaction customer snapshots to directory
// parties and aggregates per-party activity.
package attribution

import (
	"github.com/repairdesk/backend/internal/domain/entity"
	"github.com/repairdesk/backend/internal/domain/valueobject"
)

// PartyIndex indexes parties by normalized phone and normalized name for
// constant-time resolution. Phone matches take priority over name matches.
// When two parties normalize to the same key, the first registered wins.
type PartyIndex struct {
	byPhone map[string]*entity.Party
	byName  map[string]*entity.Party
}

// NewPartyIndex builds an index over the given parties. The slice order is
// the registration order; earlier entries win key collisions.
func NewPartyIndex(parties []*entity.Party) *PartyIndex {
	ix := &PartyIndex{
		byPhone: make(map[string]*entity.Party, len(parties)),
		byName:  make(map[string]*entity.Party, len(parties)),
	}

	for _, p := range parties {
		if phone := valueobject.NormalizePhone(p.Phone); phone != "" {
			if _, exists := ix.byPhone[phone]; !exists {
				ix.byPhone[phone] = p
			}
		}
		if name := valueobject.NormalizeName(p.Name); name != "" {
			if _, exists := ix.byName[name]; !exists {
				ix.byName[name] = p
			}
		}
	}

	return ix
}

// Resolve returns the party owning the given snapshot, or nil when neither
// the phone nor the name matches any directory entry.
func (ix *PartyIndex) Resolve(name, phone string) *entity.Party {
	if key := valueobject.NormalizePhone(phone); key != "" {
		if p, ok := ix.byPhone[key]; ok {
			return p
		}
	}
	if key := valueobject.NormalizeName(name); key != "" {
		if p, ok := ix.byName[key]; ok {
			return p
		}
	}
	return nil
}
