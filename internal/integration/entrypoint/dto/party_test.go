// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"
	"testing"

	"github.com/repairdesk/backend/internal/domain/entity"
)

func TestToImportPartiesResponse(t *testing.T) {
	t.Run("carries the created parties in scan order", func(t *testing.T) {
		created := []*entity.Party{
			entity.NewParty(entity.PartyKindCustomer, "Ali Veli", "05551112233", "", "", ""),
			entity.NewParty(entity.PartyKindCustomer, "Zeynep Demir", "05554443322", "", "", ""),
		}

		response := ToImportPartiesResponse(created, 1)

		if len(response.Created) != 2 {
			t.Fatalf("expected 2 created parties, got %d", len(response.Created))
		}
		if response.Created[0].Name != "Ali Veli" || response.Created[1].Name != "Zeynep Demir" {
			t.Errorf("unexpected order: %s, %s", response.Created[0].Name, response.Created[1].Name)
		}
		if response.Created[0].Debt != "0" || response.Created[0].Balance != "0" {
			t.Errorf("expected fresh parties with zero balances, got debt %s balance %s",
				response.Created[0].Debt, response.Created[0].Balance)
		}
		if response.Skipped != 1 {
			t.Errorf("expected skipped 1, got %d", response.Skipped)
		}
	})

	t.Run("an empty run renders as an empty list", func(t *testing.T) {
		response := ToImportPartiesResponse(nil, 0)

		data, err := json.Marshal(response)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		list, ok := decoded["created"].([]any)
		if !ok {
			t.Fatalf("expected created to be a list, got %v", decoded["created"])
		}
		if len(list) != 0 {
			t.Errorf("expected an empty list, got %d elements", len(list))
		}
	})
}
