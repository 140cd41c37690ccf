package service

import (
	"testing"

	"github.com/MKhiriev/course-api/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	identity := func(id int64) models.Identity {
		return models.Identity{Account: models.Account{ID: id}}
	}

	tests := []struct {
		name     string
		identity models.Identity
		ownerID  int64
		want     Decision
	}{
		{name: "owner", identity: identity(1), ownerID: 1, want: Allow},
		{name: "other account", identity: identity(2), ownerID: 1, want: Deny},
		{name: "zero ids match", identity: models.Identity{}, ownerID: 0, want: Allow},
		{name: "zero identity, real owner", identity: models.Identity{}, ownerID: 1, want: Deny},
		{name: "negative ids match", identity: identity(-3), ownerID: -3, want: Allow},
		{name: "large ids", identity: identity(1 << 40), ownerID: 1 << 40, want: Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.identity, tt.ownerID))
		})
	}
}

func TestAuthorize_Deterministic(t *testing.T) {
	identity := models.Identity{Account: models.Account{ID: 3}}
	for ownerID := int64(1); ownerID <= 5; ownerID++ {
		first := Authorize(identity, ownerID)
		for range 3 {
			assert.Equal(t, first, Authorize(identity, ownerID))
		}
		assert.Equal(t, ownerID == 3, first == Allow)
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "deny", Deny.String())
}
