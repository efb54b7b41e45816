package service

import (
	"testing"

	"campusconnect/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	cases := []struct {
		name      string
		actorID   uint64
		actorRole string
		ownerID   uint64
		want      bool
	}{
		{"owner", 1, model.RoleUser, 1, true},
		{"other user", 1, model.RoleUser, 2, false},
		{"other moderator", 1, model.RoleModerator, 2, false},
		{"admin over others", 1, model.RoleAdmin, 2, true},
		{"admin over self", 1, model.RoleAdmin, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanMutate(tc.actorID, tc.actorRole, tc.ownerID))
		})
	}
}
