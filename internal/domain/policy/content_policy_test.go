package policy

import (
	"net/http"
	"testing"

	"studyboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	owner := &entity.User{ID: 1, Username: "alice"}
	stranger := &entity.User{ID: 2, Username: "bob"}
	admin := &entity.User{ID: 3, Username: "root", IsAdmin: true}

	items := []struct {
		name    string
		actor   *entity.User
		ownerID int64
		status  int // 0 = allowed
	}{
		{"owner may mutate own resource", owner, 1, 0},
		{"admin may mutate anyone's resource", admin, 1, 0},
		{"admin may mutate own resource", admin, 3, 0},
		{"stranger is forbidden", stranger, 1, http.StatusForbidden},
		{"absent actor is unauthenticated", nil, 1, http.StatusUnauthorized},
	}

	p := NewContentPolicy()
	for _, item := range items {
		t.Run(item.name, func(t *testing.T) {
			err := p.CanMutate(item.actor, item.ownerID)
			if item.status == 0 {
				assert.Nil(t, err)
				return
			}
			if assert.NotNil(t, err) {
				assert.Equal(t, item.status, err.Code())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	p := NewContentPolicy()

	assert.Nil(t, p.RequireAdmin(&entity.User{ID: 1, IsAdmin: true}))

	err := p.RequireAdmin(&entity.User{ID: 2})
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusForbidden, err.Code())
	}

	err = p.RequireAdmin(nil)
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusUnauthorized, err.Code())
	}
}
