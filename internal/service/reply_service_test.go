package service

import (
	"net/http"
	"testing"

	"studyboard/internal/contract"
	"studyboard/internal/domain/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReplyService(t *testing.T) (*ReplyService, *testRepos) {
	repos := newTestRepos(newTestDB(t))
	svc := NewReplyService(repos.replies, repos.posts, policy.NewContentPolicy(), newTestValidate())
	return svc, repos
}

func TestCreateReplyUnknownPost(t *testing.T) {
	svc, repos := newReplyService(t)
	alice := seedUser(t, repos, "alice", false)

	_, apierr := svc.CreateReply(alice, 12345, &contract.ReplyRequest{Content: "hi"})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestRepliesListedInThreadOrder(t *testing.T) {
	svc, repos := newReplyService(t)
	alice := seedUser(t, repos, "alice", false)
	post := seedPost(t, repos, alice, "thread", "x", 1, 100)

	seedReply(t, repos, alice, post.ID, 300)
	seedReply(t, repos, alice, post.ID, 100)
	seedReply(t, repos, alice, post.ID, 200)

	replies, apierr := svc.ListByPost(post.ID)
	require.Nil(t, apierr)
	require.Len(t, replies, 3)

	for i := 1; i < len(replies); i++ {
		assert.LessOrEqual(t, replies[i-1].CreatedAt, replies[i].CreatedAt)
	}
}

func TestListByUsername(t *testing.T) {
	svc, repos := newReplyService(t)
	alice := seedUser(t, repos, "alice", false)
	bob := seedUser(t, repos, "bob", false)
	post := seedPost(t, repos, alice, "thread", "x", 1, 100)

	seedReply(t, repos, alice, post.ID, 200)
	seedReply(t, repos, bob, post.ID, 300)

	replies, apierr := svc.ListByUsername("bob")
	require.Nil(t, apierr)
	require.Len(t, replies, 1)
	assert.Equal(t, "bob", replies[0].Author)

	empty, apierr := svc.ListByUsername("nobody")
	require.Nil(t, apierr)
	assert.Empty(t, empty)
}

func TestDeleteReplyOwnership(t *testing.T) {
	svc, repos := newReplyService(t)
	alice := seedUser(t, repos, "alice", false)
	bob := seedUser(t, repos, "bob", false)
	admin := seedUser(t, repos, "root", true)

	post := seedPost(t, repos, alice, "thread", "x", 1, 100)
	reply := seedReply(t, repos, bob, post.ID, 200)

	apierr := svc.DeleteReply(alice, reply.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())

	require.Nil(t, svc.DeleteReply(bob, reply.ID))

	apierr = svc.DeleteReply(bob, reply.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	other := seedReply(t, repos, bob, post.ID, 300)
	require.Nil(t, svc.DeleteReply(admin, other.ID))
}
