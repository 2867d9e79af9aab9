package service

import (
	"net/http"
	"testing"

	"studyboard/internal/contract"
	"studyboard/internal/domain/entity"
	"studyboard/internal/domain/policy"
	"studyboard/internal/domain/sqlite/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(t *testing.T) (*PostService, *testRepos) {
	repos := newTestRepos(newTestDB(t))
	svc := NewPostService(repos.posts, repos.subjects, policy.NewContentPolicy(), newTestValidate())
	return svc, repos
}

func seedUser(t *testing.T, repos *testRepos, username string, admin bool) *entity.User {
	t.Helper()
	user := &entity.User{
		Username:     username,
		Email:        username + "@x.com",
		PasswordHash: "irrelevant",
		IsAdmin:      admin,
		CreatedAt:    1,
	}
	require.NoError(t, repos.users.Create(user))
	return user
}

func seedPost(t *testing.T, repos *testRepos, author *entity.User, title, content string, subjectID, createdAt int64) *entity.Post {
	t.Helper()
	post := &entity.Post{
		Title:     title,
		Content:   content,
		AuthorID:  author.ID,
		Author:    author.Username,
		SubjectID: subjectID,
		CreatedAt: createdAt,
	}
	require.NoError(t, repos.posts.Create(post))
	return post
}

func seedReply(t *testing.T, repos *testRepos, author *entity.User, postID, createdAt int64) *entity.Reply {
	t.Helper()
	reply := &entity.Reply{
		PostID:    postID,
		Content:   "a reply",
		AuthorID:  author.ID,
		Author:    author.Username,
		CreatedAt: createdAt,
	}
	require.NoError(t, repos.replies.Create(reply))
	return reply
}

func TestListPostsSortNew(t *testing.T) {
	svc, repos := newPostService(t)
	alice := seedUser(t, repos, "alice", false)

	seedPost(t, repos, alice, "oldest", "x", 1, 100)
	seedPost(t, repos, alice, "newest", "x", 1, 300)
	seedPost(t, repos, alice, "middle", "x", 1, 200)

	posts, apierr := svc.ListPosts(&contract.PostQuery{Sort: repository.SortNew})
	require.Nil(t, apierr)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Title)
	assert.Equal(t, "middle", posts[1].Title)
	assert.Equal(t, "oldest", posts[2].Title)

	// Unspecified sort defaults to new.
	posts, apierr = svc.ListPosts(&contract.PostQuery{})
	require.Nil(t, apierr)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Title)
}

func TestListPostsSortTop(t *testing.T) {
	svc, repos := newPostService(t)
	alice := seedUser(t, repos, "alice", false)

	seedPost(t, repos, alice, "quiet", "x", 1, 300)
	busy := seedPost(t, repos, alice, "busy", "x", 1, 100)
	tiedNew := seedPost(t, repos, alice, "tied-new", "x", 1, 250)
	tiedOld := seedPost(t, repos, alice, "tied-old", "x", 1, 200)

	for i := int64(0); i < 3; i++ {
		seedReply(t, repos, alice, busy.ID, 400+i)
	}
	seedReply(t, repos, alice, tiedNew.ID, 500)
	seedReply(t, repos, alice, tiedOld.ID, 501)

	posts, apierr := svc.ListPosts(&contract.PostQuery{Sort: repository.SortTop})
	require.Nil(t, apierr)
	require.Len(t, posts, 4)

	assert.Equal(t, "busy", posts[0].Title)
	assert.Equal(t, int64(3), posts[0].ReplyCount)
	// Equal reply counts fall back to newest first.
	assert.Equal(t, "tied-new", posts[1].Title)
	assert.Equal(t, "tied-old", posts[2].Title)
	assert.Equal(t, "quiet", posts[3].Title)
}

func TestListPostsFilters(t *testing.T) {
	svc, repos := newPostService(t)
	alice := seedUser(t, repos, "alice", false)
	bob := seedUser(t, repos, "bob", false)

	seedPost(t, repos, alice, "Calculus Question", "limits and such", 1, 100)
	seedPost(t, repos, alice, "Go generics", "type parameters", 5, 200)
	seedPost(t, repos, bob, "Physics homework", "about CALCULUS too", 2, 300)

	t.Run("by subject", func(t *testing.T) {
		posts, apierr := svc.ListPosts(&contract.PostQuery{SubjectID: 5})
		require.Nil(t, apierr)
		require.Len(t, posts, 1)
		assert.Equal(t, "Go generics", posts[0].Title)
	})

	t.Run("search is case-insensitive over title and content", func(t *testing.T) {
		posts, apierr := svc.ListPosts(&contract.PostQuery{Search: "calculus"})
		require.Nil(t, apierr)
		require.Len(t, posts, 2)
	})

	t.Run("by user", func(t *testing.T) {
		posts, apierr := svc.ListPosts(&contract.PostQuery{Username: "bob"})
		require.Nil(t, apierr)
		require.Len(t, posts, 1)
		assert.Equal(t, "Physics homework", posts[0].Title)
	})

	t.Run("filters compose", func(t *testing.T) {
		posts, apierr := svc.ListPosts(&contract.PostQuery{Search: "calculus", Username: "alice"})
		require.Nil(t, apierr)
		require.Len(t, posts, 1)
		assert.Equal(t, "Calculus Question", posts[0].Title)
	})
}

func TestCreatePostStampsActor(t *testing.T) {
	svc, repos := newPostService(t)
	alice := seedUser(t, repos, "alice", false)

	post, apierr := svc.CreatePost(alice, &contract.PostRequest{
		Title:     "hello",
		Content:   "world",
		SubjectID: 1,
	})
	require.Nil(t, apierr)
	assert.Equal(t, alice.ID, post.AuthorID)
	assert.Equal(t, "alice", post.Author)
	assert.Equal(t, int64(0), post.ReplyCount)
}

func TestCreatePostUnknownSubject(t *testing.T) {
	svc, repos := newPostService(t)
	alice := seedUser(t, repos, "alice", false)

	_, apierr := svc.CreatePost(alice, &contract.PostRequest{
		Title:     "hello",
		Content:   "world",
		SubjectID: 999,
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestCreatePostValidation(t *testing.T) {
	svc, repos := newPostService(t)
	alice := seedUser(t, repos, "alice", false)

	_, apierr := svc.CreatePost(alice, &contract.PostRequest{Title: "", Content: "", SubjectID: 0})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestDeletePostOwnershipAndCascade(t *testing.T) {
	svc, repos := newPostService(t)
	alice := seedUser(t, repos, "alice", false)
	bob := seedUser(t, repos, "bob", false)
	admin := seedUser(t, repos, "root", true)

	post := seedPost(t, repos, alice, "mine", "x", 1, 100)
	seedReply(t, repos, bob, post.ID, 200)
	seedReply(t, repos, bob, post.ID, 300)

	// A stranger gets 403, and the post survives.
	apierr := svc.DeletePost(bob, post.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())

	// The owner may delete; replies go with the post.
	require.Nil(t, svc.DeletePost(alice, post.ID))

	row, err := repos.posts.FindByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, row)

	orphans, err := repos.replies.FindByPostID(post.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// Deleting again is a 404, not a silent success.
	apierr = svc.DeletePost(alice, post.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	// An admin can delete anyone's post.
	other := seedPost(t, repos, bob, "bobs", "x", 1, 400)
	require.Nil(t, svc.DeletePost(admin, other.ID))
}
