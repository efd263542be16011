package handlers_test

import (
	"net/http"
	"testing"
	"yatube/internal/db"
	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func followCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.DB.Model(&models.Follow{}).Count(&count).Error)
	return count
}

func TestFollowRequiresLogin(t *testing.T) {
	r := setupServer(t)
	createUser(t, "leo")

	w := doGET(r, "/follow/", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=/follow/", w.Header().Get("Location"))

	w = doGET(r, "/profile/leo/follow/", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=/profile/leo/follow/", w.Header().Get("Location"))
}

func TestFollowCreatesSubscription(t *testing.T) {
	r := setupServer(t)
	createUser(t, "leo")
	reader := createUser(t, "mia")
	cookies := login(t, r, reader.Username)

	w := doGET(r, "/profile/leo/follow/", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/leo/", w.Header().Get("Location"))
	assert.EqualValues(t, 1, followCount(t))
}

func TestFollowIsIdempotent(t *testing.T) {
	r := setupServer(t)
	createUser(t, "leo")
	reader := createUser(t, "mia")
	cookies := login(t, r, reader.Username)

	doGET(r, "/profile/leo/follow/", cookies)
	doGET(r, "/profile/leo/follow/", cookies)

	assert.EqualValues(t, 1, followCount(t))
}

func TestSelfFollowIsIgnored(t *testing.T) {
	r := setupServer(t)
	user := createUser(t, "leo")
	cookies := login(t, r, user.Username)

	w := doGET(r, "/profile/leo/follow/", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/leo/", w.Header().Get("Location"))
	assert.EqualValues(t, 0, followCount(t))
}

func TestFollowUnknownUser(t *testing.T) {
	r := setupServer(t)
	reader := createUser(t, "mia")
	cookies := login(t, r, reader.Username)

	w := doGET(r, "/profile/nobody/follow/", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnfollowRemovesSubscription(t *testing.T) {
	r := setupServer(t)
	createUser(t, "leo")
	reader := createUser(t, "mia")
	cookies := login(t, r, reader.Username)

	doGET(r, "/profile/leo/follow/", cookies)
	require.EqualValues(t, 1, followCount(t))

	w := doGET(r, "/profile/leo/unfollow/", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/leo/", w.Header().Get("Location"))
	assert.EqualValues(t, 0, followCount(t))
}

func TestUnfollowNonexistentPair(t *testing.T) {
	r := setupServer(t)
	createUser(t, "leo")
	reader := createUser(t, "mia")
	cookies := login(t, r, reader.Username)

	w := doGET(r, "/profile/leo/unfollow/", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollowFeedOnlyShowsFollowedAuthors(t *testing.T) {
	r := setupServer(t)
	followed := createUser(t, "leo")
	ignored := createUser(t, "noah")
	reader := createUser(t, "mia")
	createPost(t, followed, "entry from a followed author", nil)
	createPost(t, ignored, "entry from a stranger", nil)

	cookies := login(t, r, reader.Username)
	doGET(r, "/profile/leo/follow/", cookies)

	w := doGET(r, "/follow/", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "entry from a followed author")
	assert.NotContains(t, w.Body.String(), "entry from a stranger")

	// Another reader with no subscriptions sees an empty feed
	other := createUser(t, "zoe")
	otherCookies := login(t, r, other.Username)
	w = doGET(r, "/follow/", otherCookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "entry from a followed author")
}
