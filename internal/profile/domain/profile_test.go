package domain

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/redditage/pkg/redditsdk"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAccountAge(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("400 days is one year one month", func(t *testing.T) {
		created := now.Add(-400 * 24 * time.Hour)
		require.Equal(t, int64(400), AgeDays(created, now))
		require.Equal(t, "1 years, 1 months", AccountAge(created, now))
	})

	t.Run("under a year reports months only", func(t *testing.T) {
		created := now.Add(-95 * 24 * time.Hour)
		require.Equal(t, "3 months", AccountAge(created, now))
	})

	t.Run("partial days are floored", func(t *testing.T) {
		created := now.Add(-(10*24*time.Hour + 23*time.Hour))
		require.Equal(t, int64(10), AgeDays(created, now))
		require.Equal(t, "0 months", AccountAge(created, now))
	})
}

func TestTotalKarma(t *testing.T) {
	t.Parallel()

	t.Run("falls back to link plus comment", func(t *testing.T) {
		u := &redditsdk.UserAbout{LinkKarma: ptr[int64](3), CommentKarma: ptr[int64](4)}
		require.Equal(t, int64(7), TotalKarma(u))
	})

	t.Run("uses total when present", func(t *testing.T) {
		u := &redditsdk.UserAbout{TotalKarma: ptr[int64](100), LinkKarma: ptr[int64](3)}
		require.Equal(t, int64(100), TotalKarma(u))
	})

	t.Run("missing everything is zero", func(t *testing.T) {
		require.Equal(t, int64(0), TotalKarma(&redditsdk.UserAbout{}))
	})
}

func TestVerificationTier(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Premium", VerificationTier(true, true))
	require.Equal(t, "Premium", VerificationTier(true, false))
	require.Equal(t, "Email Verified", VerificationTier(false, true))
	require.Equal(t, "No", VerificationTier(false, false))
}

func TestNewProfile(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2020, 3, 7, 15, 30, 0, 0, time.UTC)

	t.Run("maps populated record", func(t *testing.T) {
		u := &redditsdk.UserAbout{
			ID:           "t2abc",
			Name:         "Spez",
			CreatedUTC:   float64(created.Unix()),
			TotalKarma:   ptr[int64](42),
			Verified:     true,
			IsSuspended:  true,
			IconImg:      "https://styles.redditmedia.com/icon.png",
			SnoovatarImg: "https://i.redd.it/snoo.png",
			Subreddit: &redditsdk.UserSubreddit{
				Subscribers:       ptr[int64](9001),
				PublicDescription: "ceo",
			},
		}

		p := NewProfile("spez", u, now)
		require.Equal(t, "Spez", p.Username)
		require.Equal(t, "Spez", p.Nickname)
		require.Equal(t, "3/7/2020", p.EstimatedCreationDate)
		require.Equal(t, int64(9001), p.Followers)
		require.Equal(t, int64(42), p.TotalKarma)
		require.Equal(t, "Email Verified", p.Verified)
		require.Equal(t, "ceo", p.Description)
		require.Equal(t, "t2abc", p.UserID)
		require.Equal(t, "https://styles.redditmedia.com/icon.png", p.Avatar)
		require.Equal(t, "Yes", p.IsBanned)
		require.Equal(t, "https://www.reddit.com/user/spez", p.VisitProfile)
	})

	t.Run("applies defaults", func(t *testing.T) {
		u := &redditsdk.UserAbout{
			ID:         "t2def",
			Name:       "quiet",
			CreatedUTC: float64(created.Unix()),
		}

		p := NewProfile("quiet", u, now)
		require.Equal(t, int64(0), p.Followers)
		require.Equal(t, "N/A", p.Description)
		require.Equal(t, "https://via.placeholder.com/50", p.Avatar)
		require.Equal(t, "No", p.IsBanned)
		require.Equal(t, "No", p.Verified)
		require.Equal(t, "N/A", p.Region)
		require.Equal(t, "N/A", p.Country)
		require.Equal(t, "High", p.EstimationConfidence)
		require.Equal(t, "Exact", p.AccuracyRange)
	})

	t.Run("falls back to snoovatar", func(t *testing.T) {
		u := &redditsdk.UserAbout{SnoovatarImg: "https://i.redd.it/snoo.png"}
		require.Equal(t, "https://i.redd.it/snoo.png", NewProfile("x", u, now).Avatar)
	})
}
