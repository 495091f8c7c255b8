package redditsdk

import "time"

// Token is an application-only access token issued by Reddit.
type Token struct {
	AccessToken string
	TokenType   string

	// ExpiresIn is the lifetime declared by the token endpoint.
	ExpiresIn time.Duration
}

// AboutResponse is the envelope returned by /user/{username}/about.
// Data is nil when Reddit has no record for the user.
type AboutResponse struct {
	Kind string     `json:"kind"`
	Data *UserAbout `json:"data"`
}

// UserAbout is the subset of a Reddit account record the service reads.
// Pointer fields distinguish "absent" from a zero value.
type UserAbout struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CreatedUTC   float64 `json:"created_utc"`
	LinkKarma    *int64  `json:"link_karma"`
	CommentKarma *int64  `json:"comment_karma"`
	TotalKarma   *int64  `json:"total_karma"`
	IsGold       bool    `json:"is_gold"`
	Verified     bool    `json:"verified"`
	IsSuspended  bool    `json:"is_suspended"`
	IconImg      string  `json:"icon_img"`
	SnoovatarImg string  `json:"snoovatar_img"`

	Subreddit *UserSubreddit `json:"subreddit"`
}

// UserSubreddit is the profile subreddit attached to an account.
type UserSubreddit struct {
	Subscribers       *int64 `json:"subscribers"`
	PublicDescription string `json:"public_description"`
}
