package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/aussiebroadwan/redditage/pkg/redditsdk"
)

// Placeholder values reported when Reddit omits a field, or for fields the
// upstream cannot supply at all.
const (
	NotAvailable      = "N/A"
	DefaultAvatarURL  = "https://via.placeholder.com/50"
	ConfidenceHigh    = "High"
	AccuracyExact     = "Exact"
	ProfileURLPrefix  = "https://www.reddit.com/user/"
	VerifiedPremium   = "Premium"
	VerifiedEmail     = "Email Verified"
	VerifiedNone      = "No"
	creationDateStyle = "1/2/2006"
)

const (
	daysPerYear  = 365
	daysPerMonth = 30
)

// Profile is the response shape served to the frontend. It is derived from the
// upstream account record on every request and never stored.
type Profile struct {
	Username              string `json:"username"`
	Nickname              string `json:"nickname"`
	EstimatedCreationDate string `json:"estimated_creation_date"`
	AccountAge            string `json:"account_age"`
	AgeDays               int64  `json:"age_days"`
	Followers             int64  `json:"followers"`
	TotalKarma            int64  `json:"total_karma"`
	Verified              string `json:"verified"`
	Description           string `json:"description"`
	Region                string `json:"region"`
	Country               string `json:"country"`
	UserID                string `json:"user_id"`
	Avatar                string `json:"avatar"`
	IsBanned              string `json:"is_banned"`
	EstimationConfidence  string `json:"estimation_confidence"`
	AccuracyRange         string `json:"accuracy_range"`
	VisitProfile          string `json:"visit_profile"`
}

// NewProfile maps an upstream account record into a Profile as of now.
// requested is the username the caller asked for and is used for the profile link.
func NewProfile(requested string, u *redditsdk.UserAbout, now time.Time) Profile {
	created := CreatedAt(u.CreatedUTC)

	p := Profile{
		Username:              u.Name,
		Nickname:              u.Name,
		EstimatedCreationDate: created.UTC().Format(creationDateStyle),
		AccountAge:            AccountAge(created, now),
		AgeDays:               AgeDays(created, now),
		Followers:             0,
		TotalKarma:            TotalKarma(u),
		Verified:              VerificationTier(u.IsGold, u.Verified),
		Description:           NotAvailable,
		Region:                NotAvailable,
		Country:               NotAvailable,
		UserID:                u.ID,
		Avatar:                avatar(u),
		IsBanned:              yesNo(u.IsSuspended),
		EstimationConfidence:  ConfidenceHigh,
		AccuracyRange:         AccuracyExact,
		VisitProfile:          ProfileURLPrefix + requested,
	}

	if sr := u.Subreddit; sr != nil {
		if sr.Subscribers != nil {
			p.Followers = *sr.Subscribers
		}
		if sr.PublicDescription != "" {
			p.Description = sr.PublicDescription
		}
	}

	return p
}

// CreatedAt converts Reddit's created_utc seconds into a time, keeping
// millisecond precision.
func CreatedAt(createdUTC float64) time.Time {
	return time.UnixMilli(int64(math.Round(createdUTC * 1000)))
}

// AgeDays is the number of whole days between created and now.
func AgeDays(created, now time.Time) int64 {
	return int64(math.Floor(float64(now.Sub(created)) / float64(24*time.Hour)))
}

// AccountAge renders the age as whole years and months using a fixed
// 365-day year and 30-day month.
func AccountAge(created, now time.Time) string {
	days := AgeDays(created, now)
	years := days / daysPerYear
	months := (days % daysPerYear) / daysPerMonth

	if years > 0 {
		return fmt.Sprintf("%d years, %d months", years, months)
	}
	return fmt.Sprintf("%d months", months)
}

// TotalKarma prefers the upstream total and falls back to link + comment karma
// when the total is absent or zero.
func TotalKarma(u *redditsdk.UserAbout) int64 {
	if u.TotalKarma != nil && *u.TotalKarma != 0 {
		return *u.TotalKarma
	}

	var total int64
	if u.LinkKarma != nil {
		total += *u.LinkKarma
	}
	if u.CommentKarma != nil {
		total += *u.CommentKarma
	}
	return total
}

// VerificationTier derives the verification label. Premium wins over a verified email.
func VerificationTier(isGold, verified bool) string {
	switch {
	case isGold:
		return VerifiedPremium
	case verified:
		return VerifiedEmail
	default:
		return VerifiedNone
	}
}

func avatar(u *redditsdk.UserAbout) string {
	switch {
	case u.IconImg != "":
		return u.IconImg
	case u.SnoovatarImg != "":
		return u.SnoovatarImg
	default:
		return DefaultAvatarURL
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
