package account

import (
	"slices"
	"strings"
	"time"
)

// Account is a stored TOTP account with its secret decrypted.
// Secret holds the plaintext Base32 value and must never be logged or returned to other users.
type Account struct {
	ID        string
	UserID    string
	Name      string
	Issuer    string
	Secret    string
	Tags      []string
	Period    int
	CreatedAt time.Time
}

// CreateInput is the user-supplied data for a new account.
type CreateInput struct {
	Name   string
	Issuer string
	Secret string   // Base32, whitespace and case are normalized
	Tags   []string // Blank tags are dropped
	Period int      // Seconds per step, 0 means the default of 30
}

// Record is the persisted shape of an account. Secret is the encrypted envelope.
type Record struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Name      string    `bson:"name"`
	Issuer    string    `bson:"issuer"`
	Secret    string    `bson:"secret"`
	Tags      []string  `bson:"tags"`
	Period    int       `bson:"period"`
	CreatedAt time.Time `bson:"created_at"`
}

// Filter returns the accounts matching query, keeping their order.
// A blank query matches everything. "tag:" and "org:" prefixes restrict
// the match to tags; otherwise name, issuer and tags are searched.
// Matching is a case-insensitive substring test.
func Filter(accounts []Account, query string) []Account {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return accounts
	}

	tagsOnly := false
	for _, prefix := range []string{"tag:", "org:"} {
		if rest, ok := strings.CutPrefix(query, prefix); ok {
			query = strings.TrimSpace(rest)
			tagsOnly = true
			break
		}
	}

	matched := make([]Account, 0, len(accounts))
	for _, acc := range accounts {
		if matchesTag(acc.Tags, query) ||
			(!tagsOnly && (contains(acc.Name, query) || contains(acc.Issuer, query))) {
			matched = append(matched, acc)
		}
	}
	return matched
}

// Tags returns the distinct tags used by accounts, sorted.
func Tags(accounts []Account) []string {
	var tags []string
	for _, acc := range accounts {
		tags = append(tags, acc.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

func matchesTag(tags []string, query string) bool {
	return slices.ContainsFunc(tags, func(tag string) bool {
		return contains(tag, query)
	})
}

func contains(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

func cleanTags(tags []string) []string {
	clean := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" && !slices.Contains(clean, tag) {
			clean = append(clean, tag)
		}
	}
	return clean
}

func (r Record) account(secret string) Account {
	return Account{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Issuer:    r.Issuer,
		Secret:    secret,
		Tags:      slices.Clone(r.Tags),
		Period:    r.Period,
		CreatedAt: r.CreatedAt,
	}
}
