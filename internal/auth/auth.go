// Package auth holds the identity types handed over by the external
// identity provider and the email allow-list check. Token issuance and
// verification of credentials belong to the provider, not to this app.
package auth

import "strings"

// User is the identity the external provider yields after sign-in.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// AllowList is the set of email addresses permitted to use the app.
// Matching is case-insensitive.
type AllowList map[string]struct{}

// NewAllowList builds an allow-list from configured addresses.
func NewAllowList(emails []string) AllowList {
	list := make(AllowList, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			list[email] = struct{}{}
		}
	}
	return list
}

// Allowed reports whether the email may access the app. An empty allow-list
// denies everyone.
func (l AllowList) Allowed(email string) bool {
	_, ok := l[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
