package source

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	ErrEmptyURL   = errors.New("no URL entered")
	ErrInvalidURL = errors.New("the entered URL does not appear to be correctly formatted")
)

// topLevelDomains lists the suffixes accepted for a bare domain name.
var topLevelDomains = strings.Join([]string{
	`a[cdefgilmnoqrstuwxz]|aero|arpa`,
	`b[abdefghijmnorstvwyz]|biz`,
	`c[acdfghiklmnorsuvxyz]|cat|com|coop`,
	`d[ejkmoz]`,
	`e[ceghrstu]|edu`,
	`f[ijkmor]`,
	`g[abdefghilmnpqrstuwy]|gov`,
	`h[kmnrtu]`,
	`i[delmnoqrst]|info|int`,
	`j[emop]|jobs`,
	`k[eghimnprwyz]`,
	`l[abcikrstuvy]`,
	`m[acdghklmnopqrstuvwxyz]|mil|mobi|museum`,
	`n[acefgilopruz]|name|net`,
	`om|org`,
	`p[aefghklmnrstwy]|pro`,
	`qa`,
	`r[eouw]`,
	`s[abcdeghijklmnortvyz]`,
	`t[cdfghjklmnoprtvwz]|travel`,
	`u[agkmsyz]`,
	`v[aceginu]`,
	`w[fs]`,
	`y[etu]`,
	`z[amw]`,
}, "|")

// domainPrefix matches input that starts with a DNS name such as
// "example.com" or "www.example.co.uk/path".
var domainPrefix = regexp.MustCompile(`(?i)^([a-z0-9]([-a-z0-9]*[a-z0-9])?\.)+(` + topLevelDomains + `)([:/?#]|$)`)

func looksLikeDomain(s string) bool {
	return domainPrefix.MatchString(strings.TrimSpace(s))
}

// NormalizeURL trims input, prefixes "http://" when it is just a domain
// name, and checks that the result is an absolute http or https URL.
func NormalizeURL(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyURL
	}
	if !strings.Contains(input, "://") && looksLikeDomain(input) {
		input = "http://" + input
	}

	u, err := url.Parse(input)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", ErrInvalidURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", ErrInvalidURL
	}
	return u.String(), nil
}
