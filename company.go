package ciagent

import (
	"net/url"
	"strings"
)

// CompanyID derives the knowledge base identifier for a website URL.
// The identifier is the URL's host (including any port), lower-cased, with
// dots and colons replaced by underscores: https://www.Acme.com/about
// becomes "www_acme_com". The same URL always yields the same identifier.
func CompanyID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "URL %q has no host", rawURL)
	}
	r := strings.NewReplacer(".", "_", ":", "_")
	return strings.ToLower(r.Replace(u.Host)), nil
}

// ResolveCompany turns a user-supplied company reference into an identifier.
// The reference may be a full URL, a bare host such as "acme.com", or an
// identifier previously returned by CompanyID.
func ResolveCompany(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", Errorf(EINVALID, "company required")
	}
	if strings.Contains(ref, "://") {
		return CompanyID(ref)
	}
	if strings.ContainsAny(ref, ".:/") {
		return CompanyID("https://" + ref)
	}
	for _, r := range ref {
		if !isIdentRune(r) {
			return "", Errorf(EINVALID, "invalid company identifier %q", ref)
		}
	}
	return strings.ToLower(ref), nil
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '-' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
