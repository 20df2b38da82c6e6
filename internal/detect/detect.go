// Package detect classifies a raw query string into typed hints: URLs,
// e-mail addresses, JSON documents, and absolute paths. Detectors are
// pure and synchronous; malformed input degrades to "no hint", never to
// an error.
package detect

import (
	"encoding/json"
	"net/mail"
	"net/url"
	"strings"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// Hints runs every detector against the query and returns synthetic
// result items in detector priority order (path, URL, e-mail, JSON).
func Hints(query string) []domain.ResultItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var hints []domain.ResultItem

	if item, ok := Path(query); ok {
		hints = append(hints, item)
	}
	if item, ok := URL(query); ok {
		hints = append(hints, item)
	}
	if item, ok := Email(query); ok {
		hints = append(hints, item)
	}
	if item, ok := JSON(query); ok {
		hints = append(hints, item)
	}

	return hints
}

// Path detects a query that is itself an absolute (or home-relative)
// filesystem path.
func Path(query string) (domain.ResultItem, bool) {
	if !strings.HasPrefix(query, "/") && !strings.HasPrefix(query, "~/") {
		return domain.ResultItem{}, false
	}
	if strings.ContainsAny(query, " \t") {
		return domain.ResultItem{}, false
	}

	return domain.ResultItem{
		Kind:        domain.KindDetectedPath,
		DisplayName: query,
		Path:        query,
		Detail:      "Open path",
	}, true
}

// URL detects a query that parses as an http(s) URL. A bare "www." host
// is accepted and normalised to https.
func URL(query string) (domain.ResultItem, bool) {
	candidate := query
	if strings.HasPrefix(candidate, "www.") && !strings.Contains(candidate, " ") {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return domain.ResultItem{}, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return domain.ResultItem{}, false
	}
	if u.Host == "" || !strings.Contains(u.Host, ".") {
		return domain.ResultItem{}, false
	}

	return domain.ResultItem{
		Kind:        domain.KindDetectedURL,
		DisplayName: query,
		Path:        u.String(),
		Detail:      "Open in browser",
	}, true
}

// Email detects a query that is a single e-mail address.
func Email(query string) (domain.ResultItem, bool) {
	if !strings.Contains(query, "@") || strings.ContainsAny(query, " \t") {
		return domain.ResultItem{}, false
	}

	addr, err := mail.ParseAddress(query)
	if err != nil {
		return domain.ResultItem{}, false
	}
	// Reject addresses without a dotted domain ("a@b" is technically
	// parseable but never what a launcher user means).
	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || !strings.Contains(addr.Address[at:], ".") {
		return domain.ResultItem{}, false
	}

	return domain.ResultItem{
		Kind:        domain.KindDetectedEmail,
		DisplayName: addr.Address,
		Path:        "mailto:" + addr.Address,
		Detail:      "Compose e-mail",
	}, true
}

// JSON detects a query that is a complete JSON object or array.
func JSON(query string) (domain.ResultItem, bool) {
	if !strings.HasPrefix(query, "{") && !strings.HasPrefix(query, "[") {
		return domain.ResultItem{}, false
	}
	if !json.Valid([]byte(query)) {
		return domain.ResultItem{}, false
	}

	display := query
	if runes := []rune(display); len(runes) > 60 {
		display = string(runes[:57]) + "..."
	}

	return domain.ResultItem{
		Kind:        domain.KindDetectedJSON,
		DisplayName: display,
		Path:        query,
		Detail:      "Format JSON",
	}, true
}
