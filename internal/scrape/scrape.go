// Package scrape turns raw upstream documents into typed records.
//
// Every extractor is a pure function over a parsed document. Field
// extraction is independent per field: a missing optional node leaves the
// field empty and never aborts the record. A missing required anchor (a
// profile header, a results table) is a hard failure — the target does
// not exist or the upstream layout changed — reported as *StructureError.
// A present anchor with zero rows is a valid empty result, not an error.
package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StructureError reports a required anchor element missing from an
// upstream document.
type StructureError struct {
	Anchor string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("required element %q not found in upstream document", e.Anchor)
}

// requireAnchor returns the selection for sel or a *StructureError when it
// matches nothing.
func requireAnchor(doc *goquery.Document, sel string) (*goquery.Selection, error) {
	s := doc.Find(sel)
	if s.Length() == 0 {
		return nil, &StructureError{Anchor: sel}
	}
	return s.First(), nil
}

var innerWhitespace = regexp.MustCompile(`\s+`)

// cleanText collapses runs of whitespace and trims the result.
func cleanText(s string) string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s, " "))
}

// text returns the cleaned text of the first match under s.
func text(s *goquery.Selection, sel string) string {
	return cleanText(s.Find(sel).First().Text())
}

// attr returns the named attribute of the first match under s, or "".
func attr(s *goquery.Selection, sel, name string) string {
	v, _ := s.Find(sel).First().Attr(name)
	return strings.TrimSpace(v)
}

// imageURL returns the lazy-loaded source of the first matching image,
// preferring data-src over src.
func imageURL(s *goquery.Selection, sel string) string {
	img := s.Find(sel).First()
	if v, ok := img.Attr("data-src"); ok && v != "" {
		return v
	}
	v, _ := img.Attr("src")
	return v
}

// LastPathSegment extracts the identifier embedded in a hyperlink as its
// final path segment.
func LastPathSegment(href string) string {
	href = strings.TrimSuffix(strings.TrimSpace(href), "/")
	if href == "" {
		return ""
	}
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}

// ClubIDFromURL extracts a club identifier from any URL containing the
// /verein/ path marker. Club IDs can appear in more than one URL position
// so the marker rule takes precedence over the last-segment rule.
func ClubIDFromURL(href string) string {
	parts := strings.Split(href, "/")
	for i, p := range parts {
		if p == "verein" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// LeagueCodeFromURL extracts a competition code from a URL containing the
// /wettbewerb/ path marker.
func LeagueCodeFromURL(href string) string {
	parts := strings.Split(href, "/")
	for i, p := range parts {
		if p == "wettbewerb" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// splitDateAge splits a "14 Sep 2001 (23)" text node into date and age.
func splitDateAge(s string) (date, age string) {
	s = cleanText(s)
	if i := strings.Index(s, "("); i >= 0 {
		date = strings.TrimSpace(s[:i])
		age = strings.TrimSpace(strings.TrimSuffix(s[i+1:], ")"))
		return date, age
	}
	return s, ""
}

// NormalizeFee normalizes upstream fee text. "Free" and loan markers are
// kept as labels; monetary figures get their unit suffix normalized
// (m → M for million, bn → B for billion). An end-of-loan fee carries the
// loan return date separately, so it is not handled here.
func NormalizeFee(s string) string {
	s = cleanText(s)
	switch {
	case s == "" || s == "-" || strings.EqualFold(s, "free transfer") || strings.EqualFold(s, "free"):
		return "Free"
	case strings.Contains(strings.ToLower(s), "loan"):
		return "Loan Transfer"
	case strings.Contains(s, "€"):
		s = strings.ReplaceAll(s, "€", "€ ")
		s = strings.ReplaceAll(s, "bn", "B")
		s = strings.ReplaceAll(s, "m", "M")
		return cleanText(s)
	default:
		return s
	}
}
