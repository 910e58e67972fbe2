package gff

import (
	"regexp"
	"strings"
)

// Heuristic tables for insertion-sequence / transposon detection. Built once;
// never mutated.
var (
	mobileFeatureTypes = map[string]struct{}{
		"mobile_element":       {},
		"repeat_region":        {},
		"insertion_sequence":   {},
		"transposable_element": {},
	}

	mobileAttributeKeys = [...]string{"product", "note", "gene", "mobile_element_type"}

	mobileKeywords = lowerAll(
		"insertion sequence",
		"transposase",
		"mobile element",
		"mobile_element",
		"insertion-sequence",
		"IS element",
	)

	// IS3, is110, IS1380; "ISland" has no digits and does not match.
	isFamilyRE = regexp.MustCompile(`(?i)\bIS\d+\b`)
)

func lowerAll(words ...string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

// IsMobileElement classifies a feature as an IS element or transposon by its
// type or by keywords in its descriptive attributes. False positives and
// negatives are expected; this is not biological ground truth.
func IsMobileElement(featureType string, attrs Attributes) bool {
	if _, ok := mobileFeatureTypes[featureType]; ok {
		return true
	}
	for _, key := range mobileAttributeKeys {
		if mobileValue(attrs.Value(key)) {
			return true
		}
	}
	return false
}

func mobileValue(v string) bool {
	if v == "" {
		return false
	}
	lower := strings.ToLower(v)
	for _, kw := range mobileKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return isFamilyRE.MatchString(v)
}
