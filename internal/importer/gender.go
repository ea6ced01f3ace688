package importer

import (
	"strings"

	"github.com/cokeke26/fenats/internal/model"
)

type genderMatch int

const (
	matchContains genderMatch = iota
	matchExact
)

type genderRule struct {
	match   genderMatch
	pattern string
	gender  model.Gender
}

// genderRules are evaluated in order against the folded text; the first hit
// wins. Feminine markers come first. Anything unmatched stays unset.
var genderRules = []genderRule{
	{match: matchContains, pattern: "FEM", gender: model.GenderFemale},
	{match: matchContains, pattern: "MUJER", gender: model.GenderFemale},
	{match: matchExact, pattern: "F", gender: model.GenderFemale},
	{match: matchContains, pattern: "MASC", gender: model.GenderMale},
	{match: matchContains, pattern: "HOMBRE", gender: model.GenderMale},
	{match: matchExact, pattern: "M", gender: model.GenderMale},
}

// ClassifyGender maps free spreadsheet text ("Femenino", "masc.", "F") to a Gender.
func ClassifyGender(text *string) model.Gender {
	if text == nil {
		return model.GenderUnset
	}

	folded := fold(*text)
	if folded == "" {
		return model.GenderUnset
	}

	for _, rule := range genderRules {
		switch rule.match {
		case matchExact:
			if folded == rule.pattern {
				return rule.gender
			}
		case matchContains:
			if strings.Contains(folded, rule.pattern) {
				return rule.gender
			}
		}
	}
	return model.GenderUnset
}
