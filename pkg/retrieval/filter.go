package retrieval

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Coach attribute columns referenced by filter predicates.
const (
	attrFee              = "kocluk_ucreti"
	attrExperience       = "tecrube_sene"
	attrRepeatedYear     = "mezuna_kaldi"
	attrAcceptsGraduates = "mezun_ogrenci_kabul"
	attrAcceptsLower     = "alt_sinif_kabul"
	attrSpecialty        = "kocluk_alani"
	attrTYTRank          = "tyt_derece_son"
	attrScienceRank      = "sayisal_derece_son"
	attrVerbalRank       = "sozel_derece_son"
	attrWeightedRank     = "ea_derece_son"
)

// Fee range defaults applied when the model names only one bound.
const (
	defaultFeeMin = 0
	defaultFeeMax = 100000
)

// Range is a numeric interval constraint. Nil bounds take defaults
// depending on the attribute.
type Range struct {
	Min *int64 `json:"min,omitempty"`
	Max *int64 `json:"max,omitempty"`
}

// FilterSpec is a validated set of coach-matching constraints extracted
// from free text. The zero value carries no constraints.
//
// Only the fixed attribute set below can appear; unknown keys in the
// model output are rejected during parsing, never passed through.
type FilterSpec struct {
	// Specialties requested by the student (informational; coach
	// specialty is free text and not predicate-filterable)
	Specialties []string

	// FeeRange bounds the coaching fee
	FeeRange *Range

	// MinExperienceYears is the minimum coaching experience
	MinExperienceYears *int64

	// RepeatedYear requires the coach to have (not) repeated an exam year
	RepeatedYear *bool

	// AcceptsGraduates requires the coach to take graduate students
	AcceptsGraduates *bool

	// AcceptsLowerGrades requires the coach to take pre-exam-year students
	AcceptsLowerGrades *bool

	// Maximum exam ranks per category. Zero rank means "no rank", so a
	// maximum-rank constraint also excludes unranked coaches.
	MaxTYTRank      *int64
	MaxScienceRank  *int64
	MaxVerbalRank   *int64
	MaxWeightedRank *int64
}

// IsEmpty reports whether the spec carries no constraints.
func (f FilterSpec) IsEmpty() bool {
	return f.Specialties == nil &&
		f.FeeRange == nil &&
		f.MinExperienceYears == nil &&
		f.RepeatedYear == nil &&
		f.AcceptsGraduates == nil &&
		f.AcceptsLowerGrades == nil &&
		f.MaxTYTRank == nil &&
		f.MaxScienceRank == nil &&
		f.MaxVerbalRank == nil &&
		f.MaxWeightedRank == nil
}

// jsonBlockPattern finds the first {...} block in model output that is
// not directly valid JSON.
var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseFilterSpec decodes model output into a FilterSpec.
//
// Direct JSON decoding is attempted first, then the first {...} block.
// Unparseable output yields an empty spec. The second return value
// lists keys that were rejected: unknown attributes or known attributes
// with a malformed shape.
func ParseFilterSpec(text string) (FilterSpec, []string) {
	raw := decodeFilterJSON(strings.TrimSpace(text))
	if raw == nil {
		return FilterSpec{}, nil
	}

	var spec FilterSpec
	var rejected []string
	for key, value := range raw {
		if !applyFilterKey(&spec, key, value) {
			rejected = append(rejected, key)
		}
	}
	return spec, rejected
}

func decodeFilterJSON(text string) map[string]json.RawMessage {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err == nil {
		return raw
	}
	block := jsonBlockPattern.FindString(text)
	if block == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return nil
	}
	return raw
}

// applyFilterKey validates one key/value pair against the fixed
// attribute schema. Returns false when the key is unknown or its value
// has the wrong shape.
func applyFilterKey(spec *FilterSpec, key string, value json.RawMessage) bool {
	switch key {
	case attrSpecialty:
		var list []string
		if err := json.Unmarshal(value, &list); err != nil {
			// A single string is tolerated
			var single string
			if err := json.Unmarshal(value, &single); err != nil {
				return false
			}
			list = []string{single}
		}
		spec.Specialties = list
	case attrFee:
		return decodeRange(value, &spec.FeeRange)
	case attrExperience:
		var r Range
		if err := json.Unmarshal(value, &r); err != nil || r.Min == nil {
			return false
		}
		spec.MinExperienceYears = r.Min
	case attrRepeatedYear:
		return decodeBool(value, &spec.RepeatedYear)
	case attrAcceptsGraduates:
		return decodeBool(value, &spec.AcceptsGraduates)
	case attrAcceptsLower:
		return decodeBool(value, &spec.AcceptsLowerGrades)
	case attrTYTRank:
		return decodeMaxRank(value, &spec.MaxTYTRank)
	case attrScienceRank:
		return decodeMaxRank(value, &spec.MaxScienceRank)
	case attrVerbalRank:
		return decodeMaxRank(value, &spec.MaxVerbalRank)
	case attrWeightedRank:
		return decodeMaxRank(value, &spec.MaxWeightedRank)
	default:
		return false
	}
	return true
}

func decodeRange(value json.RawMessage, target **Range) bool {
	var r Range
	if err := json.Unmarshal(value, &r); err != nil {
		return false
	}
	if r.Min == nil && r.Max == nil {
		return false
	}
	*target = &r
	return true
}

func decodeBool(value json.RawMessage, target **bool) bool {
	var b bool
	if err := json.Unmarshal(value, &b); err != nil {
		return false
	}
	*target = &b
	return true
}

func decodeMaxRank(value json.RawMessage, target **int64) bool {
	var r Range
	if err := json.Unmarshal(value, &r); err != nil || r.Max == nil {
		return false
	}
	*target = r.Max
	return true
}

// BuildPredicate translates a FilterSpec into a store-side search
// predicate. The clause order is fixed, so the same spec always yields
// the same string. An empty spec yields "" (unfiltered search).
//
// Maximum-rank clauses carry an "attr > 0" guard: rank zero denotes
// "no rank", and unranked coaches must not satisfy a rank ceiling.
func BuildPredicate(spec FilterSpec) string {
	var clauses []string

	if spec.FeeRange != nil {
		min := int64(defaultFeeMin)
		max := int64(defaultFeeMax)
		if spec.FeeRange.Min != nil {
			min = *spec.FeeRange.Min
		}
		if spec.FeeRange.Max != nil {
			max = *spec.FeeRange.Max
		}
		clauses = append(clauses, fmt.Sprintf("%s >= %d and %s <= %d", attrFee, min, attrFee, max))
	}

	if spec.MinExperienceYears != nil {
		clauses = append(clauses, fmt.Sprintf("%s >= %d", attrExperience, *spec.MinExperienceYears))
	}

	for _, b := range []struct {
		attr  string
		value *bool
	}{
		{attrRepeatedYear, spec.RepeatedYear},
		{attrAcceptsGraduates, spec.AcceptsGraduates},
		{attrAcceptsLower, spec.AcceptsLowerGrades},
	} {
		if b.value != nil {
			clauses = append(clauses, fmt.Sprintf("%s = %t", b.attr, *b.value))
		}
	}

	for _, r := range []struct {
		attr string
		max  *int64
	}{
		{attrTYTRank, spec.MaxTYTRank},
		{attrScienceRank, spec.MaxScienceRank},
		{attrVerbalRank, spec.MaxVerbalRank},
		{attrWeightedRank, spec.MaxWeightedRank},
	} {
		if r.max != nil && *r.max > 0 {
			clauses = append(clauses, fmt.Sprintf("%s > 0 and %s <= %d", r.attr, r.attr, *r.max))
		}
	}

	return strings.Join(clauses, " and ")
}
