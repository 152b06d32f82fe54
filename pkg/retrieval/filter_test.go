package retrieval

import (
	"strings"
	"testing"

	"github.com/datafy-ai/go-mentor/pkg/helpers"
)

func TestParseFilterSpec(t *testing.T) {
	t.Run("full output", func(t *testing.T) {
		text := `{
			"kocluk_alani": ["sayısal"],
			"mezuna_kaldi": true,
			"mezun_ogrenci_kabul": true,
			"tecrube_sene": {"min": 1},
			"kocluk_ucreti": {"max": 3000},
			"sayisal_derece_son": {"max": 5000}
		}`

		spec, rejected := ParseFilterSpec(text)
		if len(rejected) != 0 {
			t.Fatalf("rejected keys %v, want none", rejected)
		}
		if len(spec.Specialties) != 1 || spec.Specialties[0] != "sayısal" {
			t.Errorf("Specialties = %v", spec.Specialties)
		}
		if spec.RepeatedYear == nil || !*spec.RepeatedYear {
			t.Error("RepeatedYear not parsed")
		}
		if spec.AcceptsGraduates == nil || !*spec.AcceptsGraduates {
			t.Error("AcceptsGraduates not parsed")
		}
		if spec.MinExperienceYears == nil || *spec.MinExperienceYears != 1 {
			t.Error("MinExperienceYears not parsed")
		}
		if spec.FeeRange == nil || spec.FeeRange.Max == nil || *spec.FeeRange.Max != 3000 {
			t.Error("FeeRange not parsed")
		}
		if spec.MaxScienceRank == nil || *spec.MaxScienceRank != 5000 {
			t.Error("MaxScienceRank not parsed")
		}
	})

	t.Run("json embedded in prose", func(t *testing.T) {
		text := "İşte filtreler:\n```json\n{\"kocluk_ucreti\": {\"max\": 2500}}\n```"
		spec, rejected := ParseFilterSpec(text)
		if len(rejected) != 0 {
			t.Fatalf("rejected keys %v, want none", rejected)
		}
		if spec.FeeRange == nil || spec.FeeRange.Max == nil || *spec.FeeRange.Max != 2500 {
			t.Errorf("FeeRange = %+v, want max 2500", spec.FeeRange)
		}
	})

	t.Run("unknown keys rejected", func(t *testing.T) {
		spec, rejected := ParseFilterSpec(`{"sehir": "Ankara", "mezuna_kaldi": false}`)
		if len(rejected) != 1 || rejected[0] != "sehir" {
			t.Errorf("rejected = %v, want [sehir]", rejected)
		}
		if spec.RepeatedYear == nil || *spec.RepeatedYear {
			t.Error("known key next to unknown key was lost")
		}
	})

	t.Run("malformed shapes rejected per key", func(t *testing.T) {
		text := `{"kocluk_ucreti": "ucuz", "tecrube_sene": {"max": 5}, "tyt_derece_son": {"min": 100}}`
		spec, rejected := ParseFilterSpec(text)
		if len(rejected) != 3 {
			t.Errorf("rejected = %v, want all three keys", rejected)
		}
		if !spec.IsEmpty() {
			t.Errorf("spec = %+v, want empty", spec)
		}
	})

	t.Run("single specialty string tolerated", func(t *testing.T) {
		spec, _ := ParseFilterSpec(`{"kocluk_alani": "sözel"}`)
		if len(spec.Specialties) != 1 || spec.Specialties[0] != "sözel" {
			t.Errorf("Specialties = %v", spec.Specialties)
		}
	})

	t.Run("unparseable output", func(t *testing.T) {
		spec, rejected := ParseFilterSpec("uygun filtre bulamadım")
		if !spec.IsEmpty() || rejected != nil {
			t.Errorf("ParseFilterSpec on prose = %+v, %v", spec, rejected)
		}
	})

	t.Run("empty object", func(t *testing.T) {
		spec, rejected := ParseFilterSpec("{}")
		if !spec.IsEmpty() || len(rejected) != 0 {
			t.Errorf("ParseFilterSpec({}) = %+v, %v", spec, rejected)
		}
	})
}

func TestBuildPredicate(t *testing.T) {
	tests := []struct {
		name     string
		spec     FilterSpec
		expected string
	}{
		{
			"empty spec",
			FilterSpec{},
			"",
		},
		{
			"fee max only gets default min",
			FilterSpec{FeeRange: &Range{Max: helpers.PtrOf(int64(3000))}},
			"kocluk_ucreti >= 0 and kocluk_ucreti <= 3000",
		},
		{
			"fee min only gets default max",
			FilterSpec{FeeRange: &Range{Min: helpers.PtrOf(int64(1000))}},
			"kocluk_ucreti >= 1000 and kocluk_ucreti <= 100000",
		},
		{
			"experience",
			FilterSpec{MinExperienceYears: helpers.PtrOf(int64(2))},
			"tecrube_sene >= 2",
		},
		{
			"booleans",
			FilterSpec{RepeatedYear: helpers.PtrOf(true), AcceptsGraduates: helpers.PtrOf(false)},
			"mezuna_kaldi = true and mezun_ogrenci_kabul = false",
		},
		{
			"rank ceiling guards out unranked coaches",
			FilterSpec{MaxScienceRank: helpers.PtrOf(int64(5000))},
			"sayisal_derece_son > 0 and sayisal_derece_son <= 5000",
		},
		{
			"zero rank ceiling dropped",
			FilterSpec{MaxTYTRank: helpers.PtrOf(int64(0))},
			"",
		},
		{
			"specialties alone produce no clause",
			FilterSpec{Specialties: []string{"sayısal"}},
			"",
		},
		{
			"combined clauses in fixed order",
			FilterSpec{
				FeeRange:           &Range{Max: helpers.PtrOf(int64(3000))},
				MinExperienceYears: helpers.PtrOf(int64(1)),
				AcceptsLowerGrades: helpers.PtrOf(true),
				MaxTYTRank:         helpers.PtrOf(int64(10000)),
			},
			"kocluk_ucreti >= 0 and kocluk_ucreti <= 3000 and tecrube_sene >= 1 and alt_sinif_kabul = true and tyt_derece_son > 0 and tyt_derece_son <= 10000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := BuildPredicate(tt.spec); result != tt.expected {
				t.Errorf("BuildPredicate() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestBuildPredicateDeterministic(t *testing.T) {
	spec := FilterSpec{
		FeeRange:         &Range{Min: helpers.PtrOf(int64(500)), Max: helpers.PtrOf(int64(4000))},
		RepeatedYear:     helpers.PtrOf(true),
		MaxWeightedRank:  helpers.PtrOf(int64(8000)),
		AcceptsGraduates: helpers.PtrOf(true),
	}

	first := BuildPredicate(spec)
	for i := 0; i < 10; i++ {
		if again := BuildPredicate(spec); again != first {
			t.Fatalf("BuildPredicate not deterministic: %q then %q", first, again)
		}
	}
	if !strings.Contains(first, "ea_derece_son > 0") {
		t.Errorf("predicate %q missing weighted rank guard", first)
	}
}
