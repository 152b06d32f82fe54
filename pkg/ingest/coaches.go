package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
)

// CoachProfile is one coach record as loaded from the profile file.
// Attribute fields mirror the coach collection columns used by
// filtered search.
type CoachProfile struct {
	Name              string `json:"isim_soyisim"`
	School            string `json:"okul"`
	Department        string `json:"bolum"`
	Biography         string `json:"biyografi"`
	Fee               int64  `json:"kocluk_ucreti"`
	ExperienceYears   int64  `json:"tecrube_sene"`
	RepeatedYear      bool   `json:"mezuna_kaldi"`
	AcceptsGraduates  bool   `json:"mezun_ogrenci_kabul"`
	AcceptsLowerGrade bool   `json:"alt_sinif_kabul"`
	Specialty         string `json:"kocluk_alani"`
	StrongAreas       string `json:"guclu_alanlar"`

	FirstTYTRank      int64 `json:"tyt_derece_ilk"`
	FirstScienceRank  int64 `json:"sayisal_derece_ilk"`
	FirstVerbalRank   int64 `json:"sozel_derece_ilk"`
	FirstWeightedRank int64 `json:"ea_derece_ilk"`
	FirstLanguageRank int64 `json:"dil_derece_ilk"`

	LastTYTRank      int64 `json:"tyt_derece_son"`
	LastScienceRank  int64 `json:"sayisal_derece_son"`
	LastVerbalRank   int64 `json:"sozel_derece_son"`
	LastWeightedRank int64 `json:"ea_derece_son"`
}

// CoachSchema returns the typed coach collection schema: biography
// embeddings plus the attribute columns filtered search predicates run
// against.
func CoachSchema() knowledge.Schema {
	return knowledge.Schema{
		Description: "Coach profiles with filterable attributes",
		Fields: []knowledge.Field{
			{Name: "id", Type: knowledge.FieldIdentifier},
			{Name: "isim_soyisim", Type: knowledge.FieldText},
			{Name: "okul", Type: knowledge.FieldText},
			{Name: "bolum", Type: knowledge.FieldText},
			{Name: "biyografi", Type: knowledge.FieldText},
			{Name: "kocluk_ucreti", Type: knowledge.FieldInt},
			{Name: "tecrube_sene", Type: knowledge.FieldInt},
			{Name: "mezuna_kaldi", Type: knowledge.FieldBool},
			{Name: "mezun_ogrenci_kabul", Type: knowledge.FieldBool},
			{Name: "alt_sinif_kabul", Type: knowledge.FieldBool},
			{Name: "kocluk_alani", Type: knowledge.FieldText},
			{Name: "guclu_alanlar", Type: knowledge.FieldText},
			{Name: "tyt_derece_ilk", Type: knowledge.FieldInt},
			{Name: "sayisal_derece_ilk", Type: knowledge.FieldInt},
			{Name: "sozel_derece_ilk", Type: knowledge.FieldInt},
			{Name: "ea_derece_ilk", Type: knowledge.FieldInt},
			{Name: "dil_derece_ilk", Type: knowledge.FieldInt},
			{Name: "tyt_derece_son", Type: knowledge.FieldInt},
			{Name: "sayisal_derece_son", Type: knowledge.FieldInt},
			{Name: "sozel_derece_son", Type: knowledge.FieldInt},
			{Name: "ea_derece_son", Type: knowledge.FieldInt},
			{Name: "embedding", Type: knowledge.FieldVector, Dim: 1536},
		},
	}
}

// LoadCoaches reads coach profiles from a JSON file, embeds their
// biographies and rebuilds the coach collection from scratch.
func (p *Pipeline) LoadCoaches(ctx context.Context, path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		p.log.Error().Err(err).Str("path", path).Msg("coach file read failed")
		return Result{Message: fmt.Sprintf("Koç dosyası okunamadı: %s", path)}
	}

	var coaches []CoachProfile
	if err := json.Unmarshal(data, &coaches); err != nil {
		// A single profile object is tolerated
		var single CoachProfile
		if err := json.Unmarshal(data, &single); err != nil {
			p.log.Error().Err(err).Str("path", path).Msg("coach file parse failed")
			return Result{Message: "Koç dosyası çözümlenemedi"}
		}
		coaches = []CoachProfile{single}
	}
	if len(coaches) == 0 {
		return Result{Message: "Koç dosyasında profil bulunamadı"}
	}

	physical := p.registry.GetOrCreate("koc")
	exists, err := p.store.HasCollection(ctx, physical)
	if err == nil && exists {
		err = p.store.DropCollection(ctx, physical)
	}
	if err == nil {
		err = p.store.CreateCollection(ctx, physical, CoachSchema(), knowledge.DefaultIndexSpec())
	}
	if err != nil {
		p.log.Error().Err(err).Str("collection", physical).Msg("coach collection setup failed")
		return Result{Message: fmt.Sprintf("Koç koleksiyonu oluşturulamadı: %s", physical)}
	}

	successful := 0
	for start := 0; start < len(coaches); start += p.batchSize {
		end := min(start+p.batchSize, len(coaches))
		batch := coaches[start:end]

		biographies := make([]string, len(batch))
		for i, coach := range batch {
			biographies[i] = coach.biographyOrDefault()
		}

		vectors, err := p.embedder.EmbedBatch(ctx, biographies)
		if err != nil {
			p.log.Warn().Err(err).Int("batch_start", start).Msg("biography embedding failed, skipping batch")
			continue
		}

		rows := make([]knowledge.Row, len(batch))
		for i, coach := range batch {
			rows[i] = knowledge.Row{
				Values: map[string]any{
					"id":                  uuid.New().String(),
					"isim_soyisim":        coach.Name,
					"okul":                coach.School,
					"bolum":               coach.Department,
					"biyografi":           biographies[i],
					"kocluk_ucreti":       coach.Fee,
					"tecrube_sene":        coach.ExperienceYears,
					"mezuna_kaldi":        coach.RepeatedYear,
					"mezun_ogrenci_kabul": coach.AcceptsGraduates,
					"alt_sinif_kabul":     coach.AcceptsLowerGrade,
					"kocluk_alani":        coach.Specialty,
					"guclu_alanlar":       coach.StrongAreas,
					"tyt_derece_ilk":      coach.FirstTYTRank,
					"sayisal_derece_ilk":  coach.FirstScienceRank,
					"sozel_derece_ilk":    coach.FirstVerbalRank,
					"ea_derece_ilk":       coach.FirstWeightedRank,
					"dil_derece_ilk":      coach.FirstLanguageRank,
					"tyt_derece_son":      coach.LastTYTRank,
					"sayisal_derece_son":  coach.LastScienceRank,
					"sozel_derece_son":    coach.LastVerbalRank,
					"ea_derece_son":       coach.LastWeightedRank,
				},
				Embedding: vectors[i],
			}
		}

		if err := p.store.Insert(ctx, physical, rows); err != nil {
			p.log.Warn().Err(err).Int("batch_start", start).Msg("coach insert failed, skipping batch")
			continue
		}
		successful += len(rows)
	}

	if successful == 0 {
		return Result{Message: "Hiç koç profili eklenemedi"}
	}
	p.log.Info().Int("coaches", successful).Msg("coach profiles loaded")
	return Result{
		Success:    true,
		Message:    fmt.Sprintf("%d koç profili başarıyla eklendi", successful),
		ChunkCount: successful,
	}
}

// biographyOrDefault falls back to a minimal profile line when the
// biography is blank, so every coach still gets an embedding.
func (c CoachProfile) biographyOrDefault() string {
	if c.Biography == "" || c.Biography == "-" {
		return fmt.Sprintf("%s - Koçluk profili", c.Name)
	}
	return c.Biography
}
