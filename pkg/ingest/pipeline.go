// Package ingest implements the document ingestion pipeline: per-page
// text extraction, recursive chunking, batch embedding and insertion
// into knowledge-store collections.
//
// Collections are created on first reference with the document schema
// and ANN index; ingestion degrades per batch, so one failed embedding
// or insert round does not abort the remaining batches.
package ingest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
	"github.com/datafy-ai/go-mentor/pkg/llm"
)

// Pipeline batching defaults.
const (
	DefaultBatchSize      = 10
	DefaultMinChunkLength = 20
)

// Result reports one ingestion outcome. Failures are values, not
// errors: the pipeline's public entry points never raise.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ChunkCount int    `json:"chunk_count"`
}

// PageRange is an inclusive 1-based page interval.
type PageRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Pipeline ingests documents into knowledge-store collections.
type Pipeline struct {
	store     knowledge.Store
	embedder  llm.EmbeddingProvider
	registry  *knowledge.Registry
	splitter  *Splitter
	extractor Extractor
	tracker   *Tracker
	batchSize int
	minChunk  int
	log       zerolog.Logger
}

// PipelineConfig configures a Pipeline. Store and Embedder are
// required; everything else defaults.
type PipelineConfig struct {
	// Required. Vector store receiving the chunks
	Store knowledge.Store

	// Required. Embedding provider
	Embedder llm.EmbeddingProvider

	// Optional. Friendly-name registry (a fresh one is created if nil)
	Registry *knowledge.Registry

	// Optional. Chunking parameters (defaults to 1000/200)
	Splitter *Splitter

	// Optional. Per-page text extractor (defaults to the PDF extractor)
	Extractor Extractor

	// Optional. Task tracker for asynchronous ingestion
	Tracker *Tracker

	// Optional. Chunks embedded per round trip (defaults to 10)
	BatchSize int

	// Optional. Minimum chunk length in runes (defaults to 20)
	MinChunkLength int

	// Optional. Logger
	Logger *zerolog.Logger
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(config PipelineConfig) *Pipeline {
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	p := &Pipeline{
		store:     config.Store,
		embedder:  config.Embedder,
		registry:  config.Registry,
		splitter:  config.Splitter,
		extractor: config.Extractor,
		tracker:   config.Tracker,
		batchSize: config.BatchSize,
		minChunk:  config.MinChunkLength,
		log:       logger,
	}
	if p.registry == nil {
		p.registry = knowledge.NewRegistry()
	}
	if p.splitter == nil {
		p.splitter = NewSplitter()
	}
	if p.extractor == nil {
		p.extractor = NewPDFExtractor(config.Logger)
	}
	if p.tracker == nil {
		p.tracker = NewTracker(0, 0)
	}
	if p.batchSize <= 0 {
		p.batchSize = DefaultBatchSize
	}
	if p.minChunk <= 0 {
		p.minChunk = DefaultMinChunkLength
	}
	return p
}

// Registry exposes the friendly-name registry backing the pipeline.
func (p *Pipeline) Registry() *knowledge.Registry {
	return p.registry
}

// Tracker exposes the task tracker for status polling.
func (p *Pipeline) Tracker() *Tracker {
	return p.tracker
}

// Ingest extracts, chunks, embeds and inserts one document into the
// collection resolved from the friendly key, creating the collection on
// first use. The result reports the cumulative successful chunk count;
// zero successful chunks is an overall failure.
func (p *Pipeline) Ingest(ctx context.Context, path, collectionKey string) Result {
	physical := p.registry.GetOrCreate(collectionKey)
	if err := p.ensureCollection(ctx, physical); err != nil {
		p.log.Error().Err(err).Str("collection", physical).Msg("collection setup failed")
		return Result{Message: fmt.Sprintf("Koleksiyon oluşturulamadı: %s", physical)}
	}

	pages, err := p.extractor.ExtractPages(ctx, path)
	if err != nil {
		p.log.Error().Err(err).Str("path", path).Msg("text extraction failed")
		return Result{Message: "PDF'den metin çıkarılamadı"}
	}

	chunks := p.chunkPages(pages)
	if len(chunks) == 0 {
		return Result{Message: "PDF'den metin çıkarılamadı"}
	}

	return p.insertChunks(ctx, physical, path, chunks)
}

// IngestAsync runs Ingest in the background and returns a task id for
// status polling.
func (p *Pipeline) IngestAsync(path, collectionKey string) string {
	id := p.tracker.Create(fmt.Sprintf("Döküman sıraya alındı: %s", path))

	go func() {
		p.tracker.Update(id, TaskProcessing, fmt.Sprintf("Döküman işleniyor: %s", path), 0)
		result := p.Ingest(context.Background(), path, collectionKey)
		state := TaskCompleted
		if !result.Success {
			state = TaskFailed
		}
		p.tracker.Update(id, state, result.Message, result.ChunkCount)
	}()

	return id
}

// IngestByPageRanges splits one document across collections by page:
// each friendly key receives the chunks of its page ranges. Pages are
// extracted once; per-collection failures stay local to that entry.
func (p *Pipeline) IngestByPageRanges(ctx context.Context, path string, sections map[string][]PageRange) map[string]Result {
	results := make(map[string]Result, len(sections))

	pages, err := p.extractor.ExtractPages(ctx, path)
	if err != nil {
		p.log.Error().Err(err).Str("path", path).Msg("text extraction failed")
		for key := range sections {
			results[key] = Result{Message: "PDF'den metin çıkarılamadı"}
		}
		return results
	}

	// Deterministic processing order
	keys := make([]string, 0, len(sections))
	for key := range sections {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		ranges := sections[key]
		if len(ranges) == 0 {
			results[key] = Result{Message: "Sayfa listesi tanımlanmadı"}
			continue
		}

		selected := selectPages(pages, ranges)
		if len(selected) == 0 {
			results[key] = Result{Message: fmt.Sprintf("%s için geçerli sayfa bulunamadı", key)}
			continue
		}

		chunks := p.chunkPages(selected)
		if len(chunks) == 0 {
			results[key] = Result{Message: fmt.Sprintf("%s metni boş", key)}
			continue
		}

		physical := p.registry.GetOrCreate(key)
		if err := p.ensureCollection(ctx, physical); err != nil {
			p.log.Error().Err(err).Str("collection", physical).Msg("collection setup failed")
			results[key] = Result{Message: fmt.Sprintf("Koleksiyon oluşturulamadı: %s", physical)}
			continue
		}
		results[key] = p.insertChunks(ctx, physical, path, chunks)
	}
	return results
}

// ensureCollection creates the document collection and its ANN index on
// first reference.
func (p *Pipeline) ensureCollection(ctx context.Context, physical string) error {
	exists, err := p.store.HasCollection(ctx, physical)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return p.store.CreateCollection(ctx, physical, knowledge.DocumentSchema(), knowledge.DefaultIndexSpec())
}

// chunkPages splits every non-blank page and drops chunks below the
// minimum length.
func (p *Pipeline) chunkPages(pages []string) []string {
	var chunks []string
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		for _, chunk := range p.splitter.Split(page) {
			if runeLen(strings.TrimSpace(chunk)) < p.minChunk {
				continue
			}
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// insertChunks embeds chunks in fixed-size batches and inserts each
// batch. A failed batch is logged and skipped; the remaining batches
// continue.
func (p *Pipeline) insertChunks(ctx context.Context, physical, source string, chunks []string) Result {
	schema, err := p.store.CollectionSchema(ctx, physical)
	if err != nil {
		p.log.Error().Err(err).Str("collection", physical).Msg("schema inspection failed")
		return Result{Message: fmt.Sprintf("Koleksiyon şeması alınamadı: %s", physical)}
	}
	encode := encoderFor(schema)

	successful := 0
	for start := 0; start < len(chunks); start += p.batchSize {
		end := min(start+p.batchSize, len(chunks))
		batch := chunks[start:end]

		vectors, err := p.embedder.EmbedBatch(ctx, batch)
		if err != nil {
			p.log.Warn().Err(err).Int("batch_start", start).Msg("batch embedding failed, skipping batch")
			continue
		}

		rows := make([]knowledge.Row, len(batch))
		for i, chunk := range batch {
			rows[i] = knowledge.Row{
				Values: map[string]any{
					"id":       fmt.Sprintf("%s_%s", physical, uuid.New()),
					"text":     chunk,
					"metadata": encode(source, start+i),
				},
				Embedding: vectors[i],
			}
		}

		if err := p.store.Insert(ctx, physical, rows); err != nil {
			p.log.Warn().Err(err).Int("batch_start", start).Msg("batch insert failed, skipping batch")
			continue
		}
		successful += len(rows)
		chunksIngested.Add(float64(len(rows)))
	}

	if successful == 0 {
		return Result{Message: "PDF işlendi ancak hiç metin parçası eklenemedi"}
	}
	p.log.Info().Str("collection", physical).Int("chunks", successful).Msg("document ingested")
	return Result{
		Success:    true,
		Message:    fmt.Sprintf("PDF başarıyla işlendi: %d metin parçası eklendi", successful),
		ChunkCount: successful,
	}
}

// selectPages returns the non-blank pages covered by the ranges, in
// range order. Out-of-bounds pages are skipped.
func selectPages(pages []string, ranges []PageRange) []string {
	var selected []string
	for _, r := range ranges {
		for n := r.Start; n <= r.End; n++ {
			if n < 1 || n > len(pages) {
				continue
			}
			if strings.TrimSpace(pages[n-1]) == "" {
				continue
			}
			selected = append(selected, pages[n-1])
		}
	}
	return selected
}
