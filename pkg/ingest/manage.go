package ingest

import (
	"context"
	"fmt"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
)

// CollectionInfo describes one collection known to the store.
type CollectionInfo struct {
	Name     string `json:"name"`
	Physical string `json:"physical"`
	Count    int64  `json:"count"`
}

// CreateCollection registers a friendly key and creates its physical
// collection. Creating an already-known collection succeeds and reports
// it as existing.
func (p *Pipeline) CreateCollection(ctx context.Context, key string) Result {
	friendly := knowledge.FriendlyName(knowledge.PhysicalName(key))
	if physical, ok := p.registry.Resolve(friendly); ok {
		return Result{
			Success: true,
			Message: fmt.Sprintf("'%s' koleksiyonu zaten tanımlı (%s)", friendly, physical),
		}
	}

	physical := p.registry.GetOrCreate(friendly)
	if err := p.ensureCollection(ctx, physical); err != nil {
		p.registry.Delete(friendly)
		p.log.Error().Err(err).Str("collection", physical).Msg("collection creation failed")
		return Result{Message: fmt.Sprintf("Koleksiyon oluşturulamadı: %s", physical)}
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("'%s' koleksiyonu başarıyla oluşturuldu", friendly),
	}
}

// DeleteCollection drops a collection and removes its registry entry.
func (p *Pipeline) DeleteCollection(ctx context.Context, key string) Result {
	friendly := knowledge.FriendlyName(knowledge.PhysicalName(key))
	physical, ok := p.registry.Resolve(friendly)
	if !ok {
		return Result{Message: fmt.Sprintf("'%s' koleksiyonu bulunamadı", friendly)}
	}

	if err := p.store.DropCollection(ctx, physical); err != nil {
		p.log.Error().Err(err).Str("collection", physical).Msg("collection drop failed")
		return Result{Message: fmt.Sprintf("Koleksiyon silinirken hata oluştu: %s", physical)}
	}
	p.registry.Delete(friendly)
	return Result{
		Success: true,
		Message: fmt.Sprintf("'%s' koleksiyonu ve ilişkili tüm veriler başarıyla silindi", friendly),
	}
}

// ResetCollection drops and recreates a collection, clearing its data
// while keeping the schema and index.
func (p *Pipeline) ResetCollection(ctx context.Context, key string) Result {
	physical := p.registry.GetOrCreate(knowledge.FriendlyName(knowledge.PhysicalName(key)))

	exists, err := p.store.HasCollection(ctx, physical)
	if err != nil {
		p.log.Error().Err(err).Str("collection", physical).Msg("collection check failed")
		return Result{Message: fmt.Sprintf("Koleksiyon temizlenirken hata oluştu: %s", physical)}
	}
	if exists {
		if err := p.store.DropCollection(ctx, physical); err != nil {
			p.log.Error().Err(err).Str("collection", physical).Msg("collection drop failed")
			return Result{Message: fmt.Sprintf("Koleksiyon temizlenirken hata oluştu: %s", physical)}
		}
	}

	if err := p.ensureCollection(ctx, physical); err != nil {
		p.log.Error().Err(err).Str("collection", physical).Msg("collection recreation failed")
		return Result{Message: fmt.Sprintf("Koleksiyon yeniden oluşturulamadı: %s", physical)}
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Koleksiyon '%s' başarıyla temizlendi ve yeniden oluşturuldu", physical),
	}
}

// Collections lists every collection in the store with its friendly
// name and entity count.
func (p *Pipeline) Collections(ctx context.Context) ([]CollectionInfo, error) {
	names, err := p.store.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	infos := make([]CollectionInfo, 0, len(names))
	for _, name := range names {
		count, err := p.store.CollectionStats(ctx, name)
		if err != nil {
			p.log.Warn().Err(err).Str("collection", name).Msg("stats lookup failed")
			count = -1
		}
		infos = append(infos, CollectionInfo{
			Name:     knowledge.FriendlyName(name),
			Physical: name,
			Count:    count,
		})
	}
	return infos, nil
}
