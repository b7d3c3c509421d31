package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/inmofin/backoffice-caja/internal/apperrors"
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	portsrepo "github.com/inmofin/backoffice-caja/internal/core/ports/repositories"
	portssvc "github.com/inmofin/backoffice-caja/internal/core/ports/services"
	"github.com/inmofin/backoffice-caja/internal/middleware"
)

const (
	catalogoCacheTTL = 5 * time.Minute

	cacheKeyTiposMovimiento = "catalogo:tipos_movimiento"
	cacheKeyTiposOperacion  = "catalogo:tipos_operacion"
	cacheKeyTiposCaja       = "catalogo:tipos_caja"
	cacheKeyEstadosCaja     = "catalogo:estados_caja"
)

// catalogoCache is the in-process snapshot of the four reference catalogs.
type catalogoCache struct {
	tiposMovimiento []domain.TipoMovimiento
	tiposOperacion  []domain.TipoOperacion
	tiposCaja       []domain.TipoCaja
	estadosCaja     []domain.EstadoCaja
	cargadoEn       time.Time
}

// catalogoService resolves reference data read-only, caching it in process
// and, when a Redis client is configured, sharing the cache across instances.
type catalogoService struct {
	repo portsrepo.CatalogoRepositoryFacade
	rdb  *redis.Client // optional; nil disables the shared cache

	mu    sync.RWMutex
	cache *catalogoCache
}

// NewCatalogoService creates a new catalog resolver. rdb may be nil.
func NewCatalogoService(repo portsrepo.CatalogoRepositoryFacade, rdb *redis.Client) portssvc.CatalogoSvcFacade {
	return &catalogoService{repo: repo, rdb: rdb}
}

var _ portssvc.CatalogoSvcFacade = (*catalogoService)(nil)

func (s *catalogoService) snapshot(ctx context.Context) (*catalogoCache, error) {
	s.mu.RLock()
	cache := s.cache
	s.mu.RUnlock()
	if cache != nil && time.Since(cache.cargadoEn) < catalogoCacheTTL {
		return cache, nil
	}

	fresh, err := s.load(ctx)
	if err != nil {
		// A stale snapshot beats failing a render.
		if cache != nil {
			return cache, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.cache = fresh
	s.mu.Unlock()
	return fresh, nil
}

// load fills a snapshot from Redis when possible, falling back to the
// repository and writing the result back through the shared cache.
func (s *catalogoService) load(ctx context.Context) (*catalogoCache, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	cache := &catalogoCache{cargadoEn: time.Now()}

	if err := fetchCatalogo(ctx, s.rdb, cacheKeyTiposMovimiento, &cache.tiposMovimiento, s.repo.ListTiposMovimiento); err != nil {
		return nil, fmt.Errorf("failed to load tipos de movimiento: %w", err)
	}
	if err := fetchCatalogo(ctx, s.rdb, cacheKeyTiposOperacion, &cache.tiposOperacion, s.repo.ListTiposOperacion); err != nil {
		return nil, fmt.Errorf("failed to load tipos de operacion: %w", err)
	}
	if err := fetchCatalogo(ctx, s.rdb, cacheKeyTiposCaja, &cache.tiposCaja, s.repo.ListTiposCaja); err != nil {
		return nil, fmt.Errorf("failed to load tipos de caja: %w", err)
	}
	if err := fetchCatalogo(ctx, s.rdb, cacheKeyEstadosCaja, &cache.estadosCaja, s.repo.ListEstadosCaja); err != nil {
		return nil, fmt.Errorf("failed to load estados de caja: %w", err)
	}

	logger.Debug("Catalogos loaded",
		slog.Int("tipos_movimiento", len(cache.tiposMovimiento)),
		slog.Int("tipos_operacion", len(cache.tiposOperacion)),
		slog.Int("tipos_caja", len(cache.tiposCaja)),
		slog.Int("estados_caja", len(cache.estadosCaja)),
	)
	return cache, nil
}

// fetchCatalogo reads one catalog list through the Redis cache. Redis
// failures are treated as cache misses, never as errors.
func fetchCatalogo[T any](ctx context.Context, rdb *redis.Client, key string, dest *[]T, loader func(context.Context) ([]T, error)) error {
	if rdb != nil {
		payload, err := rdb.Get(ctx, key).Bytes()
		if err == nil {
			if jsonErr := json.Unmarshal(payload, dest); jsonErr == nil {
				return nil
			}
		}
	}

	items, err := loader(ctx)
	if err != nil {
		return err
	}
	*dest = items

	if rdb != nil {
		if payload, err := json.Marshal(items); err == nil {
			_ = rdb.Set(ctx, key, payload, catalogoCacheTTL).Err()
		}
	}
	return nil
}

func (s *catalogoService) ListTiposMovimiento(ctx context.Context) ([]domain.TipoMovimiento, error) {
	cache, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return cache.tiposMovimiento, nil
}

func (s *catalogoService) ListTiposOperacion(ctx context.Context) ([]domain.TipoOperacion, error) {
	cache, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return cache.tiposOperacion, nil
}

func (s *catalogoService) ListTiposCaja(ctx context.Context) ([]domain.TipoCaja, error) {
	cache, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return cache.tiposCaja, nil
}

func (s *catalogoService) ListEstadosCaja(ctx context.Context) ([]domain.EstadoCaja, error) {
	cache, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return cache.estadosCaja, nil
}

func (s *catalogoService) GetTipoMovimiento(ctx context.Context, tipoMovimientoID string) (*domain.TipoMovimiento, error) {
	cache, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cache.tiposMovimiento {
		if cache.tiposMovimiento[i].TipoMovimientoID == tipoMovimientoID {
			tipo := cache.tiposMovimiento[i]
			return &tipo, nil
		}
	}
	return nil, fmt.Errorf("tipo de movimiento %s: %w", tipoMovimientoID, apperrors.ErrNotFound)
}

func (s *catalogoService) GetTipoOperacion(ctx context.Context, tipoOperacionID string) (*domain.TipoOperacion, error) {
	cache, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cache.tiposOperacion {
		if cache.tiposOperacion[i].TipoOperacionID == tipoOperacionID {
			tipo := cache.tiposOperacion[i]
			return &tipo, nil
		}
	}
	return nil, fmt.Errorf("tipo de operacion %s: %w", tipoOperacionID, apperrors.ErrNotFound)
}

func (s *catalogoService) GetTipoCaja(ctx context.Context, tipoCajaID string) (*domain.TipoCaja, error) {
	cache, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cache.tiposCaja {
		if cache.tiposCaja[i].TipoCajaID == tipoCajaID {
			tipo := cache.tiposCaja[i]
			return &tipo, nil
		}
	}
	return nil, fmt.Errorf("tipo de caja %s: %w", tipoCajaID, apperrors.ErrNotFound)
}

func (s *catalogoService) TiposOperacionPorID(ctx context.Context) (map[string]domain.TipoOperacion, error) {
	cache, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	porID := make(map[string]domain.TipoOperacion, len(cache.tiposOperacion))
	for _, tipo := range cache.tiposOperacion {
		porID[tipo.TipoOperacionID] = tipo
	}
	return porID, nil
}

// ResolverNombre returns the display label for a catalog id. Unknown ids and
// lookup failures degrade to a placeholder so classification never blocks a
// render or an aggregation.
func (s *catalogoService) ResolverNombre(ctx context.Context, kind portssvc.CatalogoKind, id string) string {
	cache, err := s.snapshot(ctx)
	if err != nil {
		return desconocido(id)
	}

	switch kind {
	case portssvc.KindTipoMovimiento:
		for _, t := range cache.tiposMovimiento {
			if t.TipoMovimientoID == id {
				return t.Nombre
			}
		}
	case portssvc.KindTipoOperacion:
		for _, t := range cache.tiposOperacion {
			if t.TipoOperacionID == id {
				return t.Nombre
			}
		}
	case portssvc.KindTipoCaja:
		for _, t := range cache.tiposCaja {
			if t.TipoCajaID == id {
				return t.Nombre
			}
		}
	case portssvc.KindEstadoCaja:
		for _, e := range cache.estadosCaja {
			if e.EstadoCajaID == id {
				return e.Nombre
			}
		}
	}
	return desconocido(id)
}

func desconocido(id string) string {
	return fmt.Sprintf("Desconocido (%s)", id)
}
