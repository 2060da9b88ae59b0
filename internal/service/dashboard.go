package service

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/santiago_crash_dashboard/internal/config"
	"github.com/shenikar/santiago_crash_dashboard/internal/models"
	"github.com/shenikar/santiago_crash_dashboard/internal/observability"
	"github.com/sirupsen/logrus"
)

// ErrNoStreets возвращается, когда улица не выбрана, а подставить первую из датасета нечего
var ErrNoStreets = errors.New("no street selected and dataset has no locations")

// AccidentSource определяет контракт загрузки датасета
type AccidentSource interface {
	LoadAll(ctx context.Context) ([]models.AccidentRecord, error)
}

// AggregateCache определяет контракт кэша агрегатов. Get возвращает (nil, nil) при промахе.
type AggregateCache interface {
	Get(ctx context.Context, key string) (*models.SelectionAggregate, error)
	Set(ctx context.Context, key string, aggregate *models.SelectionAggregate) error
}

// DashboardService определяет контракт для панелей дашборда
type DashboardService interface {
	Streets(ctx context.Context) ([]string, error)
	SingleStreet(ctx context.Context, street string) (*models.StreetMetric, error)
	MultiStreet(ctx context.Context, streets []string) (*models.SelectionAggregate, error)
	Dashboard(ctx context.Context, single string, multi []string) (*models.Dashboard, error)
	Heatmap(ctx context.Context) (*models.CorrelationMatrix, error)
	Summary(ctx context.Context) (*models.Summary, error)
	Health(ctx context.Context) models.DatasetHealth
}

type dashboardService struct {
	records     []models.AccidentRecord
	streets     []string
	total       int
	heatmap     models.CorrelationMatrix
	summary     models.Summary
	fingerprint string
	loadedAt    time.Time

	cache   AggregateCache
	metrics *observability.Metrics
	logger  *logrus.Logger
	cfg     *config.Config
}

// LoadDataset загружает весь датасет из источника один раз при старте
func LoadDataset(ctx context.Context, source AccidentSource, logger *logrus.Logger) ([]models.AccidentRecord, error) {
	log := logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "LoadDataset",
	})
	log.Info("Loading accident dataset")

	records, err := source.LoadAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load accident dataset")
		return nil, fmt.Errorf("service: could not load dataset: %w", err)
	}

	log.WithField("records", len(records)).Info("Accident dataset loaded")
	return records, nil
}

// NewDashboardService создаёт сервис поверх неизменяемой копии датасета.
// cache может быть nil, тогда агрегаты не кэшируются.
func NewDashboardService(records []models.AccidentRecord, cache AggregateCache, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics, clock clockwork.Clock) DashboardService {
	if cache == nil {
		cache = noopCache{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	data := make([]models.AccidentRecord, len(records))
	copy(data, records)

	metrics.DatasetRecords.Set(float64(len(data)))

	return &dashboardService{
		records:     data,
		streets:     DistinctLocations(data),
		total:       TotalAccidents(data),
		heatmap:     BuildCorrelation(data),
		summary:     BuildSummary(data),
		fingerprint: datasetFingerprint(data),
		loadedAt:    clock.Now(),
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
		cfg:         cfg,
	}
}

// Streets возвращает уникальные подписи локаций для селекторов
func (s *dashboardService) Streets(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(s.streets))
	copy(out, s.streets)
	return out, nil
}

// SingleStreet считает аварии для одиночного выбора. Пустой выбор заменяется
// первой локацией датасета, как в селекторе с одним значением.
func (s *dashboardService) SingleStreet(ctx context.Context, street string) (*models.StreetMetric, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	street, err := s.resolveSingle(street)
	if err != nil {
		return nil, err
	}

	agg := s.aggregate(ctx, []string{street})
	metric := streetMetric(street, agg)
	return &metric, nil
}

// MultiStreet считает аварии для множественного выбора без двойного счёта улиц
func (s *dashboardService) MultiStreet(ctx context.Context, streets []string) (*models.SelectionAggregate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	agg := s.aggregate(ctx, streets)
	return &agg, nil
}

// Dashboard собирает все панели для текущего состояния боковой панели
func (s *dashboardService) Dashboard(ctx context.Context, single string, multi []string) (*models.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":      "dashboard",
		"method":       "Dashboard",
		"single":       single,
		"multi_labels": len(multi),
	})

	single, err := s.resolveSingle(single)
	if err != nil {
		log.WithError(err).Warn("Cannot resolve single street selection")
		return nil, err
	}

	singleAgg := s.aggregate(ctx, []string{single})
	multiAgg := s.aggregate(ctx, multi)
	metric := streetMetric(single, singleAgg)

	dashboard := &models.Dashboard{
		Single:  metric,
		Multi:   multiAgg,
		Donut:   BuildDonut(single, metric.TotalAccidents, s.total),
		Map:     BuildMap(s.records, single, multi, s.cfg.MapZoom),
		Heatmap: s.heatmap,
		Summary: s.summary,
	}

	log.WithFields(logrus.Fields{
		"single_total": metric.TotalAccidents,
		"multi_total":  multiAgg.TotalAccidents,
		"map_points":   len(dashboard.Map.Points),
	}).Debug("Dashboard built")
	return dashboard, nil
}

// Heatmap возвращает матрицу корреляций по всему датасету
func (s *dashboardService) Heatmap(ctx context.Context) (*models.CorrelationMatrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	heatmap := s.heatmap
	return &heatmap, nil
}

// Summary возвращает сводку по всему датасету
func (s *dashboardService) Summary(ctx context.Context) (*models.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	summary := s.summary
	return &summary, nil
}

func (s *dashboardService) Health(_ context.Context) models.DatasetHealth {
	return models.DatasetHealth{Records: len(s.records), LoadedAt: s.loadedAt}
}

func (s *dashboardService) resolveSingle(street string) (string, error) {
	if street != "" {
		return street, nil
	}
	if len(s.streets) == 0 {
		return "", ErrNoStreets
	}
	return s.streets[0], nil
}

// aggregate считает агрегат через кэш. Ошибки кэша не фатальны.
func (s *dashboardService) aggregate(ctx context.Context, selections []string) models.SelectionAggregate {
	key := s.cacheKey(selections)
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "aggregate",
		"cache_key":  key,
		"selections": len(selections),
	})

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		log.WithError(err).Warn("Failed to read aggregate from cache")
		s.metrics.AggregateCache.WithLabelValues("error").Inc()
	case cached != nil:
		s.metrics.AggregateCache.WithLabelValues("hit").Inc()
		return *cached
	default:
		s.metrics.AggregateCache.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	agg := Aggregate(s.records, selections)
	s.metrics.AggregateDuration.Observe(time.Since(start).Seconds())

	if err := s.cache.Set(ctx, key, &agg); err != nil {
		log.WithError(err).Warn("Failed to store aggregate in cache")
	}
	return agg
}

// cacheKey привязывает ключ к содержимому датасета, чтобы процессы с разными
// файлами не делили записи в общем Redis.
func (s *dashboardService) cacheKey(selections []string) string {
	h := sha256.New()
	for _, label := range selections {
		h.Write([]byte(label))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("aggregate:%s:%s", s.fingerprint, hex.EncodeToString(h.Sum(nil)[:16]))
}

func streetMetric(street string, agg models.SelectionAggregate) models.StreetMetric {
	key := ""
	if len(agg.CanonicalKeys) > 0 {
		key = agg.CanonicalKeys[0]
	}
	return models.StreetMetric{
		Street:         street,
		CanonicalKey:   key,
		Label:          fmt.Sprintf("Crashes on %s:", key),
		TotalAccidents: agg.TotalAccidents,
	}
}

func datasetFingerprint(records []models.AccidentRecord) string {
	h := sha256.New()
	var buf [8]byte
	for i := range records {
		h.Write([]byte(strings.ToLower(records[i].Location)))
		binary.BigEndian.PutUint64(buf[:], uint64(records[i].AccidentCount))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*models.SelectionAggregate, error) { return nil, nil }

func (noopCache) Set(context.Context, string, *models.SelectionAggregate) error { return nil }
