package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/gradewatch/gradewatch/internal/grades"
	"github.com/gradewatch/gradewatch/internal/logger"
	"github.com/gradewatch/gradewatch/internal/models"
)

// RetentionWindow is how long a saved result stays fresh. A record whose
// last update is exactly this old already counts as expired.
const RetentionWindow = 7 * 24 * time.Hour

var (
	// ErrSearchNotFound is returned when refresh or confirm targets a card
	// the user has never searched.
	ErrSearchNotFound = errors.New("saved search not found")
)

// MarketplaceSearcher fetches listing summaries for a keyword and region.
type MarketplaceSearcher interface {
	Search(ctx context.Context, keyword, region string) []models.Listing
}

// ImageSearcher resolves a fallback image URL for a card name.
type ImageSearcher interface {
	Search(ctx context.Context, cardName string) string
}

// SearchReader defines read operations for saved searches.
type SearchReader interface {
	Get(ctx context.Context, userID uuid.UUID, cardName string) (*models.SearchDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SearchDB, error)
}

// SearchWriter defines write operations for saved searches.
type SearchWriter interface {
	Upsert(ctx context.Context, userID uuid.UUID, cardName, region, lastResult, lastImage string) error
	ConfirmImage(ctx context.Context, userID uuid.UUID, cardName, imageURL string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CardService runs the search pipeline and manages saved searches.
type CardService struct {
	marketplace MarketplaceSearcher
	imageSearch ImageSearcher
	readRepo    SearchReader
	writeRepo   SearchWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewCardService creates a new CardService.
func NewCardService(
	marketplace MarketplaceSearcher,
	imageSearch ImageSearcher,
	readRepo SearchReader,
	writeRepo SearchWriter,
	kafkaWriter KafkaWriter,
) *CardService {
	return &CardService{
		marketplace: marketplace,
		imageSearch: imageSearch,
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// publishSnapshot publishes a price snapshot to Kafka. Publishing is best
// effort: a missing writer or a broker failure never fails the request.
func (s *CardService) publishSnapshot(ctx context.Context, userID uuid.UUID, cardName, region, operation string, avg map[string]float64) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "card", cardName)
		return
	}

	event := models.SearchEvent{
		EventID:   uuid.NewString(),
		Timestamp: s.now().Unix(),
		UserID:    userID.String(),
		CardName:  cardName,
		Region:    region,
		Operation: operation,
		Avg:       avg,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal search event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish search event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("search event published", "event_id", event.EventID, "card", cardName)
	}
}

// runPipeline fetches listings, aggregates prices per grade, and resolves an
// image, falling back to image search when the marketplace supplied none.
func (s *CardService) runPipeline(ctx context.Context, cardName, region string) (models.GradeReport, string) {
	listings := s.marketplace.Search(ctx, cardName, region)
	report, image := grades.Aggregate(listings)
	if image == "" {
		image = s.imageSearch.Search(ctx, cardName)
	}
	return report, image
}

// Search runs the pipeline for a card and saves the result, overwriting any
// previous record for the same card and clearing its confirmed flag.
func (s *CardService) Search(ctx context.Context, userID uuid.UUID, cardName, region string) (models.GradeReport, string, error) {
	report, image := s.runPipeline(ctx, cardName, region)

	payload, err := json.Marshal(report)
	if err != nil {
		logger.Log.Errorw("failed to marshal grade report", "card", cardName, "error", err)
		return models.GradeReport{}, "", err
	}

	if err := s.writeRepo.Upsert(ctx, userID, cardName, region, string(payload), image); err != nil {
		logger.Log.Errorw("failed to save search", "userID", userID, "card", cardName, "error", err)
		return models.GradeReport{}, "", err
	}

	s.publishSnapshot(ctx, userID, cardName, region, "search", report.Avg)

	return report, image, nil
}

// Refresh re-runs the pipeline for an existing record using its stored
// region. The stored region is always trusted; there is no way to change it
// other than a fresh search.
func (s *CardService) Refresh(ctx context.Context, userID uuid.UUID, cardName string) (models.GradeReport, string, error) {
	record, err := s.readRepo.Get(ctx, userID, cardName)
	if err != nil {
		logger.Log.Errorw("failed to load saved search", "userID", userID, "card", cardName, "error", err)
		return models.GradeReport{}, "", err
	}
	if record == nil {
		return models.GradeReport{}, "", ErrSearchNotFound
	}

	report, image := s.runPipeline(ctx, cardName, record.Region)

	payload, err := json.Marshal(report)
	if err != nil {
		logger.Log.Errorw("failed to marshal grade report", "card", cardName, "error", err)
		return models.GradeReport{}, "", err
	}

	if err := s.writeRepo.Upsert(ctx, userID, cardName, record.Region, string(payload), image); err != nil {
		logger.Log.Errorw("failed to save refreshed search", "userID", userID, "card", cardName, "error", err)
		return models.GradeReport{}, "", err
	}

	s.publishSnapshot(ctx, userID, cardName, record.Region, "refresh", report.Avg)

	return report, image, nil
}

// ConfirmImage marks the record's image as user-accepted. Price data is
// untouched; only the image, the confirmed flag, and the timestamp change.
func (s *CardService) ConfirmImage(ctx context.Context, userID uuid.UUID, cardName, imageURL string) error {
	err := s.writeRepo.ConfirmImage(ctx, userID, cardName, imageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSearchNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to confirm image", "userID", userID, "card", cardName, "error", err)
		return err
	}
	return nil
}

// ListSaved returns all of the user's saved searches annotated with the
// derived expired flag.
func (s *CardService) ListSaved(ctx context.Context, userID uuid.UUID) ([]models.SavedSearch, error) {
	records, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list saved searches", "userID", userID, "error", err)
		return nil, err
	}

	now := s.now()
	saved := make([]models.SavedSearch, 0, len(records))
	for _, record := range records {
		var report models.GradeReport
		if record.LastResult != "" {
			if err := json.Unmarshal([]byte(record.LastResult), &report); err != nil {
				logger.Log.Errorw("failed to decode stored result", "card", record.CardName, "error", err)
			}
		}

		saved = append(saved, models.SavedSearch{
			CardName:    record.CardName,
			Region:      record.Region,
			LastResult:  report,
			LastImage:   record.LastImage,
			LastUpdated: record.UpdatedAt,
			Confirmed:   record.Confirmed,
			Expired:     record.UpdatedAt.IsZero() || now.Sub(record.UpdatedAt) >= RetentionWindow,
		})
	}

	return saved, nil
}
