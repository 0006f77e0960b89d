package seed

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/dorilab/dori/internal/model"
	"github.com/dorilab/dori/internal/repo"
)

// PlaceID of the first supported palace. Additional palaces get their own
// route and knowledge set under a new place id.
const PlaceID = "gyeongbokgung"

type spotSeed struct {
	code        string
	nameEN      string
	names       map[string]string
	orderNo     int
	isPhotoSpot bool
}

type docSeed struct {
	spotCode   string
	text       string
	sourceType string
	sourceRef  string
	tags       []string
}

// Seeder loads the built-in Gyeongbokgung tour data: the route, the English
// narration scripts and the knowledge corpus the index is built from.
type Seeder struct {
	spots     *repo.SpotRepo
	scripts   *repo.ScriptRepo
	knowledge *repo.KnowledgeRepo
}

func NewSeeder(spots *repo.SpotRepo, scripts *repo.ScriptRepo, knowledge *repo.KnowledgeRepo) *Seeder {
	return &Seeder{spots: spots, scripts: scripts, knowledge: knowledge}
}

// Run upserts the route and inserts scripts and knowledge docs. Script
// inserts are conflict-ignored so reruns are safe; knowledge docs are only
// inserted when the table is empty to avoid duplicating the corpus.
func (s *Seeder) Run(ctx context.Context) error {
	logger := logutil.GetLogger(ctx).With(zap.String("place_id", PlaceID))

	for _, seed := range tourRoute {
		spot := &model.Spot{
			PlaceID:     PlaceID,
			Code:        seed.code,
			NameEN:      seed.nameEN,
			Names:       seed.names,
			OrderNo:     seed.orderNo,
			IsPhotoSpot: seed.isPhotoSpot,
		}
		if err := s.spots.Upsert(ctx, spot); err != nil {
			return err
		}
	}
	logger.Info("route seeded", zap.Int("spots", len(tourRoute)))

	scriptCount := 0
	for _, seed := range tourRoute {
		spot, err := s.spots.GetByCode(ctx, seed.code)
		if err != nil {
			return err
		}
		for idx, text := range spotScripts[seed.code] {
			paragraph := &model.ScriptParagraph{
				SpotID:      spot.ID,
				OrderInSpot: idx + 1,
				Language:    "en",
				Text:        text,
			}
			if err := s.scripts.Create(ctx, paragraph); err != nil {
				return err
			}
			scriptCount++
		}
	}
	logger.Info("scripts seeded", zap.Int("paragraphs", scriptCount))

	count, _, err := s.knowledge.Stats(ctx, "en")
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("knowledge docs already present, skipping", zap.Int64("count", count))
		return nil
	}
	for _, seed := range knowledgeDocs {
		spot, err := s.spots.GetByCode(ctx, seed.spotCode)
		if err != nil {
			return err
		}
		spotID := spot.ID
		doc := &model.KnowledgeDoc{
			SpotID:     &spotID,
			PlaceID:    PlaceID,
			Language:   "en",
			SourceType: seed.sourceType,
			SourceRef:  seed.sourceRef,
			Text:       seed.text,
			Tags:       seed.tags,
		}
		if _, err := s.knowledge.Create(ctx, doc); err != nil {
			return err
		}
	}
	logger.Info("knowledge docs seeded", zap.Int("docs", len(knowledgeDocs)))
	return nil
}
