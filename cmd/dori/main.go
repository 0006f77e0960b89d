package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/dorilab/dori/internal/ai"
	"github.com/dorilab/dori/internal/config"
	"github.com/dorilab/dori/internal/db"
	"github.com/dorilab/dori/internal/embedcache"
	"github.com/dorilab/dori/internal/filestore"
	"github.com/dorilab/dori/internal/handler"
	"github.com/dorilab/dori/internal/ingest"
	"github.com/dorilab/dori/internal/middleware"
	"github.com/dorilab/dori/internal/model"
	"github.com/dorilab/dori/internal/rag"
	"github.com/dorilab/dori/internal/repo"
	"github.com/dorilab/dori/internal/schedule"
	"github.com/dorilab/dori/internal/seed"
	"github.com/dorilab/dori/internal/speech"
	"github.com/dorilab/dori/internal/tour"
	"github.com/dorilab/dori/internal/translate"
	"github.com/dorilab/dori/internal/vecindex"
)

const (
	answerCacheSize = 256
	answerCacheTTL  = 10 * time.Minute
	askRateWindow   = 2 * time.Second
)

func main() {
	_ = godotenv.Load()

	var configPath string

	rootCmd := &cobra.Command{
		Use:   "dori",
		Short: "dori tour guide robot",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json", "path to config.json")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the tour guide and debug API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, err := setup(configPath)
			if err != nil {
				return err
			}
			defer database.Close()
			return run(cfg, database)
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "load the built-in route, scripts and knowledge docs",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, database, err := setup(configPath)
			if err != nil {
				return err
			}
			defer database.Close()
			seeder := seed.NewSeeder(
				repo.NewSpotRepo(database),
				repo.NewScriptRepo(database),
				repo.NewKnowledgeRepo(database),
			)
			return seeder.Run(context.Background())
		},
	}

	buildIndexCmd := &cobra.Command{
		Use:   "build-index",
		Short: "embed the knowledge corpus and write the vector index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, err := setup(configPath)
			if err != nil {
				return err
			}
			defer database.Close()
			_, embedder, err := newAIStack(cfg)
			if err != nil {
				return err
			}
			builder, err := rag.NewIndexBuilder(repo.NewKnowledgeRepo(database), embedder)
			if err != nil {
				return err
			}
			return builder.BuildAndSave(context.Background(), translate.PivotLanguage, cfg.RAG.IndexPath)
		},
	}

	var ingestSpotCode string
	ingestCmd := &cobra.Command{
		Use:   "ingest <file.md> [file.md...]",
		Short: "chunk markdown knowledge files into the doc store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, database, err := setup(configPath)
			if err != nil {
				return err
			}
			defer database.Close()
			return ingestFiles(context.Background(), database, ingestSpotCode, args)
		},
	}
	ingestCmd.Flags().StringVar(&ingestSpotCode, "spot-code", "", "spot to attach the docs to (optional)")

	rootCmd.AddCommand(runCmd, seedCmd, buildIndexCmd, ingestCmd)
	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func ingestFiles(ctx context.Context, database *sql.DB, spotCode string, paths []string) error {
	spotRepo := repo.NewSpotRepo(database)
	knowledgeRepo := repo.NewKnowledgeRepo(database)
	chunker := ingest.NewChunker()

	var spotID *int64
	if spotCode != "" {
		spot, err := spotRepo.GetByCode(ctx, spotCode)
		if err != nil {
			return fmt.Errorf("resolve spot %q: %w", spotCode, err)
		}
		spotID = &spot.ID
	}

	total := 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, chunk := range chunker.Chunk(ctx, string(content)) {
			doc := &model.KnowledgeDoc{
				SpotID:     spotID,
				PlaceID:    seed.PlaceID,
				Language:   translate.PivotLanguage,
				SourceType: "markdown",
				SourceRef:  fmt.Sprintf("file:%s#%s", filepath.Base(path), chunk.Heading),
				Text:       chunk.Text,
				Tags:       chunk.Tags,
			}
			if _, err := knowledgeRepo.Create(ctx, doc); err != nil {
				return fmt.Errorf("insert chunk from %s: %w", path, err)
			}
			total++
		}
	}
	logutil.GetLogger(ctx).Info("markdown ingested",
		zap.Int("files", len(paths)), zap.Int("chunks", total))
	return nil
}

func setup(configPath string) (*config.Config, *sql.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Init(
		cfg.LogConfig.File,
		cfg.LogConfig.Level,
		int(cfg.LogConfig.FileCount),
		int(cfg.LogConfig.FileSize),
		int(cfg.LogConfig.KeepDays),
		cfg.LogConfig.Console,
	)
	logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

	database, err := db.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.ApplyMigrations(database); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}
	return cfg, database, nil
}

// newAIStack builds the generator and embedder, chaining any configured
// fallback backends behind the primary. The embedder is wrapped in the LRU
// cache so repeated questions do not re-embed.
func newAIStack(cfg *config.Config) (ai.IGenerator, ai.IEmbedder, error) {
	provider, err := ai.NewProvider(cfg.AI.Provider, cfg.AI.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("init ai provider: %w", err)
	}
	generators := []ai.GeneratorEntry{
		{Name: cfg.AI.GenerateModel, Generator: ai.NewGenerator(provider, cfg.AI.GenerateModel)},
	}
	embedders := []ai.EmbedderEntry{
		{Name: cfg.AI.EmbedModel, Embedder: ai.NewEmbedder(provider, cfg.AI.EmbedModel)},
	}
	for _, fb := range cfg.AI.Fallbacks {
		fbProvider, err := ai.NewProvider(fb.Provider, fb.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("init fallback provider %s: %w", fb.Provider, err)
		}
		if fb.GenerateModel != "" {
			generators = append(generators, ai.GeneratorEntry{
				Name: fb.GenerateModel, Generator: ai.NewGenerator(fbProvider, fb.GenerateModel)})
		}
		if fb.EmbedModel != "" {
			embedders = append(embedders, ai.EmbedderEntry{
				Name: fb.EmbedModel, Embedder: ai.NewEmbedder(fbProvider, fb.EmbedModel)})
		}
	}
	generator := ai.WithTimeout(ai.NewGroupGenerator(generators),
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
	embedder := embedcache.WrapLruCacheToEmbedder(ai.NewGroupEmbedder(embedders),
		cfg.AI.EmbedCacheSize, time.Duration(cfg.AI.EmbedCacheTTLMin)*time.Minute)
	return generator, embedder, nil
}

func run(cfg *config.Config, database *sql.DB) error {
	rootLogger := logutil.GetLogger(context.Background())
	rootLogger.Info("starting dori",
		zap.String("place_id", cfg.Tour.PlaceID),
		zap.String("language", cfg.Tour.Language),
		zap.Int("debug_port", cfg.DebugPort),
	)

	spotRepo := repo.NewSpotRepo(database)
	scriptRepo := repo.NewScriptRepo(database)
	knowledgeRepo := repo.NewKnowledgeRepo(database)

	generator, embedder, err := newAIStack(cfg)
	if err != nil {
		return err
	}

	var retriever *rag.Retriever
	if cfg.RAG.IsEnabled() {
		index, err := vecindex.Load(cfg.RAG.IndexPath)
		if err != nil {
			rootLogger.Warn("vector index not loadable, answers will be ungrounded",
				zap.String("path", cfg.RAG.IndexPath), zap.Error(err))
		} else {
			retriever, err = rag.NewRetriever(index, embedder, cfg.RAG.TopK)
			if err != nil {
				return fmt.Errorf("init retriever: %w", err)
			}
			rootLogger.Info("vector index loaded",
				zap.Int("size", index.Len()), zap.Int("dim", index.Dim()))
		}
	}
	assembler := rag.NewContextAssembler(cfg.RAG.IsEnabled(), retriever, knowledgeRepo)
	answerer := rag.NewAnswerer(assembler, generator, answerCacheSize, answerCacheTTL)
	bridge := translate.NewBridge(generator)
	normalizer := tour.NewNounNormalizer()

	recorder := speech.NewAlsaRecorder(cfg.Speech.MicDevice)
	player := speech.NewAlsaPlayer(cfg.Speech.OutputDevice)
	camera := speech.NewWebcamCamera(cfg.Speech.CameraDevice)

	transcriber := speech.NewTranscriber(newSTTClient(cfg.Speech.STT), recorder, speech.TranscriberConfig{
		Model:         cfg.Speech.STT.Model,
		MinAvgLogprob: cfg.Speech.STT.MinAvgLogprob,
		MaxRetries:    cfg.Speech.STT.MaxRetries,
	})
	ttsKey := cfg.Speech.TTS.APIKey
	if ttsKey == "" {
		ttsKey = os.Getenv("ELEVENLABS_API_KEY")
	}
	synthesizer := speech.NewSynthesizer(speech.SynthesizerConfig{
		APIKey:      ttsKey,
		BaseURL:     cfg.Speech.TTS.BaseURL,
		Model:       cfg.Speech.TTS.ModelID,
		MaxChunkLen: cfg.Speech.TTS.MaxChunkChars,
		Voices:      cfg.Speech.TTS.Voices,
	}, player)
	wake := speech.NewWakeDetector()

	store, err := filestore.New(cfg.PhotoStore)
	if err != nil {
		return fmt.Errorf("init photo store: %w", err)
	}
	photographer := tour.NewCameraPhotographer(camera, store)

	controller := tour.NewController(scriptRepo, synthesizer, transcriber, wake, bridge, answerer, photographer,
		tour.ControllerConfig{
			ListenSeconds:       float64(cfg.Tour.ListenSeconds),
			InlineListenSeconds: float64(cfg.Tour.InlineListenSeconds),
			WakeListenSeconds:   float64(cfg.Tour.WakeListenSeconds),
			MaxQATurns:          cfg.Tour.MaxQATurns,
			WakeCooldown:        time.Duration(cfg.Tour.WakeCooldownSeconds) * time.Second,
			PivotLanguage:       translate.PivotLanguage,
		})
	engine := tour.NewEngine(spotRepo, transcriber, wake, controller, tour.EngineConfig{
		Language:          cfg.Tour.Language,
		PlaceID:           cfg.Tour.PlaceID,
		WakeListenSeconds: float64(cfg.Tour.WakeListenSeconds),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	if retriever != nil {
		job, err := schedule.NewIndexFreshnessJob(knowledgeRepo, retriever, translate.PivotLanguage)
		if err != nil {
			return err
		}
		if err := scheduler.AddJob(job, cfg.RAG.FreshnessCron); err != nil {
			return err
		}
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	deps := handler.RouterDeps{
		QA:        handler.NewQAHandler(normalizer, bridge, answerer),
		Tour:      handler.NewTourHandler(engine),
		Photos:    handler.NewPhotoHandler(store),
		AskWindow: askRateWindow,
	}
	web, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.DebugPort),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	go func() {
		if err := web.Run(); err != nil && err != http.ErrServerClosed {
			rootLogger.Error("debug api error", zap.Error(err))
		}
	}()

	go func() {
		if err := engine.Run(ctx); err != nil && ctx.Err() == nil {
			rootLogger.Error("tour engine stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	rootLogger.Info("shutting down")
	return nil
}

func newSTTClient(cfg config.STTConfig) *openai.Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientCfg)
}
