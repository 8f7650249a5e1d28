package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/phambaophuc/image-datestamp/internal/logger"
	"github.com/phambaophuc/image-datestamp/internal/models"
	"github.com/phambaophuc/image-datestamp/pkg/utils"
	"go.uber.org/zap"
)

var (
	ErrInputNotFound = errors.New("input path does not exist")
	ErrNoImages      = errors.New("no supported image files found")
)

// FileProcessor stamps text onto one image file and writes the result.
type FileProcessor interface {
	ProcessFile(src, dst, text string, cfg models.WatermarkConfig) error
}

// DateResolver produces the capture date stamped on a file.
type DateResolver interface {
	Resolve(path string) models.CaptureDate
}

// BatchService runs the watermark pipeline over a file or directory, one file
// at a time.
type BatchService struct {
	processor FileProcessor
	resolver  DateResolver
	logger    *zap.Logger
	now       func() time.Time
}

func NewBatchService(processor FileProcessor, resolver DateResolver, log *zap.Logger) *BatchService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BatchService{
		processor: processor,
		resolver:  resolver,
		logger:    log,
		now:       time.Now,
	}
}

// Run scans inputPath and processes every matching image.
func (s *BatchService) Run(inputPath string, cfg models.WatermarkConfig, obs Observer) (*models.BatchResult, error) {
	assets, err := s.Scan(inputPath)
	if err != nil {
		return nil, err
	}
	return s.Execute(inputPath, assets, cfg, obs)
}

// Execute creates the output directory and processes assets in order. Only a
// failure to create the output directory is returned as an error; per-file
// failures are recorded in the result.
func (s *BatchService) Execute(inputPath string, assets []models.ImageAsset, cfg models.WatermarkConfig, obs Observer) (*models.BatchResult, error) {
	if obs == nil {
		obs = nopObserver{}
	}

	root, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input path: %w", err)
	}
	outDir := utils.OutputDir(root)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	result := &models.BatchResult{
		RunID:     uuid.New().String(),
		InputPath: root,
		OutputDir: outDir,
		StartedAt: s.now(),
		Files:     make([]models.FileResult, 0, len(assets)),
	}
	log := logger.ForRun(s.logger, result.RunID, root)
	log.Info("Batch started",
		zap.Int("files", len(assets)),
		zap.String("output_dir", outDir),
		zap.Int("font_size", cfg.FontSize),
		zap.Stringer("position", cfg.Position))

	obs.OnStart(outDir, len(assets))
	for i, asset := range assets {
		fr := s.processFile(log, asset, outDir, cfg)
		result.Add(fr)
		obs.OnFileDone(i+1, len(assets), fr)
	}
	result.FinishedAt = s.now()

	log.Info("Batch finished",
		zap.Int("succeeded", result.SuccessCount),
		zap.Int("failed", result.FailCount),
		zap.Duration("elapsed", result.FinishedAt.Sub(result.StartedAt)))
	obs.OnFinish(result)

	return result, nil
}
