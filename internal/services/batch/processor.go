package batch

import (
	"path/filepath"

	"github.com/phambaophuc/image-datestamp/internal/models"
	"github.com/phambaophuc/image-datestamp/pkg/utils"
	"go.uber.org/zap"
)

func (s *BatchService) processFile(log *zap.Logger, asset models.ImageAsset, outDir string, cfg models.WatermarkConfig) models.FileResult {
	date := s.resolver.Resolve(asset.Path).String()
	dst := filepath.Join(outDir, utils.OutputFilename(asset.Name))

	fr := models.FileResult{
		Name:   asset.Name,
		Source: asset.Path,
		Date:   date,
	}

	if err := s.processor.ProcessFile(asset.Path, dst, date, cfg); err != nil {
		fr.Status = models.StatusFailed
		fr.Error = err.Error()
		log.Warn("File processing failed",
			zap.String("file", asset.Path),
			zap.String("ext", asset.Ext),
			zap.Int64("bytes", asset.Size),
			zap.Error(err))
		return fr
	}

	fr.Status = models.StatusCompleted
	fr.OutputPath = dst
	log.Debug("File processed",
		zap.String("file", asset.Path),
		zap.String("output", dst),
		zap.Int64("bytes", asset.Size),
		zap.String("date", date))
	return fr
}
