package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/phambaophuc/image-datestamp/internal/models"
	"github.com/phambaophuc/image-datestamp/pkg/utils"
	"go.uber.org/zap"
)

// Scan lists the supported images under inputPath in lexical order. A file
// path yields at most one asset. Unreadable sub-directories are skipped.
func (s *BatchService) Scan(inputPath string) ([]models.ImageAsset, error) {
	if strings.TrimSpace(inputPath) == "" {
		return nil, ErrInputNotFound
	}
	root, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}

	var assets []models.ImageAsset
	if !info.IsDir() {
		if utils.IsSupportedImage(info.Name()) {
			assets = append(assets, newAsset(root, info))
		}
	} else {
		assets, err = s.walk(root)
		if err != nil {
			return nil, err
		}
	}

	if len(assets) == 0 {
		return nil, ErrNoImages
	}
	return assets, nil
}

func (s *BatchService) walk(root string) ([]models.ImageAsset, error) {
	outDir := utils.OutputDir(root)

	assets := make([]models.ImageAsset, 0, 64)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			s.logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(walkErr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// Only reachable when the input is a filesystem root.
			if path == outDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !utils.IsSupportedImage(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			s.logger.Warn("Skipping file", zap.String("path", path), zap.Error(err))
			return nil
		}
		assets = append(assets, newAsset(path, info))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return assets, nil
}

func newAsset(path string, info fs.FileInfo) models.ImageAsset {
	return models.ImageAsset{
		Path: path,
		Name: info.Name(),
		Ext:  strings.ToLower(filepath.Ext(info.Name())),
		Size: info.Size(),
	}
}
