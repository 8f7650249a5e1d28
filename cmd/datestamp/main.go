package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/phambaophuc/image-datestamp/internal/config"
	"github.com/phambaophuc/image-datestamp/internal/logger"
	"github.com/phambaophuc/image-datestamp/internal/prompt"
	"github.com/phambaophuc/image-datestamp/internal/services/batch"
	"github.com/phambaophuc/image-datestamp/internal/services/metadata"
	"github.com/phambaophuc/image-datestamp/internal/services/processor"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	envFile := pflag.String("env-file", ".env", "path to an optional .env file")
	debug := pflag.Bool("debug", false, "verbose development logging on stderr")
	pflag.Parse()

	// Load configuration
	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	if *debug {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}

	// Initialize logger
	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}

	if !cfg.EnvFileLoaded {
		zl.Debug("No .env file found", zap.String("path", *envFile))
	}

	code := run(cfg, zl, os.Stdin, os.Stdout)
	zl.Sync()
	os.Exit(code)
}

func run(cfg *config.Config, zl *zap.Logger, stdin io.Reader, stdout io.Writer) int {
	fonts := processor.NewFontLoader(cfg.Font.Path, cfg.Font.Dirs, true, zl)
	defer fonts.Close()

	resolver := metadata.NewResolver(metadata.ExifReader{}, zl)
	imageProcessor := processor.NewImageProcessor(fonts, cfg.Output.JPEGQuality, cfg.Storage.MaxFileSize)
	service := batch.NewBatchService(imageProcessor, resolver, zl)
	session := prompt.NewSession(stdin, stdout)

	fmt.Fprintln(stdout, "=== 图片EXIF时间水印工具 ===")
	fmt.Fprintln(stdout)

	inputPath := session.InputPath()

	assets, err := service.Scan(inputPath)
	switch {
	case errors.Is(err, batch.ErrInputNotFound):
		fmt.Fprintln(stdout, "错误：路径不存在！")
		return 1
	case errors.Is(err, batch.ErrNoImages):
		fmt.Fprintln(stdout, "未找到支持的图片文件！")
		return 0
	case err != nil:
		fmt.Fprintf(stdout, "程序执行出错：%v\n", err)
		zl.Error("Scan failed", zap.Error(err))
		return 1
	}

	fmt.Fprintf(stdout, "找到 %d 个图片文件\n", len(assets))
	fmt.Fprintf(stdout, "已经完成读取年月日：%s\n", resolver.Resolve(assets[0].Path))
	fmt.Fprintln(stdout)

	wmCfg := session.WatermarkConfig()

	if _, err := service.Execute(inputPath, assets, wmCfg, consoleObserver{w: stdout}); err != nil {
		fmt.Fprintf(stdout, "程序执行出错：%v\n", err)
		zl.Error("Batch aborted", zap.Error(err))
		return 1
	}
	zl.Debug("Watermark font used", zap.String("source", fonts.Source()))
	return 0
}
