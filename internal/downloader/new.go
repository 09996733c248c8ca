package downloader

import (
	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/pkg/executor"
)

type implDownloader struct {
	cfg      config.DownloaderConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader that shells out to cfg.Binary through exec.
func New(cfg config.DownloaderConfig, exec executor.Executor, log logger.Logger) Downloader {
	return &implDownloader{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
