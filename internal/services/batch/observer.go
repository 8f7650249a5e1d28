package batch

import "github.com/phambaophuc/image-datestamp/internal/models"

// Observer receives progress events so the pipeline itself never writes to
// the console.
type Observer interface {
	OnStart(outputDir string, total int)
	OnFileDone(idx, total int, res models.FileResult)
	OnFinish(res *models.BatchResult)
}

type nopObserver struct{}

func (nopObserver) OnStart(string, int)                    {}
func (nopObserver) OnFileDone(int, int, models.FileResult) {}
func (nopObserver) OnFinish(*models.BatchResult)           {}
