package main

import (
	"fmt"
	"io"

	"github.com/phambaophuc/image-datestamp/internal/models"
)

// consoleObserver prints one line per file and the final summary.
type consoleObserver struct {
	w io.Writer
}

func (c consoleObserver) OnStart(string, int) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, "正在处理...")
}

func (c consoleObserver) OnFileDone(_, _ int, res models.FileResult) {
	if res.Status == models.StatusCompleted {
		fmt.Fprintf(c.w, "%s - %s - 完成\n", res.Name, res.Date)
		return
	}
	fmt.Fprintf(c.w, "%s - %s - 失败: %s\n", res.Name, res.Date, res.Error)
}

func (c consoleObserver) OnFinish(res *models.BatchResult) {
	fmt.Fprintln(c.w)
	fmt.Fprintf(c.w, "全部完成! 水印图片已保存到 %s\n", res.OutputDir)
	fmt.Fprintf(c.w, "成功: %d 张，失败: %d 张\n", res.SuccessCount, res.FailCount)
}
