package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phambaophuc/image-datestamp/internal/models"
	"github.com/phambaophuc/image-datestamp/internal/services/processor"
)

// Session asks the interactive questions of a run. Reaching EOF on input is
// treated as an empty answer.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewScanner(in), out: out}
}

func (s *Session) readLine() string {
	if s.in.Scan() {
		return strings.TrimSpace(s.in.Text())
	}
	return ""
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// InputPath asks for the file or directory to process.
func (s *Session) InputPath() string {
	s.printf("请输入图片文件路径: ")
	return s.readLine()
}

// WatermarkConfig asks for font size, color and position, in that order,
// substituting defaults for anything unusable.
func (s *Session) WatermarkConfig() models.WatermarkConfig {
	s.printf("请设置水印参数:\n")

	s.printf("1. 字体大小 (默认%d): ", models.DefaultFontSize)
	size, ok := ParseFontSize(s.readLine())
	if !ok {
		s.printf("输入无效，使用默认值%d\n", models.DefaultFontSize)
	}

	s.printf("2. 字体颜色 (默认black): ")
	fontColor := processor.ParseColor(s.readLine())

	s.printf("3. 水印位置 (1-9):\n")
	s.printf("   1) 左上  2) 中上  3) 右上\n")
	s.printf("   4) 左中  5) 居中  6) 右中\n")
	s.printf("   7) 左下  8) 中下  9) 右下\n")
	s.printf("选择: ")
	pos, ok := ParsePosition(s.readLine())
	if !ok {
		s.printf("输入无效，使用默认位置：%s\n", models.DefaultPosition.Label())
	}

	return models.WatermarkConfig{
		FontSize:  size,
		FontColor: fontColor,
		Position:  pos,
	}
}

// ParseFontSize returns the default size for empty input. ok is false only
// when the input was present but not a positive integer.
func ParseFontSize(s string) (size int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.DefaultFontSize, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return models.DefaultFontSize, false
	}
	return n, true
}

// ParsePosition maps a 1-9 code to an anchor. Empty and out-of-range codes
// quietly become CENTER; ok is false only for non-numeric input.
func ParsePosition(s string) (pos models.Position, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.DefaultPosition, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return models.DefaultPosition, false
	}
	return models.PositionFromCode(n), true
}
