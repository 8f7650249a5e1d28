package processor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FaceSource hands out font faces by pixel size.
type FaceSource interface {
	Face(size int) (font.Face, error)
}

// boldCJKFonts lists bold faces with CJK coverage, most preferred first.
var boldCJKFonts = []string{
	"msyhbd.ttc",
	"msyhbd.ttf",
	"simhei.ttf",
	"NotoSansCJK-Bold.ttc",
	"NotoSansCJKsc-Bold.otf",
	"NotoSansSC-Bold.otf",
	"SourceHanSansSC-Bold.otf",
	"SourceHanSans-Bold.ttc",
	"PingFang.ttc",
	"STHeiti Medium.ttc",
	"Hiragino Sans GB.ttc",
	"wqy-zenhei.ttc",
	"wqy-microhei.ttc",
	"simsun.ttc",
	"Arial Unicode.ttf",
}

// FontLoader resolves the watermark font once and caches one face per size.
// It is not safe for concurrent use.
type FontLoader struct {
	path         string
	dirs         []string
	searchSystem bool
	logger       *zap.Logger

	loaded bool
	font   *opentype.Font
	source string
	faces  map[int]font.Face
}

// NewFontLoader prefers path, then a bold CJK font found under dirs and, if
// searchSystem is set, the platform font directories. The embedded Go Bold
// font is the last resort.
func NewFontLoader(path string, dirs []string, searchSystem bool, logger *zap.Logger) *FontLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FontLoader{
		path:         path,
		dirs:         dirs,
		searchSystem: searchSystem,
		logger:       logger,
		faces:        make(map[int]font.Face),
	}
}

func (l *FontLoader) Face(size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %d", size)
	}
	if face, ok := l.faces[size]; ok {
		return face, nil
	}
	if err := l.load(); err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(l.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	l.faces[size] = face
	return face, nil
}

// Source names the file the font came from, or "gobold" for the embedded one.
func (l *FontLoader) Source() string {
	return l.source
}

// Close releases every cached face.
func (l *FontLoader) Close() error {
	for size, face := range l.faces {
		face.Close()
		delete(l.faces, size)
	}
	return nil
}

func (l *FontLoader) load() error {
	if l.loaded {
		return nil
	}

	if l.path != "" {
		f, err := loadFontFile(l.path)
		if err == nil {
			l.use(f, l.path)
			return nil
		}
		l.logger.Warn("Failed to load configured font, searching system fonts",
			zap.String("path", l.path), zap.Error(err))
	}

	dirs := append([]string(nil), l.dirs...)
	if l.searchSystem {
		dirs = append(dirs, systemFontDirs()...)
	}
	for _, p := range findFonts(dirs, boldCJKFonts) {
		f, err := loadFontFile(p)
		if err == nil && hasGlyph(f, '年') {
			l.use(f, p)
			return nil
		}
		l.logger.Warn("Skipping unusable system font", zap.String("path", p), zap.Error(err))
	}

	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse embedded font: %w", err)
	}
	l.logger.Warn("No CJK font found, falling back to Go Bold; CJK characters may not render")
	l.use(f, "gobold")
	return nil
}

func (l *FontLoader) use(f *opentype.Font, source string) {
	l.font = f
	l.source = source
	l.loaded = true
	l.logger.Debug("Watermark font selected", zap.String("source", source))
}

func loadFontFile(path string) (*opentype.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(b)
		if err != nil {
			return nil, fmt.Errorf("parse font collection: %w", err)
		}
		if coll.NumFonts() == 0 {
			return nil, fmt.Errorf("font collection %s is empty", path)
		}
		return coll.Font(0)
	default:
		return opentype.Parse(b)
	}
}

func hasGlyph(f *opentype.Font, r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

func systemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		return []string{filepath.Join(os.Getenv("WINDIR"), "Fonts"), `C:\Windows\Fonts`}
	case "darwin":
		return []string{"/System/Library/Fonts", "/Library/Fonts", filepath.Join(home, "Library", "Fonts")}
	default:
		return []string{"/usr/share/fonts", "/usr/local/share/fonts", filepath.Join(home, ".fonts"), filepath.Join(home, ".local", "share", "fonts")}
	}
}

// findFonts walks dirs (recursively) and returns every candidate it sees,
// best ranked first. Names are compared case-insensitively.
func findFonts(dirs, candidates []string) []string {
	rank := make(map[string]int, len(candidates))
	for i, c := range candidates {
		rank[strings.ToLower(c)] = i
	}

	type hit struct {
		path string
		rank int
	}
	var hits []hit
	for _, d := range dirs {
		if d == "" {
			continue
		}
		filepath.WalkDir(d, func(path string, e fs.DirEntry, err error) error {
			if err != nil {
				if e != nil && e.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if e.IsDir() {
				return nil
			}
			if r, ok := rank[strings.ToLower(e.Name())]; ok {
				hits = append(hits, hit{path, r})
			}
			return nil
		})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })
	paths := make([]string, len(hits))
	for i, h := range hits {
		paths[i] = h.path
	}
	return paths
}
