package utils

import (
	"path/filepath"
	"strings"
)

// SupportedExtensions is the allow-list of input file suffixes, lowercase.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".tiff", ".tif"}

// IsSupportedImage checks the file name suffix against SupportedExtensions,
// ignoring case.
func IsSupportedImage(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range SupportedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// OutputFilename builds "<stem>_wm<ext>" from an input file name. Names with
// no extension (or only a leading dot) get "_wm" appended.
func OutputFilename(name string) string {
	name = filepath.Base(name)
	dot := strings.LastIndex(name, ".")
	if dot <= 0 {
		return name + "_wm"
	}
	return name[:dot] + "_wm" + name[dot:]
}

// OutputDir returns the sibling directory "<base>_watermark" next to input.
func OutputDir(input string) string {
	input = filepath.Clean(input)
	return filepath.Join(filepath.Dir(input), filepath.Base(input)+"_watermark")
}

// OutputFormat maps an output file name to the encoder that writes it.
func OutputFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "png"
	case ".tiff", ".tif":
		return "tiff"
	default:
		return "jpeg"
	}
}
