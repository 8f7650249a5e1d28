package models

// ImageAsset is one input file selected for processing. Pixels are decoded by
// the pipeline only while the file is being worked on.
type ImageAsset struct {
	Path string
	Name string
	Ext  string
	Size int64
}
