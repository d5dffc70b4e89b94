package driven

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// Browser opens a URL outside the application.
type Browser interface {
	Open(url string) error
}

// ImageDecoder reads image dimensions.
type ImageDecoder interface {
	// Decode returns the format name and pixel size of data.
	Decode(data []byte) (format string, width, height int, err error)
}
