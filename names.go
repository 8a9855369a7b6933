package mimekit

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gobeaver/mimekit/magic"
)

// Common MIME types
const (
	MIMEOctetStream         = "application/octet-stream"
	MIMETypeTextPlain       = "text/plain"
	MIMETypeTextHTML        = "text/html"
	MIMETypeTextCSS         = "text/css"
	MIMETypeTextJavaScript  = "text/javascript"
	MIMETypeApplicationJSON = "application/json"
	MIMETypeApplicationXML  = "application/xml"
	MIMETypeImageJPEG       = "image/jpeg"
	MIMETypeImagePNG        = "image/png"
	MIMETypeImageGIF        = "image/gif"
	MIMETypeImageSVG        = "image/svg+xml"
	MIMETypeImageWebP       = "image/webp"
	MIMETypeImageTIFF       = "image/tiff"
	MIMETypeAudioMP3        = "audio/mpeg"
	MIMETypeAudioOGG        = "audio/ogg"
	MIMETypeVideoMP4        = "video/mp4"
	MIMETypeVideoWebM       = "video/webm"
	MIMETypeApplicationPDF  = "application/pdf"
	MIMETypeApplicationZip  = "application/zip"
	MIMETypeApplicationGzip = "application/gzip"

	MIMENIfTI = magic.MIMENIfTI
	MIMEDICOM = magic.MIMEDICOM
)

// Common file extensions to MIME types mapping
var extensionToMIME = map[string]string{
	".txt":   MIMETypeTextPlain,
	".html":  MIMETypeTextHTML,
	".htm":   MIMETypeTextHTML,
	".css":   MIMETypeTextCSS,
	".js":    MIMETypeTextJavaScript,
	".json":  MIMETypeApplicationJSON,
	".xml":   MIMETypeApplicationXML,
	".jpg":   MIMETypeImageJPEG,
	".jpeg":  MIMETypeImageJPEG,
	".png":   MIMETypeImagePNG,
	".gif":   MIMETypeImageGIF,
	".svg":   MIMETypeImageSVG,
	".webp":  MIMETypeImageWebP,
	".tif":   MIMETypeImageTIFF,
	".tiff":  MIMETypeImageTIFF,
	".mp3":   MIMETypeAudioMP3,
	".ogg":   MIMETypeAudioOGG,
	".mp4":   MIMETypeVideoMP4,
	".webm":  MIMETypeVideoWebM,
	".pdf":   MIMETypeApplicationPDF,
	".zip":   MIMETypeApplicationZip,
	".gz":    MIMETypeApplicationGzip,
	".tar":   "application/x-tar",
	".csv":   "text/csv",
	".md":    "text/markdown",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",

	// Medical imaging
	".dcm":   MIMEDICOM,
	".dicom": MIMEDICOM,
	".nii":   MIMENIfTI,
}

// compoundExtensions are matched against the end of the name before the
// single trailing extension is considered.
var compoundExtensions = map[string]string{
	".nii.gz": "application/x-nifti-gz",
}

// TypeByName guesses a MIME type from the extension of name without reading
// any content. It returns the type and the lowercased extension it was
// derived from, or two empty strings if the extension is unknown.
func TypeByName(name string) (mimeType, ext string) {
	lower := strings.ToLower(name)

	for suffix, mt := range compoundExtensions {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			return mt, suffix
		}
	}

	ext = filepath.Ext(lower)
	if ext == "" || ext == "." {
		return "", ""
	}

	if mt, ok := extensionToMIME[ext]; ok {
		return mt, ext
	}

	if mt := baseType(mime.TypeByExtension(ext)); mt != "" {
		return mt, ext
	}
	return "", ""
}
