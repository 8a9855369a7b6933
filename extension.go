package mimekit

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// preferredExtensions pins the extension for types where the system table
// lists several candidates in alphabetical rather than customary order.
var preferredExtensions = map[string]string{
	MIMETypeTextPlain:       ".txt",
	MIMETypeTextHTML:        ".html",
	MIMETypeTextCSS:         ".css",
	MIMETypeTextJavaScript:  ".js",
	MIMETypeApplicationJSON: ".json",
	MIMETypeApplicationXML:  ".xml",
	MIMETypeImageJPEG:       ".jpg",
	MIMETypeImagePNG:        ".png",
	MIMETypeImageGIF:        ".gif",
	MIMETypeImageSVG:        ".svg",
	MIMETypeImageWebP:       ".webp",
	MIMETypeImageTIFF:       ".tif",
	MIMETypeAudioMP3:        ".mp3",
	MIMETypeAudioOGG:        ".ogg",
	MIMETypeVideoMP4:        ".mp4",
	MIMETypeVideoWebM:       ".webm",
	MIMETypeApplicationPDF:  ".pdf",
	MIMETypeApplicationZip:  ".zip",
	MIMETypeApplicationGzip: ".gz",
	MIMEDICOM:               ".dcm",
}

// extensionOverrides covers formats that no standard table knows about.
var extensionOverrides = map[string]string{
	MIMENIfTI:                ".nii",
	"image/x-nifti":          ".nii",
	"application/x-nifti":    ".nii",
	"application/x-nifti-gz": ".nii.gz",
}

// GuessExtension returns a filename extension for mimeType, or "" if none is
// known. Parameters such as "; charset=utf-8" and letter case are ignored.
// The generic application/octet-stream never has an extension.
//
// The standard tables are consulted first; the medical imaging overrides only
// apply when they have no answer.
func GuessExtension(mimeType string) string {
	mt := baseType(mimeType)
	if mt == "" || mt == MIMEOctetStream {
		return ""
	}

	if ext := standardExtension(mt); ext != "" {
		return ext
	}
	return extensionOverrides[mt]
}

func standardExtension(mt string) string {
	if ext, ok := preferredExtensions[mt]; ok {
		return ext
	}

	exts, err := mime.ExtensionsByType(mt)
	if err == nil && len(exts) > 0 {
		return exts[0]
	}

	if m := mimetype.Lookup(mt); m != nil && m.Extension() != "" {
		return m.Extension()
	}
	return ""
}

// baseType strips parameters and normalises case.
func baseType(mimeType string) string {
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = mimeType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
