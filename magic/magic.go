// Package magic recognises binary formats from their leading bytes.
//
// Every predicate inspects only the head of the buffer it is given and
// reports whether a known signature is present. Predicates never panic:
// a buffer shorter than the signature simply does not match.
package magic

import "bytes"

// Pattern is a byte sequence expected at a fixed offset from the start of
// the buffer.
type Pattern struct {
	Offset int
	Magic  []byte
}

// Match reports whether data holds p.Magic at p.Offset.
func (p Pattern) Match(data []byte) bool {
	end := p.Offset + len(p.Magic)
	if p.Offset < 0 || end > len(data) {
		return false
	}
	return bytes.Equal(data[p.Offset:end], p.Magic)
}

// Signature identifies one format. All patterns must match.
type Signature struct {
	Name     string
	MIME     string
	Patterns []Pattern
}

// Match reports whether every pattern of s matches data.
func (s Signature) Match(data []byte) bool {
	if len(s.Patterns) == 0 {
		return false
	}
	for _, p := range s.Patterns {
		if !p.Match(data) {
			return false
		}
	}
	return true
}

func at(offset int, magic string) Pattern {
	return Pattern{Offset: offset, Magic: []byte(magic)}
}

// signatures contains the generic file signatures.
// Ordered by specificity (most specific first): container brands such as
// WebP, WAV and HEIC are listed before the bare RIFF and ftyp containers.
var signatures = []Signature{
	// Images
	{Name: "jpeg", MIME: "image/jpeg", Patterns: []Pattern{at(0, "\xFF\xD8\xFF")}},
	{Name: "png", MIME: "image/png", Patterns: []Pattern{at(0, "\x89PNG\r\n\x1a\n")}},
	{Name: "gif", MIME: "image/gif", Patterns: []Pattern{at(0, "GIF87a")}},
	{Name: "gif", MIME: "image/gif", Patterns: []Pattern{at(0, "GIF89a")}},
	{Name: "webp", MIME: "image/webp", Patterns: []Pattern{at(0, "RIFF"), at(8, "WEBP")}},
	{Name: "tiff", MIME: "image/tiff", Patterns: []Pattern{at(0, "II*\x00")}}, // Little endian
	{Name: "tiff", MIME: "image/tiff", Patterns: []Pattern{at(0, "MM\x00*")}}, // Big endian
	{Name: "heic", MIME: "image/heic", Patterns: []Pattern{at(4, "ftypheic")}},
	{Name: "heic", MIME: "image/heic", Patterns: []Pattern{at(4, "ftypmif1")}},
	{Name: "avif", MIME: "image/avif", Patterns: []Pattern{at(4, "ftypavif")}},
	{Name: "ico", MIME: "image/x-icon", Patterns: []Pattern{at(0, "\x00\x00\x01\x00")}},

	// Documents
	{Name: "pdf", MIME: "application/pdf", Patterns: []Pattern{at(0, "%PDF-")}},
	{Name: "xml", MIME: "application/xml", Patterns: []Pattern{at(0, "<?xml")}},

	// Archives
	{Name: "zip", MIME: "application/zip", Patterns: []Pattern{at(0, "PK\x03\x04")}},
	{Name: "zip", MIME: "application/zip", Patterns: []Pattern{at(0, "PK\x05\x06")}}, // Empty ZIP
	{Name: "zip", MIME: "application/zip", Patterns: []Pattern{at(0, "PK\x07\x08")}}, // Spanned ZIP
	{Name: "gzip", MIME: "application/gzip", Patterns: []Pattern{at(0, "\x1F\x8B")}},
	{Name: "tar", MIME: "application/x-tar", Patterns: []Pattern{at(257, "ustar")}},
	{Name: "rar", MIME: "application/x-rar-compressed", Patterns: []Pattern{at(0, "Rar!\x1a\x07\x00")}},
	{Name: "rar", MIME: "application/x-rar-compressed", Patterns: []Pattern{at(0, "Rar!\x1a\x07\x01\x00")}}, // RAR5
	{Name: "7z", MIME: "application/x-7z-compressed", Patterns: []Pattern{at(0, "7z\xBC\xAF\x27\x1C")}},
	{Name: "bzip2", MIME: "application/x-bzip2", Patterns: []Pattern{at(0, "BZh")}},
	{Name: "xz", MIME: "application/x-xz", Patterns: []Pattern{at(0, "\xFD7zXZ\x00")}},

	// Audio
	{Name: "wav", MIME: "audio/wav", Patterns: []Pattern{at(0, "RIFF"), at(8, "WAVE")}},
	{Name: "mp3", MIME: "audio/mpeg", Patterns: []Pattern{at(0, "ID3")}},
	{Name: "flac", MIME: "audio/flac", Patterns: []Pattern{at(0, "fLaC")}},
	{Name: "ogg", MIME: "audio/ogg", Patterns: []Pattern{at(0, "OggS")}},
	{Name: "midi", MIME: "audio/midi", Patterns: []Pattern{at(0, "MThd")}},
	{Name: "m4a", MIME: "audio/mp4", Patterns: []Pattern{at(4, "ftypM4A ")}},

	// Video
	{Name: "avi", MIME: "video/x-msvideo", Patterns: []Pattern{at(0, "RIFF"), at(8, "AVI ")}},
	{Name: "webm", MIME: "video/webm", Patterns: []Pattern{at(0, "\x1A\x45\xDF\xA3")}}, // EBML, shared with MKV
	{Name: "3gp", MIME: "video/3gpp", Patterns: []Pattern{at(4, "ftyp3g")}},
	{Name: "mov", MIME: "video/quicktime", Patterns: []Pattern{at(4, "ftypqt  ")}},
	{Name: "mov", MIME: "video/quicktime", Patterns: []Pattern{at(4, "moov")}},
	{Name: "mp4", MIME: "video/mp4", Patterns: []Pattern{at(4, "ftyp")}},
	{Name: "flv", MIME: "video/x-flv", Patterns: []Pattern{at(0, "FLV")}},

	// Executables
	{Name: "exe", MIME: "application/x-msdownload", Patterns: []Pattern{at(0, "MZ")}},
	{Name: "macho", MIME: "application/x-mach-binary", Patterns: []Pattern{at(0, "\xCF\xFA\xED\xFE")}}, // Mach-O 64-bit
	{Name: "macho", MIME: "application/x-mach-binary", Patterns: []Pattern{at(0, "\xCE\xFA\xED\xFE")}}, // Mach-O 32-bit
	{Name: "elf", MIME: "application/x-executable", Patterns: []Pattern{at(0, "\x7FELF")}},

	// Fonts
	{Name: "woff", MIME: "font/woff", Patterns: []Pattern{at(0, "wOFF")}},
	{Name: "woff2", MIME: "font/woff2", Patterns: []Pattern{at(0, "wOF2")}},
	{Name: "otf", MIME: "font/otf", Patterns: []Pattern{at(0, "OTTO")}},
	{Name: "ttf", MIME: "font/ttf", Patterns: []Pattern{at(0, "\x00\x01\x00\x00")}},

	// Loose two-byte signatures go last
	{Name: "bmp", MIME: "image/bmp", Patterns: []Pattern{at(0, "BM")}},
}

// Signatures returns a copy of the generic signature table in match order.
func Signatures() []Signature {
	out := make([]Signature, len(signatures))
	copy(out, signatures)
	return out
}

// DetectByMagic checks data against the generic signature table and returns
// the MIME type of the first match, or "" if nothing matches.
func DetectByMagic(data []byte) string {
	for _, sig := range signatures {
		if sig.Match(data) {
			return sig.MIME
		}
	}
	return ""
}
