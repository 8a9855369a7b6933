package magic

import "bytes"

// MIME types for the medical imaging formats recognised by this package.
const (
	MIMENIfTI = "image/x.nifti"
	MIMEDICOM = "application/dicom"
)

var (
	// NIfTI-1 stores its magic after the 344-byte fixed header fields.
	nifti1Single = at(344, "n+1\x00")
	nifti1Pair   = at(344, "ni1\x00")

	// NIfTI-2 moves the magic right after sizeof_hdr.
	nifti2Single = at(4, "n+2\x00\r\n\x1a\n")
	nifti2Pair   = at(4, "ni2\x00\r\n\x1a\n")

	dicomPreamble = at(128, "DICM")
)

// IsNIfTI reports whether data starts with a NIfTI-1 or NIfTI-2 header,
// either the single-file (.nii) or the header/image pair (.hdr) variant.
func IsNIfTI(data []byte) bool {
	return IsNIfTI1(data) || IsNIfTI2(data)
}

// IsNIfTI1 reports whether data starts with a NIfTI-1 header.
func IsNIfTI1(data []byte) bool {
	return nifti1Single.Match(data) || nifti1Pair.Match(data)
}

// IsNIfTI2 reports whether data starts with a NIfTI-2 header.
func IsNIfTI2(data []byte) bool {
	return nifti2Single.Match(data) || nifti2Pair.Match(data)
}

// explicit VRs that may open a file meta or identifying group element
var dicomVRs = [][]byte{
	[]byte("AE"), []byte("AS"), []byte("CS"), []byte("DA"), []byte("DS"),
	[]byte("DT"), []byte("IS"), []byte("LO"), []byte("OB"), []byte("PN"),
	[]byte("SH"), []byte("SQ"), []byte("TM"), []byte("UI"), []byte("UL"),
	[]byte("US"),
}

// IsDICOM reports whether data is a DICOM Part 10 file (128-byte preamble
// followed by "DICM") or a raw data set that opens with an explicit-VR
// little-endian element of group 0002 or 0008.
func IsDICOM(data []byte) bool {
	if dicomPreamble.Match(data) {
		return true
	}
	return isRawDICOM(data)
}

func isRawDICOM(data []byte) bool {
	if len(data) < 8 {
		return false
	}
	group := uint16(data[0]) | uint16(data[1])<<8
	if group != 0x0002 && group != 0x0008 {
		return false
	}
	vr := data[4:6]
	for _, known := range dicomVRs {
		if bytes.Equal(vr, known) {
			return true
		}
	}
	return false
}
