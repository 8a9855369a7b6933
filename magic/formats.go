package magic

// Format pairs a predicate with the MIME type it identifies.
type Format struct {
	Name  string
	MIME  string
	Match func(data []byte) bool
}

// Formats returns the predicate set in priority order. Domain formats come
// first so that a NIfTI or DICOM header wins over any generic signature the
// same bytes might also satisfy.
func Formats() []Format {
	formats := []Format{
		{Name: "nifti", MIME: MIMENIfTI, Match: IsNIfTI},
		{Name: "dicom", MIME: MIMEDICOM, Match: IsDICOM},
	}
	for _, sig := range signatures {
		formats = append(formats, Format{Name: sig.Name, MIME: sig.MIME, Match: sig.Match})
	}
	return formats
}

// Detect returns the first format in f that matches data.
func Detect(formats []Format, data []byte) (Format, bool) {
	for _, f := range formats {
		if f.Match != nil && f.Match(data) {
			return f, true
		}
	}
	return Format{}, false
}
