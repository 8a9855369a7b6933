// Package mimekit identifies the MIME type and a matching filename extension
// of files and streams. It is meant to sit at the front of ingestion
// pipelines, for example medical imaging ones, that must branch on file type
// before parsing.
//
// # Resolution Order
//
// A [Detector] tries the cheap, reliable answer first and only reads content
// when it has to:
//
//  1. The extension of the input name (a path, or the Name() of a stream).
//     Content is never read when this answers.
//  2. If content sniffing is enabled, the first 2048 bytes are read and
//     passed through the sniffing chain:
//     - the native backend (github.com/gabriel-vasile/mimetype),
//     - the fallback backend (github.com/h2non/filetype),
//     - the format predicates of package magic, NIfTI and DICOM first,
//     - application/octet-stream.
//
// A backend that is not usable in the process, or that can only say
// "generic binary", is skipped so a later backend or predicate gets a chance.
//
// # Basic Usage
//
//	res, err := mimekit.GuessFile("scan.dcm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.MIME, res.Extension) // application/dicom .dcm
//
// Streams are inspected without moving their read offset:
//
//	f, _ := os.Open("upload.bin")
//	defer f.Close()
//
//	res, err := mimekit.GuessReader(f)
//	// f still reads from where it was before the call
//
// # Configuration
//
// The global detector reads its settings from the environment:
//
//	BEAVER_MIMEKIT_USE_CONTENT_SNIFFING=true
//	BEAVER_MIMEKIT_WINDOW_SIZE=2048
//	BEAVER_MIMEKIT_NATIVE_SNIFFER=true
//	BEAVER_MIMEKIT_FALLBACK_SNIFFER=true
//
// Dedicated instances are built with [New] and functional options:
//
//	d, err := mimekit.New(nil,
//	    mimekit.WithLogger(logger),
//	    mimekit.WithFs(afero.NewMemMapFs()),
//	)
//
// # Errors
//
// Only structural problems are reported: a path that does not exist
// ([ErrNotExist]) and a stream that cannot seek back after peeking
// ([ErrNotSupported]). Failing to classify content is not an error.
package mimekit
