package mimekit_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/gobeaver/mimekit"
)

func ExampleTypeByName() {
	for _, name := range []string{"scan.dcm", "brain.nii.gz", "photo.JPG", "README"} {
		mt, ext := mimekit.TypeByName(name)
		fmt.Printf("%s: %q %q\n", name, mt, ext)
	}
	// Output:
	// scan.dcm: "application/dicom" ".dcm"
	// brain.nii.gz: "application/x-nifti-gz" ".nii.gz"
	// photo.JPG: "image/jpeg" ".jpg"
	// README: "" ""
}

func ExampleGuessExtension() {
	fmt.Println(mimekit.GuessExtension("application/dicom"))
	fmt.Println(mimekit.GuessExtension("image/x.nifti"))
	fmt.Printf("%q\n", mimekit.GuessExtension("application/octet-stream"))
	// Output:
	// .dcm
	// .nii
	// ""
}

func ExampleDetector_GuessReader() {
	// A NIfTI-1 header carries its magic at offset 344.
	hdr := make([]byte, 352)
	binary.LittleEndian.PutUint32(hdr, 348)
	copy(hdr[344:], "n+1\x00")

	d, err := mimekit.New(nil)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	r := bytes.NewReader(hdr)
	res, err := d.GuessReader(r)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	pos, _ := r.Seek(0, io.SeekCurrent)
	fmt.Println(res.MIME, res.Extension, res.Source)
	fmt.Println("offset:", pos)
	// Output:
	// image/x.nifti .nii magic:nifti
	// offset: 0
}

func ExampleDetector_GuessFile() {
	fsys := afero.NewMemMapFs()
	_ = fsys.MkdirAll("/incoming", 0o755)
	_ = afero.WriteFile(fsys, "/incoming/upload", []byte("%PDF-1.7\n"), 0o644)

	d, err := mimekit.New(nil, mimekit.WithFs(fsys))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	res, _ := d.GuessFile("/incoming/upload")
	fmt.Println(res.MIME, res.Extension)

	_, err = d.GuessFile("/incoming/missing")
	fmt.Println(mimekit.IsNotExist(err))
	// Output:
	// application/pdf .pdf
	// true
}

func ExampleWithContentSniffing() {
	d, _ := mimekit.New(nil, mimekit.WithContentSniffing(false))

	res, _ := d.GuessFile("/no/such/file")
	fmt.Println(res.Found())

	res, _ = d.GuessFile("/no/such/scan.dcm")
	fmt.Println(res.MIME)
	// Output:
	// false
	// application/dicom
}
