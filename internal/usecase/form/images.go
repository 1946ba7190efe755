package form

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/h2non/filetype"
)

// DefaultMaxImageBytes is the per-image cap (2 MiB).
const DefaultMaxImageBytes int64 = 2 * 1024 * 1024

// ImageFile is one file picked by the user. Size is checked before Open is called.
type ImageFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// ImageFromBytes wraps an in-memory file.
func ImageFromBytes(name string, data []byte) ImageFile {
	return ImageFile{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

type WarningCode string

const (
	WarningImageTooLarge WarningCode = "IMAGE_TOO_LARGE"
	WarningNotAnImage    WarningCode = "NOT_AN_IMAGE"
	WarningReadFailed    WarningCode = "IMAGE_READ_FAILED"
)

// Warning is shown to the user for a file that was skipped.
type Warning struct {
	File    string      `json:"file"`
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// readDataURL reads f into an inline data URL. The size limit is enforced again
// while reading, since Size is reported by the client.
func readDataURL(f ImageFile, maxBytes int64) (string, *Warning) {
	if f.Size > maxBytes {
		return "", tooLarge(f.Name, maxBytes)
	}

	rc, err := f.Open()
	if err != nil {
		return "", &Warning{File: f.Name, Code: WarningReadFailed, Message: "Não foi possível ler a imagem."}
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxBytes+1))
	if err != nil {
		return "", &Warning{File: f.Name, Code: WarningReadFailed, Message: "Não foi possível ler a imagem."}
	}
	if int64(len(data)) > maxBytes {
		return "", tooLarge(f.Name, maxBytes)
	}

	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		return "", &Warning{File: f.Name, Code: WarningNotAnImage, Message: "O arquivo não é uma imagem."}
	}

	return "data:" + kind.MIME.Value + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func tooLarge(name string, maxBytes int64) *Warning {
	return &Warning{
		File:    name,
		Code:    WarningImageTooLarge,
		Message: fmt.Sprintf("Imagem muito grande! Máximo %dMB.", maxBytes/(1024*1024)),
	}
}
