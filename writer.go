package wxextract

import (
	"bytes"
	"io"
	"os"
	fp "path/filepath"

	"github.com/pkg/errors"
)

// WriteTo writes the title and source URL as HTML comments, followed by
// the raw content.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("<!-- 标题: " + r.Title + " -->\n")
	buf.WriteString("<!-- URL: " + r.URL + " -->\n")
	buf.WriteString(r.Content)

	return buf.WriteTo(w)
}

// Save writes the result into file at path, replacing its previous content.
func (r *Result) Save(path string) error {
	if err := os.MkdirAll(fp.Dir(path), os.ModePerm); err != nil {
		return errors.Wrap(err, "failed to create output dir")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	defer f.Close()

	if _, err = r.WriteTo(f); err != nil {
		return errors.Wrap(err, "failed to write output file")
	}

	return f.Close()
}
