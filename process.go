package carve

import (
	"io"
	"os"
)

// Process decodes the image read from r, carves it and encodes the result
// into w in the given format (see Encode).
func (p *Processor) Process(r io.Reader, w io.Writer, format string) error {
	src, err := Decode(r)
	if err != nil {
		return err
	}
	dst, err := p.Carve(src)
	if err != nil {
		return err
	}
	return Encode(w, dst, format)
}

// ProcessFile carves the image stored at src and writes it to dst, choosing the
// output format from dst's extension. The source is fully read and carved before
// dst is opened, so src and dst may name the same file. A partially written dst
// is removed on failure.
func (p *Processor) ProcessFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return wrapError(KindIO, err, "unable to open the source file")
	}
	img, err := Decode(in)
	in.Close()
	if err != nil {
		return err
	}
	carved, err := p.Carve(img)
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return wrapError(KindIO, err, "unable to create the destination file")
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = wrapError(KindIO, cerr, "unable to close the destination file")
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	return Encode(out, carved, FormatFromPath(dst))
}
