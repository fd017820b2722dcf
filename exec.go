package carve

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/esimov/carve/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

var (
	// sourceExtensions lists the files picked up when walking a directory.
	sourceExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff", ".webp"}
	// targetExtensions lists the formats Encode is able to write.
	targetExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff"}
)

// Ops describes where the images come from and where they go.
type Ops struct {
	Src, Dst, PipeName string
	Workers            int
	// Preview shows the carved image in the terminal. Ignored for directories.
	Preview bool
	Spinner *utils.Spinner
	Logger  *log.Logger
}

// result holds the outcome of carving a single file of a directory.
type result struct {
	path string
	err  error
}

// Execute runs the processor over the configured source. The source can be a
// local file, a URL, the pipe name (stdin) or a directory, in which case every
// supported image is carved concurrently into the destination directory.
func (op *Ops) Execute(ctx context.Context, p *Processor) error {
	src := op.Src

	// Check if source path is a local image or URL.
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(ctx, src)
		if err != nil {
			return wrapError(KindIO, err, "failed to load the source image")
		}
		defer func() {
			f.Close()
			os.Remove(f.Name())
		}()
		src = f.Name()
	}

	if src == op.PipeName {
		return op.process(ctx, p, src, op.Dst, op.Preview)
	}

	fs, err := os.Stat(src)
	if err != nil {
		return wrapError(KindIO, err, "failed to load the source image")
	}
	if fs.IsDir() {
		return op.processDir(ctx, p, src)
	}

	if op.Dst != op.PipeName && !isValidExtension(filepath.Ext(op.Dst), targetExtensions) {
		return newError(KindUnsupported, "%q file type not supported", filepath.Ext(op.Dst))
	}
	return op.process(ctx, p, src, op.Dst, op.Preview)
}

// processDir carves every supported image below dir using a bounded worker pool.
func (op *Ops) processDir(ctx context.Context, p *Processor, dir string) error {
	if op.Dst == op.PipeName {
		return newError(KindUnsupported, "a destination directory is required when the source is a directory")
	}
	if err := os.MkdirAll(op.Dst, 0o755); err != nil {
		return wrapError(KindIO, err, "unable to create the destination directory")
	}

	workers := op.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	paths, errc := walkDir(ctx, dir, sourceExtensions)
	ch := make(chan result)

	// The spinner tracks a single image, it is not shared between workers.
	worker := *op
	worker.Spinner = nil

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			worker.consumer(ctx, p, dir, ch, paths)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var errs []error
	for res := range ch {
		if res.err != nil {
			op.logger().Error("carving failed", "path", res.path, "err", res.err)
			errs = append(errs, res.err)
			continue
		}
		op.logger().Info("image saved", "path", res.path)
	}
	if err := <-errc; err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// consumer reads the path names from the paths channel and carves each image
// into the destination directory, keeping its path relative to dir.
func (op *Ops) consumer(ctx context.Context, p *Processor, dir string, res chan<- result, paths <-chan string) {
	for src := range paths {
		dst, err := op.destination(dir, src)
		if err == nil {
			err = op.process(ctx, p, src, dst, false)
		}

		select {
		case <-ctx.Done():
			return
		case res <- result{path: dst, err: err}:
		}
	}
}

// destination maps a source file found below dir to its output path and
// creates the intermediate directories.
func (op *Ops) destination(dir, src string) (string, error) {
	rel, err := filepath.Rel(dir, src)
	if err != nil {
		return "", wrapError(KindIO, err, "unable to resolve %s", src)
	}
	dst := filepath.Join(op.Dst, rel)
	if strings.EqualFold(filepath.Ext(dst), ".webp") {
		dst = strings.TrimSuffix(dst, filepath.Ext(dst)) + ".png"
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return dst, wrapError(KindIO, err, "unable to create the destination directory")
	}
	return dst, nil
}

// process carves a single image from in to out, either of which may be the pipe name.
func (op *Ops) process(ctx context.Context, p *Processor, in, out string, preview bool) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	src, closeSrc, err := op.openSource(in)
	if err != nil {
		return err
	}
	defer closeSrc()

	img, err := Decode(src)
	if err != nil {
		return err
	}

	if op.Spinner != nil {
		op.Spinner.Start()
	}
	carved, err := p.Carve(img)
	if op.Spinner != nil {
		op.Spinner.Stop()
	}
	if err != nil {
		return err
	}

	dst, closeDst, err := op.openDestination(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeDst(); err == nil && cerr != nil {
			err = wrapError(KindIO, cerr, "unable to close the destination file")
		}
		// remove the generated image file in case of an error
		if err != nil && out != op.PipeName {
			os.Remove(out)
		}
	}()

	if err := Encode(dst, carved, FormatFromPath(out)); err != nil {
		return err
	}
	if preview {
		return ShowPreview(carved)
	}
	return nil
}

// openSource converts the source path to a readable stream.
func (op *Ops) openSource(in string) (io.Reader, func() error, error) {
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, newError(KindIO, "`-` should be used with a pipe for stdin")
		}
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, nil, wrapError(KindIO, err, "unable to open the source file")
	}
	return f, f.Close, nil
}

// openDestination converts the destination path to a writable stream.
func (op *Ops) openDestination(out string) (io.Writer, func() error, error) {
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, newError(KindIO, "`-` should be used with a pipe for stdout")
		}
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, wrapError(KindIO, err, "unable to create the destination file")
	}
	return f, f.Close, nil
}

func (op *Ops) logger() *log.Logger {
	if op.Logger != nil {
		return op.Logger
	}
	return log.Default()
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each supported file to a new channel.
// It finishes when the context is cancelled.
func walkDir(ctx context.Context, src string, srcExts []string) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() || !isValidExtension(filepath.Ext(d.Name()), srcExts) {
				return nil
			}
			select {
			case <-ctx.Done():
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	ext = strings.ToLower(ext)
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}
