// internal/appcore/sources.go
package appcore

import (
	"context"
	"fmt"
	"io"

	"taxdump-core/builder"
	"taxdump-core/fasta"
)

// HeaderSource streams the parsed FASTA headers of every file in order.
// Files may be plain, gzipped or "-" for stdin.
func HeaderSource(ctx context.Context, files []string) builder.Source {
	return func(emit func(fasta.Header) error) error {
		return eachFile(ctx, files, func(ctx context.Context, r io.Reader) error {
			return fasta.ScanHeadersCtx(ctx, r, emit)
		})
	}
}

// LineSource streams the raw FASTA lines of every file in order, keeping
// header and body lines apart.
func LineSource(ctx context.Context, files []string) builder.LineSource {
	return func(header, body func(line string) error) error {
		return eachFile(ctx, files, func(ctx context.Context, r io.Reader) error {
			return fasta.ScanLinesCtx(ctx, r, header, body)
		})
	}
}

func eachFile(ctx context.Context, files []string, scan func(context.Context, io.Reader) error) error {
	for _, path := range files {
		if err := scanFile(ctx, path, scan); err != nil {
			return err
		}
	}
	return nil
}

func scanFile(ctx context.Context, path string, scan func(context.Context, io.Reader) error) error {
	rc, err := fasta.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := scan(ctx, rc); err != nil {
		if ctx.Err() != nil {
			return err
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
