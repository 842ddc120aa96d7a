// core/fasta/scan.go
package fasta

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Header is one FASTA record header: the id up to the first whitespace run
// plus the remaining description.
type Header struct {
	ID   string
	Desc string
}

// ParseHeader splits a raw header line into id and description on the first
// whitespace run. A leading '>' is dropped if present.
func ParseHeader(line string) Header {
	body := strings.TrimSpace(strings.TrimPrefix(line, ">"))
	i := strings.IndexAny(body, " \t")
	if i < 0 {
		return Header{ID: body}
	}
	return Header{ID: body[:i], Desc: strings.TrimLeft(body[i+1:], " \t")}
}

// ScanLinesCtx reads FASTA text line by line, calling header for each '>'
// line and body for everything else. Lines are delivered without their
// newline; header lines keep the leading '>'. Either callback may be nil to
// skip that class of line. Cancellation is checked between lines.
func ScanLinesCtx(ctx context.Context, r io.Reader, header, body func(line string) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // sequences are sometimes one huge line
	sc.Buffer(make([]byte, 64*1024), maxLine)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			if header != nil {
				if err := header(line); err != nil {
					return err
				}
			}
		} else if body != nil {
			if err := body(line); err != nil {
				return err
			}
		}
	}
	return sc.Err()
}

// ScanHeadersCtx parses each '>' line of r into a Header and emits it,
// ignoring sequence lines entirely.
func ScanHeadersCtx(ctx context.Context, r io.Reader, emit func(Header) error) error {
	return ScanLinesCtx(ctx, r, func(line string) error {
		return emit(ParseHeader(line))
	}, nil)
}
