package chainfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/spanforest/network"
)

var (
	// ErrMalformedLine indicates a line that does not describe a chain.
	ErrMalformedLine = errors.New("chainfile: malformed chain line")

	// ErrBadWeight indicates a weight field that is not an integer.
	ErrBadWeight = errors.New("chainfile: weight is not an integer")
)

// LineError locates a parse failure. It unwraps to ErrMalformedLine or ErrBadWeight.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("chainfile: line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

type options struct {
	delimiter rune
	comment   rune
	trimSpace bool
	logger    zerolog.Logger
}

// Option configures Read.
type Option func(*options)

// WithDelimiter sets the field separator. Default ','.
func WithDelimiter(d rune) Option {
	return func(o *options) { o.delimiter = d }
}

// WithComment sets the comment character. Zero disables comments. Default '#'.
func WithComment(c rune) Option {
	return func(o *options) { o.comment = c }
}

// WithTrimSpace controls trimming of spaces around fields. Default true.
func WithTrimSpace(trim bool) Option {
	return func(o *options) { o.trimSpace = trim }
}

// WithLogger sets the logger for the read summary. Default discards.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Read parses every chain in r into a new network.Network.
// It stops at the first malformed line.
func Read(r io.Reader, opts ...Option) (*network.Network, error) {
	o := options{delimiter: ',', comment: '#', trimSpace: true, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.delimiter
	cr.Comment = o.comment
	cr.FieldsPerRecord = -1 // chains have any odd length ≥ 3
	cr.ReuseRecord = true

	n := network.New()
	chains := 0
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &LineError{Line: pe.Line, Err: fmt.Errorf("%w: %v", ErrMalformedLine, pe.Err)}
			}

			return nil, fmt.Errorf("chainfile: read: %w", err)
		}
		line, _ := cr.FieldPos(0)

		labels, weights, err := parseChain(fields, o.trimSpace)
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		if err = n.AddChain(labels, weights); err != nil {
			return nil, &LineError{Line: line, Err: fmt.Errorf("%w: %v", ErrMalformedLine, err)}
		}
		chains++
	}

	o.logger.Debug().
		Int("chains", chains).
		Int("vertices", n.VertexCount()).
		Int("edges", n.EdgeCount()).
		Msg("chain input read")

	return n, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chainfile: open %q: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// parseChain splits [v0, v1, w1, v2, w2, ...] into labels and weights.
func parseChain(fields []string, trim bool) ([]string, []int64, error) {
	if len(fields) < 3 || len(fields)%2 == 0 {
		return nil, nil, fmt.Errorf("%w: want vertex,vertex,weight[,vertex,weight...], got %d fields",
			ErrMalformedLine, len(fields))
	}

	hops := (len(fields) - 1) / 2
	labels := make([]string, 0, hops+1)
	weights := make([]int64, 0, hops)
	labels = append(labels, field(fields[0], trim))
	for i := 1; i < len(fields); i += 2 {
		labels = append(labels, field(fields[i], trim))
		raw := field(fields[i+1], trim)
		w, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrBadWeight, raw)
		}
		weights = append(weights, w)
	}

	return labels, weights, nil
}

func field(s string, trim bool) string {
	if trim {
		return strings.TrimSpace(s)
	}

	return s
}
