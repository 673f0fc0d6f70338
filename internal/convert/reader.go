package convert

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader reads delimited records with a configurable field delimiter and
// quote character. Quoting follows RFC 4180: a field may be wrapped in
// the quote rune, a doubled quote inside a quoted field is a literal
// quote, and delimiters and newlines are legal inside quoted fields.
// encoding/csv hardcodes '"' as the quote rune, which rules it out here.
type Reader struct {
	comma rune
	quote rune
	r     *bufio.Reader
}

// NewReader creates a Reader over r using the given delimiter and quote.
func NewReader(r io.Reader, comma, quote rune) *Reader {
	return &Reader{comma: comma, quote: quote, r: bufio.NewReader(r)}
}

// Read returns the next record, or io.EOF when no records remain.
// Empty lines are skipped.
func (r *Reader) Read() ([]string, error) {
	for {
		c, _, err := r.r.ReadRune()
		if err != nil {
			return nil, err
		}
		if c == '\n' {
			continue
		}
		if c == '\r' {
			if next, _, err := r.r.ReadRune(); err == nil && next != '\n' {
				_ = r.r.UnreadRune()
			}
			continue
		}
		_ = r.r.UnreadRune()
		break
	}

	var record []string
	for {
		field, sep, err := r.readField()
		if err != nil && err != io.EOF {
			return nil, err
		}
		record = append(record, field)
		if sep != r.comma {
			return record, nil
		}
	}
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// readField reads one field and reports the rune that ended it: the
// delimiter if more fields follow, '\n' at end of line, or 0 at EOF.
func (r *Reader) readField() (string, rune, error) {
	c, _, err := r.r.ReadRune()
	if err != nil {
		return "", 0, err
	}

	var b strings.Builder
	if c == r.quote {
		return r.readQuotedField(&b)
	}

	for {
		switch c {
		case r.comma:
			return b.String(), r.comma, nil
		case '\n':
			return b.String(), '\n', nil
		case '\r':
			next, _, err := r.r.ReadRune()
			if err != nil {
				return b.String(), 0, err
			}
			if next == '\n' {
				return b.String(), '\n', nil
			}
			b.WriteRune('\r')
			c = next
			continue
		default:
			b.WriteRune(c)
		}
		c, _, err = r.r.ReadRune()
		if err != nil {
			return b.String(), 0, err
		}
	}
}

func (r *Reader) readQuotedField(b *strings.Builder) (string, rune, error) {
	for {
		c, _, err := r.r.ReadRune()
		if err != nil {
			return "", 0, fmt.Errorf("unterminated quoted field")
		}
		if c != r.quote {
			b.WriteRune(c)
			continue
		}

		// Closing quote, or first half of an escaped one.
		next, _, err := r.r.ReadRune()
		if err != nil {
			return b.String(), 0, err
		}
		switch next {
		case r.quote:
			b.WriteRune(r.quote)
		case r.comma:
			return b.String(), r.comma, nil
		case '\n':
			return b.String(), '\n', nil
		case '\r':
			if after, _, err := r.r.ReadRune(); err == nil && after != '\n' {
				_ = r.r.UnreadRune()
			}
			return b.String(), '\n', nil
		default:
			return "", 0, fmt.Errorf("unexpected character %q after quoted field", next)
		}
	}
}
