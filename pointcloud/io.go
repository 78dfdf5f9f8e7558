package pointcloud

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/seqsense/pointcloud-playground/mat"
)

// Delimiter separates the fields of a data line.
const Delimiter = ", "

const maxLineLength = 1024 * 1024

// ErrTooFewFields is wrapped by ParseError when a data line has less than
// three fields.
var ErrTooFewFields = errors.New("too few fields")

// ParseError is returned when the source can't be loaded as a whole.
type ParseError struct {
	// Line is 1-based line number in the source. Zero means the error is not
	// related to a specific line.
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "pointcloud: " + e.Err.Error()
	}
	return fmt.Sprintf("pointcloud: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a cloud from delimited text.
// The first line is a header and ignored. Each of the following lines
// must contain at least three fields separated by Delimiter; they are
// x, y and z of a point and any extra fields are ignored.
//
// Any malformed line aborts the load and a *ParseError is returned.
func Parse(r io.Reader) (*PointCloud, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineLength)

	pc := New()
	var n int
	for s.Scan() {
		n++
		if n == 1 {
			continue
		}
		line := s.Text()
		p, err := parseLine(strings.TrimSpace(line))
		if err != nil {
			return nil, &ParseError{Line: n, Text: line, Err: err}
		}
		pc.Add(p)
	}
	if err := s.Err(); err != nil {
		return nil, &ParseError{Line: n + 1, Err: err}
	}
	return pc, nil
}

func parseLine(line string) (mat.Vec3, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) < 3 {
		return mat.Vec3{}, ErrTooFewFields
	}
	var v mat.Vec3
	for i := range v {
		f, err := parseFloat(fields[i])
		if err != nil {
			return mat.Vec3{}, err
		}
		v[i] = f
	}
	return v, nil
}

// parseFloat parses a decimal number.
// Go literal extensions (digit separators and hexadecimal) are rejected.
// Out of range values are rounded to ±Inf as IEEE 754 does.
func parseFloat(s string) (float32, error) {
	unsigned := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if strings.ContainsRune(s, '_') ||
		strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return float32(f), nil
}

// ReadFile loads a cloud from the named file.
// Failure to open or read the file is also reported as *ParseError.
func ReadFile(name string) (*PointCloud, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()
	return Parse(f)
}

// Write writes pc in the format read by Parse.
// header must not contain a line break.
func Write(w io.Writer, pc *PointCloud, header string) error {
	if strings.ContainsAny(header, "\r\n") {
		return errors.New("header must be a single line")
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header + "\n"); err != nil {
		return err
	}
	buf := make([]byte, 0, 64)
	for _, p := range pc.points {
		buf = buf[:0]
		for i := range p {
			if i > 0 {
				buf = append(buf, Delimiter...)
			}
			buf = strconv.AppendFloat(buf, float64(p[i]), 'g', -1, 32)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
