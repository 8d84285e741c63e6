package automaton

import (
	"strconv"
	"strings"

	errgo "gopkg.in/errgo.v1"

	"lifeca/internal/core"
	"lifeca/internal/structtext"
)

// Range is an inclusive rectangle of integer coordinates. It is used for
// both the terrain and the window of an automaton.
type Range struct {
	XStart, XEnd int
	YStart, YEnd int
}

// NewRange returns the range with the given bounds.
func NewRange(xStart, xEnd, yStart, yEnd int) (Range, error) {
	if xStart > xEnd || yStart > yEnd {
		return Range{}, core.Errorf(core.ErrInvalidRange, "invalid range: %d..%d, %d..%d", xStart, xEnd, yStart, yEnd)
	}
	return Range{XStart: xStart, XEnd: xEnd, YStart: yStart, YEnd: yEnd}, nil
}

// ParseRange reads a range from its two "low..high" axis strings.
func ParseRange(xStr, yStr string) (Range, error) {
	var r Range
	var err error
	if r.XStart, r.XEnd, err = parseBounds(xStr); err != nil {
		return Range{}, err
	}
	if r.YStart, r.YEnd, err = parseBounds(yStr); err != nil {
		return Range{}, err
	}
	return r, nil
}

// ParseRangeStruct reads a range from a { Xrange = ...; Yrange = ...; }
// struct. Both axes are required.
func ParseRangeStruct(body string) (Range, error) {
	values, err := structtext.Parse(body)
	if err != nil {
		return Range{}, errgo.Mask(err, errgo.Any)
	}
	x, err := values.Value("Xrange", true)
	if err != nil {
		return Range{}, errgo.Mask(err, errgo.Any)
	}
	y, err := values.Value("Yrange", true)
	if err != nil {
		return Range{}, errgo.Mask(err, errgo.Any)
	}
	return ParseRange(x, y)
}

// Update overwrites the axes whose strings are non-empty. Nothing changes
// when either string is invalid.
func (r *Range) Update(xStr, yStr string) error {
	next := *r
	var err error
	if strings.TrimSpace(xStr) != "" {
		if next.XStart, next.XEnd, err = parseBounds(xStr); err != nil {
			return err
		}
	}
	if strings.TrimSpace(yStr) != "" {
		if next.YStart, next.YEnd, err = parseBounds(yStr); err != nil {
			return err
		}
	}
	*r = next
	return nil
}

// XRange returns the x axis as "low..high".
func (r Range) XRange() string { return boundsString(r.XStart, r.XEnd) }

// YRange returns the y axis as "low..high".
func (r Range) YRange() string { return boundsString(r.YStart, r.YEnd) }

// Cols returns the number of x positions in the range.
func (r Range) Cols() int { return r.XEnd - r.XStart + 1 }

// Rows returns the number of y positions in the range.
func (r Range) Rows() int { return r.YEnd - r.YStart + 1 }

// Contains reports whether (x, y) lies inside the range.
func (r Range) Contains(x, y int) bool {
	return x >= r.XStart && x <= r.XEnd && y >= r.YStart && y <= r.YEnd
}

// Fit wraps (x, y) toroidally into the range.
func (r Range) Fit(x, y int) (int, int) {
	return fit(x, r.XStart, r.Cols()), fit(y, r.YStart, r.Rows())
}

func fit(pos, start, length int) int {
	return start + ((pos-start)%length+length)%length
}

// Field returns the range as a struct text field with the given name.
func (r Range) Field(name string) structtext.Field {
	return structtext.Struct(name,
		structtext.Assign("Xrange", r.XRange()),
		structtext.Assign("Yrange", r.YRange()),
	)
}

func (r Range) String() string {
	return r.XRange() + ", " + r.YRange()
}

func parseBounds(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	lo, hi, ok := strings.Cut(s, "..")
	if !ok {
		return 0, 0, core.Errorf(core.ErrInvalidRange, "invalid range %q: want low..high", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, core.Errorf(core.ErrInvalidRange, "invalid range %q: bad start", s)
	}
	end, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, core.Errorf(core.ErrInvalidRange, "invalid range %q: bad end", s)
	}
	if start > end {
		return 0, 0, core.Errorf(core.ErrInvalidRange, "invalid range %q: start is greater than end", s)
	}
	return start, end, nil
}

func boundsString(start, end int) string {
	return strconv.Itoa(start) + ".." + strconv.Itoa(end)
}
