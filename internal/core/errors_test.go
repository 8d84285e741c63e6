package core

import (
	"testing"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"
)

func TestErrorKind(t *testing.T) {
	c := qt.New(t)
	err := Errorf(ErrInvalidRule, "invalid rule %q", "B9/S")
	c.Assert(err, qt.ErrorMatches, `invalid rule "B9/S"`)
	c.Assert(KindOf(err), qt.Equals, ErrInvalidRule)

	noted := errgo.NoteMask(err, "cannot parse Life", errgo.Any)
	c.Assert(noted, qt.ErrorMatches, `cannot parse Life: invalid rule "B9/S"`)
	c.Assert(KindOf(noted), qt.Equals, ErrInvalidRule)

	masked := errgo.Mask(err, IsKind(ErrInvalidRange, ErrInvalidRule))
	c.Assert(KindOf(masked), qt.Equals, ErrInvalidRule)
	masked = errgo.Mask(err, IsKind(ErrInvalidColor))
	c.Assert(KindOf(masked), qt.Equals, ErrorKind(0))

	c.Assert(KindOf(nil), qt.Equals, ErrorKind(0))
	c.Assert(KindOf(errgo.New("plain")), qt.Equals, ErrorKind(0))
	c.Assert(ErrEmptyValue.String(), qt.Equals, "empty value")
	c.Assert(ErrorKind(99).String(), qt.Equals, "error kind 99")
}
