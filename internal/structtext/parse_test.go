package structtext

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"

	"lifeca/internal/core"
)

var parseTests = []struct {
	testName    string
	data        string
	expect      Values
	expectError string
	expectKind  core.ErrorKind
}{{
	testName: "flat",
	data:     `Xrange=0..10;Yrange=-5..5;`,
	expect:   Values{"Xrange": "0..10", "Yrange": "-5..5"},
}, {
	testName: "outer-braces-stripped",
	data:     `{Alive=42;Dead=46;}`,
	expect:   Values{"Alive": "42", "Dead": "46"},
}, {
	testName: "nested-struct-kept-raw",
	data:     `Name="glider";Terrain={Xrange=0..10;Yrange=0..10;};Rule=B3/S23;`,
	expect: Values{
		"Name":    "glider",
		"Terrain": "{Xrange=0..10;Yrange=0..10;}",
		"Rule":    "B3/S23",
	},
}, {
	testName: "top-level-document",
	data:     `Life={Rule=B3/S23;Initial={Alive=(1,2),(2,2);};};`,
	expect:   Values{"Life": "{Rule=B3/S23;Initial={Alive=(1,2),(2,2);};}"},
}, {
	testName: "quoted-delimiters",
	data:     `Name="a{b}=c;d";Rule=B3/S23;`,
	expect:   Values{"Name": "a{b}=c;d", "Rule": "B3/S23"},
}, {
	testName: "empty-value-permitted",
	data:     `Alive=;Dead=46;`,
	expect:   Values{"Alive": "", "Dead": "46"},
}, {
	testName: "whitespace-tolerated",
	data:     ` Xrange = 0..10 ; Name = "two words" ; `,
	expect:   Values{"Xrange": "0..10", "Name": "two words"},
}, {
	testName: "trailing-text-ignored",
	data:     `A=1;junk`,
	expect:   Values{"A": "1"},
}, {
	testName: "empty-document",
	data:     ``,
	expect:   Values{},
}, {
	testName:    "unclosed-brace",
	data:        `Terrain={Xrange=0..10;Yrange=0..10;;`,
	expectError: `malformed document: 1 unclosed '{'`,
	expectKind:  core.ErrMalformedDocument,
}, {
	testName:    "stray-close-brace",
	data:        `A=1;}{`,
	expectError: `malformed document: unexpected '}' at offset 4`,
	expectKind:  core.ErrMalformedDocument,
}, {
	testName:    "missing-semicolon",
	data:        `A=1;B=2`,
	expectError: `malformed document: 1 unterminated assignments`,
	expectKind:  core.ErrMalformedDocument,
}, {
	testName:    "semicolon-before-assignment",
	data:        `;A=1;`,
	expectError: `malformed document: unexpected ';' at offset 0`,
	expectKind:  core.ErrMalformedDocument,
}, {
	testName:    "unterminated-quote",
	data:        `Name="glider;`,
	expectError: `malformed document: unterminated quote`,
	expectKind:  core.ErrMalformedDocument,
}}

func TestParse(t *testing.T) {
	c := qt.New(t)
	for _, test := range parseTests {
		c.Run(test.testName, func(c *qt.C) {
			got, err := Parse(test.data)
			if test.expectError != "" {
				c.Assert(err, qt.ErrorMatches, test.expectError)
				c.Assert(core.KindOf(err), qt.Equals, test.expectKind)
				c.Assert(got, qt.IsNil)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.DeepEquals, test.expect)
		})
	}
}

func TestParseNestedRecursively(t *testing.T) {
	c := qt.New(t)
	doc := Clean(`
Life = {
	Terrain = { Xrange = 0..10; Yrange = 0..10; };
	Initial = { Alive = (1,2),(2,2),(3,2); };
};
`)
	top, err := Parse(doc)
	c.Assert(err, qt.IsNil)
	life, err := Parse(top["Life"])
	c.Assert(err, qt.IsNil)
	terrain, err := Parse(life["Terrain"])
	c.Assert(err, qt.IsNil)
	c.Assert(terrain, qt.DeepEquals, Values{"Xrange": "0..10", "Yrange": "0..10"})
	initial, err := Parse(life["Initial"])
	c.Assert(err, qt.IsNil)
	c.Assert(initial["Alive"], qt.Equals, "(1,2),(2,2),(3,2)")
}

func TestValue(t *testing.T) {
	c := qt.New(t)
	v := Values{"Name": "", "Rule": "B3/S23", "Blank": "  "}

	got, err := v.Value("Rule", true)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "B3/S23")

	got, err = v.Value("Name", false)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "")

	_, err = v.Value("Name", true)
	c.Assert(err, qt.ErrorMatches, `identifier is not assigned a value: Name`)
	c.Assert(core.KindOf(err), qt.Equals, core.ErrEmptyValue)

	_, err = v.Value("Blank", true)
	c.Assert(core.KindOf(err), qt.Equals, core.ErrEmptyValue)

	_, err = v.Value("Terrain", false)
	c.Assert(err, qt.ErrorMatches, `missing identifier: Terrain`)
	c.Assert(core.KindOf(err), qt.Equals, core.ErrMissingIdentifier)

	c.Assert(v.Has("Rule"), qt.IsTrue)
	c.Assert(v.Has("Name"), qt.IsFalse)
	_, ok := v.Lookup("Window")
	c.Assert(ok, qt.IsFalse)
}

func TestClean(t *testing.T) {
	c := qt.New(t)
	got := Clean("# a glider\r\nLife = {\n\tName = \"two # words\"; # trailing\n\tRule = B3 / S23;\n};\n")
	c.Assert(got, qt.Equals, `Life={Name="two # words";Rule=B3/S23;};`)
}

func TestFormatRoundTrip(t *testing.T) {
	c := qt.New(t)
	rng := core.NewRNG(7)
	for i := 0; i < 50; i++ {
		fields := randomFields(rng, 0)
		doc := Clean(Format(fields...))
		c.Run(fmt.Sprint("doc-", i), func(c *qt.C) {
			checkFields(c, doc, fields)
		})
	}
}

func checkFields(c *qt.C, doc string, fields []Field) {
	values, err := Parse(doc)
	c.Assert(err, qt.IsNil, qt.Commentf("doc %q", doc))
	c.Assert(values, qt.HasLen, len(fields))
	for _, f := range fields {
		got, ok := values[f.Name]
		c.Assert(ok, qt.IsTrue, qt.Commentf("missing %s in %q", f.Name, doc))
		if f.Fields != nil {
			checkFields(c, got, f.Fields)
			continue
		}
		c.Assert(got, qt.Equals, f.Value)
	}
}

var (
	bareValues   = []string{"0..10", "-3..4", "B3/S23", "90", "(1,2),(3,-4)", "(0,255,0)", ""}
	quotedValues = []string{"glider", "two words", "a{b}", "x=y;z", "hash # sign", ""}
)

func randomFields(rng *core.RNG, depth int) []Field {
	n := rng.IntRange(1, 4)
	fields := make([]Field, n)
	for i := range fields {
		name := fmt.Sprintf("K%d_%d", depth, i)
		switch {
		case depth < 2 && rng.IntRange(0, 3) == 0:
			fields[i] = Struct(name, randomFields(rng, depth+1)...)
		case rng.Bool():
			fields[i] = Quoted(name, rng.Pick(quotedValues))
		default:
			fields[i] = Assign(name, rng.Pick(bareValues))
		}
	}
	return fields
}

func TestFieldString(t *testing.T) {
	c := qt.New(t)
	f := Struct("Terrain", Assign("Xrange", "0..10"), Assign("Yrange", "0..10"))
	c.Assert(f.String(), qt.Equals, "Terrain = {\n\tXrange = 0..10;\n\tYrange = 0..10;\n};")
	c.Assert(Quoted("Name", "glider").String(), qt.Equals, `Name = "glider";`)
	c.Assert(Struct("Empty").String(), qt.Equals, "Empty = {\n};")
}
