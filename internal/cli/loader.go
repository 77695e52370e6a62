// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/scalar"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric    = "E001" // Generic/unknown error
	ErrCodeNotFound   = "E002" // Input file not found or unreadable
	ErrCodeDecode     = "E003" // YAML/JSON decode failed
	ErrCodeEmpty      = "E004" // Document has no rows
	ErrCodeLiteral    = "E005" // Malformed scalar literal
	ErrCodeIncorrect  = "E006" // Literal outside the declared set
	ErrCodeInvalidSet = "E007" // Unknown set name
	ErrCodeShape      = "E008" // Ragged grid or bad vector length
	ErrCodeFlag       = "E009" // Invalid flag value

	// Mathematical failures
	ErrCodeIncompatible = "E101" // Shape precondition of an operation failed
	ErrCodeField        = "E102" // Set has no multiplicative inverse
	ErrCodeSingular     = "E103" // Determinant is null
	ErrCodeInconsistent = "E104" // System has no solution
	ErrCodeUnderdet     = "E105" // System has free variables
)

// Literal is one scalar entry as written in the document. Numbers, quoted
// strings and bare words are all kept verbatim.
type Literal string

// UnmarshalYAML accepts any scalar node.
func (l *Literal) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar literal", n.Line)
	}
	*l = Literal(n.Value)
	return nil
}

// Document is the input format shared by every command:
//
//	set: rational        # optional: integer | rational | real | complex
//	rows:
//	  - [1, 2, "1/2"]
//	  - [0, 1, 3]
//	b: [1, 2]            # solve only
//
// JSON documents are accepted as well (JSON is a subset of YAML).
type Document struct {
	Set  string      `yaml:"set"`
	Rows [][]Literal `yaml:"rows"`
	B    []Literal   `yaml:"b"`
}

// LoadError represents an error that occurred while loading a document.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Input is a decoded document with normalized literals and a resolved set.
type Input struct {
	Set  string
	Rows [][]string
	B    []string
}

// LoadDocument reads path ("-" for in) and decodes it.
func LoadDocument(path string, in io.Reader) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("input not found: %s", path)}
		}
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}

	var doc Document
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("decoding %s: %v", path, err)}
	}
	if len(doc.Rows) == 0 {
		return nil, &LoadError{Code: ErrCodeEmpty, Message: fmt.Sprintf("%s: no rows", path)}
	}

	return &doc, nil
}

// literalReplacer maps typographic forms left after NFKC to ASCII.
var literalReplacer = strings.NewReplacer(
	"−", "-", // minus sign
	"⁄", "/", // fraction slash (from ½ and friends)
	"∕", "/", // division slash
	" ", "", // inner spaces: "1 / 2", "1 + 2i"
)

// NormalizeLiteral folds compatibility characters (full-width digits,
// vulgar fractions, typographic minus) into the ASCII literal syntax.
func NormalizeLiteral(s string) string {
	return literalReplacer.Replace(norm.NFKC.String(strings.TrimSpace(s)))
}

// Resolve normalizes every literal and decides the scalar set: override
// (the --set flag) wins, then the document's set, then the narrowest set
// that holds every literal.
func (d *Document) Resolve(override string) (*Input, error) {
	in := &Input{Rows: make([][]string, len(d.Rows))}
	widest := scalar.SetInteger
	note := func(s string) error {
		set, err := scalar.Classify(s)
		if err != nil {
			return &LoadError{Code: ErrCodeLiteral, Message: err.Error()}
		}
		if setRank(set) > setRank(widest) {
			widest = set
		}
		return nil
	}
	for i, row := range d.Rows {
		in.Rows[i] = make([]string, len(row))
		for j, lit := range row {
			s := NormalizeLiteral(string(lit))
			if err := note(s); err != nil {
				return nil, err
			}
			in.Rows[i][j] = s
		}
	}
	for _, lit := range d.B {
		s := NormalizeLiteral(string(lit))
		if err := note(s); err != nil {
			return nil, err
		}
		in.B = append(in.B, s)
	}

	switch {
	case override != "":
		in.Set = override
	case d.Set != "":
		in.Set = d.Set
	default:
		in.Set = widest
	}
	if setRank(in.Set) < 0 {
		return nil, &LoadError{Code: ErrCodeInvalidSet, Message: fmt.Sprintf("unknown set %q: must be one of %v", in.Set, ValidSets)}
	}

	return in, nil
}

// ValidSets lists the scalar sets in widening order.
var ValidSets = []string{scalar.SetInteger, scalar.SetRational, scalar.SetReal, scalar.SetComplex}

func setRank(set string) int {
	for i, s := range ValidSets {
		if s == set {
			return i
		}
	}
	return -1
}

// classifyError maps a parse error to its CLI error code.
func classifyError(err error) string {
	if errors.Is(err, algebra.ErrIncorrectSet) {
		return ErrCodeIncorrect
	}
	return ErrCodeLiteral
}
