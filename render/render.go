// Package render writes the outcome of a morph search.
//
// Word mode prints the morph length followed by one word per line. Edit mode
// prints the length, the source word, then one edit per step:
//
//	change,<pos>,<char>   insert,<pos>,<char>   delete,<pos>   swap,<pos>
//
// ShortStyle abbreviates the edit names to c, i, d and s. Report mode emits
// a YAML document with the words, the steps and the search counters.
// A search that did not reach its target prints
//
//	No solution, <n> words discovered.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordmorph/lexicon"
	"github.com/katalvlaran/wordmorph/morph"
)

var (
	// ErrNilInput is returned when the vocabulary or result is nil.
	ErrNilInput = errors.New("render: nil vocabulary or result")

	// ErrEditsNotTracked is returned for edit output from a search run
	// without edit tracking.
	ErrEditsNotTracked = errors.New("render: search did not track edits")

	// ErrUnknownMode is returned for an unsupported Mode or EditStyle.
	ErrUnknownMode = errors.New("render: unknown output mode")
)

// Mode selects the rendering.
type Mode int

const (
	WordMode Mode = iota
	EditMode
	ReportMode
)

// EditStyle selects how edit kinds are spelled in EditMode.
type EditStyle int

const (
	LongStyle EditStyle = iota
	ShortStyle
)

// Options controls Write.
type Options struct {
	Mode  Mode
	Style EditStyle
}

// NeedsEdits reports whether o requires a search run with edit tracking.
func (o Options) NeedsEdits() bool {
	return o.Mode == EditMode || o.Mode == ReportMode
}

// Write renders res over v to w.
func Write(w io.Writer, v *lexicon.Vocabulary, res *morph.Result, o Options) error {
	if v == nil || res == nil {
		return ErrNilInput
	}
	if o.Style != LongStyle && o.Style != ShortStyle {
		return fmt.Errorf("%w: edit style %d", ErrUnknownMode, int(o.Style))
	}

	bw := bufio.NewWriter(w)
	var err error
	switch o.Mode {
	case WordMode:
		err = writeWords(bw, v, res)
	case EditMode:
		err = writeEdits(bw, v, res, o.Style)
	case ReportMode:
		err = writeReport(bw, v, res)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(o.Mode))
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func writeNoSolution(w io.Writer, res *morph.Result) error {
	_, err := fmt.Fprintf(w, "No solution, %d words discovered.\n", res.Discovered())
	return err
}

func writeWords(w io.Writer, v *lexicon.Vocabulary, res *morph.Result) error {
	if !res.Found {
		return writeNoSolution(w, res)
	}
	path, err := res.Path()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Words in morph: %d\n", len(path))
	for _, id := range path {
		if _, err := fmt.Fprintln(w, v.Word(id)); err != nil {
			return err
		}
	}
	return nil
}

func writeEdits(w io.Writer, v *lexicon.Vocabulary, res *morph.Result, style EditStyle) error {
	if !res.Found {
		return writeNoSolution(w, res)
	}
	path, err := res.Path()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Words in morph: %d\n", len(path))
	fmt.Fprintln(w, v.Word(path[0]))
	for _, id := range path[1:] {
		e, ok := res.EditOf(id)
		if !ok {
			return fmt.Errorf("%w: no edit for %q", ErrEditsNotTracked, v.Word(id))
		}
		if _, err := fmt.Fprintln(w, FormatEdit(e, style)); err != nil {
			return err
		}
	}
	return nil
}

// FormatEdit renders one edit-script line without the trailing newline.
func FormatEdit(e morph.Edit, style EditStyle) string {
	name := e.Kind.String()
	if style == ShortStyle {
		name = name[:1]
	}
	switch e.Kind {
	case morph.EditChange, morph.EditInsert:
		return fmt.Sprintf("%s,%d,%c", name, e.Pos, e.Char)
	default:
		return fmt.Sprintf("%s,%d", name, e.Pos)
	}
}

type report struct {
	Source     string       `yaml:"source"`
	Target     string       `yaml:"target"`
	Discipline string       `yaml:"discipline"`
	Found      bool         `yaml:"found"`
	Length     int          `yaml:"length,omitempty"`
	Words      []string     `yaml:"words,omitempty"`
	Steps      []reportStep `yaml:"steps,omitempty"`
	Discovered int          `yaml:"discovered"`
	Expanded   int          `yaml:"expanded"`
}

type reportStep struct {
	Op   string `yaml:"op"`
	Pos  int    `yaml:"pos"`
	Char string `yaml:"char,omitempty"`
}

func writeReport(w io.Writer, v *lexicon.Vocabulary, res *morph.Result) error {
	r := report{
		Source:     v.Word(res.Source),
		Target:     v.Word(res.Target),
		Discipline: res.Discipline.String(),
		Found:      res.Found,
		Discovered: res.Discovered(),
		Expanded:   res.Expanded(),
	}
	if res.Found {
		path, err := res.Path()
		if err != nil {
			return err
		}
		r.Length = len(path)
		for i, id := range path {
			r.Words = append(r.Words, v.Word(id))
			if i == 0 {
				continue
			}
			e, ok := res.EditOf(id)
			if !ok {
				return fmt.Errorf("%w: no edit for %q", ErrEditsNotTracked, v.Word(id))
			}
			step := reportStep{Op: e.Kind.String(), Pos: e.Pos}
			if e.Kind == morph.EditChange || e.Kind == morph.EditInsert {
				step.Char = string(e.Char)
			}
			r.Steps = append(r.Steps, step)
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("render: encoding report: %w", err)
	}
	return enc.Close()
}
