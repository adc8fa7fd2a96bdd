// Package datafile reads component values from plain value lists and YAML
// job files.
package datafile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/eclb/internal/component"
	"github.com/akyairhashvil/eclb/internal/util"
	"gopkg.in/yaml.v3"
)

var ErrNoValues = errors.New("no values")

// Entry is one raw value and the line it came from.
type Entry struct {
	Line  int
	Value string
}

// Job is a YAML job file. Unset fields fall back to the encoder defaults.
type Job struct {
	Component      string      `yaml:"component"`
	Unit           *string     `yaml:"unit"`
	Tolerance      *float64    `yaml:"tolerance"`
	Bands          *int        `yaml:"bands"`
	Condense       *bool       `yaml:"condense"`
	ShowColorCodes *bool       `yaml:"show_color_codes"`
	ShowTolerance  *bool       `yaml:"show_tolerance"`
	Voltage        *float64    `yaml:"voltage"`
	Temperature    *int        `yaml:"temperature"`
	Template       string      `yaml:"template"`
	Values         []yaml.Node `yaml:"values"`
}

// Options converts the job settings to encoder options.
func (j Job) Options() (component.Options, error) {
	opts := component.Options{
		UnitName:       j.Unit,
		Tolerance:      j.Tolerance,
		BandCount:      j.Bands,
		Condense:       j.Condense,
		ShowColorCodes: j.ShowColorCodes,
		ShowTolerance:  j.ShowTolerance,
		Voltage:        j.Voltage,
		Temperature:    j.Temperature,
	}
	if strings.TrimSpace(j.Component) != "" {
		kind, err := component.ParseKind(j.Component)
		if err != nil {
			return component.Options{}, err
		}
		opts.Kind = kind
	}
	return opts, nil
}

// Source is the parsed content of one input file. Job is nil for plain
// value lists.
type Source struct {
	Path    string
	Job     *Job
	Entries []Entry
}

// Values returns the raw value strings in file order.
func (s *Source) Values() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Value
	}
	return out
}

// Load reads path, choosing the format by extension.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src := &Source{Path: path}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		src.Job, src.Entries, err = ReadJob(f)
	default:
		src.Entries, err = ReadValues(f)
	}
	if err != nil {
		return nil, fmt.Errorf("datafile: %s: %w", path, err)
	}
	return src, nil
}

// ReadValues reads a plain list. Values are separated by newlines, commas or
// whitespace; '#' starts a comment that runs to the end of the line.
func ReadValues(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, v := range util.Fields(text) {
			entries = append(entries, Entry{Line: line, Value: v})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoValues
	}
	return entries, nil
}

// ReadJob decodes a YAML job. Values keep their literal text, so 0.0470
// stays "0.0470".
func ReadJob(r io.Reader) (*Job, []Entry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var job Job
	if err := dec.Decode(&job); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrNoValues
		}
		return nil, nil, fmt.Errorf("parse job: %w", err)
	}

	entries := make([]Entry, 0, len(job.Values))
	for _, node := range job.Values {
		if node.Kind != yaml.ScalarNode {
			return nil, nil, fmt.Errorf("line %d: value must be a scalar", node.Line)
		}
		entries = append(entries, Entry{Line: node.Line, Value: strings.TrimSpace(node.Value)})
	}
	if len(entries) == 0 {
		return nil, nil, ErrNoValues
	}
	return &job, entries, nil
}
