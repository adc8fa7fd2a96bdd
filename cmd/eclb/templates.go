package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/akyairhashvil/eclb/internal/sheet"
	"gopkg.in/yaml.v3"
)

// templateFile is the YAML form accepted by "templates -add". Lengths are
// inches.
type templateFile struct {
	Name          string  `yaml:"name"`
	SheetWidth    float64 `yaml:"sheet_width"`
	SheetHeight   float64 `yaml:"sheet_height"`
	UpperMargin   float64 `yaml:"upper_margin"`
	LeftMargin    float64 `yaml:"left_margin"`
	MiddlePadding float64 `yaml:"middle_padding"`
	LabelWidth    float64 `yaml:"label_width"`
	LabelHeight   float64 `yaml:"label_height"`
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
}

func (f templateFile) template() models.Template {
	return models.Template{
		Name:          f.Name,
		SheetWidth:    f.SheetWidth,
		SheetHeight:   f.SheetHeight,
		UpperMargin:   f.UpperMargin,
		LeftMargin:    f.LeftMargin,
		MiddlePadding: f.MiddlePadding,
		LabelWidth:    f.LabelWidth,
		LabelHeight:   f.LabelHeight,
		Rows:          f.Rows,
		Cols:          f.Cols,
	}
}

func readTemplateFile(path string) (models.Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Template{}, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var tf templateFile
	if err := dec.Decode(&tf); err != nil {
		return models.Template{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return tf.template(), nil
}

func runTemplates(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "templates", "")
	var g globalFlags
	g.register(fs)
	add := fs.String("add", "", "add or replace a user template from a YAML file")
	del := fs.String("delete", "", "delete the user template NAME")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	a, err := loadApp(e, g, nil)
	if err != nil {
		return err
	}
	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	switch {
	case *add != "":
		t, err := readTemplateFile(*add)
		if err != nil {
			return err
		}
		if _, err := db.SaveTemplate(ctx, t); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "saved template %s (%s per sheet)\n", t.Name, count(t.Stickers(), "sticker"))
		return nil
	case *del != "":
		if err := db.DeleteTemplate(ctx, *del); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "deleted template %s\n", *del)
		return nil
	}

	templates, err := db.ListTemplates(ctx)
	if err != nil {
		return err
	}
	for _, t := range templates {
		fmt.Fprintln(a.stdout, templateLine(t, t.Name == a.settings.Template, a.settings.LabelsPerSticker))
	}
	return nil
}

func templateLine(t models.Template, isDefault bool, perSticker int) string {
	kind := "user"
	if t.BuiltIn {
		kind = "built-in"
	}
	mark := " "
	if isDefault {
		mark = "*"
	}
	return fmt.Sprintf("%s %-14s %dx%d  %gx%gin on %gx%gin  %-8s %d labels/sheet",
		mark, t.Name, t.Cols, t.Rows, t.LabelWidth, t.LabelHeight, t.SheetWidth, t.SheetHeight, kind,
		sheet.PerSheet(t, perSticker))
}
