package sheet

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/akyairhashvil/eclb/internal/component"
	"github.com/akyairhashvil/eclb/internal/models"
	"github.com/akyairhashvil/eclb/internal/util"
	"github.com/go-pdf/fpdf"
)

var ErrNoLabels = errors.New("no labels to render")

const (
	pointsPerInch = 72.0
	labelFont     = "label"
	coreFont      = "Helvetica"
)

// Options controls label placement. Lengths are inches; FontSize is points.
// Zero counts and sizes take the defaults. The spacer and offsets may be
// zero, so they are pointers and only nil takes the default.
type Options struct {
	LabelsPerSticker int      `validate:"gte=1,lte=4"`
	BoxSize          float64  `validate:"gt=0"`
	BoxSpacer        *float64 `validate:"omitnil,gte=0"`
	FontSize         float64  `validate:"gt=0"`
	TextOffset       *float64
	BandOffset       *float64

	// FontPath is a UTF-8 TrueType font. Without it the PDF core font is
	// used and symbols outside cp1252 are spelled out.
	FontPath string

	// Debug draws rulers and the sheet, margin and sticker outlines.
	Debug bool
}

// DefaultOptions returns the stock layout.
func DefaultOptions() Options {
	return Options{
		LabelsPerSticker: 2,
		BoxSize:          0.15,
		BoxSpacer:        util.Ptr(0.05),
		FontSize:         14.4,
		TextOffset:       util.Ptr(0.05),
		BandOffset:       util.Ptr(-0.05),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.LabelsPerSticker == 0 {
		o.LabelsPerSticker = def.LabelsPerSticker
	}
	if o.BoxSize == 0 {
		o.BoxSize = def.BoxSize
	}
	if o.BoxSpacer == nil {
		o.BoxSpacer = def.BoxSpacer
	}
	if o.FontSize == 0 {
		o.FontSize = def.FontSize
	}
	if o.TextOffset == nil {
		o.TextOffset = def.TextOffset
	}
	if o.BandOffset == nil {
		o.BandOffset = def.BandOffset
	}
	return o
}

// Renderer draws labels onto sheets of one template.
type Renderer struct {
	tmpl   models.Template
	opts   Options
	logger *slog.Logger
}

// NewRenderer validates the template and options.
func NewRenderer(t models.Template, opts Options, logger *slog.Logger) (*Renderer, error) {
	if err := ValidateTemplate(t); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("sheet options: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{tmpl: t, opts: opts, logger: logger}, nil
}

func (r *Renderer) Template() models.Template { return r.tmpl }
func (r *Renderer) Options() Options { return r.opts }

// Render writes a PDF with one page per sheet and returns the page count.
// labels is only read.
func (r *Renderer) Render(w io.Writer, labels []models.Label) (int, error) {
	pdf, err := r.draw(labels)
	if err != nil {
		return 0, err
	}
	pages := pdf.PageCount()
	if err := pdf.Output(w); err != nil {
		return 0, fmt.Errorf("write pdf: %w", err)
	}
	return pages, nil
}

// RenderFile renders to path.
func (r *Renderer) RenderFile(path string, labels []models.Label) (int, error) {
	pdf, err := r.draw(labels)
	if err != nil {
		return 0, err
	}
	pages := pdf.PageCount()
	if err := pdf.OutputFileAndClose(path); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	r.logger.Info("sheet written", "path", path, "pages", pages, "labels", len(labels))
	return pages, nil
}

// Render is a convenience wrapper around NewRenderer and Renderer.Render.
func Render(w io.Writer, labels []models.Label, t models.Template, opts Options) (int, error) {
	r, err := NewRenderer(t, opts, nil)
	if err != nil {
		return 0, err
	}
	return r.Render(w, labels)
}

func (r *Renderer) draw(labels []models.Label) (*fpdf.Fpdf, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	t := r.tmpl
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: t.SheetWidth, Ht: t.SheetHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Component labels", true)
	pdf.SetCreator("eclb", true)

	encode := r.setFont(pdf)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	slots := Plan(len(labels), t, r.opts.LabelsPerSticker)
	sheet := -1
	for i, slot := range slots {
		if slot.Sheet != sheet {
			sheet = slot.Sheet
			pdf.AddPage()
			if r.opts.Debug {
				r.drawGuides(pdf)
			}
		}
		r.drawLabel(pdf, labels[i], slot, encode)
	}
	r.logger.Debug("sheet laid out", "template", t.Name, "labels", len(labels), "pages", sheet+1)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return pdf, nil
}

// setFont selects the label font and returns the text encoder it needs.
func (r *Renderer) setFont(pdf *fpdf.Fpdf) func(string) string {
	if r.opts.FontPath != "" {
		pdf.AddUTF8Font(labelFont, "", r.opts.FontPath)
		pdf.SetFont(labelFont, "", r.opts.FontSize)
		return func(s string) string { return s }
	}
	pdf.SetFont(coreFont, "", r.opts.FontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	return func(s string) string { return tr(Transliterate(s)) }
}

// Transliterate spells out symbols the PDF core fonts cannot encode.
func Transliterate(s string) string {
	return coreFontReplacer.Replace(s)
}

var coreFontReplacer = strings.NewReplacer(
	"\u2126", "Ohm",
	"\u03a9", "Ohm",
	"\u03bc", "\u00b5",
)

func (r *Renderer) drawLabel(pdf *fpdf.Fpdf, label models.Label, slot Slot, encode func(string) string) {
	bounds := Bounds(r.tmpl, slot.Row, slot.Col)
	h := bounds.Height()
	cx := Center(bounds, slot.Index, r.opts.LabelsPerSticker)
	cellWidth := bounds.Width() / float64(r.opts.LabelsPerSticker)
	textHeight := r.opts.FontSize / pointsPerInch

	top := bounds.Y0 + h/4 - textHeight/2 + *r.opts.TextOffset
	if !label.HasBands() {
		top += h/4 - *r.opts.TextOffset
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(cx-cellWidth/2, top)
	pdf.CellFormat(cellWidth, textHeight, encode(label.Text), "", 0, "CM", false, 0, "")

	if label.HasBands() {
		r.drawBands(pdf, label.Bands, cx, bounds.Y0+3*h/4+*r.opts.BandOffset)
	}
}

func (r *Renderer) drawBands(pdf *fpdf.Fpdf, bands []string, cx, cy float64) {
	box, spacer := r.opts.BoxSize, *r.opts.BoxSpacer
	width := float64(len(bands))*box + float64(len(bands)-1)*spacer
	x := cx - width/2
	y := cy - box/2
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.01)
	for i, band := range bands {
		red, green, blue, ok := component.Swatch(band)
		if !ok {
			r.logger.Warn("unknown band color", "color", band)
		}
		pdf.SetFillColor(red, green, blue)
		pdf.Rect(x+float64(i)*(box+spacer), y, box, box, "FD")
	}
}

func (r *Renderer) drawGuides(pdf *fpdf.Fpdf) {
	t := r.tmpl
	pdf.SetLineWidth(0.005)
	pdf.SetDrawColor(0, 0, 0)
	for i := 0; float64(i)*0.5 < t.SheetWidth; i++ {
		x := float64(i) * 0.5
		pdf.Line(x, 0, x, rulerLength(i))
	}
	for i := 0; float64(i)*0.5 < t.SheetHeight; i++ {
		y := float64(i) * 0.5
		pdf.Line(0, y, rulerLength(i), y)
	}

	pdf.SetDrawColor(255, 0, 0)
	pdf.Rect(0, 0, t.SheetWidth, t.SheetHeight, "D")

	pdf.SetDrawColor(0, 128, 0)
	pdf.Rect(t.LeftMargin, t.UpperMargin, t.SheetWidth-2*t.LeftMargin, t.SheetHeight-2*t.UpperMargin, "D")

	pdf.SetDrawColor(0, 0, 255)
	for row := range t.Rows {
		for col := range t.Cols {
			b := Bounds(t, row, col)
			pdf.Rect(b.X0, b.Y0, b.Width(), b.Height(), "D")
		}
	}
}

// rulerLength is long on whole inches and short on half inches.
func rulerLength(halfInch int) float64 {
	if halfInch%2 == 0 {
		return 0.4
	}
	return 0.25
}
