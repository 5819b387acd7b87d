package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/jung-kurt/gofpdf"
)

// Region is a rectangle on a PDF page, in millimetres.
type Region struct {
	X, Y, W, H float64
}

// PDFCanvas draws charts into a fixed region of the current PDF page.
type PDFCanvas struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	region Region
}

// NewPDFCanvas returns a canvas on region of pdf's current page.
func NewPDFCanvas(pdf *gofpdf.Fpdf, region Region) *PDFCanvas {
	return &PDFCanvas{
		pdf:    pdf,
		region: region,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// PDFChart is a chart drawn on a PDF page.
type PDFChart struct {
	pdf    *gofpdf.Fpdf
	region Region
}

// Release paints the chart region white.
func (p *PDFChart) Release() error {
	p.pdf.SetFillColor(255, 255, 255)
	p.pdf.Rect(p.region.X, p.region.Y, p.region.W, p.region.H, "F")
	return p.pdf.Error()
}

// Draw renders the bars, the zero-based value axis and the labels.
func (c *PDFCanvas) Draw(ch chart.Chart) (*PDFChart, error) {
	pdf := c.pdf
	r := c.region
	drawn := &PDFChart{pdf: pdf, region: r}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetXY(r.X, r.Y)
	pdf.CellFormat(r.W, 6, c.tr(ch.Title+" - "+ch.DatasetLabel), "", 0, "C", false, 0, "")

	if ch.Empty() {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetXY(r.X, r.Y+r.H/2)
		pdf.CellFormat(r.W, 5, "No chart data", "", 0, "C", false, 0, "")
		return drawn, pdf.Error()
	}

	const (
		gutter      = 10.0
		labelHeight = 10.0
		titleHeight = 8.0
	)
	plotX := r.X + gutter
	plotY := r.Y + titleHeight
	plotW := r.W - gutter
	plotH := r.H - titleHeight - labelHeight

	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.2)
	pdf.SetFont("Helvetica", "", 7)
	for _, tick := range ch.Ticks(4) {
		y := plotY + plotH - ch.Fraction(tick)*plotH
		pdf.SetDrawColor(225, 225, 225)
		pdf.Line(plotX, y, plotX+plotW, y)
		pdf.SetXY(r.X, y-2)
		pdf.CellFormat(gutter-1, 4, strconv.Itoa(tick), "", 0, "R", false, 0, "")
	}
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(plotX, plotY, plotX, plotY+plotH)
	pdf.Line(plotX, plotY+plotH, plotX+plotW, plotY+plotH)

	slot := plotW / float64(len(ch.Bars))
	barW := slot * 0.7
	pdf.SetFillColor(54, 162, 235)
	for i, bar := range ch.Bars {
		h := ch.Fraction(bar.Value) * plotH
		x := plotX + float64(i)*slot + (slot-barW)/2
		if h > 0 {
			pdf.Rect(x, plotY+plotH-h, barW, h, "F")
		}
		pdf.SetXY(plotX+float64(i)*slot, plotY+plotH+1)
		pdf.CellFormat(slot, 4, fitText(pdf, c.tr, bar.Label, slot), "", 0, "C", false, 0, "")
		pdf.SetXY(plotX+float64(i)*slot, plotY+plotH+5)
		pdf.CellFormat(slot, 4, strconv.Itoa(bar.Value), "", 0, "C", false, 0, "")
	}

	return drawn, pdf.Error()
}

// fitText shortens s until its translated form fits width at the current
// font, and returns the translated text.
func fitText(pdf *gofpdf.Fpdf, tr func(string) string, s string, width float64) string {
	runes := []rune(s)
	for len(runes) > 1 && pdf.GetStringWidth(tr(string(runes))) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return tr(string(runes))
}

// WritePDF writes the report as a single landscape document: statistics,
// bar chart, then the records table.
func WritePDF(w io.Writer, r Report) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(r.Title(), true)
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr(r.Title()), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(115, 115, 115)
	pdf.CellFormat(contentW, 5, "Generated "+r.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	cards := []struct {
		title string
		value string
	}{
		{"Total Sale Amount", r.Statistics.FormatSaleAmount()},
		{"Total Sold Items", strconv.Itoa(r.Statistics.TotalSoldItems)},
		{"Total Unsold Items", strconv.Itoa(r.Statistics.TotalUnsoldItems)},
	}
	cardW := (contentW - 8) / 3
	y := pdf.GetY()
	for i, card := range cards {
		x := left + float64(i)*(cardW+4)
		pdf.SetDrawColor(64, 64, 64)
		pdf.Rect(x, y, cardW, 18, "D")
		pdf.SetXY(x+3, y+2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(115, 115, 115)
		pdf.CellFormat(cardW-6, 5, card.title, "", 0, "L", false, 0, "")
		pdf.SetXY(x+3, y+8)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(cardW-6, 8, card.value, "", 0, "L", false, 0, "")
	}

	chartRegion := Region{X: left, Y: y + 24, W: contentW, H: 80}
	surface := chart.NewSurface[*PDFChart](NewPDFCanvas(pdf, chartRegion))
	if _, err := surface.Render(r.Chart()); err != nil {
		return fmt.Errorf("draw chart: %w", err)
	}

	pdf.SetXY(left, chartRegion.Y+chartRegion.H+6)
	writePDFTable(pdf, tr, r, contentW)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writePDFTable(pdf *gofpdf.Fpdf, tr func(string) string, r Report, contentW float64) {
	widths := []float64{contentW * 0.25, contentW * 0.15, contentW * 0.48, contentW * 0.12}
	headers := []string{"Title", "Category", "Description", "Price"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(124, 58, 237)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(30, 30, 30)
	for i, rec := range r.Records {
		fill := i%2 == 1
		pdf.SetFillColor(242, 242, 242)
		cells := []string{rec.Title, rec.Category, rec.Description, fmt.Sprintf("%.2f", rec.Price)}
		for j, text := range cells {
			align := "L"
			if j == len(cells)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[j], 6, fitText(pdf, tr, text, widths[j]), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(r.Records) == 0 {
		pdf.CellFormat(contentW, 6, "No transactions", "1", 1, "C", false, 0, "")
	}
}
