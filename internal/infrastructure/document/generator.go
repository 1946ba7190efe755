package document

import (
	"bytes"
	"errors"
	"fmt"

	"ponto_eletronica/internal/domain/entities"
	"ponto_eletronica/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// ErrDocumentGeneration is returned for any failure while building a document.
// No partial document is returned with it.
var ErrDocumentGeneration = errors.New("document generation failed")

// Page geometry in millimetres (A4 portrait).
const (
	pageMargin     = 20.0
	headerHeight   = 40.0
	firstContentY  = 55.0
	contentTop     = 20.0
	contentBottom  = 255.0
	footerY        = 275.0
	lineHeight     = 6.0
	sectionGap     = 5.0
	sectionHeading = 10.0

	imageW         = 40.0
	imageH         = 30.0
	imageStepX     = 45.0
	imageStepY     = 35.0
	imageRowLimitX = 160.0
)

type Options struct {
	Locale   string
	ShopName string
	Tagline  string
	Log      logrus.FieldLogger
	// NewCanvas defaults to an fpdf canvas.
	NewCanvas func(title string) Canvas
}

// Generator renders the printable sheet of a service order or quote.
type Generator struct {
	labels    Labels
	shopName  string
	tagline   string
	log       logrus.FieldLogger
	newCanvas func(title string) Canvas
}

var _ interfaces.IDocumentRenderer = (*Generator)(nil)

func NewGenerator(opts Options) (*Generator, error) {
	labels, err := LabelsFor(opts.Locale)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		labels:    labels,
		shopName:  opts.ShopName,
		tagline:   opts.Tagline,
		log:       opts.Log,
		newCanvas: opts.NewCanvas,
	}
	if g.shopName == "" {
		g.shopName = "PONTO DA ELETRÔNICA"
	}
	if g.log == nil {
		g.log = logrus.StandardLogger()
	}
	if g.newCanvas == nil {
		g.newCanvas = func(title string) Canvas { return NewFPDFCanvas(title) }
	}
	return g, nil
}

func (g *Generator) title(o entities.ServiceOrder) string {
	if o.IsQuote() {
		return g.labels.QuoteTitle
	}
	return g.labels.OrderTitle
}

// Render returns the download filename and the PDF bytes of o.
func (g *Generator) Render(o entities.ServiceOrder) (string, []byte, error) {
	log := g.log.WithFields(logrus.Fields{"component": "document", "order_id": o.ID})

	c := g.newCanvas(fmt.Sprintf("%s #%s", g.title(o), o.Reference()))
	if err := g.draw(c, o, log); err != nil {
		log.WithError(err).Error("failed to build document")
		return "", nil, err
	}

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		log.WithError(err).Error("failed to write document")
		return "", nil, fmt.Errorf("%w: %v", ErrDocumentGeneration, err)
	}
	return Filename(o), buf.Bytes(), nil
}

func (g *Generator) draw(c Canvas, o entities.ServiceOrder, log logrus.FieldLogger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDocumentGeneration, r)
		}
	}()

	w, _ := c.PageSize()
	l := &layout{c: c, labels: g.labels, tagline: g.tagline, log: log, width: w}
	lb := g.labels

	l.header(g.shopName, fmt.Sprintf("%s #%s", g.title(o), o.Reference()))

	l.section(lb.CustomerSection)
	l.field(lb.Name, orPlaceholder(o.CustomerName, lb.NotAvailable))
	l.field(lb.Phone, orPlaceholder(o.CustomerPhone, lb.NotAvailable))
	l.field(lb.Address, orPlaceholder(o.CustomerAddress, lb.NotAvailable))
	l.gap()

	l.section(lb.EquipmentSection)
	l.field(lb.Equipment, orPlaceholder(o.EquipmentLabel(), lb.NotAvailable))
	l.field(lb.Brand, orPlaceholder(o.EquipmentBrand, lb.NotAvailable))
	l.field(lb.Defect, orPlaceholder(o.ReportedDefect, lb.DefectPlaceholder))
	l.gap()

	l.section(lb.ServiceSection)
	l.field(lb.Service, orPlaceholder(o.ServicePerformed, lb.ServicePlaceholder))
	l.field(lb.Status, orPlaceholder(o.Status.String(), lb.NotAvailable))
	l.field(lb.Arrival, formatDate(o.ArrivalDate, lb))
	l.field(lb.Delivery, formatDate(o.DeliveryDate, lb))
	l.field(lb.Guarantee, formatGuarantee(o.GuaranteeDays, lb))
	if o.EstimatedValue != nil {
		l.field(lb.Estimated, formatMoney(*o.EstimatedValue, lb))
	}
	l.setFont(true, 10)
	l.field(lb.Total, formatMoney(o.ServiceValue, lb))
	l.setFont(false, 10)

	l.attachments(o.Images)

	l.signature()
	l.footer()
	return nil
}

// layout tracks the write position and starts new pages when content would run
// into the footer area.
type layout struct {
	c       Canvas
	labels  Labels
	tagline string
	log     logrus.FieldLogger
	width   float64

	y    float64
	bold bool
	size float64
}

func (l *layout) setFont(bold bool, size float64) {
	l.bold, l.size = bold, size
	l.c.SetFont(bold, size)
}

func (l *layout) ensure(h float64) {
	if l.y+h <= contentBottom {
		return
	}
	l.footer()
	l.c.AddPage()
	l.c.SetTextColor(colorInk)
	l.c.SetFont(l.bold, l.size)
	l.y = contentTop
}

func (l *layout) header(shop, title string) {
	l.c.AddPage()
	l.c.FillRect(0, 0, l.width, headerHeight, colorBrand)
	l.c.SetTextColor(colorWhite)
	l.setFont(true, 24)
	l.c.Text(l.width/2, 20, shop, AlignCenter)
	l.setFont(false, 10)
	l.c.Text(l.width/2, 30, title, AlignCenter)
	l.c.SetTextColor(colorInk)
	l.y = firstContentY
}

func (l *layout) section(title string) {
	l.ensure(sectionHeading + lineHeight)
	l.setFont(true, 12)
	l.c.Text(pageMargin, l.y, title, AlignLeft)
	l.c.Line(pageMargin, l.y+2, l.width-pageMargin, l.y+2)
	l.y += sectionHeading
	l.setFont(false, 10)
}

// field writes "label: value", wrapped to the content width.
func (l *layout) field(label, value string) {
	for _, line := range l.c.SplitText(label+": "+value, l.width-2*pageMargin) {
		l.ensure(lineHeight)
		l.c.Text(pageMargin, l.y, line, AlignLeft)
		l.y += lineHeight
	}
}

func (l *layout) gap() {
	l.y += sectionGap
}

func (l *layout) attachments(images []string) {
	if len(images) == 0 {
		return
	}
	l.y += sectionGap
	l.ensure(sectionHeading + imageH)
	l.setFont(true, 10)
	l.c.Text(pageMargin, l.y, l.labels.Attachments+":", AlignLeft)
	l.setFont(false, 10)
	l.y += sectionHeading

	x := pageMargin
	for i, img := range images {
		data, err := attachmentJPEG(img)
		if err != nil {
			l.log.WithError(err).WithField("image", i).Warn("skipping attachment")
			continue
		}
		if x == pageMargin {
			l.ensure(imageH)
		}
		if err := l.c.Image(fmt.Sprintf("attachment-%d", i), data, x, l.y, imageW, imageH); err != nil {
			l.log.WithError(err).WithField("image", i).Warn("skipping attachment")
			continue
		}
		x += imageStepX
		if x > imageRowLimitX {
			x = pageMargin
			l.y += imageStepY
		}
	}
	if x != pageMargin {
		l.y += imageStepY
	}
}

func (l *layout) signature() {
	center := l.width / 2
	l.c.SetTextColor(colorInk)
	l.c.SetFont(false, 8)
	l.c.Line(center-40, footerY-10, center+40, footerY-10)
	l.c.Text(center, footerY-5, l.labels.Signature, AlignCenter)
	l.c.SetFont(l.bold, l.size)
}

func (l *layout) footer() {
	if l.tagline == "" {
		return
	}
	l.c.SetTextColor(colorMuted)
	l.c.SetFont(false, 8)
	l.c.Text(l.width/2, footerY+5, l.tagline, AlignCenter)
	l.c.SetTextColor(colorInk)
	l.c.SetFont(l.bold, l.size)
}
