package document

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"ponto_eletronica/internal/domain/entities"
	"ponto_eletronica/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTagline = "Ponto da Eletrônica - Excelência em Assistência Técnica"

func newTestGenerator(t *testing.T, locale string, canvas *recordingCanvas) *Generator {
	t.Helper()
	g, err := NewGenerator(Options{
		Locale:    locale,
		Tagline:   testTagline,
		Log:       logger.Discard(),
		NewCanvas: func(string) Canvas { return canvas },
	})
	require.NoError(t, err)
	return g
}

func sampleOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:               "3f2a9c1e-7b5d-4c1a-9e2f-0a1b2c3d4e5f",
		CustomerName:     "José da Silva",
		CustomerPhone:    "(11) 98888-7777",
		EquipmentType:    entities.EquipmentTV,
		EquipmentBrand:   "Samsung 50\"",
		ReportedDefect:   "Não liga",
		ServicePerformed: "Troca da fonte",
		ServiceValue:     1234.56,
		GuaranteeDays:    90,
		ArrivalDate:      "2024-03-05",
		Status:           entities.StatusPending,
		Images:           []string{},
	}
}

func TestGenerator_Render_Layout(t *testing.T) {
	canvas := &recordingCanvas{}
	g := newTestGenerator(t, "", canvas)

	name, content, err := g.Render(sampleOrder())
	require.NoError(t, err)
	assert.Equal(t, "OS_JOSE_DA_SILVA_3f2a9c1e.pdf", name)
	assert.Equal(t, "%PDF-recorded", string(content))

	texts := canvas.texts()
	assert.Equal(t, "PONTO DA ELETRÔNICA", texts[0])
	assert.Equal(t, "ORDEM DE SERVIÇO #3F2A9C1E", texts[1])

	ordered := []string{
		"1. DADOS DO CLIENTE",
		"Nome: José da Silva",
		"2. EQUIPAMENTO",
		"Equipamento: TV",
		"Marca/Modelo: Samsung 50\"",
		"3. DETALHES DO SERVIÇO",
		"Serviço Executado: Troca da fonte",
		"Entrada: 05/03/2024",
		"Garantia: 90 dias",
		"VALOR TOTAL: R$ 1.234,56",
		"Assinatura do Cliente",
		testTagline,
	}
	last := -1
	for _, want := range ordered {
		idx := canvas.indexOf(want)
		require.NotEqual(t, -1, idx, "missing %q in %v", want, texts)
		assert.Greater(t, idx, last, "%q out of order", want)
		last = idx
	}
	assert.Len(t, canvas.kind("page"), 1)
	assert.Equal(t, -1, canvas.indexOf("ANEXOS:"))
}

func TestGenerator_Render_Placeholders(t *testing.T) {
	canvas := &recordingCanvas{}
	g := newTestGenerator(t, "pt-BR", canvas)

	o := sampleOrder()
	o.CustomerAddress = ""
	o.ReportedDefect = "  "
	o.ServicePerformed = ""
	o.DeliveryDate = ""
	o.GuaranteeDays = 0
	o.EquipmentType = entities.EquipmentOther
	o.EquipmentCustomType = "Aspirador"

	_, _, err := g.Render(o)
	require.NoError(t, err)

	for _, want := range []string{
		"Endereço: N/A",
		"Defeito Relatado: Em avaliação",
		"Serviço Executado: Em análise",
		"Entrega: N/A",
		"Garantia: Sem garantia",
		"Equipamento: Aspirador",
	} {
		assert.NotEqual(t, -1, canvas.indexOf(want), "missing %q", want)
	}
}

func TestGenerator_Render_Quote(t *testing.T) {
	canvas := &recordingCanvas{}
	g := newTestGenerator(t, "", canvas)

	o := sampleOrder()
	o.Status = entities.StatusQuote
	est := entities.Amount(350)
	o.EstimatedValue = &est

	name, _, err := g.Render(o)
	require.NoError(t, err)
	assert.Equal(t, "ORC_JOSE_DA_SILVA_3f2a9c1e.pdf", name)
	assert.Equal(t, "ORÇAMENTO DE SERVIÇO #3F2A9C1E", canvas.texts()[1])
	assert.NotEqual(t, -1, canvas.indexOf("Valor Estimado: R$ 350,00"))
}

func TestGenerator_Render_EnglishLabels(t *testing.T) {
	canvas := &recordingCanvas{}
	g := newTestGenerator(t, "en-US", canvas)

	_, _, err := g.Render(sampleOrder())
	require.NoError(t, err)
	assert.Equal(t, "SERVICE ORDER #3F2A9C1E", canvas.texts()[1])
	assert.NotEqual(t, -1, canvas.indexOf("Arrival: 05/03/2024"))
	assert.NotEqual(t, -1, canvas.indexOf("TOTAL: R$ 1,234.56"))
	assert.NotEqual(t, -1, canvas.indexOf("Warranty: 90 days"))
}

func TestNewGenerator_UnknownLocale(t *testing.T) {
	_, err := NewGenerator(Options{Locale: "fr-FR"})
	assert.Error(t, err)
}

func TestGenerator_Render_Pagination(t *testing.T) {
	canvas := &recordingCanvas{}
	g := newTestGenerator(t, "", canvas)

	o := sampleOrder()
	o.ServicePerformed = strings.Repeat("troca de componentes da placa principal ", 300)

	_, _, err := g.Render(o)
	require.NoError(t, err)

	pages := canvas.kind("page")
	require.GreaterOrEqual(t, len(pages), 3)

	taglines := 0
	for _, text := range canvas.kind("text") {
		switch text.Text {
		case testTagline:
			taglines++
		case "Assinatura do Cliente":
			assert.Equal(t, len(pages), text.Page, "signature belongs to the last page")
		default:
			assert.LessOrEqual(t, text.Y, contentBottom, "%q runs into the footer", text.Text)
		}
	}
	assert.Equal(t, len(pages), taglines)

	// Sections after the long field continue on a later page.
	total := canvas.kind("text")[canvas.indexOf("VALOR TOTAL: R$ 1.234,56")]
	assert.Greater(t, total.Page, 1)
}

func TestGenerator_Render_Attachments(t *testing.T) {
	t.Run("grid of four per row", func(t *testing.T) {
		canvas := &recordingCanvas{}
		g := newTestGenerator(t, "", canvas)

		o := sampleOrder()
		img := pngDataURL(t)
		o.Images = []string{img, img, img, img, img}

		_, _, err := g.Render(o)
		require.NoError(t, err)
		require.NotEqual(t, -1, canvas.indexOf("ANEXOS:"))

		images := canvas.kind("image")
		require.Len(t, images, 5)
		xs := []float64{images[0].X, images[1].X, images[2].X, images[3].X, images[4].X}
		assert.Equal(t, []float64{20, 65, 110, 155, 20}, xs)
		assert.Equal(t, images[0].Y, images[3].Y)
		assert.InDelta(t, images[0].Y+imageStepY, images[4].Y, 0.001)
	})

	t.Run("corrupt attachment is skipped", func(t *testing.T) {
		canvas := &recordingCanvas{}
		g := newTestGenerator(t, "", canvas)

		o := sampleOrder()
		o.Images = []string{
			"data:image/png;base64,bm90IGFuIGltYWdl",
			"not a data url",
			pngDataURL(t),
		}

		_, content, err := g.Render(o)
		require.NoError(t, err)
		assert.NotEmpty(t, content)

		images := canvas.kind("image")
		require.Len(t, images, 1)
		assert.Equal(t, "attachment-2", images[0].Text)
		assert.Equal(t, float64(pageMargin), images[0].X)
	})

	t.Run("canvas rejection is skipped", func(t *testing.T) {
		canvas := &recordingCanvas{imageErr: errors.New("unsupported")}
		g := newTestGenerator(t, "", canvas)

		o := sampleOrder()
		o.Images = []string{pngDataURL(t)}
		_, _, err := g.Render(o)
		require.NoError(t, err)
		assert.Empty(t, canvas.kind("image"))
	})
}

type panickingCanvas struct{ recordingCanvas }

func (p *panickingCanvas) Line(float64, float64, float64, float64) { panic("out of ink") }

func TestGenerator_Render_Failure(t *testing.T) {
	t.Run("panic while drawing", func(t *testing.T) {
		g, err := NewGenerator(Options{
			Log:       logger.Discard(),
			NewCanvas: func(string) Canvas { return &panickingCanvas{} },
		})
		require.NoError(t, err)

		name, content, err := g.Render(sampleOrder())
		assert.ErrorIs(t, err, ErrDocumentGeneration)
		assert.Empty(t, name)
		assert.Nil(t, content)
	})

	t.Run("output error", func(t *testing.T) {
		canvas := &recordingCanvas{outErr: errors.New("disk full")}
		g := newTestGenerator(t, "", canvas)

		_, content, err := g.Render(sampleOrder())
		assert.ErrorIs(t, err, ErrDocumentGeneration)
		assert.Nil(t, content)
	})
}

func TestGenerator_Render_FPDF(t *testing.T) {
	g, err := NewGenerator(Options{Tagline: testTagline, Log: logger.Discard()})
	require.NoError(t, err)

	o := sampleOrder()
	o.Images = []string{pngDataURL(t)}
	o.CustomerAddress = "Rua das Acácias, 120 – São Paulo"

	name, content, err := g.Render(o)
	require.NoError(t, err)
	assert.Equal(t, "OS_JOSE_DA_SILVA_3f2a9c1e.pdf", name)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")), "not a PDF")
}
