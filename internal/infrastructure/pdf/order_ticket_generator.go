// Package pdf implementa la generación del ticket de servicio en PDF que el
// técnico deja al cliente (o que la oficina imprime para la ruta del día).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + NIT  │  N° Orden + Estado                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + NIT/CC + Dirección de servicio           │
//	│  SERVICIO: Tipo + Técnico + Ventana horaria                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OBSERVACIONES                                              │
//	│  FIRMAS: Técnico / Cliente                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tenaxis/tenaxis-api/internal/application/orders"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// OrderTicketGenerator implementa orders.TicketGenerator usando Maroto v2.
type OrderTicketGenerator struct{}

var _ orders.TicketGenerator = (*OrderTicketGenerator)(nil)

// NewOrderTicketGenerator construye el generador.
func NewOrderTicketGenerator() *OrderTicketGenerator { return &OrderTicketGenerator{} }

// GenerateOrderTicket genera el PDF del ticket y devuelve sus bytes.
func (g *OrderTicketGenerator) GenerateOrderTicket(_ context.Context, data orders.TicketData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Servicio", true).
		WithAuthor(data.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(data))
	m.AddRows(serviceRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(notesRows(data)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + NIT (izq) y número de orden + estado (der).
func headerRow(data orders.TicketData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+nonEmpty(data.CompanyNIT, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.OrderID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Estado: "+data.Status, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente y dirección donde se presta el servicio.
func clientRow(data orders.TicketData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIT/CC: %s   |   Dirección: %s",
				nonEmpty(data.ClientDocument, "—"),
				nonEmpty(data.AddressLine, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// serviceRow: tipo de servicio, técnico asignado y ventana horaria.
func serviceRow(data orders.TicketData) core.Row {
	window := "Sin programar"
	if data.StartTime != nil && data.EndTime != nil {
		window = fmt.Sprintf("%s — %s",
			data.StartTime.Format("02/01/2006 15:04"),
			data.EndTime.Format("15:04"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Tipo: %s   |   Técnico: %s",
				nonEmpty(data.ServiceType, "—"),
				nonEmpty(data.TechnicianName, "Sin asignar"),
			), props.Text{Size: 9, Top: 6}),
			text.New("Horario: "+window, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// notesRows: bloque de observaciones, omitido si la orden no trae notas.
func notesRows(data orders.TicketData) []core.Row {
	if data.Notes == "" {
		return nil
	}
	return []core.Row{
		row.New(5).Add(col.New(12).Add(
			text.New("OBSERVACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New(data.Notes, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}
}

// signatureRow: líneas de firma del técnico y del cliente.
func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{
				Size: 9, Align: align.Center, Top: 10,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 16, Color: colorGray,
			}),
		)
	}
	return row.New(22).Add(
		sig("Firma del técnico"),
		sig("Firma del cliente"),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
