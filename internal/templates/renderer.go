// Package templates renders transactional email bodies.
//
// Output is produced with text/template: customer-supplied text is
// interpolated verbatim, without HTML escaping. Order dates are shown in
// UTC so one instant always renders as the same calendar day.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"math"
	"strings"
	"text/template"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed *.html.tmpl
var files embed.FS

const (
	orderConfirmationTemplate = "order_confirmation.html.tmpl"
	orderDateLayout           = "2 January 2006"
	rupeeSymbol               = "₹"
	maxFractionDigits         = 3
)

var maxGroupedWhole = decimal.NewFromInt(math.MaxInt64)

type itemView struct {
	Name     string
	Quantity int
	Price    string
	Total    string
}

type orderView struct {
	DisplayID      string
	CustomerName   string
	OrderDate      string
	CurrencySymbol string
	Items          []itemView
	TotalAmount    string
	Shipping       domain.ShippingAddress
	PaymentLabel   string
}

// Renderer is safe for concurrent use.
type Renderer struct {
	tmpl    *template.Template
	printer *message.Printer
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(files, orderConfirmationTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	return &Renderer{
		tmpl:    tmpl,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Render produces the order confirmation HTML. Identical input yields
// byte-identical output.
func (r *Renderer) Render(data domain.OrderData) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, orderConfirmationTemplate, r.view(data)); err != nil {
		return "", fmt.Errorf("render order confirmation: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) view(data domain.OrderData) orderView {
	items := make([]itemView, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, itemView{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    r.formatAmount(item.Price),
			Total:    r.formatAmount(item.Total()),
		})
	}

	return orderView{
		DisplayID:      data.DisplayID(),
		CustomerName:   data.CustomerName,
		OrderDate:      data.OrderDate.UTC().Format(orderDateLayout),
		CurrencySymbol: rupeeSymbol,
		Items:          items,
		TotalAmount:    r.formatAmount(data.TotalAmount),
		Shipping:       data.ShippingAddress,
		PaymentLabel:   domain.PaymentMethodLabel(data.PaymentMethod),
	}
}

// formatAmount groups digits and keeps up to three fraction digits,
// dropping trailing zeros. Only the whole part goes through the printer,
// so no digits are lost to float conversion.
func (r *Renderer) formatAmount(d decimal.Decimal) string {
	rounded := d.Round(maxFractionDigits)
	abs := rounded.Abs()
	whole := abs.Truncate(0)

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	if whole.GreaterThan(maxGroupedWhole) {
		b.WriteString(whole.String())
	} else {
		b.WriteString(r.printer.Sprint(number.Decimal(whole.IntPart())))
	}
	if frac := abs.Sub(whole); !frac.IsZero() {
		b.WriteString(strings.TrimPrefix(frac.String(), "0"))
	}
	return b.String()
}
