package notifications

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// Message готовое письмо
type Message struct {
	Subject string
	HTML    string
}

// PaymentDetails данные оплаченного бронирования из метаданных checkout
type PaymentDetails struct {
	Reference  string
	Name       string
	Email      string
	Route      string
	Date       string
	Time       string
	Passengers int
}

var (
	paymentCustomerTmpl = template.Must(template.New("payment_customer").Parse(
		`<p>Dear {{if .Name}}{{.Name}}{{else}}Passenger{{end}},</p>` +
			`<p>Your booking and payment have been confirmed.</p>` +
			`<p>Route: {{.Route}}</p><p>Date: {{.Date}}</p><p>Time: {{.Time}}</p>` +
			`<p>Passengers: {{.Passengers}}</p><p>Reference: {{.Reference}}</p><p>Thank you.</p>`))

	paymentAdminTmpl = template.Must(template.New("payment_admin").Parse(
		`<p>Booking confirmed via payment.</p><p>Reference: {{.Reference}}</p>` +
			`<p>Passenger: {{.Name}} &lt;{{.Email}}&gt;</p>` +
			`<p>Route: {{.Route}}</p><p>Date: {{.Date}}</p><p>Time: {{.Time}}</p>` +
			`<p>Passengers: {{.Passengers}}</p>`))

	demandCustomerTmpl = template.Must(template.New("demand_customer").Parse(
		`<p>Dear {{.Request.Name}},</p>` +
			`<p>Your request for the Queenstown shuttle has been confirmed.</p>` +
			`<p>Date: {{.Date}}</p><p>Time: {{.Time}}</p>` +
			`<p>Passengers: {{.Request.Passengers}}</p><p>Route: {{.Request.Route}}</p>` +
			`<p>Contact: {{.Request.Phone}}</p><p>Thank you.</p>`))

	demandAdminTmpl = template.Must(template.New("demand_admin").Parse(
		`<p>Queenstown shuttle confirmed.</p><p>Date: {{.Date}}</p><p>Time: {{.Time}}</p>` +
			`<ul>{{range .Requests}}<li>{{.Name}} &lt;{{.Email}}&gt; — {{.Passengers}} pax — {{.Route}} — {{.Phone}}</li>{{end}}</ul>`))
)

// PaymentConfirmedMessage письмо клиенту после успешной оплаты
func PaymentConfirmedMessage(d PaymentDetails) (Message, error) {
	return render(paymentCustomerTmpl, fmt.Sprintf("Booking confirmed: %s %s %s", d.Route, d.Date, d.Time), d)
}

// PaymentAdminMessage уведомление администратора об оплаченном бронировании
func PaymentAdminMessage(d PaymentDetails) (Message, error) {
	return render(paymentAdminTmpl, fmt.Sprintf("Admin: Booking confirmed %s %s", d.Date, d.Time), d)
}

// DemandConfirmedMessage письмо пассажиру о подтверждении рейса по спросу
func DemandConfirmedMessage(key domain.DemandKey, req *domain.DemandRequest) (Message, error) {
	data := struct {
		Date    string
		Time    string
		Request *domain.DemandRequest
	}{key.Date, key.Time, req}

	return render(demandCustomerTmpl, fmt.Sprintf("Booking confirmed: Queenstown shuttle %s %s", key.Date, key.Time), data)
}

// DemandAdminMessage сводка для администратора по подтвержденному рейсу
func DemandAdminMessage(key domain.DemandKey, requests []*domain.DemandRequest) (Message, error) {
	data := struct {
		Date     string
		Time     string
		Requests []*domain.DemandRequest
	}{key.Date, key.Time, requests}

	return render(demandAdminTmpl, fmt.Sprintf("Admin: Queenstown confirmed %s %s", key.Date, key.Time), data)
}

func render(tmpl *template.Template, subject string, data interface{}) (Message, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return Message{Subject: subject, HTML: buf.String()}, nil
}
