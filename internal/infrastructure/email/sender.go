// Package email envía tickets de venta por correo vía SMTP.
package email

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/ventas"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	appconfig "github.com/elzarapeimports/zarape-pos-api/pkg/config"
)

var _ ventas.TicketSender = (*Sender)(nil)

// Sender envía el ticket PDF como adjunto.
type Sender struct {
	cfg  appconfig.SMTPConfig
	shop appconfig.ShopConfig
}

// NewSender construye el sender con la configuración SMTP.
func NewSender(cfg appconfig.SMTPConfig, shop appconfig.ShopConfig) *Sender {
	return &Sender{cfg: cfg, shop: shop}
}

// SendTicket envía el ticket de la venta al destinatario.
func (s *Sender) SendTicket(_ context.Context, destinatario string, venta *entity.Venta, pdf []byte) error {
	asunto := fmt.Sprintf("Ticket de compra %s - %s", venta.NumeroFactura, s.shop.Nombre)
	nombreAdjunto := "ticket.pdf"
	if venta.NumeroFactura != "" {
		nombreAdjunto = fmt.Sprintf("ticket-%s.pdf", venta.NumeroFactura[1:])
	}

	e := email.NewEmail()
	e.From = s.cfg.From
	e.To = []string{destinatario}
	e.Subject = asunto
	e.Text = []byte(fmt.Sprintf(
		"Gracias por su compra en %s.\n\nAdjuntamos el ticket de su venta %s por un total de $%s MXN.\n",
		s.shop.Nombre, venta.NumeroFactura, venta.Total().StringFixed(2),
	))
	if _, err := e.Attach(bytes.NewReader(pdf), nombreAdjunto, "application/pdf"); err != nil {
		return fmt.Errorf("adjuntar ticket: %w", err)
	}

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}
	if err := e.Send(s.cfg.Addr(), auth); err != nil {
		return fmt.Errorf("enviar ticket a %s: %w", destinatario, err)
	}
	return nil
}
