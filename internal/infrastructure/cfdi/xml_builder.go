// Package cfdi construye el comprobante XML de una venta facturada, con la
// estructura del CFDI 4.0 del SAT (sin timbrado: el PAC queda fuera del sistema).
package cfdi

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/ventas"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	appconfig "github.com/elzarapeimports/zarape-pos-api/pkg/config"
)

const (
	cfdiNamespace = "http://www.sat.gob.mx/cfd/4"
	rfcGenerico   = "XAXX010101000" // público en general
)

var _ ventas.FacturaXMLBuilder = (*XMLBuilder)(nil)

// XMLBuilder arma el XML con los datos fiscales de la tienda como emisor.
type XMLBuilder struct {
	shop appconfig.ShopConfig
}

// NewXMLBuilder construye el builder.
func NewXMLBuilder(shop appconfig.ShopConfig) *XMLBuilder {
	return &XMLBuilder{shop: shop}
}

// BuildFacturaXML genera el comprobante de una venta facturada.
func (b *XMLBuilder) BuildFacturaXML(venta *entity.Venta) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	comprobante := doc.CreateElement("cfdi:Comprobante")
	comprobante.CreateAttr("xmlns:cfdi", cfdiNamespace)
	comprobante.CreateAttr("Version", "4.0")
	comprobante.CreateAttr("Folio", venta.NumeroFactura)
	comprobante.CreateAttr("Fecha", venta.FechaHora.Format("2006-01-02T15:04:05"))
	comprobante.CreateAttr("SubTotal", venta.Subtotal().StringFixed(2))
	comprobante.CreateAttr("Moneda", "MXN")
	comprobante.CreateAttr("Total", venta.Total().StringFixed(2))
	comprobante.CreateAttr("TipoDeComprobante", "I")
	comprobante.CreateAttr("FormaPago", formaPagoSAT(venta.MetodoPago))

	emisor := comprobante.CreateElement("cfdi:Emisor")
	emisor.CreateAttr("Rfc", b.shop.RFC)
	emisor.CreateAttr("Nombre", b.shop.Nombre)

	receptor := comprobante.CreateElement("cfdi:Receptor")
	if venta.Cliente != nil && venta.Cliente.RFC != "" {
		receptor.CreateAttr("Rfc", venta.Cliente.RFC)
		receptor.CreateAttr("Nombre", venta.Cliente.Nombre)
	} else {
		receptor.CreateAttr("Rfc", rfcGenerico)
		receptor.CreateAttr("Nombre", "PUBLICO EN GENERAL")
	}

	conceptos := comprobante.CreateElement("cfdi:Conceptos")
	for _, e := range venta.Elementos {
		concepto := conceptos.CreateElement("cfdi:Concepto")
		concepto.CreateAttr("NoIdentificacion", e.ProductoCodigo)
		concepto.CreateAttr("Cantidad", fmt.Sprintf("%d", e.Cantidad))
		concepto.CreateAttr("Descripcion", e.ProductoNombre)
		concepto.CreateAttr("ValorUnitario", e.ProductoPrecio.StringFixed(2))
		concepto.CreateAttr("Descuento", e.ProductoPrecio.Mul(e.Descuento).StringFixed(2))
		concepto.CreateAttr("Importe", e.Subtotal().StringFixed(2))

		impuestos := concepto.CreateElement("cfdi:Impuestos")
		traslados := impuestos.CreateElement("cfdi:Traslados")
		traslado := traslados.CreateElement("cfdi:Traslado")
		traslado.CreateAttr("Base", e.Subtotal().StringFixed(2))
		traslado.CreateAttr("Impuesto", "002") // IVA
		traslado.CreateAttr("TasaOCuota", e.ProductoImpuesto.StringFixed(6))
		traslado.CreateAttr("Importe", e.ImpuestoTotal().StringFixed(2))
	}

	impuestos := comprobante.CreateElement("cfdi:Impuestos")
	impuestos.CreateAttr("TotalImpuestosTrasladados", venta.ImpuestoTotal().StringFixed(2))

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("cfdi: serializar comprobante: %w", err)
	}
	return data, nil
}

// formaPagoSAT mapea el método de pago al catálogo c_FormaPago del SAT.
func formaPagoSAT(metodo string) string {
	switch metodo {
	case entity.PagoEfectivo:
		return "01"
	case entity.PagoTarjetaDebito:
		return "28"
	case entity.PagoTarjetaCredito:
		return "04"
	case entity.PagoTransferencia:
		return "03"
	default:
		return "99"
	}
}
