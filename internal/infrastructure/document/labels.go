package document

import (
	"fmt"
	"strings"
)

const (
	LocalePtBR = "pt-BR"
	LocaleEnUS = "en-US"
)

// Labels is the printed vocabulary of one locale.
type Labels struct {
	OrderTitle       string
	QuoteTitle       string
	CustomerSection  string
	EquipmentSection string
	ServiceSection   string
	Attachments      string

	Name      string
	Phone     string
	Address   string
	Equipment string
	Brand     string
	Defect    string
	Service   string
	Status    string
	Arrival   string
	Delivery  string
	Guarantee string
	Estimated string
	Total     string
	Signature string

	NotAvailable       string
	DefectPlaceholder  string
	ServicePlaceholder string
	NoGuarantee        string
	GuaranteeDays      string

	DateLayout string
	Currency   string
	Thousands  string
	Decimal    string
}

var ptBR = Labels{
	OrderTitle:       "ORDEM DE SERVIÇO",
	QuoteTitle:       "ORÇAMENTO DE SERVIÇO",
	CustomerSection:  "1. DADOS DO CLIENTE",
	EquipmentSection: "2. EQUIPAMENTO",
	ServiceSection:   "3. DETALHES DO SERVIÇO",
	Attachments:      "ANEXOS",

	Name:      "Nome",
	Phone:     "Telefone",
	Address:   "Endereço",
	Equipment: "Equipamento",
	Brand:     "Marca/Modelo",
	Defect:    "Defeito Relatado",
	Service:   "Serviço Executado",
	Status:    "Situação",
	Arrival:   "Entrada",
	Delivery:  "Entrega",
	Guarantee: "Garantia",
	Estimated: "Valor Estimado",
	Total:     "VALOR TOTAL",
	Signature: "Assinatura do Cliente",

	NotAvailable:       "N/A",
	DefectPlaceholder:  "Em avaliação",
	ServicePlaceholder: "Em análise",
	NoGuarantee:        "Sem garantia",
	GuaranteeDays:      "%d dias",

	DateLayout: "02/01/2006",
	Currency:   "R$ ",
	Thousands:  ".",
	Decimal:    ",",
}

var enUS = Labels{
	OrderTitle:       "SERVICE ORDER",
	QuoteTitle:       "SERVICE QUOTE",
	CustomerSection:  "1. CUSTOMER",
	EquipmentSection: "2. EQUIPMENT",
	ServiceSection:   "3. SERVICE DETAILS",
	Attachments:      "ATTACHMENTS",

	Name:      "Name",
	Phone:     "Phone",
	Address:   "Address",
	Equipment: "Equipment",
	Brand:     "Brand/Model",
	Defect:    "Reported Defect",
	Service:   "Service Performed",
	Status:    "Status",
	Arrival:   "Arrival",
	Delivery:  "Delivery",
	Guarantee: "Warranty",
	Estimated: "Estimated Value",
	Total:     "TOTAL",
	Signature: "Customer Signature",

	NotAvailable:       "N/A",
	DefectPlaceholder:  "Under evaluation",
	ServicePlaceholder: "Under analysis",
	NoGuarantee:        "No warranty",
	GuaranteeDays:      "%d days",

	DateLayout: "02/01/2006",
	Currency:   "R$ ",
	Thousands:  ",",
	Decimal:    ".",
}

// LabelsFor returns the labels of locale. An empty locale is pt-BR.
func LabelsFor(locale string) (Labels, error) {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "", "pt-br", "pt_br", "pt":
		return ptBR, nil
	case "en-us", "en_us", "en":
		return enUS, nil
	}
	return Labels{}, fmt.Errorf("document: unsupported locale %q", locale)
}
