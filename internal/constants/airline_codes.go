package constants

// IATAToICAO maps airline IATA designators to ICAO codes for carriers seen at
// the Brazilian hubs when the schedule omits the ICAO code.
var IATAToICAO = map[string]string{
	"LA": "LAN", "JJ": "TAM", // LATAM
	"G3": "GLO", // GOL
	"AD": "AZU", // Azul
	"ET": "ETH",
	"TP": "TAP",
	"AF": "AFR",
	"KL": "KLM",
	"IB": "IBE",
	"UX": "AEA",
	"BA": "BAW",
	"LH": "DLH",
	"LX": "SWR",
	"TK": "THY",
	"QR": "QTR",
	"EK": "UAE",
	"AA": "AAL",
	"UA": "UAL",
	"DL": "DAL",
	"AC": "ACA",
	"AM": "AMX",
	"CM": "CMP",
	"AV": "AVA",
	"AR": "ARG",
	"H2": "SKU",
	"JA": "JAT",
	"BO": "BOL",
	"PY": "SUR",
}
