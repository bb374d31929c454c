package model

// Requester types (quien_completa).
const (
	RequesterStaff       = "Colaborador de Syemed"
	RequesterDistributor = "Distribuidor"
	RequesterInstitution = "Institución"
	RequesterPatient     = "Paciente/Particular"
)

// Equipment-owner selections available to internal staff
// (equipo_corresponde_a).
const (
	OwnerPatient     = "Paciente/Particular"
	OwnerDistributor = "Distribuidor"
	OwnerInstitution = "Institución"
	OwnerStock       = "Equipo de Stock"
	OwnerDemoReturn  = "Baja de demo"
)

// Request reasons (motivo_solicitud). The last two are fixed by the intake
// path for stock and demo-return equipment, never picked by the requester.
const (
	ReasonTechnicalService = "Servicio Técnico (reparaciones de equipos en general)"
	ReasonPostSaleService  = "Servicio Post Venta (para alguno de nuestros productos adquiridos)"
	ReasonRentalEnd        = "Baja de Alquiler"
	ReasonRentalChange     = "Cambio de Alquiler"
	ReasonCriticalFailure  = "Cambio por falla de funcionamiento crítica"
	ReasonStockEquipment   = "Equipo de Stock"
	ReasonDemoReturn       = "Baja de demo"
)

// Equipment tenure (equipo_propiedad).
const (
	TenureOwned  = "Propio"
	TenureRented = "Alquilado"
)

// Selector placeholders. A field still holding its placeholder counts as
// not filled in.
const (
	PlaceholderEquipmentType = "Seleccionar tipo..."
	PlaceholderBrand         = "Seleccionar marca..."
	PlaceholderModel         = "Seleccionar modelo..."
	PlaceholderAgent         = "Seleccionar comercial..."
	PlaceholderRequester     = "Seleccionar solicitante..."
)

// RequestingAreas lists the internal areas that may open a request.
var RequestingAreas = []string{"Comercial", "Comex", "Logística/Depósito"}

// Agents are the sales representatives selectable as Syemed contact.
var Agents = []string{PlaceholderAgent, "Ariel", "Clara", "Diana", "Francesca", "Isabel", "Lucas", "Miguel"}

// InternalRequesters are the staff members selectable as solicitante.
var InternalRequesters = []string{PlaceholderRequester, "Ariel", "Clara", "Daiana", "Diana", "Facundo", "Francesca", "Isabel", "Lucas", "Miguel", "Rubén", "Tomás"}

// IssueTags are the predefined failure descriptions the submitter can tick
// for technical-service and post-sale requests.
var IssueTags = []string{
	"El equipo no muestra ningún signo de falla pero no funciona",
	"El equipo no enciende cuando lo enchufo",
	"El equipo presento una falla en su funcionamiento",
	"El equipo indica un código de error",
	"El equipo se cayo y no funciona",
	"El equipo se mojó y no funciona",
	"El equipo muestra una alarma amarilla/roja",
	"Faltan accesorios",
	"Garantia",
	"No se como se usa el equipamiento",
	"No se como funcionan los descartables del equipo",
}

// EquipmentTypes is the selectable equipment catalog, placeholder first.
var EquipmentTypes = []string{
	PlaceholderEquipmentType,
	"Analizador de gases", "Asistente de Tos", "Aspirador de secreciones",
	"Aspirador Manual", "Balón de Contrapulsación", "Bomba a jeringa",
	"Bomba de Infusión", "Bomba de Presión Negativa", "BPAP", "Cables Varios",
	"Calentador Humidificador", "Capnógrafo", "Cardiodesfibrilador",
	"Concentrador de Oxígeno", "Concentrador de Oxígeno Portátil", "CPAP",
	"DEA", "Electrocardiógrafo", "Incubadora", "Luminoterapia", "Marcapasos",
	"Mesa de Anestesia", "Mochila de Oxígeno", "Módulo de Capnografía",
	"Módulo PI", "Monitor Multiparamétrico", "Oxímetro de Pulso", "Respirador",
	"Respirador Portátil", "Tubo de Oxígeno", "Vaporizador de anestesia",
	"No se/No lo encuentro en la lista",
}

// EquipmentBrands is the selectable brand catalog, placeholder first.
var EquipmentBrands = []string{
	PlaceholderBrand,
	"Arrow", "Biocare", "Bistos", "Cardiotécnica", "Cegens", "Comen",
	"Confort Cough", "Contec", "Covidien", "Daiwha", "Datascope", "Dräger",
	"Edan", "Enmind", "Fisher&Paykel", "Leex", "Lifotronic", "Long Fian",
	"Lovego", "Marbel", "Massimo", "Maverick", "MDV", "Medix", "Medtronic",
	"Mindray", "MUX", "Nellcor", "Neumovent", "Philips", "Yuwell",
	"No se / No lo encuentro en esta lista",
}

// EquipmentModels is the selectable model catalog, placeholder first.
var EquipmentModels = []string{
	PlaceholderModel,
	"7E-C", "7E-G", "7F-10", "7F-5 Mini", "9F-5", "Autocat II", "Autocat II Wave",
	"BT-400", "BT-500", "Cloud", "CC20", "CMS8000", "CO2-M01", "DI2000",
	"EN-S7", "EN-V7", "Evergo", "Fabius", "Fabius Plus", "Fabius Plus XL",
	"Graphnet TS", "HC100", "HT-109", "iE-101", "iE-300", "IM8B", "Jay-5",
	"Jay-5Q", "LG103", "Libra", "M3A", "MR810", "N/E", "NP-100", "NP-600",
	"Prisma Vent 40", "Prisma Vent 50", "Puritan Bennett 560", "RG-401",
	"RG-401 Plus", "RG-501", "RG-501 Plus", "Scio Four", "SP-50", "SP-50 Pro",
	"Spirit 3", "Star 8000", "System 97", "System 97e", "Trilogy", "Vapor 2000",
	"Vista 120", "VP-50", "VP-50 Pro", "YH-350", "YH-360", "YH-550", "YH-560",
	"YH-725", "YH-730", "5342", "5346", "No se / No lo encuentro en esta lista",
}

// Catalog bundles every selectable option list for form rendering.
type Catalog struct {
	RequesterTypes  []string `json:"quien_completa"`
	RequestingAreas []string `json:"areas_solicitantes"`
	EquipmentOwners []string `json:"equipo_corresponde_a"`
	Reasons         []string `json:"motivos_solicitud"`
	IssueTags       []string `json:"fallas_problemas"`
	EquipmentTypes  []string `json:"tipos_equipo"`
	EquipmentBrands []string `json:"marcas_equipo"`
	EquipmentModels []string `json:"modelos_equipo"`
	Agents          []string `json:"comerciales"`
	Requesters      []string `json:"solicitantes"`
}

// FormCatalog returns the option lists the interactive form renders.
func FormCatalog() Catalog {
	return Catalog{
		RequesterTypes:  []string{RequesterStaff, RequesterDistributor, RequesterInstitution, RequesterPatient},
		RequestingAreas: RequestingAreas,
		EquipmentOwners: []string{OwnerPatient, OwnerDistributor, OwnerInstitution, OwnerStock, OwnerDemoReturn},
		Reasons:         []string{ReasonTechnicalService, ReasonPostSaleService, ReasonRentalEnd, ReasonRentalChange, ReasonCriticalFailure},
		IssueTags:       IssueTags,
		EquipmentTypes:  EquipmentTypes,
		EquipmentBrands: EquipmentBrands,
		EquipmentModels: EquipmentModels,
		Agents:          Agents,
		Requesters:      InternalRequesters,
	}
}
