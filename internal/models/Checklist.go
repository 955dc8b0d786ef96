package models

// EquipmentItems is the fixed equipment inventory checked at each shift, in form order.
var EquipmentItems = []string{
	"pertiga",
	"escalera_baja",
	"escalera_media",
	"detector_13_2kv",
	"puesta_tierra_jabalina",
	"pinza_identar_hidraulica",
	"aparejo",
	"morzas_autoajustables",
	"barreta",
	"ganchos",
	"escafandra",
	"boga_servicio",
	"amperometrica",
	"rotafasimetro",
	"linterna",
	"herramientas_mano",
}

// VehicleCheckItems is the fixed list of vehicle condition checks, in form order.
var VehicleCheckItems = []string{
	"seguro",
	"cedula_vehiculo",
	"luces",
	"balizas",
	"aceite",
	"agua",
	"liquido_freno",
	"rodados_presion",
	"matafueg",
	"auxilio_gato",
	"conos_soga",
	"botiquin",
}

type EquipmentChecklist struct {
	ID            uint `gorm:"primaryKey" json:"-"`
	ShiftRecordID uint `gorm:"uniqueIndex;not null" json:"-"`

	Pertiga                bool `gorm:"column:pertiga;not null" json:"pertiga"`
	EscaleraBaja           bool `gorm:"column:escalera_baja;not null" json:"escalera_baja"`
	EscaleraMedia          bool `gorm:"column:escalera_media;not null" json:"escalera_media"`
	Detector132kv          bool `gorm:"column:detector_13_2kv;not null" json:"detector_13_2kv"`
	PuestaTierraJabalina   bool `gorm:"column:puesta_tierra_jabalina;not null" json:"puesta_tierra_jabalina"`
	PinzaIdentarHidraulica bool `gorm:"column:pinza_identar_hidraulica;not null" json:"pinza_identar_hidraulica"`
	Aparejo                bool `gorm:"column:aparejo;not null" json:"aparejo"`
	MorzasAutoajustables   bool `gorm:"column:morzas_autoajustables;not null" json:"morzas_autoajustables"`
	Barreta                bool `gorm:"column:barreta;not null" json:"barreta"`
	Ganchos                bool `gorm:"column:ganchos;not null" json:"ganchos"`
	Escafandra             bool `gorm:"column:escafandra;not null" json:"escafandra"`
	BogaServicio           bool `gorm:"column:boga_servicio;not null" json:"boga_servicio"`
	Amperometrica          bool `gorm:"column:amperometrica;not null" json:"amperometrica"`
	Rotafasimetro          bool `gorm:"column:rotafasimetro;not null" json:"rotafasimetro"`
	Linterna               bool `gorm:"column:linterna;not null" json:"linterna"`
	HerramientasMano       bool `gorm:"column:herramientas_mano;not null" json:"herramientas_mano"`
}

func (e *EquipmentChecklist) flags() map[string]*bool {
	return map[string]*bool{
		"pertiga":                  &e.Pertiga,
		"escalera_baja":            &e.EscaleraBaja,
		"escalera_media":           &e.EscaleraMedia,
		"detector_13_2kv":          &e.Detector132kv,
		"puesta_tierra_jabalina":   &e.PuestaTierraJabalina,
		"pinza_identar_hidraulica": &e.PinzaIdentarHidraulica,
		"aparejo":                  &e.Aparejo,
		"morzas_autoajustables":    &e.MorzasAutoajustables,
		"barreta":                  &e.Barreta,
		"ganchos":                  &e.Ganchos,
		"escafandra":               &e.Escafandra,
		"boga_servicio":            &e.BogaServicio,
		"amperometrica":            &e.Amperometrica,
		"rotafasimetro":            &e.Rotafasimetro,
		"linterna":                 &e.Linterna,
		"herramientas_mano":        &e.HerramientasMano,
	}
}

// Set records the state of one item. It returns false when item is not on the checklist.
func (e *EquipmentChecklist) Set(item string, checked bool) bool {
	p, ok := e.flags()[item]
	if ok {
		*p = checked
	}
	return ok
}

// Items returns every item with its state; unchecked items are present as false.
func (e EquipmentChecklist) Items() map[string]bool {
	return snapshot(e.flags())
}

type VehicleChecklist struct {
	ID            uint `gorm:"primaryKey" json:"-"`
	ShiftRecordID uint `gorm:"uniqueIndex;not null" json:"-"`

	Seguro         bool `gorm:"column:seguro;not null" json:"seguro"`
	CedulaVehiculo bool `gorm:"column:cedula_vehiculo;not null" json:"cedula_vehiculo"`
	Luces          bool `gorm:"column:luces;not null" json:"luces"`
	Balizas        bool `gorm:"column:balizas;not null" json:"balizas"`
	Aceite         bool `gorm:"column:aceite;not null" json:"aceite"`
	Agua           bool `gorm:"column:agua;not null" json:"agua"`
	LiquidoFreno   bool `gorm:"column:liquido_freno;not null" json:"liquido_freno"`
	RodadosPresion bool `gorm:"column:rodados_presion;not null" json:"rodados_presion"`
	Matafueg       bool `gorm:"column:matafueg;not null" json:"matafueg"`
	AuxilioGato    bool `gorm:"column:auxilio_gato;not null" json:"auxilio_gato"`
	ConosSoga      bool `gorm:"column:conos_soga;not null" json:"conos_soga"`
	Botiquin       bool `gorm:"column:botiquin;not null" json:"botiquin"`
}

func (v *VehicleChecklist) flags() map[string]*bool {
	return map[string]*bool{
		"seguro":          &v.Seguro,
		"cedula_vehiculo": &v.CedulaVehiculo,
		"luces":           &v.Luces,
		"balizas":         &v.Balizas,
		"aceite":          &v.Aceite,
		"agua":            &v.Agua,
		"liquido_freno":   &v.LiquidoFreno,
		"rodados_presion": &v.RodadosPresion,
		"matafueg":        &v.Matafueg,
		"auxilio_gato":    &v.AuxilioGato,
		"conos_soga":      &v.ConosSoga,
		"botiquin":        &v.Botiquin,
	}
}

// Set records the state of one item. It returns false when item is not on the checklist.
func (v *VehicleChecklist) Set(item string, checked bool) bool {
	p, ok := v.flags()[item]
	if ok {
		*p = checked
	}
	return ok
}

func (v VehicleChecklist) Items() map[string]bool {
	return snapshot(v.flags())
}

func snapshot(flags map[string]*bool) map[string]bool {
	out := make(map[string]bool, len(flags))
	for k, p := range flags {
		out[k] = *p
	}
	return out
}
