package payment

import "strings"

// HealthInsurancePlans maps each supported insurer to its plan codes.
var HealthInsurancePlans = map[string][]string{
	"OSDE":             {"210", "310", "410", "450", "510"},
	"SWISS MEDICAL":    {"SMG20", "SMG30", "SMG40", "SMG50", "SMG60"},
	"GALENO":           {"220", "330", "440"},
	"MEDICUS":          {"MEDICUS"},
	"OMINT":            {"GLOBAL", "PREMIUM"},
	"SANCOR SALUD":     {"1000", "2000", "3000", "4000"},
	"MEDIFÉ":           {"BRONCE", "PLATA", "ORO"},
	"PREVENCIÓN SALUD": {"A1", "A2", "A3"},
	"OSECAC":           {"OSECAC"},
	"OSDEPYM":          {"OSDEPYM"},
	"OSPRERA":          {"OSPRERA"},
	"OSPACA":           {"OSPACA"},
	"OSPE":             {"OSPE"},
	"OSUTHGRA":         {"OSUTHGRA"},
	"OSUOM":            {"OSUOM"},
	"OSMATA":           {"OSMATA"},
	"IOMA":             {"IOMA"},
	"IOSFA":            {"IOSFA"},
	"PAMI":             {"PAMI"},
}

// HealthPlansFor returns the plan codes for an insurer, matching
// case-insensitively and ignoring surrounding whitespace. Unknown insurers
// get an empty list.
func HealthPlansFor(insurance string) []string {
	normalized := strings.ToUpper(strings.TrimSpace(insurance))
	if normalized == "" {
		return nil
	}
	return HealthInsurancePlans[normalized]
}
