// Package decode turns INSEE codes into display labels. The tables are
// read-only and cover the codes most lookups return; unknown codes decode
// to an empty label.
package decode

import "strings"

// Tables is the decoder used by the aggregator.
type Tables struct {
	legalForms map[string]string
	activities map[string]string
	workforce  map[string]string
}

// Default returns the built-in tables.
func Default() *Tables {
	return &Tables{
		legalForms: legalForms,
		activities: activities,
		workforce:  workforceBrackets,
	}
}

// LegalForm decodes a 4-digit "catégorie juridique". When the exact code is
// unknown the 2-digit family label is returned.
func (t *Tables) LegalForm(code string) string {
	code = strings.TrimSpace(code)
	if label, ok := t.legalForms[code]; ok {
		return label
	}
	if len(code) == 4 {
		return legalFamilies[code[:2]]
	}
	return ""
}

// Activity decodes a NAF rev.2 code, with or without the dot ("70.10Z" or "7010Z").
func (t *Tables) Activity(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) == 5 && !strings.Contains(code, ".") {
		code = code[:2] + "." + code[2:]
	}
	return t.activities[code]
}

// Workforce decodes a "tranche d'effectif salarié" code.
func (t *Tables) Workforce(code string) string {
	return t.workforce[strings.TrimSpace(code)]
}

var workforceBrackets = map[string]string{
	"NN": "Unités non employeuses",
	"00": "0 salarié",
	"01": "1 ou 2 salariés",
	"02": "3 à 5 salariés",
	"03": "6 à 9 salariés",
	"11": "10 à 19 salariés",
	"12": "20 à 49 salariés",
	"21": "50 à 99 salariés",
	"22": "100 à 199 salariés",
	"31": "200 à 249 salariés",
	"32": "250 à 499 salariés",
	"41": "500 à 999 salariés",
	"42": "1 000 à 1 999 salariés",
	"51": "2 000 à 4 999 salariés",
	"52": "5 000 à 9 999 salariés",
	"53": "10 000 salariés et plus",
}

var legalFamilies = map[string]string{
	"10": "Entrepreneur individuel",
	"21": "Indivision",
	"22": "Société créée de fait",
	"23": "Société en participation",
	"27": "Paroisse hors zone concordataire",
	"51": "Société coopérative commerciale particulière",
	"52": "Société en nom collectif",
	"53": "Société en commandite",
	"54": "Société à responsabilité limitée (SARL)",
	"55": "Société anonyme à conseil d'administration",
	"56": "Société anonyme à directoire",
	"57": "Société par actions simplifiée",
	"58": "Société européenne",
	"65": "Société civile",
	"73": "Établissement public administratif",
	"74": "Autre personne morale de droit public administratif",
	"92": "Association loi 1901 ou assimilé",
}

var legalForms = map[string]string{
	"1000": "Entrepreneur individuel",
	"5202": "Société en nom collectif",
	"5306": "Société en commandite simple",
	"5308": "Société en commandite par actions",
	"5410": "SARL nationale",
	"5422": "SARL immobilière pour le commerce et l'industrie (SICOMI)",
	"5426": "SARL immobilière de gestion",
	"5430": "SARL d'aménagement foncier et d'équipement rural (SAFER)",
	"5443": "SARL coopérative de construction",
	"5451": "SARL coopérative de consommation",
	"5458": "SARL coopérative ouvrière de production (SCOP)",
	"5485": "Société d'exercice libéral à responsabilité limitée",
	"5498": "SARL unipersonnelle",
	"5499": "Société à responsabilité limitée (sans autre indication)",
	"5505": "SA à participation ouvrière à conseil d'administration",
	"5510": "SA nationale à conseil d'administration",
	"5515": "SA d'économie mixte à conseil d'administration",
	"5520": "Fonds à forme sociétale à conseil d'administration",
	"5599": "SA à conseil d'administration (s.a.i.)",
	"5699": "SA à directoire (s.a.i.)",
	"5710": "SAS, société par actions simplifiée",
	"5720": "Société par actions simplifiée à associé unique",
	"5785": "Société d'exercice libéral par action simplifiée",
	"5800": "Société européenne",
	"6540": "Société civile immobilière",
	"6541": "Société civile immobilière de construction-vente",
	"6588": "Société civile laitière",
	"6599": "Autre société civile",
	"7389": "Établissement public national à caractère administratif",
	"9220": "Association déclarée",
	"9221": "Association déclarée d'insertion par l'économique",
	"9230": "Association déclarée, reconnue d'utilité publique",
	"9300": "Fondation",
}

var activities = map[string]string{
	"01.11Z": "Culture de céréales (à l'exception du riz), de légumineuses et de graines oléagineuses",
	"10.51A": "Fabrication de lait liquide et de produits frais",
	"10.71C": "Boulangerie et boulangerie-pâtisserie",
	"11.07A": "Industrie des eaux de table",
	"20.42Z": "Fabrication de parfums et de produits pour la toilette",
	"29.10Z": "Construction de véhicules automobiles",
	"35.11Z": "Production d'électricité",
	"41.20A": "Construction de maisons individuelles",
	"43.21A": "Travaux d'installation électrique dans tous locaux",
	"45.11Z": "Commerce de voitures et de véhicules automobiles légers",
	"46.90Z": "Commerce de gros (commerce interentreprises) non spécialisé",
	"47.11D": "Supermarchés",
	"47.11F": "Hypermarchés",
	"49.10Z": "Transport ferroviaire interurbain de voyageurs",
	"55.10Z": "Hôtels et hébergement similaire",
	"56.10A": "Restauration traditionnelle",
	"56.10C": "Restauration de type rapide",
	"58.29C": "Édition de logiciels applicatifs",
	"61.10Z": "Télécommunications filaires",
	"62.01Z": "Programmation informatique",
	"62.02A": "Conseil en systèmes et logiciels informatiques",
	"63.11Z": "Traitement de données, hébergement et activités connexes",
	"64.19Z": "Autres intermédiations monétaires",
	"64.20Z": "Activités des sociétés holding",
	"68.20A": "Location de logements",
	"68.20B": "Location de terrains et d'autres biens immobiliers",
	"69.10Z": "Activités juridiques",
	"69.20Z": "Activités comptables",
	"70.10Z": "Activités des sièges sociaux",
	"70.22Z": "Conseil pour les affaires et autres conseils de gestion",
	"71.12B": "Ingénierie, études techniques",
	"73.11Z": "Activités des agences de publicité",
	"85.59A": "Formation continue d'adultes",
	"86.21Z": "Activité des médecins généralistes",
	"94.99Z": "Autres organisations fonctionnant par adhésion volontaire",
}
