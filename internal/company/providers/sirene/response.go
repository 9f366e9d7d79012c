package sirene

import (
	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	pkgstrings "github.com/avelineg/siren-search-widget-sub000/pkg/platform/strings"
)

const stateClosed = "F"

type siretResponse struct {
	Establishment establishmentResponse `json:"etablissement"`
}

type siretListResponse struct {
	Establishments []establishmentResponse `json:"etablissements"`
}

type sirenResponse struct {
	LegalUnit legalUnitResponse `json:"uniteLegale"`
}

type establishmentResponse struct {
	Siren        string                `json:"siren"`
	Nic          string                `json:"nic"`
	Siret        string                `json:"siret"`
	CreationDate string                `json:"dateCreationEtablissement"`
	Workforce    string                `json:"trancheEffectifsEtablissement"`
	HeadOffice   bool                  `json:"etablissementSiege"`
	LegalUnit    embeddedLegalUnit     `json:"uniteLegale"`
	Address      addressResponse       `json:"adresseEtablissement"`
	Periods      []establishmentPeriod `json:"periodesEtablissement"`
}

type embeddedLegalUnit struct {
	Name          string `json:"denominationUniteLegale"`
	LastName      string `json:"nomUniteLegale"`
	FirstName     string `json:"prenomUsuelUniteLegale"`
	LegalForm     string `json:"categorieJuridiqueUniteLegale"`
	ActivityCode  string `json:"activitePrincipaleUniteLegale"`
	State         string `json:"etatAdministratifUniteLegale"`
	HeadOfficeNIC string `json:"nicSiegeUniteLegale"`
}

type addressResponse struct {
	Number     string `json:"numeroVoieEtablissement"`
	Repetition string `json:"indiceRepetitionEtablissement"`
	StreetType string `json:"typeVoieEtablissement"`
	StreetName string `json:"libelleVoieEtablissement"`
	Complement string `json:"complementAdresseEtablissement"`
	PostalCode string `json:"codePostalEtablissement"`
	Locality   string `json:"libelleCommuneEtablissement"`
}

type establishmentPeriod struct {
	EndDate      *string `json:"dateFin"`
	StartDate    string  `json:"dateDebut"`
	State        string  `json:"etatAdministratifEtablissement"`
	Sign         string  `json:"enseigne1Etablissement"`
	UsualName    string  `json:"denominationUsuelleEtablissement"`
	ActivityCode string  `json:"activitePrincipaleEtablissement"`
}

type legalUnitResponse struct {
	Siren          string            `json:"siren"`
	CreationDate   string            `json:"dateCreationUniteLegale"`
	Workforce      string            `json:"trancheEffectifsUniteLegale"`
	SocialEconomy  string            `json:"economieSocialeSolidaireUniteLegale"`
	MissionCompany string            `json:"societeMissionUniteLegale"`
	Periods        []legalUnitPeriod `json:"periodesUniteLegale"`
}

type legalUnitPeriod struct {
	EndDate       *string `json:"dateFin"`
	StartDate     string  `json:"dateDebut"`
	State         string  `json:"etatAdministratifUniteLegale"`
	Name          string  `json:"denominationUniteLegale"`
	UsualName     string  `json:"denominationUsuelle1UniteLegale"`
	LastName      string  `json:"nomUniteLegale"`
	FirstName     string  `json:"prenomUsuelUniteLegale"`
	LegalForm     string  `json:"categorieJuridiqueUniteLegale"`
	ActivityCode  string  `json:"activitePrincipaleUniteLegale"`
	HeadOfficeNIC string  `json:"nicSiegeUniteLegale"`
}

// currentPeriod returns the open period (no end date), which
// the registry lists first.
func (e establishmentResponse) currentPeriod() establishmentPeriod {
	for _, p := range e.Periods {
		if p.EndDate == nil {
			return p
		}
	}
	if len(e.Periods) > 0 {
		return e.Periods[0]
	}
	return establishmentPeriod{}
}

func (e establishmentResponse) toRecord() *models.EstablishmentRecord {
	period := e.currentPeriod()
	siret := e.Siret
	if siret == "" && e.Siren != "" && e.Nic != "" {
		siret = e.Siren + e.Nic
	}
	siren := e.Siren
	if siren == "" && len(siret) >= 9 {
		siren = siret[:9]
	}

	record := &models.EstablishmentRecord{
		Siret:        siret,
		Siren:        siren,
		Name:         pkgstrings.FirstNonEmpty(period.Sign, period.UsualName),
		ActivityCode: period.ActivityCode,
		CreationDate: e.CreationDate,
		Workforce:    e.Workforce,
		HeadOffice:   e.HeadOffice,
		Address: models.AddressComponents{
			Number:     pkgstrings.JoinNonEmpty("", e.Address.Number, e.Address.Repetition),
			StreetType: e.Address.StreetType,
			StreetName: e.Address.StreetName,
			Complement: e.Address.Complement,
			PostalCode: e.Address.PostalCode,
			Locality:   e.Address.Locality,
		},
	}
	if period.State == stateClosed {
		record.ClosureDate = period.StartDate
	}
	return record
}

func (e establishmentResponse) toSearchHit() models.SearchHit {
	lu := e.LegalUnit
	return models.SearchHit{
		Siren:        e.Siren,
		Name:         pkgstrings.FirstNonEmpty(lu.Name, pkgstrings.JoinNonEmpty(" ", lu.FirstName, lu.LastName)),
		ActivityCode: lu.ActivityCode,
		PostalCode:   e.Address.PostalCode,
		Locality:     e.Address.Locality,
		Active:       lu.State != stateClosed,
	}
}

func (u legalUnitResponse) currentPeriod() legalUnitPeriod {
	for _, p := range u.Periods {
		if p.EndDate == nil {
			return p
		}
	}
	if len(u.Periods) > 0 {
		return u.Periods[0]
	}
	return legalUnitPeriod{}
}

func (u legalUnitResponse) toRecord() *models.LegalUnitRecord {
	period := u.currentPeriod()
	record := &models.LegalUnitRecord{
		Siren: u.Siren,
		Name: pkgstrings.FirstNonEmpty(
			period.Name,
			period.UsualName,
			pkgstrings.JoinNonEmpty(" ", period.FirstName, period.LastName),
		),
		LegalForm:      period.LegalForm,
		ActivityCode:   period.ActivityCode,
		CreationDate:   u.CreationDate,
		Workforce:      u.Workforce,
		HeadOfficeNIC:  period.HeadOfficeNIC,
		SocialEconomy:  u.SocialEconomy == "O",
		MissionCompany: u.MissionCompany == "O",
	}
	if period.State == "C" || period.State == stateClosed {
		record.ClosureDate = period.StartDate
	}
	return record
}
