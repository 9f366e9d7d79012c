package rne

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	pkgstrings "github.com/avelineg/siren-search-widget-sub000/pkg/platform/strings"
)

type companyResponse struct {
	Siren     string `json:"siren"`
	Formality struct {
		Content struct {
			LegalPerson legalPerson `json:"personneMorale"`
		} `json:"content"`
	} `json:"formality"`
}

type legalPerson struct {
	Identity struct {
		Company struct {
			Name             string `json:"denomination"`
			LegalForm        string `json:"formeJuridique"`
			ActivityCode     string `json:"codeApe"`
			RegistrationDate string `json:"dateImmat"`
		} `json:"entreprise"`
		Description struct {
			Purpose string           `json:"objet"`
			Capital *decimal.Decimal `json:"montantCapital"`
		} `json:"description"`
	} `json:"identite"`
	Address struct {
		Address addressResponse `json:"adresse"`
	} `json:"adresseEntreprise"`
	Composition struct {
		Powers []powerResponse `json:"pouvoirs"`
	} `json:"composition"`
	MainEstablishment struct {
		Description struct {
			Sign           string `json:"enseigne"`
			CommercialName string `json:"nomCommercial"`
		} `json:"descriptionEtablissement"`
	} `json:"etablissementPrincipal"`
	Observations struct {
		RCS []observationResponse `json:"rcs"`
	} `json:"observations"`
	Registrations []registrationResponse `json:"inscriptionsOffices"`
}

type addressResponse struct {
	Number     string `json:"numVoie"`
	Repetition string `json:"indiceRepetition"`
	StreetType string `json:"typeVoie"`
	StreetName string `json:"voie"`
	Complement string `json:"complementLocalisation"`
	PostalCode string `json:"codePostal"`
	Locality   string `json:"commune"`
}

const personTypeIndividual = "INDIVIDU"

type powerResponse struct {
	PersonType string `json:"typeDePersonne"`
	Role       string `json:"roleEntreprise"`
	Individual struct {
		Person struct {
			LastName   string   `json:"nom"`
			FirstNames []string `json:"prenoms"`
			BirthDate  string   `json:"dateDeNaissance"`
		} `json:"descriptionPersonne"`
	} `json:"individu"`
	Company struct {
		Name  string `json:"denomination"`
		Siren string `json:"siren"`
	} `json:"entreprise"`
}

type observationResponse struct {
	Date string `json:"dateAjout"`
	Text string `json:"texte"`
}

type registrationResponse struct {
	Event       string `json:"event"`
	Date        string `json:"dateEffet"`
	Observation string `json:"observation"`
}

type attachmentsResponse struct {
	Acts   []actResponse     `json:"actes"`
	Annual []accountResponse `json:"bilans"`
	Total  int               `json:"total"`
}

type actResponse struct {
	ID       string `json:"id"`
	Date     string `json:"dateDepot"`
	Name     string `json:"nomDocument"`
	TypeRdds []struct {
		Type     string `json:"typeActe"`
		Decision string `json:"decision"`
	} `json:"typeRdd"`
}

type accountResponse struct {
	ID              string `json:"id"`
	ClosingDate     string `json:"dateCloture"`
	Type            string `json:"typeBilan"`
	Confidentiality string `json:"confidentiality"`
}

func (r companyResponse) toRecord(requested string) *models.EnrichmentRecord {
	lp := r.Formality.Content.LegalPerson
	addr := lp.Address.Address

	record := &models.EnrichmentRecord{
		Siren:          pkgstrings.FirstNonEmpty(r.Siren, requested),
		LegalName:      lp.Identity.Company.Name,
		TradeName:      lp.MainEstablishment.Description.Sign,
		CommercialName: lp.MainEstablishment.Description.CommercialName,
		LegalForm:      lp.Identity.Company.LegalForm,
		ActivityCode:   formatActivityCode(lp.Identity.Company.ActivityCode),
		CreationDate:   lp.Identity.Company.RegistrationDate,
		Purpose:        lp.Identity.Description.Purpose,
		Capital:        lp.Identity.Description.Capital,
		Address: models.AddressComponents{
			Number:     pkgstrings.JoinNonEmpty("", addr.Number, addr.Repetition),
			StreetType: addr.StreetType,
			StreetName: addr.StreetName,
			Complement: addr.Complement,
			PostalCode: addr.PostalCode,
			Locality:   addr.Locality,
		},
		Directors:     make([]models.Director, 0, len(lp.Composition.Powers)),
		Registrations: make([]models.Registration, 0, len(lp.Registrations)),
		Observations:  make([]models.Observation, 0, len(lp.Observations.RCS)),
	}

	for _, p := range lp.Composition.Powers {
		d := models.Director{Role: p.Role}
		if p.PersonType == personTypeIndividual {
			d.LastName = p.Individual.Person.LastName
			d.FirstNames = strings.Join(p.Individual.Person.FirstNames, " ")
			d.BirthDate = p.Individual.Person.BirthDate
		} else {
			d.Company = p.Company.Name
		}
		record.Directors = append(record.Directors, d)
	}
	for _, reg := range lp.Registrations {
		record.Registrations = append(record.Registrations, models.Registration{
			Date:        reg.Date,
			Type:        reg.Event,
			Description: reg.Observation,
		})
	}
	for _, obs := range lp.Observations.RCS {
		record.Observations = append(record.Observations, models.Observation{Date: obs.Date, Text: obs.Text})
	}
	return record
}

func (r attachmentsResponse) toPage(page, size int) *models.DocumentPage {
	out := &models.DocumentPage{
		Acts:   make([]models.Act, 0, len(r.Acts)),
		Annual: make([]models.AnnualAccounts, 0, len(r.Annual)),
		Page:   page,
		Size:   size,
		Total:  r.Total,
	}
	for _, a := range r.Acts {
		act := models.Act{ID: a.ID, Date: a.Date, Label: a.Name}
		if len(a.TypeRdds) > 0 {
			act.Type = a.TypeRdds[0].Type
			act.Label = pkgstrings.FirstNonEmpty(a.TypeRdds[0].Decision, a.Name)
		}
		out.Acts = append(out.Acts, act)
	}
	for _, b := range r.Annual {
		out.Annual = append(out.Annual, models.AnnualAccounts{
			ID:           b.ID,
			ClosingDate:  b.ClosingDate,
			Type:         b.Type,
			Confidential: !strings.EqualFold(b.Confidentiality, "Public"),
		})
	}
	return out
}

// formatActivityCode turns the register's "7010Z" into the registry's
// "70.10Z" so both sources compare equal.
func formatActivityCode(code string) string {
	code = strings.TrimSpace(code)
	if len(code) == 5 && !strings.Contains(code, ".") {
		return code[:2] + "." + code[2:]
	}
	return code
}
