package sowprog

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	sowprogdomain "github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog/domain"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog/sowprogclient"
	"github.com/cultplace/cultplace-api/internal/config"
	"github.com/cultplace/cultplace-api/internal/domain"
	"github.com/cultplace/cultplace-api/pkg/utils"
)

// Noms sentinelles du concert, tels qu'affichés sur les fiches de service.
const (
	NoConcertName        = "Sans concert"
	APIErrorName         = "Error with API"
	MultipleConcertsName = "Multiples concerts"

	placeholderLink = "#"
)

var (
	// ErrEventDataUnavailable : la réponse SowProg ne contient pas le
	// conteneur d'événements attendu.
	ErrEventDataUnavailable = errors.New("sowprog n'a pas fourni de données d'événements")
	// ErrAmbiguousEvents : plusieurs concerts pour une même date.
	ErrAmbiguousEvents = errors.New("trop de données renvoyées par sowprog")
)

type SowprogIntegrator interface {
	// ResolveConcert retourne le nom du concert de la date donnée et sa
	// fiche. Les quatre issues (un concert, aucun, conteneur absent,
	// concerts multiples) sont des valeurs de retour : la fiche est
	// toujours renseignée, l'erreur n'interrompt jamais l'appelant seule.
	ResolveConcert(date time.Time) (string, domain.ConcertInfos, error)
}

type SowprogService struct {
	cfg    *config.Config
	Client sowprogclient.Client
}

func New(cfg *config.Config, client sowprogclient.Client) SowprogIntegrator {
	return &SowprogService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SowprogService) ResolveConcert(date time.Time) (string, domain.ConcertInfos, error) {
	response, err := s.Client.SearchScheduledEvents(date)
	if err != nil {
		// Même en cas de panne de l'agenda, la fiche retournée reste
		// exploitable par l'appelant
		return APIErrorName, defaultConcertInfos(), err
	}

	return classifyResponse(response)
}

func classifyResponse(response *sowprogdomain.SearchResponse) (string, domain.ConcertInfos, error) {
	events := response.EventDescriptionSplitByDate

	if events != nil && len(*events) == 1 {
		event := (*events)[0]

		facebook := placeholderLink
		if event.Event.FacebookFanPage != "" {
			facebook = event.Event.FacebookFanPage
		}

		picture := placeholderLink
		if event.Event.Picture != "" {
			picture = event.Event.Picture
		}

		infos := domain.ConcertInfos{
			Title:    event.Event.Title,
			Facebook: facebook,
			Style:    event.Event.EventStyle.Label,
			Free:     event.FreeAdmission,
			Picture:  picture,
		}

		return event.Event.Title, infos, nil
	}

	// Fiche par défaut pour les trois autres issues
	infos := defaultConcertInfos()

	if events == nil {
		return APIErrorName, infos, ErrEventDataUnavailable
	}

	if len(*events) > 1 {
		logrus.WithFields(logrus.Fields{
			"sowprog_events": utils.PrettyJson(*events),
		}).Warn("Réponse sowprog ambiguë, plusieurs concerts pour la même date")
		return MultipleConcertsName, infos, ErrAmbiguousEvents
	}

	return NoConcertName, infos, nil
}

func defaultConcertInfos() domain.ConcertInfos {
	return domain.ConcertInfos{
		Title:    NoConcertName,
		Facebook: placeholderLink,
		Style:    "",
		Free:     true,
		Picture:  placeholderLink,
	}
}
