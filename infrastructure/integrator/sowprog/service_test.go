package sowprog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	sowprogdomain "github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog/domain"
	sowprogmocks "github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog/mocks"
	"github.com/cultplace/cultplace-api/internal/domain"
)

func TestSowprogService_ResolveConcert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := sowprogmocks.NewMockClient(ctrl)

	service := &SowprogService{
		Client: mockClient,
	}

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	eventsPtr := func(events []sowprogdomain.ScheduledEvent) *[]sowprogdomain.ScheduledEvent {
		return &events
	}

	tests := []struct {
		name          string
		setup         func()
		expectedName  string
		expectedInfos domain.ConcertInfos
		wantErr       error
	}{
		{
			name: "Un seul concert programmé, fiche complète",
			setup: func() {
				mockClient.EXPECT().
					SearchScheduledEvents(date).
					Return(&sowprogdomain.SearchResponse{
						EventDescriptionSplitByDate: eventsPtr([]sowprogdomain.ScheduledEvent{
							{
								Event: sowprogdomain.Event{
									Title:           "Soirée Dub",
									EventStyle:      sowprogdomain.EventStyle{Label: "Dub"},
									FacebookFanPage: "https://facebook.com/soireedub",
									Picture:         "https://sowprog.com/pictures/dub.jpg",
								},
								FreeAdmission: false,
							},
						}),
					}, nil)
			},
			expectedName: "Soirée Dub",
			expectedInfos: domain.ConcertInfos{
				Title:    "Soirée Dub",
				Facebook: "https://facebook.com/soireedub",
				Style:    "Dub",
				Free:     false,
				Picture:  "https://sowprog.com/pictures/dub.jpg",
			},
		},
		{
			name: "Un concert sans page Facebook ni photo, liens de substitution",
			setup: func() {
				mockClient.EXPECT().
					SearchScheduledEvents(date).
					Return(&sowprogdomain.SearchResponse{
						EventDescriptionSplitByDate: eventsPtr([]sowprogdomain.ScheduledEvent{
							{
								Event: sowprogdomain.Event{
									Title:      "Jam session",
									EventStyle: sowprogdomain.EventStyle{Label: "Jazz"},
								},
								FreeAdmission: true,
							},
						}),
					}, nil)
			},
			expectedName: "Jam session",
			expectedInfos: domain.ConcertInfos{
				Title:    "Jam session",
				Facebook: "#",
				Style:    "Jazz",
				Free:     true,
				Picture:  "#",
			},
		},
		{
			name: "Aucun concert programmé",
			setup: func() {
				mockClient.EXPECT().
					SearchScheduledEvents(date).
					Return(&sowprogdomain.SearchResponse{
						EventDescriptionSplitByDate: eventsPtr([]sowprogdomain.ScheduledEvent{}),
					}, nil)
			},
			expectedName:  NoConcertName,
			expectedInfos: defaultConcertInfos(),
		},
		{
			name: "Conteneur d'événements absent de la réponse",
			setup: func() {
				mockClient.EXPECT().
					SearchScheduledEvents(date).
					Return(&sowprogdomain.SearchResponse{}, nil)
			},
			expectedName:  APIErrorName,
			expectedInfos: defaultConcertInfos(),
			wantErr:       ErrEventDataUnavailable,
		},
		{
			name: "Plusieurs concerts pour la même date",
			setup: func() {
				mockClient.EXPECT().
					SearchScheduledEvents(date).
					Return(&sowprogdomain.SearchResponse{
						EventDescriptionSplitByDate: eventsPtr([]sowprogdomain.ScheduledEvent{
							{Event: sowprogdomain.Event{Title: "Concert A"}},
							{Event: sowprogdomain.Event{Title: "Concert B"}},
						}),
					}, nil)
			},
			expectedName:  MultipleConcertsName,
			expectedInfos: defaultConcertInfos(),
			wantErr:       ErrAmbiguousEvents,
		},
		{
			name: "Agenda injoignable, fiche par défaut tout de même renseignée",
			setup: func() {
				mockClient.EXPECT().
					SearchScheduledEvents(date).
					Return(nil, assert.AnError)
			},
			expectedName:  APIErrorName,
			expectedInfos: defaultConcertInfos(),
			wantErr:       assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			name, infos, err := service.ResolveConcert(date)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedInfos, infos)
		})
	}
}
