// Package microsoft reads a user's mailbox and calendar through the
// Microsoft Graph REST API.
package microsoft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

type gateway struct {
	httpClient *http.Client
	baseURL    string
}

// NewGateway creates the Microsoft Graph data gateway.
func NewGateway() service.ProviderGateway {
	return &gateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    graphBaseURL,
	}
}

func (g *gateway) Provider() entity.ExternalProvider {
	return entity.ExternalProviderMicrosoft
}

// FetchMail retrieves the most recent Outlook messages, newest first.
func (g *gateway) FetchMail(ctx context.Context, accessToken string, limit int) ([]*entity.Email, error) {
	query := url.Values{}
	query.Set("$top", fmt.Sprintf("%d", limit))
	query.Set("$orderby", "receivedDateTime desc")

	var payload struct {
		Value []graphMessage `json:"value"`
	}
	if err := g.get(ctx, accessToken, "/me/messages?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	emails := make([]*entity.Email, 0, len(payload.Value))
	for _, msg := range payload.Value {
		emails = append(emails, msg.toEntity())
	}

	return emails, nil
}

// FetchEvents retrieves calendar-view events within [from, to).
func (g *gateway) FetchEvents(ctx context.Context, accessToken string, from, to time.Time) ([]*entity.CalendarEvent, error) {
	query := url.Values{}
	query.Set("startDateTime", from.UTC().Format(time.RFC3339))
	query.Set("endDateTime", to.UTC().Format(time.RFC3339))
	query.Set("$orderby", "start/dateTime")

	var payload struct {
		Value []graphEvent `json:"value"`
	}
	if err := g.get(ctx, accessToken, "/me/calendarView?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	events := make([]*entity.CalendarEvent, 0, len(payload.Value))
	for _, item := range payload.Value {
		event, err := item.toEntity()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func (g *gateway) get(ctx context.Context, accessToken, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "build graph request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "call graph api")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("graph api returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode graph response")
	}

	return nil
}

type graphMessage struct {
	ID   string `json:"id"`
	From struct {
		EmailAddress struct {
			Name    string `json:"name"`
			Address string `json:"address"`
		} `json:"emailAddress"`
	} `json:"from"`
	Subject     string `json:"subject"`
	BodyPreview string `json:"bodyPreview"`
	Body        struct {
		Content string `json:"content"`
	} `json:"body"`
	ReceivedDateTime time.Time `json:"receivedDateTime"`
	IsRead           bool      `json:"isRead"`
}

func (m graphMessage) toEntity() *entity.Email {
	from := m.From.EmailAddress.Address
	if m.From.EmailAddress.Name != "" {
		from = fmt.Sprintf("%s <%s>", m.From.EmailAddress.Name, m.From.EmailAddress.Address)
	}

	return &entity.Email{
		Service:    entity.ServiceOutlookMail,
		ExternalID: m.ID,
		From:       from,
		Subject:    m.Subject,
		Snippet:    m.BodyPreview,
		Body:       m.Body.Content,
		ReceivedAt: m.ReceivedDateTime.UTC(),
		Unread:     !m.IsRead,
	}
}

type graphEvent struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Location struct {
		DisplayName string `json:"displayName"`
	} `json:"location"`
	Start graphDateTime `json:"start"`
	End   graphDateTime `json:"end"`
}

// graphDateTime is Graph's zone-qualified timestamp. With no Prefer header
// the API answers in UTC.
type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

func (d graphDateTime) parse() (time.Time, error) {
	// Graph omits the zone designator from dateTime.
	t, err := time.Parse("2006-01-02T15:04:05.9999999", d.DateTime)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse graph datetime %q", d.DateTime)
	}

	loc := time.UTC
	if d.TimeZone != "" && d.TimeZone != "UTC" {
		if parsed, err := time.LoadLocation(d.TimeZone); err == nil {
			loc = parsed
		}
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc), nil
}

func (e graphEvent) toEntity() (*entity.CalendarEvent, error) {
	start, err := e.Start.parse()
	if err != nil {
		return nil, err
	}
	end, err := e.End.parse()
	if err != nil {
		return nil, err
	}

	return &entity.CalendarEvent{
		Service:    entity.ServiceOutlookCalendar,
		ExternalID: e.ID,
		Title:      e.Subject,
		Location:   e.Location.DisplayName,
		StartsAt:   start,
		EndsAt:     end,
	}, nil
}
